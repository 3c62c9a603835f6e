// Package output provides utilities for formatting and displaying calculation results.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/living-cost/pkg/calculator"
	"github.com/iwvelando/living-cost/pkg/constants"
	"github.com/iwvelando/living-cost/pkg/format"
	"github.com/iwvelando/living-cost/pkg/livingcost"
)

// WriteResult renders result in the named output format.
func WriteResult(w io.Writer, outputFormat string, result calculator.Result) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		return PrettyResult(w, result)
	case constants.OutputFormatCSV:
		return CsvResult(w, result)
	case constants.OutputFormatJSON:
		return writeJSON(w, NewResultView(result))
	default:
		return fmt.Errorf("unsupported output format %s", outputFormat)
	}
}

// WriteRegions renders the region listing in the named output format.
func WriteRegions(w io.Writer, outputFormat string, table *livingcost.Table) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		return PrettyRegions(w, table)
	case constants.OutputFormatCSV:
		return CsvRegions(w, table)
	case constants.OutputFormatJSON:
		return writeJSON(w, NewRegionsView(table))
	default:
		return fmt.Errorf("unsupported output format %s", outputFormat)
	}
}

// PrettyResult outputs a human-readable rather than machine-readable summary.
func PrettyResult(w io.Writer, result calculator.Result) error {
	_, err := fmt.Fprintf(w, "--- %s ---\n每人每月       | %s\n家庭成員數量   | %d 人\n每月最低生活費 | %s\n計算方式: %s\n",
		Headline(result),
		format.Currency(result.PerPersonCost),
		result.HouseholdSize,
		format.Currency(result.TotalCost),
		Breakdown(result),
	)
	return err
}

// CsvResult outputs a header row and one data row.
func CsvResult(w io.Writer, result calculator.Result) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"region", "perPersonCost", "householdSize", "totalCost"})
	_ = cw.Write([]string{
		result.Region.String(),
		strconv.FormatInt(result.PerPersonCost, 10),
		strconv.Itoa(result.HouseholdSize),
		strconv.FormatInt(result.TotalCost, 10),
	})
	cw.Flush()
	return cw.Error()
}

// PrettyRegions lists each group followed by its regions and costs.
func PrettyRegions(w io.Writer, table *livingcost.Table) error {
	view := NewRegionsView(table)
	if _, err := fmt.Fprintf(w, "%s (資料更新時間：%s)\n", view.Source, view.Updated); err != nil {
		return err
	}
	for _, group := range view.Groups {
		if _, err := fmt.Fprintf(w, "\n[%s]\n", group.Name); err != nil {
			return err
		}
		for _, region := range group.Regions {
			if _, err := fmt.Fprintf(w, "%s | %s\n", region.Name, format.Currency(region.PerPersonCost)); err != nil {
				return err
			}
		}
	}
	return nil
}

// CsvRegions outputs one row per region in display order.
func CsvRegions(w io.Writer, table *livingcost.Table) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"group", "region", "perPersonCost"})
	for _, group := range NewRegionsView(table).Groups {
		for _, region := range group.Regions {
			_ = cw.Write([]string{group.Name, region.Name, strconv.FormatInt(region.PerPersonCost, 10)})
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
