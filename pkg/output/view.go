package output

import (
	"github.com/iwvelando/living-cost/pkg/calculator"
	"github.com/iwvelando/living-cost/pkg/constants"
	"github.com/iwvelando/living-cost/pkg/format"
	"github.com/iwvelando/living-cost/pkg/livingcost"
)

// ResultView is the serialized form of a calculation result.
type ResultView struct {
	Region        string          `json:"region"`
	PerPersonCost int64           `json:"perPersonCost"`
	HouseholdSize int             `json:"householdSize"`
	TotalCost     int64           `json:"totalCost"`
	Formatted     FormattedResult `json:"formatted"`
}

// FormattedResult carries display strings for a result.
type FormattedResult struct {
	PerPersonCost string `json:"perPersonCost"`
	TotalCost     string `json:"totalCost"`
	Breakdown     string `json:"breakdown"`
}

// RegionsView is the serialized region listing.
type RegionsView struct {
	Vintage string      `json:"vintage"`
	Source  string      `json:"source"`
	Updated string      `json:"updated"`
	Groups  []GroupView `json:"groups"`
}

// GroupView is one display group with its regions.
type GroupView struct {
	Name    string       `json:"name"`
	Regions []RegionView `json:"regions"`
}

// RegionView is a region and its per-person cost.
type RegionView struct {
	Name          string `json:"name"`
	PerPersonCost int64  `json:"perPersonCost"`
}

// NewResultView converts a result for display or serialization.
func NewResultView(result calculator.Result) ResultView {
	return ResultView{
		Region:        result.Region.String(),
		PerPersonCost: result.PerPersonCost,
		HouseholdSize: result.HouseholdSize,
		TotalCost:     result.TotalCost,
		Formatted: FormattedResult{
			PerPersonCost: format.Currency(result.PerPersonCost),
			TotalCost:     format.Currency(result.TotalCost),
			Breakdown:     Breakdown(result),
		},
	}
}

// Breakdown describes how the total was reached, e.g.
// "NT$ 16,900 (每人每月) × 4 人 = NT$ 67,600".
func Breakdown(result calculator.Result) string {
	return format.Currency(result.PerPersonCost) + " (每人每月) × " +
		format.Number(int64(result.HouseholdSize)) + " 人 = " +
		format.Currency(result.TotalCost)
}

// Headline is the "{region} · {n} 人家庭" caption of a result.
func Headline(result calculator.Result) string {
	return result.Region.String() + " · " + format.Number(int64(result.HouseholdSize)) + " 人家庭"
}

// NewRegionsView lists every group of table with costs.
func NewRegionsView(table *livingcost.Table) RegionsView {
	groups := table.Groups()
	view := RegionsView{
		Vintage: constants.DataVintage,
		Source:  constants.DataSource,
		Updated: constants.DataUpdated,
		Groups:  make([]GroupView, 0, len(groups)),
	}
	for _, group := range groups {
		gv := GroupView{Name: group.Name, Regions: make([]RegionView, 0, len(group.Regions))}
		for _, region := range group.Regions {
			// Groups and costs come from the same validated table.
			cost, _ := table.CostOf(region)
			gv.Regions = append(gv.Regions, RegionView{Name: region.String(), PerPersonCost: cost})
		}
		view.Groups = append(view.Groups, gv)
	}
	return view
}
