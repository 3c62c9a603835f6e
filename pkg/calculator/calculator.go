// Package calculator validates household input and computes the monthly
// minimum living cost for a household.
package calculator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/iwvelando/living-cost/pkg/constants"
	"github.com/iwvelando/living-cost/pkg/livingcost"
)

// Validation failures. A ValidationError unwraps to one of these.
var (
	ErrMissingOrInvalidRegion = errors.New("missing or invalid region")
	ErrInvalidHouseholdSize   = errors.New("invalid household size")
)

// Fields named by ValidationError.
const (
	FieldRegion        = "region"
	FieldHouseholdSize = "householdSize"
)

// ValidationError reports which input was rejected.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s is required", e.Err, e.Field)
	}
	return fmt.Sprintf("%s: %q", e.Err, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Result is the outcome of a successful calculation.
type Result struct {
	Region        livingcost.Region
	PerPersonCost int64
	HouseholdSize int
	TotalCost     int64
}

// Calculator multiplies a region's per-person cost by a household size. It
// holds no mutable state and may be shared between goroutines.
type Calculator struct {
	table            *livingcost.Table
	maxHouseholdSize int
}

// Option customizes a Calculator.
type Option func(*Calculator)

// WithMaxHouseholdSize sets the largest accepted household size. Values
// below the minimum household size are ignored.
func WithMaxHouseholdSize(n int) Option {
	return func(c *Calculator) {
		if n >= constants.MinHouseholdSize {
			c.maxHouseholdSize = n
		}
	}
}

// New returns a Calculator backed by table, or the default table when nil.
func New(table *livingcost.Table, opts ...Option) *Calculator {
	if table == nil {
		table = livingcost.Default()
	}
	c := &Calculator{
		table:            table,
		maxHouseholdSize: constants.DefaultMaxHouseholdSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MaxHouseholdSize returns the configured household size ceiling.
func (c *Calculator) MaxHouseholdSize() int {
	return c.maxHouseholdSize
}

// Table returns the cost table the calculator reads from.
func (c *Calculator) Table() *livingcost.Table {
	return c.table
}

// Calculate validates the raw inputs and returns the household total.
// The region is checked first; the first failing input is reported.
func (c *Calculator) Calculate(region, householdSize string) (Result, error) {
	r, ok := c.table.ParseRegion(region)
	if !ok {
		return Result{}, &ValidationError{
			Field: FieldRegion,
			Value: strings.TrimSpace(region),
			Err:   ErrMissingOrInvalidRegion,
		}
	}

	size, err := c.ParseHouseholdSize(householdSize)
	if err != nil {
		return Result{}, err
	}

	perPerson, err := c.table.CostOf(r)
	if err != nil {
		// ParseRegion already accepted r, so this is a broken table.
		return Result{}, fmt.Errorf("cost lookup for validated region: %w", err)
	}

	return Result{
		Region:        r,
		PerPersonCost: perPerson,
		HouseholdSize: size,
		TotalCost:     perPerson * int64(size),
	}, nil
}

// ParseHouseholdSize parses a base-10 household size within
// [MinHouseholdSize, MaxHouseholdSize].
func (c *Calculator) ParseHouseholdSize(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	invalid := &ValidationError{
		Field: FieldHouseholdSize,
		Value: trimmed,
		Err:   ErrInvalidHouseholdSize,
	}

	if trimmed == "" {
		return 0, invalid
	}
	size, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, invalid
	}
	if size < constants.MinHouseholdSize || size > c.maxHouseholdSize {
		return 0, invalid
	}
	return size, nil
}

// Outcome classifies a Calculate error for logging and metrics.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrMissingOrInvalidRegion):
		return "invalid_region"
	case errors.Is(err, ErrInvalidHouseholdSize):
		return "invalid_household_size"
	default:
		return "error"
	}
}
