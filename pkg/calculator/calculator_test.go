package calculator

import (
	"errors"
	"strconv"
	"testing"

	"github.com/iwvelando/living-cost/pkg/livingcost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateScenarios(t *testing.T) {
	calc := New(nil)

	tests := []struct {
		name          string
		region        string
		householdSize string
		expectedTotal int64
		expectedErr   error
	}{
		{"Taipei single person", "台北市", "1", 20379, nil},
		{"New Taipei family of four", "新北市", "4", 67600, nil},
		{"Kinmen family of three", "金門縣", "3", 43023, nil},
		{"Missing region", "", "2", 0, ErrMissingOrInvalidRegion},
		{"Taichung above ceiling", "台中市", "21", 0, ErrInvalidHouseholdSize},
		{"Nantou zero members", "南投縣", "0", 0, ErrInvalidHouseholdSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calc.Calculate(tt.region, tt.householdSize)
			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedTotal, result.TotalCost)
		})
	}
}

func TestCalculateAllRegionsAllSizes(t *testing.T) {
	calc := New(nil)
	table := livingcost.Default()

	for _, region := range table.Regions() {
		perPerson, err := table.CostOf(region)
		require.NoError(t, err)

		for n := 1; n <= 20; n++ {
			result, err := calc.Calculate(string(region), strconv.Itoa(n))
			require.NoError(t, err, "region %s size %d", region, n)
			assert.Equal(t, perPerson*int64(n), result.TotalCost, "region %s size %d", region, n)
			assert.Equal(t, perPerson, result.PerPersonCost)
			assert.Equal(t, n, result.HouseholdSize)
			assert.Equal(t, region, result.Region)
		}
	}
}

func TestCalculateInvalidRegion(t *testing.T) {
	calc := New(nil)

	for _, region := range []string{"", "   ", "臺北市", "Taipei", "台北市市", "\t"} {
		_, err := calc.Calculate(region, "2")
		assert.ErrorIs(t, err, ErrMissingOrInvalidRegion, "region %q", region)

		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, FieldRegion, vErr.Field)
	}
}

func TestCalculateInvalidHouseholdSize(t *testing.T) {
	calc := New(nil)

	for _, size := range []string{"0", "21", "-1", "abc", "", "  ", "2.5", "1e1", "99999999999999999999"} {
		_, err := calc.Calculate("台北市", size)
		assert.ErrorIs(t, err, ErrInvalidHouseholdSize, "size %q", size)

		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, FieldHouseholdSize, vErr.Field)
	}
}

func TestCalculateRegionCheckedFirst(t *testing.T) {
	_, err := New(nil).Calculate("", "")
	assert.ErrorIs(t, err, ErrMissingOrInvalidRegion)
	assert.NotErrorIs(t, err, ErrInvalidHouseholdSize)
}

func TestCalculateTrimsInput(t *testing.T) {
	result, err := New(nil).Calculate(" 台北市 ", " 2 ")
	require.NoError(t, err)
	assert.Equal(t, livingcost.Taipei, result.Region)
	assert.Equal(t, int64(40758), result.TotalCost)
}

func TestCalculateIdempotent(t *testing.T) {
	calc := New(nil)
	first, err1 := calc.Calculate("桃園市", "5")
	second, err2 := calc.Calculate("桃園市", "5")
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}

func TestWithMaxHouseholdSize(t *testing.T) {
	calc := New(nil, WithMaxHouseholdSize(30))
	assert.Equal(t, 30, calc.MaxHouseholdSize())

	result, err := calc.Calculate("台北市", "25")
	require.NoError(t, err)
	assert.Equal(t, int64(20379*25), result.TotalCost)

	_, err = calc.Calculate("台北市", "31")
	assert.ErrorIs(t, err, ErrInvalidHouseholdSize)

	small := New(nil, WithMaxHouseholdSize(2))
	_, err = small.Calculate("台北市", "3")
	assert.ErrorIs(t, err, ErrInvalidHouseholdSize)

	ignored := New(nil, WithMaxHouseholdSize(0))
	assert.Equal(t, 20, ignored.MaxHouseholdSize())
}

func TestCalculateLargestTotal(t *testing.T) {
	result, err := New(nil).Calculate("台北市", "20")
	require.NoError(t, err)
	assert.Equal(t, int64(407580), result.TotalCost)
}

func TestCalculateCustomTable(t *testing.T) {
	table := livingcost.MustNewTable(
		map[livingcost.Region]int64{"甲區": 1000},
		[]livingcost.RegionGroup{{Name: "測試", Regions: []livingcost.Region{"甲區"}}},
	)
	calc := New(table)

	result, err := calc.Calculate("甲區", "3")
	require.NoError(t, err)
	assert.Equal(t, int64(3000), result.TotalCost)

	_, err = calc.Calculate("台北市", "3")
	assert.ErrorIs(t, err, ErrMissingOrInvalidRegion)
	assert.Same(t, table, calc.Table())
}

func TestValidationErrorMessage(t *testing.T) {
	_, err := New(nil).Calculate("", "1")
	assert.Equal(t, "missing or invalid region: region is required", err.Error())

	_, err = New(nil).Calculate("台北市", "21")
	assert.Equal(t, `invalid household size: "21"`, err.Error())
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "success", Outcome(nil))
	assert.Equal(t, "invalid_region", Outcome(&ValidationError{Err: ErrMissingOrInvalidRegion}))
	assert.Equal(t, "invalid_household_size", Outcome(&ValidationError{Err: ErrInvalidHouseholdSize}))
	assert.Equal(t, "error", Outcome(errors.New("boom")))
}
