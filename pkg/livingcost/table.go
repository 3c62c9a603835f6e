// Package livingcost holds the published per-person minimum living cost
// figures for each region and the grouping used to list them.
package livingcost

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRegion is returned when a lookup names a region outside the
// closed set. Callers that only offer regions from Groups never see it.
var ErrUnknownRegion = errors.New("unknown region")

// Region is one of Taiwan's administrative divisions, identified by its
// canonical display name.
type Region string

// Special municipalities (六都).
const (
	Taipei    Region = "台北市"
	NewTaipei Region = "新北市"
	Taoyuan   Region = "桃園市"
	Taichung  Region = "台中市"
	Tainan    Region = "台南市"
	Kaohsiung Region = "高雄市"
)

// Taiwan province counties and cities (台灣省).
const (
	Keelung       Region = "基隆市"
	Yilan         Region = "宜蘭縣"
	HsinchuCity   Region = "新竹市"
	HsinchuCounty Region = "新竹縣"
	Miaoli        Region = "苗栗縣"
	Changhua      Region = "彰化縣"
	Nantou        Region = "南投縣"
	Yunlin        Region = "雲林縣"
	ChiayiCity    Region = "嘉義市"
	ChiayiCounty  Region = "嘉義縣"
	Pingtung      Region = "屏東縣"
	Taitung       Region = "台東縣"
	Hualien       Region = "花蓮縣"
	Penghu        Region = "澎湖縣"
)

// Fujian province counties (福建省).
const (
	Kinmen     Region = "金門縣"
	Lienchiang Region = "連江縣"
)

// Group names in display order.
const (
	GroupSpecialMunicipalities = "六都"
	GroupTaiwanProvince        = "台灣省"
	GroupFujianProvince        = "福建省"
)

func (r Region) String() string {
	return string(r)
}

// RegionGroup is a named display category holding an ordered list of regions.
type RegionGroup struct {
	Name    string
	Regions []Region
}

// Table maps every region to its per-person monthly cost in whole NT$.
// A Table is immutable once built and safe for concurrent readers.
type Table struct {
	costs  map[Region]int64
	groups []RegionGroup
	order  []Region
}

// NewTable builds a Table after checking that every cost is positive and
// that the groups partition the cost keys exactly.
func NewTable(costs map[Region]int64, groups []RegionGroup) (*Table, error) {
	if len(costs) == 0 {
		return nil, errors.New("cost table cannot be empty")
	}
	for region, cost := range costs {
		if strings.TrimSpace(string(region)) == "" {
			return nil, errors.New("region name cannot be empty")
		}
		if cost <= 0 {
			return nil, fmt.Errorf("cost for region %s must be positive, got %d", region, cost)
		}
	}

	t := &Table{
		costs:  make(map[Region]int64, len(costs)),
		groups: make([]RegionGroup, 0, len(groups)),
		order:  make([]Region, 0, len(costs)),
	}

	seen := make(map[Region]string, len(costs))
	for _, group := range groups {
		if strings.TrimSpace(group.Name) == "" {
			return nil, errors.New("group name cannot be empty")
		}
		if len(group.Regions) == 0 {
			return nil, fmt.Errorf("group %s has no regions", group.Name)
		}
		for _, region := range group.Regions {
			if _, ok := costs[region]; !ok {
				return nil, fmt.Errorf("group %s lists region %s which has no cost", group.Name, region)
			}
			if other, dup := seen[region]; dup {
				return nil, fmt.Errorf("region %s appears in both %s and %s", region, other, group.Name)
			}
			seen[region] = group.Name
			t.order = append(t.order, region)
		}
		t.groups = append(t.groups, RegionGroup{
			Name:    group.Name,
			Regions: append([]Region(nil), group.Regions...),
		})
	}

	for region, cost := range costs {
		if _, ok := seen[region]; !ok {
			return nil, fmt.Errorf("region %s is not in any group", region)
		}
		t.costs[region] = cost
	}

	return t, nil
}

// MustNewTable is like NewTable but panics on an invalid table.
func MustNewTable(costs map[Region]int64, groups []RegionGroup) *Table {
	t, err := NewTable(costs, groups)
	if err != nil {
		panic(fmt.Sprintf("invalid living cost table: %v", err))
	}
	return t
}

// CostOf returns the per-person monthly cost for region.
func (t *Table) CostOf(region Region) (int64, error) {
	cost, ok := t.costs[region]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownRegion, string(region))
	}
	return cost, nil
}

// Contains reports whether region is in the table.
func (t *Table) Contains(region Region) bool {
	_, ok := t.costs[region]
	return ok
}

// ParseRegion resolves user input to a Region. Surrounding whitespace is
// ignored; anything else must match a canonical name exactly.
func (t *Table) ParseRegion(name string) (Region, bool) {
	region := Region(strings.TrimSpace(name))
	if region == "" || !t.Contains(region) {
		return "", false
	}
	return region, true
}

// Groups returns the display groups in order. The result is a copy.
func (t *Table) Groups() []RegionGroup {
	out := make([]RegionGroup, len(t.groups))
	for i, group := range t.groups {
		out[i] = RegionGroup{
			Name:    group.Name,
			Regions: append([]Region(nil), group.Regions...),
		}
	}
	return out
}

// Regions returns every region in display order.
func (t *Table) Regions() []Region {
	return append([]Region(nil), t.order...)
}

// Len returns the number of regions.
func (t *Table) Len() int {
	return len(t.costs)
}
