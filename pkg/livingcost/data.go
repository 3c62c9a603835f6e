package livingcost

// Figures from 114年度各縣市最低生活費標準. These are maintained by hand and
// must be replaced together with the groups when a new year is published.
var costs114 = map[Region]int64{
	Taipei:    20379,
	NewTaipei: 16900,
	Taoyuan:   16768,
	Taichung:  16077,
	Tainan:    15515,
	Kaohsiung: 16040,

	Keelung:       15515,
	Yilan:         15515,
	HsinchuCity:   15515,
	HsinchuCounty: 15515,
	Miaoli:        15515,
	Changhua:      15515,
	Nantou:        15515,
	Yunlin:        15515,
	ChiayiCity:    15515,
	ChiayiCounty:  15515,
	Pingtung:      15515,
	Taitung:       15515,
	Hualien:       15515,
	Penghu:        15515,

	Kinmen:     14341,
	Lienchiang: 14341,
}

// Administrative listing order.
var groups114 = []RegionGroup{
	{
		Name:    GroupSpecialMunicipalities,
		Regions: []Region{Taipei, NewTaipei, Taoyuan, Taichung, Tainan, Kaohsiung},
	},
	{
		Name: GroupTaiwanProvince,
		Regions: []Region{
			Keelung, Yilan, HsinchuCity, HsinchuCounty, Miaoli, Changhua, Nantou,
			Yunlin, ChiayiCity, ChiayiCounty, Pingtung, Taitung, Hualien, Penghu,
		},
	},
	{
		Name:    GroupFujianProvince,
		Regions: []Region{Kinmen, Lienchiang},
	},
}

var defaultTable = MustNewTable(costs114, groups114)

// Default returns the table for the single data vintage in effect.
func Default() *Table {
	return defaultTable
}
