package almanac

// ActivityItem 一条宜/忌事项及其分类
type ActivityItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// LuckyHour 吉时
type LuckyHour struct {
	Time        string `json:"time"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UnluckyHour 凶时
type UnluckyHour struct {
	Time string `json:"time"`
	Name string `json:"name"`
}

// GanZhiLabels 四柱干支标签
type GanZhiLabels struct {
	Year  string `json:"year"`
	Month string `json:"month"`
	Day   string `json:"day"`
	Hour  string `json:"hour"`
}

// CalendarDay 一天的黄历信息
type CalendarDay struct {
	Date         string         `json:"date"`
	LunarDate    string         `json:"lunarDate"`
	GanZhi       GanZhiLabels   `json:"ganZhi"`
	Zodiac       string         `json:"zodiac"`
	Suitable     []ActivityItem `json:"suitable"`
	Avoid        []ActivityItem `json:"avoid"`
	LuckyHours   []LuckyHour    `json:"luckyHours"`
	UnluckyHours []UnluckyHour  `json:"unluckyHours"`
	Wuxing       string         `json:"wuxing"`
	Festivals    []string       `json:"festivals"`
}
