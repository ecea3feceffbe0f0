package bazi

// WuxingCount 八字五行分布计数，总和恒为 8
type WuxingCount struct {
	Metal int `json:"metal"`
	Wood  int `json:"wood"`
	Water int `json:"water"`
	Fire  int `json:"fire"`
	Earth int `json:"earth"`
}

// BaziResult 八字排盘结果
type BaziResult struct {
	YearGanZhi  string      `json:"yearGanZhi"`
	MonthGanZhi string      `json:"monthGanZhi"`
	DayGanZhi   string      `json:"dayGanZhi"`
	HourGanZhi  string      `json:"hourGanZhi"`
	Wuxing      WuxingCount `json:"wuxing"`
	Analysis    string      `json:"analysis"`
}
