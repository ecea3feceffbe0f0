package horoscope

// Sign 星座静态资料
type Sign struct {
	Id        string `json:"id"`
	NameZh    string `json:"nameZh"`
	NameEn    string `json:"nameEn"`
	DateRange string `json:"dateRange"`
	Element   string `json:"element"`
	Emoji     string `json:"emoji"`
}

// Description 各生活类别的运势描述
type Description struct {
	Overall string `json:"overall"`
	Love    string `json:"love"`
	Career  string `json:"career"`
	Wealth  string `json:"wealth"`
	Health  string `json:"health"`
	Advice  string `json:"advice"`
}

// HoroscopeContent 一期运势，分数范围 3-5
type HoroscopeContent struct {
	Sign        string      `json:"sign"`
	Period      string      `json:"period"`
	Date        string      `json:"date"`
	Overall     int         `json:"overall"`
	Love        int         `json:"love"`
	Career      int         `json:"career"`
	Wealth      int         `json:"wealth"`
	Health      int         `json:"health"`
	LuckyNumber []int       `json:"luckyNumber"`
	LuckyColor  []string    `json:"luckyColor"`
	Description Description `json:"description"`
}

// CompatibilityResult 星座配对结果
type CompatibilityResult struct {
	Sign1       string `json:"sign1"`
	Sign2       string `json:"sign2"`
	Score       int    `json:"score"`
	Description string `json:"description"`
}

// PersonalityTraits 星座性格画像
type PersonalityTraits struct {
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Characteristics []string `json:"characteristics"`
	Compatibility   []string `json:"compatibility"`
	Career          []string `json:"career"`
	Love            []string `json:"love"`
}
