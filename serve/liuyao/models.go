package liuyao

// 爻的阴阳
const (
	YaoYang = "yang"
	YaoYin  = "yin"
)

// 爻是否为变爻
const (
	ChangeNone = "none"
	ChangeFlag = "change"
)

// Yao 一根爻：老阳 9（变）、少阴 8、少阳 7、老阴 6（变）
type Yao struct {
	Type   string `json:"type"`
	Change string `json:"change"`
	Value  int    `json:"value"`
}

// Hexagram 一卦的静态资料
type Hexagram struct {
	Id      int       `json:"id"`
	NameZh  string    `json:"nameZh"`
	NameEn  string    `json:"nameEn"`
	GuaCi   string    `json:"guaCi"`
	YaoCi   [6]string `json:"yaoCi"`
	Meaning string    `json:"meaning"`
}

// LiuYaoResult 一次起卦结果，爻序从下往上
type LiuYaoResult struct {
	Id             string    `json:"id"`
	Yaos           [6]Yao    `json:"yaos"`
	BenGua         Hexagram  `json:"benGua"`
	BianGua        *Hexagram `json:"bianGua"`
	ChangingYaos   []int     `json:"changingYaos"`
	Interpretation string    `json:"interpretation"`
}
