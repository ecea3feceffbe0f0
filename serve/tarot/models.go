package tarot

// Card 一张塔罗牌。Suit/Number 仅小阿卡纳有值，宫廷牌无 Number。
type Card struct {
	Id              int    `json:"id"`
	NameZh          string `json:"nameZh"`
	NameEn          string `json:"nameEn"`
	Suit            string `json:"suit,omitempty"`
	Number          int    `json:"number,omitempty"`
	Meaning         string `json:"meaning"`
	ReversedMeaning string `json:"reversedMeaning"`
	Reversed        bool   `json:"reversed"`
}

// PositionCard 牌阵中一个位置上的牌
type PositionCard struct {
	Position string `json:"position"`
	Card     Card   `json:"card"`
}

// SpreadResult 一次抽牌结果
type SpreadResult struct {
	Id     string         `json:"id"`
	Spread string         `json:"spread"`
	Cards  []PositionCard `json:"cards"`
}
