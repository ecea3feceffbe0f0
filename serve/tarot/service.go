package tarot

import (
	"TianjiMeta/cmn/chance"
	"TianjiMeta/cmn/llm"
	"TianjiMeta/cmn/locale"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var src = chance.New()

// 牌阵类型
const (
	SpreadSingle = "single"
	SpreadThree  = "three"
	SpreadFive   = "five"
)

// 各牌阵的位置标签，顺序即抽牌顺序
var spreadPositions = map[string][]struct {
	zh string
	en string
}{
	SpreadSingle: {
		{"牌意", "Meaning"},
	},
	SpreadThree: {
		{"过去", "Past"},
		{"现在", "Present"},
		{"未来", "Future"},
	},
	SpreadFive: {
		{"现状", "Situation"},
		{"挑战", "Challenge"},
		{"过去", "Past"},
		{"未来", "Future"},
		{"建议", "Advice"},
	},
}

// Draw 不放回抽牌，逐张独立决定正逆位
func Draw(count int) ([]Card, error) {
	if count < 1 || count > len(deck) {
		return nil, fmt.Errorf("draw count %d out of range [1,%d]", count, len(deck))
	}

	drawn := make([]Card, 0, count)
	used := make(map[int]bool, count)

	for len(drawn) < count {
		idx := src.Intn(len(deck))
		if used[idx] {
			continue
		}
		used[idx] = true

		card := deck[idx]
		card.Reversed = src.Coin()
		drawn = append(drawn, card)
	}

	return drawn, nil
}

// CardMeaning 按正逆位取牌意
func CardMeaning(card Card) string {
	if card.Reversed {
		return card.ReversedMeaning
	}
	return card.Meaning
}

// CardName 按语言取牌名
func CardName(card Card, loc string) string {
	return locale.Pick(loc, card.NameZh, card.NameEn)
}

// DrawSpread 按牌阵抽牌并标注位置
func DrawSpread(spread, loc string) (SpreadResult, error) {
	loc, err := locale.Normalize(loc)
	if err != nil {
		return SpreadResult{}, err
	}

	positions, ok := spreadPositions[spread]
	if !ok {
		return SpreadResult{}, fmt.Errorf("unknown spread %q", spread)
	}

	cards, err := Draw(len(positions))
	if err != nil {
		return SpreadResult{}, err
	}

	result := SpreadResult{
		Id:     uuid.NewString(),
		Spread: spread,
		Cards:  make([]PositionCard, 0, len(cards)),
	}
	for i, card := range cards {
		result.Cards = append(result.Cards, PositionCard{
			Position: locale.Pick(loc, positions[i].zh, positions[i].en),
			Card:     card,
		})
	}

	return result, nil
}

// CardRef 解读请求中引用的一张已抽出的牌
type CardRef struct {
	Id       int  `json:"id"`
	Reversed bool `json:"reversed"`
}

// localReading 本地兜底解读：逐位置拼接牌名、正逆位和牌意
func localReading(spread string, cards []Card, loc string) llm.Interpretation {
	positions := spreadPositions[spread]

	var detailed strings.Builder
	names := make([]string, 0, len(cards))
	for i, card := range cards {
		position := locale.Pick(loc, positions[i].zh, positions[i].en)
		orientation := locale.Pick(loc, "正位", "Upright")
		if card.Reversed {
			orientation = locale.Pick(loc, "逆位", "Reversed")
		}
		names = append(names, CardName(card, loc))

		if loc == locale.EN {
			detailed.WriteString(fmt.Sprintf("%s: %s (%s) - %s\n", position, CardName(card, loc), orientation, CardMeaning(card)))
		} else {
			detailed.WriteString(fmt.Sprintf("%s：%s（%s）- %s\n", position, CardName(card, loc), orientation, CardMeaning(card)))
		}
	}

	return llm.Interpretation{
		Summary: locale.Pick(loc,
			fmt.Sprintf("本次抽到：%s。", strings.Join(names, "、")),
			fmt.Sprintf("You drew: %s.", strings.Join(names, ", "))),
		Detailed: strings.TrimSpace(detailed.String()),
		Advice: locale.Pick(loc,
			"塔罗牌展示的是趋势而非定数，结合自身处境理性参考即可。",
			"Tarot shows tendencies, not certainties. Consider the reading in light of your own situation."),
	}
}

// MasterReading 大师解读：组织提示词请求大模型，失败时回落到本地拼接文本
func MasterReading(spread string, refs []CardRef, question, loc string) (llm.Interpretation, error) {
	loc, err := locale.Normalize(loc)
	if err != nil {
		return llm.Interpretation{}, err
	}

	positions, ok := spreadPositions[spread]
	if !ok {
		return llm.Interpretation{}, fmt.Errorf("unknown spread %q", spread)
	}
	if len(refs) != len(positions) {
		return llm.Interpretation{}, fmt.Errorf("spread %s expects %d cards, got %d", spread, len(positions), len(refs))
	}

	cards := make([]Card, 0, len(refs))
	for _, ref := range refs {
		if ref.Id < 0 || ref.Id >= len(deck) {
			return llm.Interpretation{}, fmt.Errorf("card id %d out of range [0,%d]", ref.Id, len(deck)-1)
		}
		card := deck[ref.Id]
		card.Reversed = ref.Reversed
		cards = append(cards, card)
	}

	fallback := localReading(spread, cards, loc)

	var prompt strings.Builder
	if loc == locale.EN {
		prompt.WriteString("You are an experienced tarot reader. Interpret the following draw.\n\n")
		prompt.WriteString(fallback.Detailed)
		if question != "" {
			prompt.WriteString(fmt.Sprintf("\n\nThe querent's question: %s", question))
		}
		prompt.WriteString("\n\nReply in English with exactly three sections marked 【Summary】, 【Detailed Interpretation】 and 【Advice】.")
	} else {
		prompt.WriteString("你是一位经验丰富的塔罗师，请解读以下牌阵。\n\n")
		prompt.WriteString(fallback.Detailed)
		if question != "" {
			prompt.WriteString(fmt.Sprintf("\n\n问卜者的问题：%s", question))
		}
		prompt.WriteString("\n\n请用中文回答，并严格分为三段，分别以【摘要】、【详细解读】、【建议】开头。")
	}

	return llm.Interpret(prompt.String(), loc, fallback), nil
}
