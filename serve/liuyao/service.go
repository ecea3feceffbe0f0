package liuyao

import (
	"TianjiMeta/cmn/chance"
	"TianjiMeta/cmn/llm"
	"TianjiMeta/cmn/locale"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// 起卦用真随机源，与黄历/运势的种子化序列不同，每次结果独立
var src = chance.New()

// generateYao 掷三枚硬币成一爻
func generateYao(src chance.Source) Yao {
	heads := 0
	for i := 0; i < 3; i++ {
		if src.Coin() {
			heads++
		}
	}

	switch heads {
	case 3:
		// 老阳
		return Yao{Type: YaoYang, Change: ChangeFlag, Value: 9}
	case 2:
		// 少阴
		return Yao{Type: YaoYin, Change: ChangeNone, Value: 8}
	case 1:
		// 少阳
		return Yao{Type: YaoYang, Change: ChangeNone, Value: 7}
	default:
		// 老阴
		return Yao{Type: YaoYin, Change: ChangeFlag, Value: 6}
	}
}

// codeOf 六爻二进制编码，上爻为最高位，阳爻取 1
func codeOf(yaos [6]Yao) int {
	code := 0
	for i := 5; i >= 0; i-- {
		code <<= 1
		if yaos[i].Type == YaoYang {
			code |= 1
		}
	}
	return code
}

// hexagramByCode 按编码查通行卦序取卦
func hexagramByCode(code int) Hexagram {
	return hexagrams[kingWenByCode[code]-1]
}

// transform 变卦：只翻转变爻，翻转后不再是变爻
func transform(yaos [6]Yao) [6]Yao {
	var out [6]Yao
	for i, yao := range yaos {
		if yao.Change != ChangeFlag {
			out[i] = yao
			continue
		}
		if yao.Type == YaoYang {
			out[i] = Yao{Type: YaoYin, Change: ChangeNone, Value: 6}
		} else {
			out[i] = Yao{Type: YaoYang, Change: ChangeNone, Value: 9}
		}
	}
	return out
}

// buildInterpretation 按卦象拼装模板解读
func buildInterpretation(benGua Hexagram, bianGua *Hexagram, changingYaos []int, loc string) string {
	var b strings.Builder

	if loc == locale.EN {
		b.WriteString(fmt.Sprintf("Original Hexagram: %s (%s)\n\n", benGua.NameZh, benGua.NameEn))
		b.WriteString(fmt.Sprintf("Hexagram Text: %s\n\n", benGua.GuaCi))
		b.WriteString(fmt.Sprintf("Meaning: %s\n\n", benGua.Meaning))

		if len(changingYaos) > 0 {
			positions := make([]string, 0, len(changingYaos))
			for _, pos := range changingYaos {
				positions = append(positions, fmt.Sprintf("%d", pos))
			}
			b.WriteString(fmt.Sprintf("Changing Lines: %s\n\n", strings.Join(positions, ", ")))
			b.WriteString("Changing Line Texts:\n")
			for _, pos := range changingYaos {
				b.WriteString(benGua.YaoCi[pos-1] + "\n")
			}
			b.WriteString("\n")

			if bianGua != nil {
				b.WriteString(fmt.Sprintf("Changed Hexagram: %s (%s)\n\n", bianGua.NameZh, bianGua.NameEn))
				b.WriteString(fmt.Sprintf("Changed Hexagram Text: %s\n\n", bianGua.GuaCi))
				b.WriteString(fmt.Sprintf("Changed Hexagram Meaning: %s\n\n", bianGua.Meaning))
			}
		} else {
			b.WriteString("No changing lines, focus on the original hexagram.\n\n")
		}

		b.WriteString("Interpretation:\n")
		b.WriteString(fmt.Sprintf("The hexagram %s shows the current situation.", benGua.NameZh))
		if len(changingYaos) > 0 {
			b.WriteString(fmt.Sprintf(" With %d changing line(s), change is coming.", len(changingYaos)))
			if bianGua != nil {
				b.WriteString(fmt.Sprintf(" The changed hexagram %s indicates future development.", bianGua.NameZh))
			}
			b.WriteString(" Pay special attention to the changing line texts, as they point to key points of change.")
		} else {
			b.WriteString(" With no changing lines, the situation is relatively stable.")
		}
		b.WriteString("\n\nAdvice: Follow the guidance of the hexagram, maintain inner peace, assess the situation, and make wise decisions.")

		return b.String()
	}

	b.WriteString(fmt.Sprintf("本卦：%s（%s）\n\n", benGua.NameZh, benGua.NameEn))
	b.WriteString(fmt.Sprintf("卦辞：%s\n\n", benGua.GuaCi))
	b.WriteString(fmt.Sprintf("含义：%s\n\n", benGua.Meaning))

	if len(changingYaos) > 0 {
		positions := make([]string, 0, len(changingYaos))
		for _, pos := range changingYaos {
			positions = append(positions, fmt.Sprintf("%d", pos))
		}
		b.WriteString(fmt.Sprintf("变爻：第%s爻\n\n", strings.Join(positions, "、")))
		b.WriteString("变爻爻辞：\n")
		for _, pos := range changingYaos {
			b.WriteString(benGua.YaoCi[pos-1] + "\n")
		}
		b.WriteString("\n")

		if bianGua != nil {
			b.WriteString(fmt.Sprintf("变卦：%s（%s）\n\n", bianGua.NameZh, bianGua.NameEn))
			b.WriteString(fmt.Sprintf("变卦卦辞：%s\n\n", bianGua.GuaCi))
			b.WriteString(fmt.Sprintf("变卦含义：%s\n\n", bianGua.Meaning))
		}
	} else {
		b.WriteString("无变爻，以本卦卦辞和爻辞为主。\n\n")
	}

	b.WriteString("解读：\n")
	b.WriteString(fmt.Sprintf("本卦%s卦象显示当前的情况。", benGua.NameZh))
	if len(changingYaos) > 0 {
		b.WriteString(fmt.Sprintf("由于有%d个变爻，事情将会发生变化。", len(changingYaos)))
		if bianGua != nil {
			b.WriteString(fmt.Sprintf("变卦%s预示着未来的发展趋势。", bianGua.NameZh))
		}
		b.WriteString("需要特别关注变爻的爻辞，它们指出了变化的关键点。")
	} else {
		b.WriteString("由于没有变爻，当前情况相对稳定，可以按照本卦的指导行事。")
	}
	b.WriteString("\n\n建议：根据卦象的指导，保持内心的平静，审时度势，做出明智的决策。")

	return b.String()
}

// Cast 起一卦：掷六爻，定本卦，有变爻时再定变卦
func Cast(loc string) (LiuYaoResult, error) {
	loc, err := locale.Normalize(loc)
	if err != nil {
		return LiuYaoResult{}, err
	}

	var yaos [6]Yao
	for i := range yaos {
		yaos[i] = generateYao(src)
	}

	benGua := hexagramByCode(codeOf(yaos))

	var changingYaos []int
	for i, yao := range yaos {
		if yao.Change == ChangeFlag {
			changingYaos = append(changingYaos, i+1)
		}
	}

	var bianGua *Hexagram
	if len(changingYaos) > 0 {
		changed := hexagramByCode(codeOf(transform(yaos)))
		bianGua = &changed
	}

	return LiuYaoResult{
		Id:             uuid.NewString(),
		Yaos:           yaos,
		BenGua:         benGua,
		BianGua:        bianGua,
		ChangingYaos:   changingYaos,
		Interpretation: buildInterpretation(benGua, bianGua, changingYaos, loc),
	}, nil
}

// MasterReading 大师解卦：组织提示词请求大模型，失败时回落到本地模板
func MasterReading(benGuaId, bianGuaId int, changingYaos []int, question, loc string) (llm.Interpretation, error) {
	loc, err := locale.Normalize(loc)
	if err != nil {
		return llm.Interpretation{}, err
	}
	if benGuaId < 1 || benGuaId > 64 {
		return llm.Interpretation{}, fmt.Errorf("benGuaId %d out of range [1,64]", benGuaId)
	}
	if bianGuaId != 0 && (bianGuaId < 1 || bianGuaId > 64) {
		return llm.Interpretation{}, fmt.Errorf("bianGuaId %d out of range [1,64]", bianGuaId)
	}
	for _, pos := range changingYaos {
		if pos < 1 || pos > 6 {
			return llm.Interpretation{}, fmt.Errorf("changing yao position %d out of range [1,6]", pos)
		}
	}

	benGua := hexagrams[benGuaId-1]
	var bianGua *Hexagram
	if bianGuaId != 0 {
		h := hexagrams[bianGuaId-1]
		bianGua = &h
	}

	local := buildInterpretation(benGua, bianGua, changingYaos, loc)

	fallback := llm.Interpretation{
		Summary:  locale.Pick(loc, fmt.Sprintf("本卦为%s，卦辞：%s。", benGua.NameZh, benGua.GuaCi), fmt.Sprintf("The hexagram is %s. Hexagram text: %s.", benGua.NameEn, benGua.GuaCi)),
		Detailed: local,
		Advice:   locale.Pick(loc, "根据卦象的指导，保持内心的平静，审时度势，做出明智的决策。", "Follow the guidance of the hexagram, maintain inner peace, assess the situation, and make wise decisions."),
	}

	var prompt strings.Builder
	if loc == locale.EN {
		prompt.WriteString("You are an experienced I Ching master. Interpret the following divination result.\n\n")
		prompt.WriteString(local)
		if question != "" {
			prompt.WriteString(fmt.Sprintf("\n\nThe inquirer's question: %s", question))
		}
		prompt.WriteString("\n\nReply in English with exactly three sections marked 【Summary】, 【Detailed Interpretation】 and 【Advice】.")
	} else {
		prompt.WriteString("你是一位经验丰富的易学大师，请解读以下占卜结果。\n\n")
		prompt.WriteString(local)
		if question != "" {
			prompt.WriteString(fmt.Sprintf("\n\n求卦人的问题：%s", question))
		}
		prompt.WriteString("\n\n请用中文回答，并严格分为三段，分别以【摘要】、【详细解读】、【建议】开头。")
	}

	return llm.Interpret(prompt.String(), loc, fallback), nil
}
