package llm

import (
	"TianjiMeta/cmn/locale"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Interpretation 大师解读的固定三段结构。
// 无论来自大模型还是本地兜底生成器，对外形状完全一致。
type Interpretation struct {
	Summary  string `json:"summary"`
	Detailed string `json:"detailed"`
	Advice   string `json:"advice"`
}

// 各语言的分节标记，回复中三个标记必须齐全且按序出现
var sectionMarkers = map[string][3]string{
	locale.ZH: {"【摘要】", "【详细解读】", "【建议】"},
	locale.EN: {"【Summary】", "【Detailed Interpretation】", "【Advice】"},
}

// ParseSections 按语言标记把大模型回复切成三段。
// 标记按字节精确匹配，提示词已要求模型原样输出标记；
// 任一标记缺失或乱序都判定解析失败，调用方应整体回落到本地生成器，
// 绝不把模型文本和本地文本拼在一起。
func ParseSections(raw, loc string) (*Interpretation, error) {
	markers, ok := sectionMarkers[loc]
	if !ok {
		return nil, fmt.Errorf("unsupported locale %q", loc)
	}

	positions := [3]int{}
	for i, marker := range markers {
		positions[i] = strings.Index(raw, marker)
		if positions[i] < 0 {
			return nil, fmt.Errorf("section marker %s not found", marker)
		}
	}
	if positions[0] > positions[1] || positions[1] > positions[2] {
		return nil, fmt.Errorf("section markers out of order")
	}

	section := func(i int) string {
		start := positions[i] + len(markers[i])
		end := len(raw)
		if i < 2 {
			end = positions[i+1]
		}
		return strings.TrimSpace(raw[start:end])
	}

	result := &Interpretation{
		Summary:  section(0),
		Detailed: section(1),
		Advice:   section(2),
	}
	if result.Summary == "" || result.Detailed == "" || result.Advice == "" {
		return nil, fmt.Errorf("empty interpretation section")
	}

	return result, nil
}

// Interpret 请求大模型生成解读，任何失败（未启用、网络、超时、非 2xx、
// 无法解析）都透明替换为本地确定性兜底文本，结构上与模型回复无异。
func Interpret(prompt, loc string, fallback Interpretation) Interpretation {
	if !enable {
		return fallback
	}

	service := NewService()

	output, err := service.Chat(prompt)
	if err != nil {
		logger.Warn("llm chat failed, falling back to local interpretation", zap.Error(err))
		return fallback
	}

	parsed, err := ParseSections(output, loc)
	if err != nil {
		logger.Warn("llm output unparsable, falling back to local interpretation", zap.Error(err))
		return fallback
	}

	return *parsed
}
