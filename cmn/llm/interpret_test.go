package llm

import (
	"TianjiMeta/cmn/locale"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSectionsZh(t *testing.T) {
	raw := "【摘要】\n本卦乾卦显示当前的情况。\n\n【详细解读】\n乾为天，自强不息。\n\n【建议】\n保持内心的平静。"

	got, err := ParseSections(raw, locale.ZH)
	require.NoError(t, err)
	assert.Equal(t, "本卦乾卦显示当前的情况。", got.Summary)
	assert.Equal(t, "乾为天，自强不息。", got.Detailed)
	assert.Equal(t, "保持内心的平静。", got.Advice)
}

func TestParseSectionsEn(t *testing.T) {
	raw := "【Summary】 The hexagram shows stability. 【Detailed Interpretation】 Heaven moves strongly. 【Advice】 Stay calm."

	got, err := ParseSections(raw, locale.EN)
	require.NoError(t, err)
	assert.Equal(t, "The hexagram shows stability.", got.Summary)
	assert.Equal(t, "Heaven moves strongly.", got.Detailed)
	assert.Equal(t, "Stay calm.", got.Advice)
}

func TestParseSectionsFoldExpandingPrefix(t *testing.T) {
	// İ 小写化后字节数变长，标记定位必须按原文计算，
	// 否则切片偏移整体错位，产出乱码甚至越界
	raw := "İİ【摘要】概要。【详细解读】解读。【建议】建议。"

	got, err := ParseSections(raw, locale.ZH)
	require.NoError(t, err)
	assert.Equal(t, "概要。", got.Summary)
	assert.Equal(t, "解读。", got.Detailed)
	assert.Equal(t, "建议。", got.Advice)
	assert.True(t, utf8.ValidString(got.Summary))
	assert.True(t, utf8.ValidString(got.Detailed))
	assert.True(t, utf8.ValidString(got.Advice))
}

func TestParseSectionsMarkerCaseExact(t *testing.T) {
	// 英文标记不做大小写折叠，走不通就整体回落
	raw := "【summary】 a 【detailed interpretation】 b 【advice】 c"
	_, err := ParseSections(raw, locale.EN)
	assert.Error(t, err)
}

func TestParseSectionsMissingMarker(t *testing.T) {
	// 缺任意一节都必须整体判失败
	raw := "【摘要】概要。\n【建议】建议。"
	_, err := ParseSections(raw, locale.ZH)
	assert.Error(t, err)
}

func TestParseSectionsOutOfOrder(t *testing.T) {
	raw := "【建议】建议。【摘要】概要。【详细解读】解读。"
	_, err := ParseSections(raw, locale.ZH)
	assert.Error(t, err)
}

func TestParseSectionsEmptySection(t *testing.T) {
	raw := "【摘要】【详细解读】解读。【建议】建议。"
	_, err := ParseSections(raw, locale.ZH)
	assert.Error(t, err)
}

func TestInterpretDisabledFallsBack(t *testing.T) {
	// 模块未启用时必须原样返回本地兜底文本
	fallback := Interpretation{Summary: "a", Detailed: "b", Advice: "c"}
	got := Interpret("prompt", locale.ZH, fallback)
	assert.Equal(t, fallback, got)
}
