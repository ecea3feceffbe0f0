package liuyao

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func yangYao() Yao { return Yao{Type: YaoYang, Change: ChangeNone, Value: 7} }
func yinYao() Yao  { return Yao{Type: YaoYin, Change: ChangeNone, Value: 8} }

func TestHexagramTableComplete(t *testing.T) {
	seen := map[int]bool{}
	for i, h := range hexagrams {
		assert.Equal(t, i+1, h.Id)
		assert.NotEmpty(t, h.NameZh)
		assert.NotEmpty(t, h.NameEn)
		assert.NotEmpty(t, h.GuaCi)
		assert.NotEmpty(t, h.Meaning)
		for _, yaoCi := range h.YaoCi {
			assert.NotEmpty(t, yaoCi)
		}
		assert.False(t, seen[h.Id])
		seen[h.Id] = true
	}
	assert.Len(t, seen, 64)
}

func TestKingWenMappingBijective(t *testing.T) {
	seen := map[int]bool{}
	for code, id := range kingWenByCode {
		require.GreaterOrEqual(t, id, 1, "code %d", code)
		require.LessOrEqual(t, id, 64, "code %d", code)
		assert.False(t, seen[id], "duplicate id %d at code %d", id, code)
		seen[id] = true
	}
	assert.Len(t, seen, 64)
}

func TestAllYangIsQian(t *testing.T) {
	yaos := [6]Yao{yangYao(), yangYao(), yangYao(), yangYao(), yangYao(), yangYao()}

	hexagram := hexagramByCode(codeOf(yaos))
	assert.Equal(t, 1, hexagram.Id)
	assert.Equal(t, "乾", hexagram.NameZh)
}

func TestAllYinIsKun(t *testing.T) {
	yaos := [6]Yao{yinYao(), yinYao(), yinYao(), yinYao(), yinYao(), yinYao()}

	hexagram := hexagramByCode(codeOf(yaos))
	assert.Equal(t, 2, hexagram.Id)
	assert.Equal(t, "坤", hexagram.NameZh)
}

func TestTransformFlipsOnlyChangingLines(t *testing.T) {
	yaos := [6]Yao{
		{Type: YaoYang, Change: ChangeFlag, Value: 9},
		yinYao(),
		yangYao(),
		{Type: YaoYin, Change: ChangeFlag, Value: 6},
		yinYao(),
		yangYao(),
	}

	changed := transform(yaos)

	assert.Equal(t, YaoYin, changed[0].Type)
	assert.Equal(t, 6, changed[0].Value)
	assert.Equal(t, YaoYang, changed[3].Type)
	assert.Equal(t, 9, changed[3].Value)
	for _, i := range []int{1, 2, 4, 5} {
		assert.Equal(t, yaos[i], changed[i])
	}
	for _, yao := range changed {
		assert.Equal(t, ChangeNone, yao.Change)
	}
}

func TestTransformTwiceRestoresTypes(t *testing.T) {
	yaos := [6]Yao{
		{Type: YaoYang, Change: ChangeFlag, Value: 9},
		{Type: YaoYin, Change: ChangeFlag, Value: 6},
		yangYao(), yinYao(), yangYao(), yinYao(),
	}

	once := transform(yaos)
	// 人为把翻转过的爻再标为变爻，验证再翻一次回到原始阴阳
	for i := range once {
		if yaos[i].Change == ChangeFlag {
			once[i].Change = ChangeFlag
		}
	}
	twice := transform(once)

	for i := range yaos {
		assert.Equal(t, yaos[i].Type, twice[i].Type)
	}
}

func TestCastStructure(t *testing.T) {
	for i := 0; i < 200; i++ {
		result, err := Cast("zh")
		require.NoError(t, err)

		assert.NotEmpty(t, result.Id)
		assert.GreaterOrEqual(t, result.BenGua.Id, 1)
		assert.LessOrEqual(t, result.BenGua.Id, 64)

		// 变爻与变卦同生同灭
		if len(result.ChangingYaos) == 0 {
			assert.Nil(t, result.BianGua)
		} else {
			require.NotNil(t, result.BianGua)
			assert.GreaterOrEqual(t, result.BianGua.Id, 1)
			assert.LessOrEqual(t, result.BianGua.Id, 64)
		}

		for _, pos := range result.ChangingYaos {
			assert.GreaterOrEqual(t, pos, 1)
			assert.LessOrEqual(t, pos, 6)
			assert.Equal(t, ChangeFlag, result.Yaos[pos-1].Change)
		}
		for i, yao := range result.Yaos {
			assert.Contains(t, []int{6, 7, 8, 9}, yao.Value)
			if yao.Change == ChangeFlag {
				assert.Contains(t, result.ChangingYaos, i+1)
			}
		}

		assert.NotEmpty(t, result.Interpretation)
	}
}

func TestCastLocale(t *testing.T) {
	zh, err := Cast("zh")
	require.NoError(t, err)
	assert.Contains(t, zh.Interpretation, "本卦")

	en, err := Cast("en")
	require.NoError(t, err)
	assert.Contains(t, en.Interpretation, "Original Hexagram")

	_, err = Cast("ko")
	assert.Error(t, err)
}

func TestMasterReadingFallback(t *testing.T) {
	// llm 未启用时应回落到本地模板，三段均非空
	reading, err := MasterReading(1, 0, nil, "事业发展如何", "zh")
	require.NoError(t, err)
	assert.NotEmpty(t, reading.Summary)
	assert.NotEmpty(t, reading.Detailed)
	assert.NotEmpty(t, reading.Advice)
	assert.Contains(t, reading.Summary, "乾")
}

func TestMasterReadingInvalidInput(t *testing.T) {
	_, err := MasterReading(0, 0, nil, "", "zh")
	assert.Error(t, err)
	_, err = MasterReading(65, 0, nil, "", "zh")
	assert.Error(t, err)
	_, err = MasterReading(1, 65, nil, "", "zh")
	assert.Error(t, err)
	_, err = MasterReading(1, 0, []int{7}, "", "zh")
	assert.Error(t, err)
}
