package qian

import (
	"TianjiMeta/cmn/locale"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStickDataComplete(t *testing.T) {
	require.Len(t, sticksByLevel, len(levels))
	for _, level := range levels {
		pool, ok := sticksByLevel[level.Key]
		require.True(t, ok, "missing sticks for level %s", level.Key)
		assert.NotEmpty(t, pool)
		for _, s := range pool {
			assert.NotEmpty(t, s.verseZh)
			assert.NotEmpty(t, s.verseEn)
			assert.NotEmpty(t, s.meaningZh)
			assert.NotEmpty(t, s.meaningEn)
		}

		_, ok = defaultWeights[level.Key]
		assert.True(t, ok, "missing default weight for level %s", level.Key)
	}
}

func TestNewMachineDefaults(t *testing.T) {
	m, err := NewMachine(nil)
	require.NoError(t, err)

	result, err := m.Draw(locale.ZH)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Id)
	assert.NotEmpty(t, result.Verse)
	assert.NotEmpty(t, result.Meaning)
}

func TestNewMachineZeroWeights(t *testing.T) {
	_, err := NewMachine(map[string]uint{
		"shangshang": 0, "shang": 0, "zhong": 0, "xia": 0, "xiaxia": 0,
	})
	assert.Error(t, err)
}

func TestDrawResultConsistent(t *testing.T) {
	m, err := NewMachine(nil)
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		result, err := m.Draw(locale.ZH)
		require.NoError(t, err)

		level := levelByKey(result.Level)
		assert.Equal(t, level.NameZh, result.LevelZh)
		assert.Equal(t, level.NameEn, result.LevelEn)

		// 签文必须出自对应签级的候选池
		found := false
		for _, s := range sticksByLevel[result.Level] {
			if s.verseZh == result.Verse && s.meaningZh == result.Meaning {
				found = true
				break
			}
		}
		assert.True(t, found, "verse not in pool for level %s", result.Level)
	}
}

func TestDrawLocale(t *testing.T) {
	m, err := NewMachine(nil)
	require.NoError(t, err)

	// 英文抽签的签诗和解语必须出自英文文案池
	result, err := m.Draw(locale.EN)
	require.NoError(t, err)

	found := false
	for _, s := range sticksByLevel[result.Level] {
		if s.verseEn == result.Verse && s.meaningEn == result.Meaning {
			found = true
			break
		}
	}
	assert.True(t, found, "verse not in english pool for level %s", result.Level)

	_, err = m.Draw("fr")
	assert.Error(t, err)
}

func TestDrawWeightSkew(t *testing.T) {
	// 把上上签权重拉满，其余为 1，上上签应明显占多数
	m, err := NewMachine(map[string]uint{
		"shangshang": 1000, "shang": 1, "zhong": 1, "xia": 1, "xiaxia": 1,
	})
	require.NoError(t, err)

	count := 0
	const total = 500
	for i := 0; i < total; i++ {
		result, err := m.Draw(locale.ZH)
		require.NoError(t, err)
		if result.Level == "shangshang" {
			count++
		}
	}

	assert.Greater(t, count, total*9/10)
}
