package bazi

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatePillars(t *testing.T) {
	// 2024-06-01 为甲辰年
	birth := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)

	result, err := Calculate(birth, 12, "zh")
	require.NoError(t, err)

	assert.Equal(t, "甲辰", result.YearGanZhi)
	assert.Len(t, []rune(result.MonthGanZhi), 2)
	assert.Len(t, []rune(result.DayGanZhi), 2)
	assert.Len(t, []rune(result.HourGanZhi), 2)
}

func TestCalculateWuxingTotal(t *testing.T) {
	dates := []time.Time{
		time.Date(1900, 1, 1, 0, 0, 0, 0, time.Local),
		time.Date(1988, 8, 8, 0, 0, 0, 0, time.Local),
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.Local),
	}

	for _, birth := range dates {
		for hour := 0; hour < 24; hour++ {
			result, err := Calculate(birth, hour, "zh")
			require.NoError(t, err)

			total := result.Wuxing.Metal + result.Wuxing.Wood + result.Wuxing.Water +
				result.Wuxing.Fire + result.Wuxing.Earth
			assert.Equal(t, 8, total, "birth=%s hour=%d", birth.Format("2006-01-02"), hour)
		}
	}
}

func TestCalculateAnalysisLocale(t *testing.T) {
	birth := time.Date(1990, 5, 20, 0, 0, 0, 0, time.Local)

	zh, err := Calculate(birth, 10, "zh")
	require.NoError(t, err)
	assert.Contains(t, zh.Analysis, "您的八字为")
	assert.Contains(t, zh.Analysis, "性格特点")
	assert.Contains(t, zh.Analysis, "八字仅供参考")

	en, err := Calculate(birth, 10, "en")
	require.NoError(t, err)
	assert.Contains(t, en.Analysis, "Your Bazi is")
	assert.Contains(t, en.Analysis, "Personality traits")
	assert.Contains(t, en.Analysis, "for reference only")

	// 两种语言的排盘结构一致
	assert.Equal(t, zh.YearGanZhi, en.YearGanZhi)
	assert.Equal(t, zh.Wuxing, en.Wuxing)
}

func TestCalculateAnalysisBranches(t *testing.T) {
	// 扫一批日期，三个分析分支都应出现过
	sawStrong, sawMissing, sawBalanced := false, false, false

	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local)
	for i := 0; i < 366; i++ {
		result, err := Calculate(start.AddDate(0, 0, i), 8, "zh")
		require.NoError(t, err)

		switch {
		case strings.Contains(result.Analysis, "元素较旺"):
			sawStrong = true
		case strings.Contains(result.Analysis, "元素缺失"):
			sawMissing = true
		case strings.Contains(result.Analysis, "相对均衡"):
			sawBalanced = true
		}
	}

	assert.True(t, sawStrong)
	assert.True(t, sawMissing || sawBalanced)
}

func TestCalculateInvalidInput(t *testing.T) {
	birth := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)

	_, err := Calculate(birth, 24, "zh")
	assert.Error(t, err)
	_, err = Calculate(birth, -1, "zh")
	assert.Error(t, err)
	_, err = Calculate(birth, 12, "jp")
	assert.Error(t, err)
}

func TestZodiac(t *testing.T) {
	assert.Equal(t, "龙", Zodiac(2024))
	assert.Equal(t, "鼠", Zodiac(2020))
	assert.Equal(t, "猪", Zodiac(2019))
}
