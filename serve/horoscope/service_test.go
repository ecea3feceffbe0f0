package horoscope

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyReproducible(t *testing.T) {
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)

	a, err := Daily("aries", date, "zh")
	require.NoError(t, err)
	b, err := Daily("aries", date, "zh")
	require.NoError(t, err)

	assert.Equal(t, a, b)

	// 同一天不同时刻同样可复现
	c, err := Daily("aries", date.Add(13*time.Hour), "zh")
	require.NoError(t, err)
	assert.Equal(t, a, c)
}

func TestDailyVariesBySignAndDate(t *testing.T) {
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)

	aries, err := Daily("aries", date, "zh")
	require.NoError(t, err)
	taurus, err := Daily("taurus", date, "zh")
	require.NoError(t, err)
	nextDay, err := Daily("aries", date.AddDate(0, 0, 1), "zh")
	require.NoError(t, err)

	assert.NotEqual(t, aries.LuckyNumber, taurus.LuckyNumber)
	assert.NotEqual(t, aries.LuckyNumber, nextDay.LuckyNumber)
}

func TestScoreAndLuckyRanges(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)

	for _, sign := range signs {
		for i := 0; i < 60; i++ {
			content, err := Daily(sign.Id, start.AddDate(0, 0, i), "zh")
			require.NoError(t, err)

			for _, score := range []int{content.Overall, content.Love, content.Career, content.Wealth, content.Health} {
				assert.GreaterOrEqual(t, score, 3)
				assert.LessOrEqual(t, score, 5)
			}
			require.Len(t, content.LuckyNumber, 3)
			for _, n := range content.LuckyNumber {
				assert.GreaterOrEqual(t, n, 1)
				assert.LessOrEqual(t, n, 50)
			}
			require.Len(t, content.LuckyColor, 2)
			for _, color := range content.LuckyColor {
				assert.Contains(t, colorsZh[:], color)
			}
		}
	}
}

func TestDescriptionsNonEmpty(t *testing.T) {
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)

	for _, sign := range signs {
		for _, loc := range []string{"zh", "en"} {
			content, err := Daily(sign.Id, date, loc)
			require.NoError(t, err)

			assert.NotEmpty(t, content.Description.Overall)
			assert.NotEmpty(t, content.Description.Love)
			assert.NotEmpty(t, content.Description.Career)
			assert.NotEmpty(t, content.Description.Wealth)
			assert.NotEmpty(t, content.Description.Health)
			assert.NotEmpty(t, content.Description.Advice)
		}
	}
}

func TestWeeklyStableWithinWeek(t *testing.T) {
	// 2024-06-03 是周一
	monday := time.Date(2024, 6, 3, 0, 0, 0, 0, time.Local)

	a, err := Weekly("leo", monday, "zh")
	require.NoError(t, err)
	b, err := Weekly("leo", monday.AddDate(0, 0, 5), "zh")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	next, err := Weekly("leo", monday.AddDate(0, 0, 7), "zh")
	require.NoError(t, err)
	assert.NotEqual(t, a.LuckyNumber, next.LuckyNumber)
}

func TestMonthlyStableWithinMonth(t *testing.T) {
	a, err := Monthly("pisces", time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local), "zh")
	require.NoError(t, err)
	b, err := Monthly("pisces", time.Date(2024, 6, 28, 0, 0, 0, 0, time.Local), "zh")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	next, err := Monthly("pisces", time.Date(2024, 7, 1, 0, 0, 0, 0, time.Local), "zh")
	require.NoError(t, err)
	assert.NotEqual(t, a.LuckyNumber, next.LuckyNumber)
}

func TestByPeriod(t *testing.T) {
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)

	daily, err := ByPeriod(PeriodDaily, "virgo", date, "zh")
	require.NoError(t, err)
	assert.Equal(t, PeriodDaily, daily.Period)

	_, err = ByPeriod("yearly", "virgo", date, "zh")
	assert.Error(t, err)
	_, err = ByPeriod(PeriodDaily, "ophiuchus", date, "zh")
	assert.Error(t, err)
}

func TestSignByDate(t *testing.T) {
	cases := []struct {
		month, day int
		id         string
	}{
		{3, 21, "aries"},
		{4, 19, "aries"},
		{4, 20, "taurus"},
		{12, 22, "capricorn"},
		{1, 19, "capricorn"},
		{1, 20, "aquarius"},
		{2, 19, "pisces"},
		{3, 20, "pisces"},
	}

	for _, tc := range cases {
		sign, err := SignByDate(tc.month, tc.day)
		require.NoError(t, err)
		assert.Equal(t, tc.id, sign.Id, "%d/%d", tc.month, tc.day)
	}

	_, err := SignByDate(13, 1)
	assert.Error(t, err)
	_, err = SignByDate(0, 10)
	assert.Error(t, err)
}

func TestCompatibility(t *testing.T) {
	result, err := Compatibility("aries", "leo", "zh")
	require.NoError(t, err)
	assert.Equal(t, 90, result.Score)
	assert.Contains(t, result.Description, "非常匹配")

	en, err := Compatibility("aries", "cancer", "en")
	require.NoError(t, err)
	assert.Equal(t, 50, en.Score)
	assert.Contains(t, en.Description, "Low match")

	_, err = Compatibility("aries", "dragon", "zh")
	assert.Error(t, err)
	_, err = Compatibility("dragon", "aries", "zh")
	assert.Error(t, err)
}

func TestCompatibilityMatrixComplete(t *testing.T) {
	require.Len(t, compatibilityMatrix, 12)
	for _, sign := range signs {
		row, ok := compatibilityMatrix[sign.Id]
		require.True(t, ok, "missing row %s", sign.Id)
		require.Len(t, row, 12)
		for _, other := range signs {
			score, ok := row[other.Id]
			require.True(t, ok, "missing %s->%s", sign.Id, other.Id)
			assert.GreaterOrEqual(t, score, 50)
			assert.LessOrEqual(t, score, 90)
		}
	}
}

func TestPersonality(t *testing.T) {
	zh, err := Personality("scorpio", "zh")
	require.NoError(t, err)
	assert.Contains(t, zh.Strengths, "忠诚")

	en, err := Personality("scorpio", "en")
	require.NoError(t, err)
	assert.Contains(t, en.Strengths, "Loyal")

	_, err = Personality("unknown", "zh")
	assert.Error(t, err)
}

func TestTemplatesCompleteForAllSigns(t *testing.T) {
	for _, sign := range signs {
		byLocale, ok := signTemplates[sign.Id]
		require.True(t, ok, "missing templates for %s", sign.Id)
		for _, loc := range []string{"zh", "en"} {
			tpl, ok := byLocale[loc]
			require.True(t, ok, "missing %s templates for %s", loc, sign.Id)
			for _, group := range [][3]string{tpl.overall, tpl.love, tpl.career, tpl.wealth, tpl.health, tpl.advice} {
				for _, phrase := range group {
					assert.NotEmpty(t, phrase)
				}
			}
		}

		_, ok = personalityData[sign.Id]
		require.True(t, ok, "missing personality for %s", sign.Id)
	}
}
