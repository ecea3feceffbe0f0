package almanac

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCalendarDaySameDayDeterministic(t *testing.T) {
	morning := time.Date(2024, 6, 1, 8, 0, 0, 0, time.Local)
	evening := time.Date(2024, 6, 1, 22, 30, 0, 0, time.Local)

	a, err := GetCalendarDay(morning, "zh")
	require.NoError(t, err)
	b, err := GetCalendarDay(evening, "zh")
	require.NoError(t, err)

	// 时柱随时刻变，其余内容同日必须一致
	assert.Equal(t, a.Suitable, b.Suitable)
	assert.Equal(t, a.Avoid, b.Avoid)
	assert.Equal(t, a.LuckyHours, b.LuckyHours)
	assert.Equal(t, a.UnluckyHours, b.UnluckyHours)
	assert.Equal(t, a.GanZhi.Day, b.GanZhi.Day)
	assert.Equal(t, a.Wuxing, b.Wuxing)
}

func TestGetCalendarDayDifferentDaysVary(t *testing.T) {
	d1, err := GetCalendarDay(time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local), "zh")
	require.NoError(t, err)
	d2, err := GetCalendarDay(time.Date(2024, 6, 2, 0, 0, 0, 0, time.Local), "zh")
	require.NoError(t, err)

	assert.NotEqual(t, d1.GanZhi.Day, d2.GanZhi.Day)
}

func TestPickActivitiesCountPerCategory(t *testing.T) {
	for dayOffset := 0; dayOffset < 30; dayOffset++ {
		date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local).AddDate(0, 0, dayOffset)
		day, err := GetCalendarDay(date, "zh")
		require.NoError(t, err)

		suitableByCat := map[string]int{}
		for _, item := range day.Suitable {
			suitableByCat[item.Category]++
		}
		assert.Len(t, suitableByCat, len(suitableCategories))
		for cat, n := range suitableByCat {
			assert.GreaterOrEqual(t, n, 1, "suitable category %s on %s", cat, day.Date)
			assert.LessOrEqual(t, n, 2, "suitable category %s on %s", cat, day.Date)
		}

		avoidByCat := map[string]int{}
		for _, item := range day.Avoid {
			avoidByCat[item.Category]++
		}
		assert.Len(t, avoidByCat, len(avoidCategories))
		for cat, n := range avoidByCat {
			assert.GreaterOrEqual(t, n, 1, "avoid category %s on %s", cat, day.Date)
			assert.LessOrEqual(t, n, 2, "avoid category %s on %s", cat, day.Date)
		}
	}
}

func TestPickHoursPartition(t *testing.T) {
	for dayOffset := 0; dayOffset < 30; dayOffset++ {
		date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local).AddDate(0, 0, dayOffset)
		day, err := GetCalendarDay(date, "zh")
		require.NoError(t, err)

		assert.GreaterOrEqual(t, len(day.LuckyHours), 4)
		assert.LessOrEqual(t, len(day.LuckyHours), 6)
		assert.Equal(t, 12, len(day.LuckyHours)+len(day.UnluckyHours))

		// 吉凶两组合起来覆盖全部十二时辰，互不重复
		seen := map[string]bool{}
		for _, h := range day.LuckyHours {
			seen[h.Name] = true
		}
		for _, h := range day.UnluckyHours {
			seen[h.Name] = true
		}
		assert.Len(t, seen, 12)
	}
}

func TestPickHoursDecorrelatedFromActivities(t *testing.T) {
	// 吉时条数和嫁娶条数若共用子种子倍率会完全相关：
	// 同一个均匀值推出吉时 6 个时嫁娶必为 2 条。
	// 倍率空间分区后，嫁娶 1 条且吉时 6 个的组合必须能出现。
	found := false
	for dayOffset := 0; dayOffset < 400; dayOffset++ {
		date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local).AddDate(0, 0, dayOffset)
		day, err := GetCalendarDay(date, "zh")
		require.NoError(t, err)

		marriage := 0
		for _, item := range day.Suitable {
			if item.Category == "marriage" {
				marriage++
			}
		}
		if marriage == 1 && len(day.LuckyHours) == 6 {
			found = true
			break
		}
	}
	assert.True(t, found, "marriage count and lucky hour count never decoupled over 400 days")
}

func TestGetCalendarDaysRange(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)

	days, err := GetCalendarDays(start, 7, "zh")
	require.NoError(t, err)
	require.Len(t, days, 7)
	assert.Equal(t, "2024-06-01", days[0].Date)
	assert.Equal(t, "2024-06-07", days[6].Date)

	_, err = GetCalendarDays(start, 0, "zh")
	assert.Error(t, err)
	_, err = GetCalendarDays(start, 91, "zh")
	assert.Error(t, err)
}

func TestGetCalendarDayLocale(t *testing.T) {
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)

	zh, err := GetCalendarDay(date, "zh")
	require.NoError(t, err)
	en, err := GetCalendarDay(date, "en")
	require.NoError(t, err)

	assert.NotEqual(t, zh.Wuxing, en.Wuxing)
	assert.Equal(t, zh.GanZhi, en.GanZhi)

	_, err = GetCalendarDay(date, "fr")
	assert.Error(t, err)
}
