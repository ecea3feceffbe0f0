package ganzhi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearPillar(t *testing.T) {
	for year := 1900; year <= 2100; year++ {
		p := YearPillar(year)
		assert.Equal(t, mod(year-4, 10), p.Stem)
		assert.Equal(t, mod(year-4, 12), p.Branch)
	}

	// 2024 甲辰年
	p := YearPillar(2024)
	assert.Equal(t, "甲辰", p.Label())
}

func TestZodiacAnimalMatchesYearBranch(t *testing.T) {
	for year := 1900; year <= 2100; year++ {
		p := YearPillar(year)
		assert.Equal(t, ZodiacAnimals[p.Branch], ZodiacAnimal(year))
	}
	assert.Equal(t, "龙", ZodiacAnimal(2024))
}

func TestDayPillarEpoch(t *testing.T) {
	// 1900-01-01 为基准日，偏移常量使其落在下标 6/6
	p := DayPillar(time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 6, p.Stem)
	assert.Equal(t, 6, p.Branch)
}

func TestDayPillarIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2024, time.June, 1, 0, 30, 0, 0, time.UTC)
	night := time.Date(2024, time.June, 1, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, DayPillar(morning), DayPillar(night))
}

func TestHourPillar(t *testing.T) {
	day := Pillar{Stem: 0, Branch: 0}

	// 23:00 起为子时
	p, err := HourPillar(day, 23)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Branch)

	// 正午属午时
	p, err = HourPillar(day, 12)
	require.NoError(t, err)
	assert.Equal(t, 6, p.Branch)

	// 时干 = 日干*2 + 时支
	p, err = HourPillar(Pillar{Stem: 3, Branch: 0}, 12)
	require.NoError(t, err)
	assert.Equal(t, mod(3*2+6, 10), p.Stem)

	_, err = HourPillar(day, 24)
	assert.Error(t, err)
	_, err = HourPillar(day, -1)
	assert.Error(t, err)
}

func TestElementHistogramTotalsEight(t *testing.T) {
	dates := []time.Time{
		time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1988, time.August, 8, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2077, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		for hour := 0; hour < 24; hour++ {
			fp, err := Compute(d, hour)
			require.NoError(t, err)
			h := fp.ElementHistogram()
			assert.Equal(t, 8, h.Total(), "histogram of %v %d must total 8", d, hour)
		}
	}
}

func TestHistogramMaxMinTieOrder(t *testing.T) {
	// 全部相等时按声明顺序裁决
	var h Histogram
	for i := range h {
		h[i] = 1
	}
	assert.Equal(t, Metal, h.Max())
	assert.Equal(t, Metal, h.Min())

	h[Wood] = 3
	assert.Equal(t, Wood, h.Max())
	h[Fire] = 0
	h[Wood] = 1
	assert.Equal(t, Fire, h.Min())
}

func TestElementGlyphs(t *testing.T) {
	assert.Equal(t, "木", Wood.Glyph())
	assert.Equal(t, "Water", Water.English())
}
