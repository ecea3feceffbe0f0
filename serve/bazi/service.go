package bazi

import (
	"TianjiMeta/cmn/ganzhi"
	"TianjiMeta/cmn/locale"
	"fmt"
	"strings"
	"time"
)

// buildAnalysis 按五行强弱和日主拼装分析文案
func buildAnalysis(pillars ganzhi.FourPillars, hist ganzhi.Histogram, loc string) string {
	labels := pillars.Labels()
	dayStem := ganzhi.Stems[pillars.Day.Stem]
	dayElement := pillars.Day.StemElement()

	var b strings.Builder

	if loc == locale.EN {
		b.WriteString(fmt.Sprintf("Your Bazi is: %s %s %s %s.\n\n", labels[0], labels[1], labels[2], labels[3]))
		b.WriteString(fmt.Sprintf("Day Master is %s (%s), Five Elements distribution: Metal %d, Wood %d, Water %d, Fire %d, Earth %d.\n\n",
			dayStem, dayElement.English(),
			hist[ganzhi.Metal], hist[ganzhi.Wood], hist[ganzhi.Water], hist[ganzhi.Fire], hist[ganzhi.Earth]))
	} else {
		b.WriteString(fmt.Sprintf("您的八字为：%s %s %s %s。\n\n", labels[0], labels[1], labels[2], labels[3]))
		b.WriteString(fmt.Sprintf("日主为%s（%s），五行分布：金%d、木%d、水%d、火%d、土%d。\n\n",
			dayStem, dayElement.Glyph(),
			hist[ganzhi.Metal], hist[ganzhi.Wood], hist[ganzhi.Water], hist[ganzhi.Fire], hist[ganzhi.Earth]))
	}

	maxElement := hist.Max()
	minElement := hist.Min()

	switch {
	case hist[maxElement] >= 3:
		if loc == locale.EN {
			b.WriteString(fmt.Sprintf("%s element is strong. ", maxElement.English()))
		} else {
			b.WriteString(fmt.Sprintf("%s元素较旺，", maxElement.Glyph()))
		}
		if maxElement == dayElement {
			b.WriteString(analysisTexts.T("strongSupported", loc))
		} else {
			b.WriteString(analysisTexts.T("strongOpposed", loc))
		}
	case hist[minElement] == 0:
		if loc == locale.EN {
			b.WriteString(fmt.Sprintf("%s element is missing. ", minElement.English()))
		} else {
			b.WriteString(fmt.Sprintf("%s元素缺失，", minElement.Glyph()))
		}
		b.WriteString(analysisTexts.T("missingAdvice", loc))
	default:
		b.WriteString(analysisTexts.T("balanced", loc))
	}

	b.WriteString("\n\n")

	trait := personalityTraits.T(dayStem, loc)
	if loc == locale.EN {
		b.WriteString(fmt.Sprintf("Personality traits: %s\n\n", trait))
	} else {
		b.WriteString(fmt.Sprintf("性格特点：%s\n\n", trait))
	}

	b.WriteString(analysisTexts.T("disclaimer", loc))

	return b.String()
}

// Calculate 八字排盘：四柱、五行分布和分析文案
func Calculate(birth time.Time, hour int, loc string) (BaziResult, error) {
	loc, err := locale.Normalize(loc)
	if err != nil {
		return BaziResult{}, err
	}

	pillars, err := ganzhi.Compute(birth, hour)
	if err != nil {
		return BaziResult{}, err
	}

	hist := pillars.ElementHistogram()

	return BaziResult{
		YearGanZhi:  pillars.Year.Label(),
		MonthGanZhi: pillars.Month.Label(),
		DayGanZhi:   pillars.Day.Label(),
		HourGanZhi:  pillars.Hour.Label(),
		Wuxing: WuxingCount{
			Metal: hist[ganzhi.Metal],
			Wood:  hist[ganzhi.Wood],
			Water: hist[ganzhi.Water],
			Fire:  hist[ganzhi.Fire],
			Earth: hist[ganzhi.Earth],
		},
		Analysis: buildAnalysis(pillars, hist, loc),
	}, nil
}

// Zodiac 按公历年份取生肖
func Zodiac(year int) string {
	return ganzhi.ZodiacAnimal(year)
}
