package horoscope

import (
	"TianjiMeta/cmn/chance"
	"TianjiMeta/cmn/locale"
	"fmt"
	"time"
)

// 运势周期
const (
	PeriodDaily   = "daily"
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// 幸运色盘
var colorsZh = [10]string{"红色", "橙色", "黄色", "绿色", "蓝色", "紫色", "粉色", "金色", "银色", "白色"}
var colorsEn = [10]string{"Red", "Orange", "Yellow", "Green", "Blue", "Purple", "Pink", "Gold", "Silver", "White"}

// contentSeed 期望锚点时间戳叠加星座首字母，让同一天不同星座的序列互相错开
func contentSeed(signId string, anchor time.Time) int64 {
	return anchor.UnixMilli() + int64(signId[0])
}

// scoreText 分数到程度词，配合模板短语组成完整描述
func scoreText(score int, loc string) string {
	if loc == locale.EN {
		switch {
		case score >= 5:
			return "very "
		case score >= 4:
			return "quite "
		case score >= 3:
			return "average "
		default:
			return "need to "
		}
	}
	switch {
	case score >= 5:
		return "非常"
	case score >= 4:
		return "比较"
	case score >= 3:
		return "一般"
	default:
		return "需要"
	}
}

// actionText 分数到行动建议后缀
func actionText(score int, loc string) string {
	if loc == locale.EN {
		if score >= 4 {
			return ", suggest taking action."
		}
		return ", suggest being cautious."
	}
	if score >= 4 {
		return "，建议积极行动。"
	}
	return "，建议保持谨慎。"
}

// describe 程度词 + 模板短语 + 行动后缀
func describe(score int, phrases [3]string, phraseKey float64, seq chance.Sequence, loc string) string {
	phrase := phrases[seq.Index(phraseKey, len(phrases))]
	return scoreText(score, loc) + phrase + actionText(score, loc)
}

// generate 按锚点日期和星座生成一期运势。
// 全部选择都由种子序列驱动，同一锚点和星座的结果完全可复现。
func generate(sign Sign, anchor time.Time, period, loc string) HoroscopeContent {
	seq := chance.NewSequence(contentSeed(sign.Id, anchor))

	overall := 3 + int(seq.Next(1)*3)
	love := 3 + int(seq.Next(2)*3)
	career := 3 + int(seq.Next(3)*3)
	wealth := 3 + int(seq.Next(4)*3)
	health := 3 + int(seq.Next(5)*3)

	luckyNumbers := []int{
		int(seq.Next(6)*50) + 1,
		int(seq.Next(7)*50) + 1,
		int(seq.Next(8)*50) + 1,
	}

	colors := colorsZh
	if loc == locale.EN {
		colors = colorsEn
	}
	luckyColors := []string{
		colors[seq.Index(9, len(colors))],
		colors[seq.Index(10, len(colors))],
	}

	templates := signTemplates[sign.Id][loc]

	return HoroscopeContent{
		Sign:        sign.Id,
		Period:      period,
		Date:        anchor.Format("2006-01-02"),
		Overall:     overall,
		Love:        love,
		Career:      career,
		Wealth:      wealth,
		Health:      health,
		LuckyNumber: luckyNumbers,
		LuckyColor:  luckyColors,
		Description: Description{
			Overall: describe(overall, templates.overall, 12, seq, loc),
			Love:    describe(love, templates.love, 13, seq, loc),
			Career:  describe(career, templates.career, 14, seq, loc),
			Wealth:  describe(wealth, templates.wealth, 15, seq, loc),
			Health:  describe(health, templates.health, 16, seq, loc),
			Advice:  templates.advice[seq.Index(11, len(templates.advice))],
		},
	}
}

// dayAnchor 锚点归一化到当天零点
func dayAnchor(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// weekAnchor 锚点归一化到所在周的周一零点
func weekAnchor(date time.Time) time.Time {
	day := dayAnchor(date)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// monthAnchor 锚点归一化到当月一号零点
func monthAnchor(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// Daily 日运势
func Daily(signId string, date time.Time, loc string) (HoroscopeContent, error) {
	loc, err := locale.Normalize(loc)
	if err != nil {
		return HoroscopeContent{}, err
	}
	sign, err := SignById(signId)
	if err != nil {
		return HoroscopeContent{}, err
	}
	return generate(sign, dayAnchor(date), PeriodDaily, loc), nil
}

// Weekly 周运势，同一周内任意日期结果一致
func Weekly(signId string, date time.Time, loc string) (HoroscopeContent, error) {
	loc, err := locale.Normalize(loc)
	if err != nil {
		return HoroscopeContent{}, err
	}
	sign, err := SignById(signId)
	if err != nil {
		return HoroscopeContent{}, err
	}
	return generate(sign, weekAnchor(date), PeriodWeekly, loc), nil
}

// Monthly 月运势，同一月内任意日期结果一致
func Monthly(signId string, date time.Time, loc string) (HoroscopeContent, error) {
	loc, err := locale.Normalize(loc)
	if err != nil {
		return HoroscopeContent{}, err
	}
	sign, err := SignById(signId)
	if err != nil {
		return HoroscopeContent{}, err
	}
	return generate(sign, monthAnchor(date), PeriodMonthly, loc), nil
}

// ByPeriod 按周期字符串分派
func ByPeriod(period, signId string, date time.Time, loc string) (HoroscopeContent, error) {
	switch period {
	case PeriodDaily:
		return Daily(signId, date, loc)
	case PeriodWeekly:
		return Weekly(signId, date, loc)
	case PeriodMonthly:
		return Monthly(signId, date, loc)
	}
	return HoroscopeContent{}, fmt.Errorf("unknown period %q", period)
}
