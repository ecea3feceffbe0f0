package almanac

import (
	"TianjiMeta/cmn/chance"
	"TianjiMeta/cmn/ganzhi"
	"TianjiMeta/cmn/locale"
	"fmt"
	"time"
)

// activityCategory 一个分类的候选事项表
type activityCategory struct {
	key   string
	items []string
}

// 宜事项候选表（8 个分类）
var suitableCategories = []activityCategory{
	{"marriage", []string{"结婚", "订婚", "纳采", "问名", "纳征", "请期", "亲迎"}},
	{"travel", []string{"出行", "旅游", "搬家", "迁居", "入宅"}},
	{"business", []string{"开业", "开张", "交易", "签约", "纳财", "置产", "投资"}},
	{"construction", []string{"动土", "装修", "上梁", "安床", "拆卸", "破土", "修造"}},
	{"spiritual", []string{"祭祀", "祈福", "求嗣", "开光", "还愿", "拜神"}},
	{"education", []string{"入学", "考试", "拜师", "学习"}},
	{"health", []string{"求医", "治病", "养生"}},
	{"other", []string{"栽种", "纳畜", "捕捉", "畋猎"}},
}

// 忌事项候选表（6 个分类）
var avoidCategories = []activityCategory{
	{"marriage", []string{"结婚", "订婚", "纳采"}},
	{"travel", []string{"出行", "远行", "搬家"}},
	{"business", []string{"开业", "开张", "交易"}},
	{"construction", []string{"动土", "装修", "破土"}},
	{"spiritual", []string{"祭祀", "祈福"}},
	{"other", []string{"安葬", "入殓", "移柩", "开仓", "出货"}},
}

// hourSlot 十二时辰的固定资料
type hourSlot struct {
	timeRange   string
	name        string
	description string
}

var hourSlots = [12]hourSlot{
	{"23:00-01:00", "子时", "夜深人静，适合休息"},
	{"01:00-03:00", "丑时", "深夜时分，宜静不宜动"},
	{"03:00-05:00", "寅时", "黎明前，新的一天开始"},
	{"05:00-07:00", "卯时", "日出时分，充满活力"},
	{"07:00-09:00", "辰时", "早晨时光，适合开始工作"},
	{"09:00-11:00", "巳时", "上午时光，精力充沛"},
	{"11:00-13:00", "午时", "正午时分，阳气最盛"},
	{"13:00-15:00", "未时", "午后时光，适合小憩"},
	{"15:00-17:00", "申时", "下午时光，适合社交"},
	{"17:00-19:00", "酉时", "傍晚时分，适合总结"},
	{"19:00-21:00", "戌时", "夜晚开始，适合学习"},
	{"21:00-23:00", "亥时", "深夜前，适合放松"},
}

// daySeed 取当天零点的毫秒时间戳作为种子。
// 种子按天归一化：同一天内任何时刻请求，宜忌和吉凶时辰都保持一致。
func daySeed(date time.Time) int64 {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return midnight.UnixMilli()
}

// 各取数点的子种子倍率空间，互不重叠：
// 宜事项条数 1-8，忌事项条数 101-106，宜洗牌 1000-1706，
// 忌洗牌 2000-2504，时辰条数及洗牌 3000-3011。
// 任何两个取数点共用倍率都会让结果完全相关。
const (
	suitableCountOffset   = 0
	avoidCountOffset      = 100
	suitableShuffleOffset = 1000
	avoidShuffleOffset    = 2000
	hourKeyOffset         = 3000
)

// pickActivities 对每个分类做确定性洗牌后取前 1-2 条
func pickActivities(seq chance.Sequence, categories []activityCategory, countKeyOffset, shuffleKeyOffset int) []ActivityItem {
	var picked []ActivityItem
	for catIndex, cat := range categories {
		n := len(cat.items)
		count := 1 + int(seq.Next(float64(catIndex+1+countKeyOffset))*2)
		if count > n {
			count = n
		}
		order := seq.ShuffledIndices(n, func(i int) float64 {
			return float64(catIndex*100 + i + shuffleKeyOffset)
		})
		for i := 0; i < count; i++ {
			picked = append(picked, ActivityItem{Name: cat.items[order[i]], Category: cat.key})
		}
	}
	return picked
}

// pickHours 把十二时辰完整切分为吉时（4-6 个）和凶时两组
func pickHours(seq chance.Sequence) ([]LuckyHour, []UnluckyHour) {
	luckyCount := 4 + int(seq.Next(hourKeyOffset)*3)
	if luckyCount > len(hourSlots) {
		luckyCount = len(hourSlots)
	}

	order := seq.ShuffledIndices(len(hourSlots), func(i int) float64 {
		return float64(hourKeyOffset + i + 1)
	})

	lucky := make([]LuckyHour, 0, luckyCount)
	for _, idx := range order[:luckyCount] {
		slot := hourSlots[idx]
		lucky = append(lucky, LuckyHour{Time: slot.timeRange, Name: slot.name, Description: slot.description})
	}

	unlucky := make([]UnluckyHour, 0, len(hourSlots)-luckyCount)
	for _, idx := range order[luckyCount:] {
		slot := hourSlots[idx]
		unlucky = append(unlucky, UnluckyHour{Time: slot.timeRange, Name: slot.name})
	}

	return lucky, unlucky
}

// lunarDate 农历日期占位格式化，不是真实的阴阳历换算
func lunarDate(date time.Time, loc string) string {
	if loc == locale.EN {
		return fmt.Sprintf("%d/%d/%d", int(date.Month()), date.Day(), date.Year())
	}
	return fmt.Sprintf("%d年%d月%d日", date.Year(), int(date.Month()), date.Day())
}

// GetCalendarDay 计算指定日期的黄历信息
func GetCalendarDay(date time.Time, loc string) (CalendarDay, error) {
	loc, err := locale.Normalize(loc)
	if err != nil {
		return CalendarDay{}, err
	}

	pillars, err := ganzhi.Compute(date, date.Hour())
	if err != nil {
		return CalendarDay{}, err
	}

	seq := chance.NewSequence(daySeed(date))
	suitable := pickActivities(seq, suitableCategories, suitableCountOffset, suitableShuffleOffset)
	avoid := pickActivities(seq, avoidCategories, avoidCountOffset, avoidShuffleOffset)
	lucky, unlucky := pickHours(seq)

	dayElement := pillars.Day.StemElement()

	return CalendarDay{
		Date:      date.Format("2006-01-02"),
		LunarDate: lunarDate(date, loc),
		GanZhi: GanZhiLabels{
			Year:  pillars.Year.Label(),
			Month: pillars.Month.Label(),
			Day:   pillars.Day.Label(),
			Hour:  pillars.Hour.Label(),
		},
		Zodiac:       ganzhi.ZodiacAnimal(date.Year()),
		Suitable:     suitable,
		Avoid:        avoid,
		LuckyHours:   lucky,
		UnluckyHours: unlucky,
		Wuxing:       locale.Pick(loc, dayElement.Glyph(), dayElement.English()),
		Festivals:    []string{},
	}, nil
}

// GetCalendarDays 从起始日连续取多天黄历
func GetCalendarDays(start time.Time, days int, loc string) ([]CalendarDay, error) {
	if days <= 0 || days > 90 {
		return nil, fmt.Errorf("days %d out of range [1,90]", days)
	}

	result := make([]CalendarDay, 0, days)
	for i := 0; i < days; i++ {
		day, err := GetCalendarDay(start.AddDate(0, 0, i), loc)
		if err != nil {
			return nil, err
		}
		result = append(result, day)
	}
	return result, nil
}
