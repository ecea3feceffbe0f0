// Package ganzhi 实现干支历计算：年月日时四柱、生肖、五行归属。
//
// 月柱采用按年干推月干的简化线性公式，并非真实的节气月柱算法；
// 这里只求展示层面的自洽，不代表专业排盘结果。
package ganzhi

import (
	"fmt"
	"time"
)

// Stems 十天干
var Stems = [10]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

// Branches 十二地支
var Branches = [12]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

// ZodiacAnimals 十二生肖，与年支对齐
var ZodiacAnimals = [12]string{"鼠", "牛", "虎", "兔", "龙", "蛇", "马", "羊", "猴", "鸡", "狗", "猪"}

// Element 五行
type Element int

const (
	Metal Element = iota // 金
	Wood                 // 木
	Water                // 水
	Fire                 // 火
	Earth                // 土
)

// Elements 按声明顺序排列的五行，平局裁决以此顺序为准
var Elements = [5]Element{Metal, Wood, Water, Fire, Earth}

var elementGlyphs = [5]string{"金", "木", "水", "火", "土"}
var elementEnglish = [5]string{"Metal", "Wood", "Water", "Fire", "Earth"}

// Glyph 五行汉字
func (e Element) Glyph() string {
	return elementGlyphs[e]
}

// English 五行英文名
func (e Element) English() string {
	return elementEnglish[e]
}

// 天干五行
var stemElements = [10]Element{Wood, Wood, Fire, Fire, Earth, Earth, Metal, Metal, Water, Water}

// 地支五行
var branchElements = [12]Element{Water, Earth, Wood, Wood, Earth, Fire, Fire, Earth, Metal, Metal, Earth, Water}

// Pillar 一柱干支，Stem/Branch 均为表下标。
// 干支下标各自独立取模，传统六十甲子的干支同奇偶约束在此不做校验。
type Pillar struct {
	Stem   int `json:"stem"`
	Branch int `json:"branch"`
}

// Label 两字干支标签，如"甲子"
func (p Pillar) Label() string {
	return Stems[p.Stem] + Branches[p.Branch]
}

// StemElement 柱干的五行
func (p Pillar) StemElement() Element {
	return stemElements[p.Stem]
}

// BranchElement 柱支的五行
func (p Pillar) BranchElement() Element {
	return branchElements[p.Branch]
}

// FourPillars 四柱（年月日时）
type FourPillars struct {
	Year  Pillar `json:"year"`
	Month Pillar `json:"month"`
	Day   Pillar `json:"day"`
	Hour  Pillar `json:"hour"`
}

// Histogram 五行分布直方图，下标即 Element
type Histogram [5]int

// Total 八字共八个字，五行计数总和恒为 8
func (h Histogram) Total() int {
	sum := 0
	for _, v := range h {
		sum += v
	}
	return sum
}

// Max 计数最多的五行，平局按声明顺序取先出现者
func (h Histogram) Max() Element {
	best := Elements[0]
	for _, e := range Elements[1:] {
		if h[e] > h[best] {
			best = e
		}
	}
	return best
}

// Min 计数最少的五行，平局按声明顺序取先出现者
func (h Histogram) Min() Element {
	best := Elements[0]
	for _, e := range Elements[1:] {
		if h[e] < h[best] {
			best = e
		}
	}
	return best
}

// mod 欧几里得取模，结果恒为非负
func mod(x, m int) int {
	return ((x % m) + m) % m
}

// YearPillar 年柱：以公元4年为干支零点
func YearPillar(year int) Pillar {
	return Pillar{
		Stem:   mod(year-4, 10),
		Branch: mod(year-4, 12),
	}
}

// MonthPillar 月柱：由年干线性推月干（简化算法）
func MonthPillar(year, month int) Pillar {
	yearStem := mod(year-4, 10)
	return Pillar{
		Stem:   mod(yearStem*2+month, 10),
		Branch: mod(month+1, 12),
	}
}

// dayEpoch 日柱基准 1900-01-01，偏移 6 使基准日落在甲午
var dayEpoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// DayPillar 日柱：只取日期分量，一天内任意时刻结果一致
func DayPillar(date time.Time) Pillar {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	diffDays := int(d.Sub(dayEpoch).Hours() / 24)
	return Pillar{
		Stem:   mod(diffDays+6, 10),
		Branch: mod(diffDays+6, 12),
	}
}

// HourPillar 时柱：时支按 23:00 起的十二个两小时时辰划分，时干由日干推得
func HourPillar(day Pillar, hour int) (Pillar, error) {
	if hour < 0 || hour > 23 {
		return Pillar{}, fmt.Errorf("hour %d out of range [0,23]", hour)
	}
	branch := ((hour + 1) / 2) % 12
	return Pillar{
		Stem:   mod(day.Stem*2+branch, 10),
		Branch: branch,
	}, nil
}

// Compute 计算四柱
func Compute(date time.Time, hour int) (FourPillars, error) {
	day := DayPillar(date)
	hourPillar, err := HourPillar(day, hour)
	if err != nil {
		return FourPillars{}, err
	}
	return FourPillars{
		Year:  YearPillar(date.Year()),
		Month: MonthPillar(date.Year(), int(date.Month())),
		Day:   day,
		Hour:  hourPillar,
	}, nil
}

// ElementHistogram 统计四柱八字的五行分布
func (f FourPillars) ElementHistogram() Histogram {
	var h Histogram
	for _, p := range [4]Pillar{f.Year, f.Month, f.Day, f.Hour} {
		h[p.StemElement()]++
		h[p.BranchElement()]++
	}
	return h
}

// Labels 四柱标签，顺序为年月日时
func (f FourPillars) Labels() [4]string {
	return [4]string{f.Year.Label(), f.Month.Label(), f.Day.Label(), f.Hour.Label()}
}

// ZodiacAnimal 生肖，与年支对齐
func ZodiacAnimal(year int) string {
	return ZodiacAnimals[mod(year-4, 12)]
}
