package qian

import (
	"TianjiMeta/cmn/chance"
	"TianjiMeta/cmn/locale"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/mroth/weightedrand/v2"
)

// QianResult 一次求签结果
type QianResult struct {
	Id      string `json:"id"`
	Level   string `json:"level"`
	LevelZh string `json:"levelZh"`
	LevelEn string `json:"levelEn"`
	Verse   string `json:"verse"`
	Meaning string `json:"meaning"`
}

// Machine 求签机：签级按权重抽取，签文在签级内随机
type Machine struct {
	atomicChoices atomic.Value // []weightedrand.Choice[string, uint]
	src           chance.Source
}

func NewMachine(weights map[string]uint) (*Machine, error) {
	m := &Machine{
		src: chance.New(),
	}

	err := m.resetWeights(weights)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// resetWeights 重建签级权重池，缺失的签级回落到默认权重
func (m *Machine) resetWeights(weights map[string]uint) error {
	choices := make([]weightedrand.Choice[string, uint], 0, len(levels))
	total := uint(0)

	for _, level := range levels {
		weight, ok := weights[level.Key]
		if !ok {
			weight = defaultWeights[level.Key]
		}
		choices = append(choices, weightedrand.Choice[string, uint]{
			Item:   level.Key,
			Weight: weight,
		})
		total += weight
	}

	if total == 0 {
		return fmt.Errorf("all qian level weights are zero")
	}

	// 先验证一次权重可以构建选择器，避免求签时才暴露配置错误
	_, err := weightedrand.NewChooser(choices...)
	if err != nil {
		return fmt.Errorf("failed to build qian chooser: %w", err)
	}

	m.atomicChoices.Store(choices)
	return nil
}

// levelByKey 签级静态资料
func levelByKey(key string) Level {
	for _, level := range levels {
		if level.Key == key {
			return level
		}
	}
	return levels[2]
}

// Draw 求一签，签诗和解语按语言取文案
func (m *Machine) Draw(loc string) (QianResult, error) {
	loc, err := locale.Normalize(loc)
	if err != nil {
		return QianResult{}, err
	}

	choices := m.atomicChoices.Load().([]weightedrand.Choice[string, uint])

	chooser, err := weightedrand.NewChooser(choices...)
	if err != nil {
		return QianResult{}, fmt.Errorf("failed to create chooser: %w", err)
	}

	levelKey := chooser.Pick()
	level := levelByKey(levelKey)

	pool := sticksByLevel[levelKey]
	picked := pool[m.src.Intn(len(pool))]

	return QianResult{
		Id:      uuid.NewString(),
		Level:   level.Key,
		LevelZh: level.NameZh,
		LevelEn: level.NameEn,
		Verse:   locale.Pick(loc, picked.verseZh, picked.verseEn),
		Meaning: locale.Pick(loc, picked.meaningZh, picked.meaningEn),
	}, nil
}
