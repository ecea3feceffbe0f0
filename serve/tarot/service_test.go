package tarot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeckComplete(t *testing.T) {
	seen := map[int]bool{}
	for i, card := range deck {
		assert.Equal(t, i, card.Id)
		assert.NotEmpty(t, card.NameZh)
		assert.NotEmpty(t, card.NameEn)
		assert.NotEmpty(t, card.Meaning)
		assert.NotEmpty(t, card.ReversedMeaning)
		seen[card.Id] = true
	}
	assert.Len(t, seen, 78)

	// 大阿卡纳无花色，小阿卡纳必有花色
	for _, card := range deck[:22] {
		assert.Empty(t, card.Suit)
	}
	for _, card := range deck[22:] {
		assert.NotEmpty(t, card.Suit)
	}

	// 每个花色 10 张数字牌 + 4 张宫廷牌
	bySuit := map[string]int{}
	for _, card := range deck[22:] {
		bySuit[card.Suit]++
	}
	require.Len(t, bySuit, 4)
	for suit, n := range bySuit {
		assert.Equal(t, 14, n, "suit %s", suit)
	}
}

func TestDrawDistinctIds(t *testing.T) {
	for i := 0; i < 50; i++ {
		cards, err := Draw(5)
		require.NoError(t, err)
		require.Len(t, cards, 5)

		seen := map[int]bool{}
		for _, card := range cards {
			assert.False(t, seen[card.Id], "duplicate card id %d", card.Id)
			seen[card.Id] = true
		}
	}
}

func TestDrawFullDeck(t *testing.T) {
	cards, err := Draw(78)
	require.NoError(t, err)
	require.Len(t, cards, 78)

	seen := map[int]bool{}
	for _, card := range cards {
		seen[card.Id] = true
	}
	assert.Len(t, seen, 78)
}

func TestDrawInvalidCount(t *testing.T) {
	_, err := Draw(0)
	assert.Error(t, err)
	_, err = Draw(79)
	assert.Error(t, err)
	_, err = Draw(-1)
	assert.Error(t, err)
}

func TestDrawCoverageAndOrientation(t *testing.T) {
	// 反复抽 3 张，全部 78 张都应出现过，正逆位大致对半
	idSeen := map[int]bool{}
	reversedCount, total := 0, 0

	for i := 0; i < 1000; i++ {
		cards, err := Draw(3)
		require.NoError(t, err)
		for _, card := range cards {
			idSeen[card.Id] = true
			if card.Reversed {
				reversedCount++
			}
			total++
		}
	}

	assert.Len(t, idSeen, 78)
	ratio := float64(reversedCount) / float64(total)
	assert.InDelta(t, 0.5, ratio, 0.05)
}

func TestCardMeaning(t *testing.T) {
	card := deck[0]
	assert.Equal(t, card.Meaning, CardMeaning(card))

	card.Reversed = true
	assert.Equal(t, card.ReversedMeaning, CardMeaning(card))
}

func TestDrawSpread(t *testing.T) {
	cases := []struct {
		spread string
		count  int
	}{
		{SpreadSingle, 1},
		{SpreadThree, 3},
		{SpreadFive, 5},
	}

	for _, tc := range cases {
		result, err := DrawSpread(tc.spread, "zh")
		require.NoError(t, err)
		assert.NotEmpty(t, result.Id)
		assert.Equal(t, tc.spread, result.Spread)
		require.Len(t, result.Cards, tc.count)
		for _, pc := range result.Cards {
			assert.NotEmpty(t, pc.Position)
		}
	}

	three, err := DrawSpread(SpreadThree, "en")
	require.NoError(t, err)
	assert.Equal(t, "Past", three.Cards[0].Position)
	assert.Equal(t, "Present", three.Cards[1].Position)
	assert.Equal(t, "Future", three.Cards[2].Position)

	_, err = DrawSpread("seven", "zh")
	assert.Error(t, err)
}

func TestMasterReadingFallback(t *testing.T) {
	refs := []CardRef{
		{Id: 0, Reversed: false},
		{Id: 10, Reversed: true},
		{Id: 77, Reversed: false},
	}

	// llm 未启用，应得到与本地生成器结构一致的三段文本
	reading, err := MasterReading(SpreadThree, refs, "最近的感情运势", "zh")
	require.NoError(t, err)
	assert.NotEmpty(t, reading.Summary)
	assert.NotEmpty(t, reading.Detailed)
	assert.NotEmpty(t, reading.Advice)
	assert.Contains(t, reading.Detailed, "愚者")
	assert.Contains(t, reading.Detailed, "逆位")

	cards := []Card{deck[0], deck[10], deck[77]}
	cards[1].Reversed = true
	local := localReading(SpreadThree, cards, "zh")
	assert.Equal(t, local, reading)
}

func TestMasterReadingInvalidInput(t *testing.T) {
	_, err := MasterReading("nope", []CardRef{{Id: 1}}, "", "zh")
	assert.Error(t, err)
	_, err = MasterReading(SpreadSingle, []CardRef{{Id: 78}}, "", "zh")
	assert.Error(t, err)
	_, err = MasterReading(SpreadThree, []CardRef{{Id: 1}}, "", "zh")
	assert.Error(t, err)
}
