package tarot

import "strconv"

// 大阿卡纳（22张），下标即 id
var majorArcana = [22]Card{
	{Id: 0, NameZh: "愚者", NameEn: "The Fool", Meaning: "新的开始、冒险精神、纯真", ReversedMeaning: "鲁莽、缺乏计划、不成熟"},
	{Id: 1, NameZh: "魔术师", NameEn: "The Magician", Meaning: "创造力、行动力、自信", ReversedMeaning: "缺乏行动、欺骗、滥用权力"},
	{Id: 2, NameZh: "女祭司", NameEn: "The High Priestess", Meaning: "直觉、神秘、内在智慧", ReversedMeaning: "缺乏直觉、秘密、压抑"},
	{Id: 3, NameZh: "皇后", NameEn: "The Empress", Meaning: "丰盛、母性、创造力", ReversedMeaning: "依赖、缺乏成长、过度保护"},
	{Id: 4, NameZh: "皇帝", NameEn: "The Emperor", Meaning: "权威、稳定、领导力", ReversedMeaning: "专制、缺乏纪律、滥用权力"},
	{Id: 5, NameZh: "教皇", NameEn: "The Hierophant", Meaning: "传统、指导、精神追求", ReversedMeaning: "反传统、缺乏指导、个人信仰"},
	{Id: 6, NameZh: "恋人", NameEn: "The Lovers", Meaning: "爱情、选择、和谐", ReversedMeaning: "不和谐、错误选择、缺乏沟通"},
	{Id: 7, NameZh: "战车", NameEn: "The Chariot", Meaning: "胜利、控制、决心", ReversedMeaning: "缺乏控制、失败、缺乏方向"},
	{Id: 8, NameZh: "力量", NameEn: "Strength", Meaning: "内在力量、耐心、勇气", ReversedMeaning: "软弱、缺乏耐心、自我怀疑"},
	{Id: 9, NameZh: "隐者", NameEn: "The Hermit", Meaning: "内省、寻求真理、指导", ReversedMeaning: "孤立、缺乏指导、迷失方向"},
	{Id: 10, NameZh: "命运之轮", NameEn: "Wheel of Fortune", Meaning: "变化、循环、命运", ReversedMeaning: "坏运气、缺乏控制、抗拒变化"},
	{Id: 11, NameZh: "正义", NameEn: "Justice", Meaning: "平衡、公正、责任", ReversedMeaning: "不公正、缺乏责任、不平衡"},
	{Id: 12, NameZh: "倒吊人", NameEn: "The Hanged Man", Meaning: "牺牲、等待、新视角", ReversedMeaning: "拖延、不必要的牺牲、抗拒"},
	{Id: 13, NameZh: "死神", NameEn: "Death", Meaning: "结束、转变、重生", ReversedMeaning: "抗拒变化、停滞、无法前进"},
	{Id: 14, NameZh: "节制", NameEn: "Temperance", Meaning: "平衡、调和、耐心", ReversedMeaning: "不平衡、缺乏调和、急躁"},
	{Id: 15, NameZh: "恶魔", NameEn: "The Devil", Meaning: "束缚、欲望、物质主义", ReversedMeaning: "解脱、克服束缚、精神自由"},
	{Id: 16, NameZh: "塔", NameEn: "The Tower", Meaning: "破坏、启示、突然变化", ReversedMeaning: "避免灾难、内在变化、抗拒变化"},
	{Id: 17, NameZh: "星星", NameEn: "The Star", Meaning: "希望、灵感、精神指引", ReversedMeaning: "缺乏希望、绝望、失去信心"},
	{Id: 18, NameZh: "月亮", NameEn: "The Moon", Meaning: "恐惧、幻觉、潜意识", ReversedMeaning: "克服恐惧、清晰、内在平静"},
	{Id: 19, NameZh: "太阳", NameEn: "The Sun", Meaning: "快乐、成功、活力", ReversedMeaning: "过度自信、缺乏活力、暂时困难"},
	{Id: 20, NameZh: "审判", NameEn: "Judgement", Meaning: "重生、觉醒、宽恕", ReversedMeaning: "缺乏自我反省、无法前进、自我怀疑"},
	{Id: 21, NameZh: "世界", NameEn: "The World", Meaning: "完成、成就、圆满", ReversedMeaning: "未完成、缺乏成就感、延迟"},
}

// 小阿卡纳花色
var suits = [4]struct {
	nameZh string
	nameEn string
}{
	{"权杖", "Wands"},
	{"圣杯", "Cups"},
	{"宝剑", "Swords"},
	{"星币", "Pentacles"},
}

// 数字牌 1-10 的通用含义
var numberMeanings = [10]struct {
	meaning  string
	reversed string
}{
	{"开始、新机会", "虚假开始、错失机会"},
	{"平衡、合作", "不平衡、缺乏合作"},
	{"创造力、表达", "缺乏创造力、沟通困难"},
	{"稳定、基础", "不稳定、缺乏基础"},
	{"冲突、变化", "解决冲突、接受变化"},
	{"和谐、平衡", "不和谐、不平衡"},
	{"挑战、测试", "克服挑战、通过测试"},
	{"行动、进展", "缺乏行动、停滞"},
	{"接近完成", "延迟、未完成"},
	{"完成、圆满", "未完成、缺乏满足"},
}

// 宫廷牌
var courtCards = [4]struct {
	nameZh   string
	nameEn   string
	meaning  string
	reversed string
}{
	{"侍从", "Page", "学习、新开始", "缺乏经验、不成熟"},
	{"骑士", "Knight", "行动、冒险", "冲动、缺乏方向"},
	{"皇后", "Queen", "成熟、滋养", "过度保护、缺乏边界"},
	{"国王", "King", "权威、领导", "专制、缺乏同情心"},
}

// deck 完整的78张牌，22张大阿卡纳在前，之后按花色生成数字牌和宫廷牌
var deck = buildDeck()

func buildDeck() [78]Card {
	var cards [78]Card
	copy(cards[:], majorArcana[:])

	id := 22
	for _, suit := range suits {
		for num := 1; num <= 10; num++ {
			m := numberMeanings[num-1]
			cards[id] = Card{
				Id:              id,
				NameZh:          suit.nameZh + strconv.Itoa(num),
				NameEn:          suit.nameEn + " " + strconv.Itoa(num),
				Suit:            suit.nameZh,
				Number:          num,
				Meaning:         m.meaning,
				ReversedMeaning: m.reversed,
			}
			id++
		}
		for _, court := range courtCards {
			cards[id] = Card{
				Id:              id,
				NameZh:          suit.nameZh + court.nameZh,
				NameEn:          suit.nameEn + " " + court.nameEn,
				Suit:            suit.nameZh,
				Meaning:         court.meaning,
				ReversedMeaning: court.reversed,
			}
			id++
		}
	}

	return cards
}
