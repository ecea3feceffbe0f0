package horoscope

import (
	"TianjiMeta/cmn/locale"
	"fmt"
)

// 星座性格画像，按 星座id→语言 组织
var personalityData = map[string]map[string]PersonalityTraits{
	"aries": {
		"zh": {
			Strengths:       []string{"勇敢", "自信", "热情", "领导力强"},
			Weaknesses:      []string{"冲动", "缺乏耐心", "过于直接"},
			Characteristics: []string{"充满活力", "喜欢挑战", "行动力强"},
			Compatibility:   []string{"狮子座", "射手座", "双子座"},
			Career:          []string{"企业家", "运动员", "军人", "销售"},
			Love:            []string{"热情直接", "喜欢主动追求", "需要自由空间"},
		},
		"en": {
			Strengths:       []string{"Brave", "Confident", "Enthusiastic", "Strong leadership"},
			Weaknesses:      []string{"Impulsive", "Impatient", "Too direct"},
			Characteristics: []string{"Energetic", "Loves challenges", "Strong action"},
			Compatibility:   []string{"Leo", "Sagittarius", "Gemini"},
			Career:          []string{"Entrepreneur", "Athlete", "Military", "Sales"},
			Love:            []string{"Passionate and direct", "Likes to pursue actively", "Needs freedom"},
		},
	},
	"taurus": {
		"zh": {
			Strengths:       []string{"稳重", "可靠", "有耐心", "务实"},
			Weaknesses:      []string{"固执", "过于保守", "缺乏灵活性"},
			Characteristics: []string{"喜欢稳定", "重视物质", "享受生活"},
			Compatibility:   []string{"处女座", "摩羯座", "巨蟹座"},
			Career:          []string{"金融", "艺术", "农业", "房地产"},
			Love:            []string{"忠诚专一", "需要安全感", "喜欢稳定关系"},
		},
		"en": {
			Strengths:       []string{"Stable", "Reliable", "Patient", "Practical"},
			Weaknesses:      []string{"Stubborn", "Too conservative", "Lacks flexibility"},
			Characteristics: []string{"Likes stability", "Values material", "Enjoys life"},
			Compatibility:   []string{"Virgo", "Capricorn", "Cancer"},
			Career:          []string{"Finance", "Art", "Agriculture", "Real estate"},
			Love:            []string{"Loyal and devoted", "Needs security", "Likes stable relationships"},
		},
	},
	"gemini": {
		"zh": {
			Strengths:       []string{"聪明", "灵活", "好奇心强", "沟通能力强"},
			Weaknesses:      []string{"善变", "缺乏专注", "表面化"},
			Characteristics: []string{"喜欢变化", "思维敏捷", "社交能力强"},
			Compatibility:   []string{"天秤座", "水瓶座", "狮子座"},
			Career:          []string{"媒体", "教育", "写作", "销售"},
			Love:            []string{"需要新鲜感", "喜欢交流", "不喜欢束缚"},
		},
		"en": {
			Strengths:       []string{"Smart", "Flexible", "Curious", "Strong communication"},
			Weaknesses:      []string{"Changeable", "Lacks focus", "Superficial"},
			Characteristics: []string{"Likes change", "Quick thinking", "Strong social skills"},
			Compatibility:   []string{"Libra", "Aquarius", "Leo"},
			Career:          []string{"Media", "Education", "Writing", "Sales"},
			Love:            []string{"Needs freshness", "Likes communication", "Dislikes constraints"},
		},
	},
	"cancer": {
		"zh": {
			Strengths:       []string{"情感丰富", "有同情心", "直觉强", "保护性强"},
			Weaknesses:      []string{"情绪化", "过于敏感", "缺乏安全感"},
			Characteristics: []string{"重视家庭", "记忆力好", "喜欢怀旧"},
			Compatibility:   []string{"天蝎座", "双鱼座", "金牛座"},
			Career:          []string{"护理", "教育", "餐饮", "房地产"},
			Love:            []string{"情感细腻", "需要安全感", "重视承诺"},
		},
		"en": {
			Strengths:       []string{"Emotional", "Compassionate", "Strong intuition", "Protective"},
			Weaknesses:      []string{"Emotional", "Too sensitive", "Lacks security"},
			Characteristics: []string{"Values family", "Good memory", "Likes nostalgia"},
			Compatibility:   []string{"Scorpio", "Pisces", "Taurus"},
			Career:          []string{"Nursing", "Education", "Catering", "Real estate"},
			Love:            []string{"Emotionally delicate", "Needs security", "Values commitment"},
		},
	},
	"leo": {
		"zh": {
			Strengths:       []string{"自信", "慷慨", "有创造力", "领导力强"},
			Weaknesses:      []string{"自负", "需要关注", "过于骄傲"},
			Characteristics: []string{"喜欢表现", "热情大方", "有魅力"},
			Compatibility:   []string{"白羊座", "射手座", "天秤座"},
			Career:          []string{"演艺", "管理", "设计", "教育"},
			Love:            []string{"热情浪漫", "喜欢被崇拜", "需要关注"},
		},
		"en": {
			Strengths:       []string{"Confident", "Generous", "Creative", "Strong leadership"},
			Weaknesses:      []string{"Arrogant", "Needs attention", "Too proud"},
			Characteristics: []string{"Likes to perform", "Enthusiastic", "Charming"},
			Compatibility:   []string{"Aries", "Sagittarius", "Libra"},
			Career:          []string{"Entertainment", "Management", "Design", "Education"},
			Love:            []string{"Passionate and romantic", "Likes to be admired", "Needs attention"},
		},
	},
	"virgo": {
		"zh": {
			Strengths:       []string{"细心", "有条理", "分析能力强", "追求完美"},
			Weaknesses:      []string{"过于挑剔", "焦虑", "缺乏自信"},
			Characteristics: []string{"注重细节", "喜欢计划", "实用主义"},
			Compatibility:   []string{"金牛座", "摩羯座", "天蝎座"},
			Career:          []string{"医疗", "会计", "编辑", "研究"},
			Love:            []string{"谨慎认真", "需要时间了解", "重视细节"},
		},
		"en": {
			Strengths:       []string{"Careful", "Organized", "Strong analysis", "Pursues perfection"},
			Weaknesses:      []string{"Too picky", "Anxious", "Lacks confidence"},
			Characteristics: []string{"Focuses on details", "Likes planning", "Pragmatic"},
			Compatibility:   []string{"Taurus", "Capricorn", "Scorpio"},
			Career:          []string{"Medical", "Accounting", "Editing", "Research"},
			Love:            []string{"Cautious and serious", "Needs time to understand", "Values details"},
		},
	},
	"libra": {
		"zh": {
			Strengths:       []string{"平衡", "优雅", "有魅力", "社交能力强"},
			Weaknesses:      []string{"优柔寡断", "避免冲突", "过于依赖"},
			Characteristics: []string{"追求和谐", "喜欢美", "重视关系"},
			Compatibility:   []string{"双子座", "水瓶座", "狮子座"},
			Career:          []string{"法律", "艺术", "设计", "公关"},
			Love:            []string{"浪漫优雅", "需要平衡", "重视伴侣"},
		},
		"en": {
			Strengths:       []string{"Balanced", "Elegant", "Charming", "Strong social skills"},
			Weaknesses:      []string{"Indecisive", "Avoids conflict", "Too dependent"},
			Characteristics: []string{"Pursues harmony", "Likes beauty", "Values relationships"},
			Compatibility:   []string{"Gemini", "Aquarius", "Leo"},
			Career:          []string{"Law", "Art", "Design", "PR"},
			Love:            []string{"Romantic and elegant", "Needs balance", "Values partner"},
		},
	},
	"scorpio": {
		"zh": {
			Strengths:       []string{"深刻", "有洞察力", "意志坚强", "忠诚"},
			Weaknesses:      []string{"多疑", "报复心强", "过于神秘"},
			Characteristics: []string{"情感强烈", "喜欢探索", "有魅力"},
			Compatibility:   []string{"巨蟹座", "双鱼座", "摩羯座"},
			Career:          []string{"研究", "心理学", "侦探", "金融"},
			Love:            []string{"深情专一", "需要信任", "情感强烈"},
		},
		"en": {
			Strengths:       []string{"Deep", "Insightful", "Strong will", "Loyal"},
			Weaknesses:      []string{"Suspicious", "Vindictive", "Too mysterious"},
			Characteristics: []string{"Strong emotions", "Likes exploration", "Charming"},
			Compatibility:   []string{"Cancer", "Pisces", "Capricorn"},
			Career:          []string{"Research", "Psychology", "Detective", "Finance"},
			Love:            []string{"Deep and devoted", "Needs trust", "Strong emotions"},
		},
	},
	"sagittarius": {
		"zh": {
			Strengths:       []string{"乐观", "自由", "有冒险精神", "幽默"},
			Weaknesses:      []string{"缺乏耐心", "过于直接", "不够细致"},
			Characteristics: []string{"喜欢旅行", "追求自由", "思想开放"},
			Compatibility:   []string{"白羊座", "狮子座", "水瓶座"},
			Career:          []string{"旅游", "教育", "哲学", "媒体"},
			Love:            []string{"自由独立", "需要空间", "不喜欢束缚"},
		},
		"en": {
			Strengths:       []string{"Optimistic", "Free", "Adventurous", "Humorous"},
			Weaknesses:      []string{"Impatient", "Too direct", "Not detailed"},
			Characteristics: []string{"Likes travel", "Pursues freedom", "Open-minded"},
			Compatibility:   []string{"Aries", "Leo", "Aquarius"},
			Career:          []string{"Travel", "Education", "Philosophy", "Media"},
			Love:            []string{"Free and independent", "Needs space", "Dislikes constraints"},
		},
	},
	"capricorn": {
		"zh": {
			Strengths:       []string{"有责任感", "务实", "有野心", "自律"},
			Weaknesses:      []string{"过于严肃", "缺乏幽默感", "工作狂"},
			Characteristics: []string{"目标明确", "重视成就", "传统"},
			Compatibility:   []string{"金牛座", "处女座", "天蝎座"},
			Career:          []string{"管理", "金融", "工程", "政治"},
			Love:            []string{"认真负责", "需要时间", "重视稳定"},
		},
		"en": {
			Strengths:       []string{"Responsible", "Practical", "Ambitious", "Self-disciplined"},
			Weaknesses:      []string{"Too serious", "Lacks humor", "Workaholic"},
			Characteristics: []string{"Clear goals", "Values achievement", "Traditional"},
			Compatibility:   []string{"Taurus", "Virgo", "Scorpio"},
			Career:          []string{"Management", "Finance", "Engineering", "Politics"},
			Love:            []string{"Serious and responsible", "Needs time", "Values stability"},
		},
	},
	"aquarius": {
		"zh": {
			Strengths:       []string{"创新", "独立", "人道主义", "聪明"},
			Weaknesses:      []string{"情感疏离", "固执", "过于理想化"},
			Characteristics: []string{"思想前卫", "喜欢自由", "重视友谊"},
			Compatibility:   []string{"双子座", "天秤座", "射手座"},
			Career:          []string{"科技", "科学", "社会服务", "创新"},
			Love:            []string{"需要自由", "重视友谊", "不喜欢束缚"},
		},
		"en": {
			Strengths:       []string{"Innovative", "Independent", "Humanitarian", "Smart"},
			Weaknesses:      []string{"Emotionally distant", "Stubborn", "Too idealistic"},
			Characteristics: []string{"Forward-thinking", "Likes freedom", "Values friendship"},
			Compatibility:   []string{"Gemini", "Libra", "Sagittarius"},
			Career:          []string{"Technology", "Science", "Social service", "Innovation"},
			Love:            []string{"Needs freedom", "Values friendship", "Dislikes constraints"},
		},
	},
	"pisces": {
		"zh": {
			Strengths:       []string{"有同情心", "有创造力", "直觉强", "艺术感强"},
			Weaknesses:      []string{"过于敏感", "逃避现实", "缺乏界限"},
			Characteristics: []string{"情感丰富", "喜欢幻想", "有艺术天赋"},
			Compatibility:   []string{"巨蟹座", "天蝎座", "金牛座"},
			Career:          []string{"艺术", "音乐", "心理学", "护理"},
			Love:            []string{"浪漫敏感", "需要理解", "情感丰富"},
		},
		"en": {
			Strengths:       []string{"Compassionate", "Creative", "Strong intuition", "Artistic"},
			Weaknesses:      []string{"Too sensitive", "Escapes reality", "Lacks boundaries"},
			Characteristics: []string{"Emotionally rich", "Likes fantasy", "Artistic talent"},
			Compatibility:   []string{"Cancer", "Scorpio", "Taurus"},
			Career:          []string{"Art", "Music", "Psychology", "Nursing"},
			Love:            []string{"Romantic and sensitive", "Needs understanding", "Emotionally rich"},
		},
	},
}

// Personality 星座性格画像查询
func Personality(signId, loc string) (PersonalityTraits, error) {
	loc, err := locale.Normalize(loc)
	if err != nil {
		return PersonalityTraits{}, err
	}

	byLocale, ok := personalityData[signId]
	if !ok {
		return PersonalityTraits{}, fmt.Errorf("unknown zodiac sign %q", signId)
	}
	return byLocale[loc], nil
}
