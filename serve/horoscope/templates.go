package horoscope

// signTemplate 一个星座在一种语言下的运势短语库，每类三条
type signTemplate struct {
	overall [3]string
	love    [3]string
	career  [3]string
	wealth  [3]string
	health  [3]string
	advice  [3]string
}

// 各星座的特色描述模板，按 星座id→语言 组织
var signTemplates = map[string]map[string]signTemplate{
	"aries": {
		"zh": {
			overall: [3]string{"充满活力的你", "行动力强的你", "热情洋溢的你"},
			love:    [3]string{"主动表达感情", "热情如火", "直接坦率"},
			career:  [3]string{"积极进取", "勇于挑战", "领导力强"},
			wealth:  [3]string{"投资需谨慎", "理性消费", "抓住机会"},
			health:  [3]string{"注意休息", "适度运动", "保持活力"},
			advice:  [3]string{"保持热情但要有计划", "注意沟通方式", "合理安排时间"},
		},
		"en": {
			overall: [3]string{"Energetic you", "Action-oriented you", "Enthusiastic you"},
			love:    [3]string{"Express feelings actively", "Passionate", "Direct and honest"},
			career:  [3]string{"Proactive", "Dare to challenge", "Strong leadership"},
			wealth:  [3]string{"Invest carefully", "Rational consumption", "Seize opportunities"},
			health:  [3]string{"Rest well", "Moderate exercise", "Maintain vitality"},
			advice:  [3]string{"Stay enthusiastic but plan ahead", "Pay attention to communication", "Manage time well"},
		},
	},
	"taurus": {
		"zh": {
			overall: [3]string{"稳重的你", "务实的你", "可靠的你"},
			love:    [3]string{"忠诚专一", "需要安全感", "重视承诺"},
			career:  [3]string{"稳步前进", "注重实际", "有耐心"},
			wealth:  [3]string{"理财有道", "稳健投资", "积累财富"},
			health:  [3]string{"注意饮食", "规律作息", "适度放松"},
			advice:  [3]string{"保持稳定但要有灵活性", "适当尝试新事物", "注意身体健康"},
		},
		"en": {
			overall: [3]string{"Stable you", "Practical you", "Reliable you"},
			love:    [3]string{"Loyal and devoted", "Need security", "Value commitment"},
			career:  [3]string{"Steady progress", "Focus on reality", "Patient"},
			wealth:  [3]string{"Good financial management", "Steady investment", "Accumulate wealth"},
			health:  [3]string{"Watch diet", "Regular routine", "Moderate relaxation"},
			advice:  [3]string{"Stay stable but be flexible", "Try new things appropriately", "Pay attention to health"},
		},
	},
	"gemini": {
		"zh": {
			overall: [3]string{"灵活的你", "聪明的你", "善变的你"},
			love:    [3]string{"需要新鲜感", "喜欢交流", "不喜欢束缚"},
			career:  [3]string{"思维敏捷", "适应力强", "沟通能力强"},
			wealth:  [3]string{"多渠道收入", "灵活理财", "抓住机会"},
			health:  [3]string{"注意神经系统", "保持心情愉快", "适度运动"},
			advice:  [3]string{"保持灵活性但要有专注", "注意沟通技巧", "合理安排时间"},
		},
		"en": {
			overall: [3]string{"Flexible you", "Smart you", "Changeable you"},
			love:    [3]string{"Need freshness", "Like communication", "Dislike constraints"},
			career:  [3]string{"Quick thinking", "Strong adaptability", "Good communication"},
			wealth:  [3]string{"Multiple income sources", "Flexible finance", "Seize opportunities"},
			health:  [3]string{"Watch nervous system", "Stay happy", "Moderate exercise"},
			advice:  [3]string{"Stay flexible but focus", "Pay attention to communication", "Manage time well"},
		},
	},
	"cancer": {
		"zh": {
			overall: [3]string{"情感丰富的你", "敏感的你", "保护性强的你"},
			love:    [3]string{"情感细腻", "需要安全感", "重视家庭"},
			career:  [3]string{"注重细节", "有耐心", "善于照顾他人"},
			wealth:  [3]string{"稳健理财", "注重储蓄", "家庭投资"},
			health:  [3]string{"注意情绪", "规律作息", "保持心情愉快"},
			advice:  [3]string{"保持敏感但要有边界", "注意情绪管理", "重视家庭关系"},
		},
		"en": {
			overall: [3]string{"Emotional you", "Sensitive you", "Protective you"},
			love:    [3]string{"Emotionally delicate", "Need security", "Value family"},
			career:  [3]string{"Detail-oriented", "Patient", "Good at caring"},
			wealth:  [3]string{"Steady finance", "Focus on savings", "Family investment"},
			health:  [3]string{"Watch emotions", "Regular routine", "Stay happy"},
			advice:  [3]string{"Stay sensitive but set boundaries", "Manage emotions", "Value family"},
		},
	},
	"leo": {
		"zh": {
			overall: [3]string{"自信的你", "慷慨的你", "有魅力的你"},
			love:    [3]string{"热情浪漫", "喜欢被崇拜", "需要关注"},
			career:  [3]string{"领导力强", "有创造力", "喜欢表现"},
			wealth:  [3]string{"大方消费", "投资有眼光", "享受生活"},
			health:  [3]string{"注意心脏", "保持活力", "适度运动"},
			advice:  [3]string{"保持自信但要有谦逊", "注意倾听他人", "合理安排开支"},
		},
		"en": {
			overall: [3]string{"Confident you", "Generous you", "Charming you"},
			love:    [3]string{"Passionate and romantic", "Like to be admired", "Need attention"},
			career:  [3]string{"Strong leadership", "Creative", "Like to perform"},
			wealth:  [3]string{"Generous spending", "Good investment vision", "Enjoy life"},
			health:  [3]string{"Watch heart", "Maintain vitality", "Moderate exercise"},
			advice:  [3]string{"Stay confident but humble", "Listen to others", "Manage expenses"},
		},
	},
	"virgo": {
		"zh": {
			overall: [3]string{"细心的你", "有条理的你", "追求完美的你"},
			love:    [3]string{"谨慎认真", "需要时间了解", "重视细节"},
			career:  [3]string{"注重细节", "有条理", "追求完美"},
			wealth:  [3]string{"精打细算", "理性投资", "注重规划"},
			health:  [3]string{"注意消化系统", "规律作息", "适度放松"},
			advice:  [3]string{"保持细心但不要过度挑剔", "注意放松", "合理安排时间"},
		},
		"en": {
			overall: [3]string{"Careful you", "Organized you", "Perfectionist you"},
			love:    [3]string{"Cautious and serious", "Need time to understand", "Value details"},
			career:  [3]string{"Detail-oriented", "Organized", "Pursue perfection"},
			wealth:  [3]string{"Careful calculation", "Rational investment", "Focus on planning"},
			health:  [3]string{"Watch digestive system", "Regular routine", "Moderate relaxation"},
			advice:  [3]string{"Stay careful but don't be too picky", "Relax", "Manage time well"},
		},
	},
	"libra": {
		"zh": {
			overall: [3]string{"平衡的你", "优雅的你", "有魅力的你"},
			love:    [3]string{"浪漫优雅", "需要平衡", "重视伴侣"},
			career:  [3]string{"追求和谐", "有艺术感", "善于合作"},
			wealth:  [3]string{"理性消费", "注重平衡", "投资有眼光"},
			health:  [3]string{"注意肾脏", "保持平衡", "适度运动"},
			advice:  [3]string{"保持平衡但要有主见", "注意决策", "合理安排时间"},
		},
		"en": {
			overall: [3]string{"Balanced you", "Elegant you", "Charming you"},
			love:    [3]string{"Romantic and elegant", "Need balance", "Value partner"},
			career:  [3]string{"Pursue harmony", "Artistic", "Good at cooperation"},
			wealth:  [3]string{"Rational consumption", "Focus on balance", "Good investment vision"},
			health:  [3]string{"Watch kidneys", "Maintain balance", "Moderate exercise"},
			advice:  [3]string{"Stay balanced but have opinions", "Pay attention to decisions", "Manage time well"},
		},
	},
	"scorpio": {
		"zh": {
			overall: [3]string{"深刻的你", "有洞察力的你", "意志坚强的你"},
			love:    [3]string{"深情专一", "需要信任", "情感强烈"},
			career:  [3]string{"有洞察力", "意志坚强", "善于研究"},
			wealth:  [3]string{"投资有眼光", "理性理财", "注重长期"},
			health:  [3]string{"注意生殖系统", "保持心情愉快", "适度运动"},
			advice:  [3]string{"保持深刻但要有信任", "注意情绪管理", "合理安排时间"},
		},
		"en": {
			overall: [3]string{"Deep you", "Insightful you", "Strong-willed you"},
			love:    [3]string{"Deep and devoted", "Need trust", "Strong emotions"},
			career:  [3]string{"Insightful", "Strong will", "Good at research"},
			wealth:  [3]string{"Good investment vision", "Rational finance", "Focus on long-term"},
			health:  [3]string{"Watch reproductive system", "Stay happy", "Moderate exercise"},
			advice:  [3]string{"Stay deep but trust", "Manage emotions", "Manage time well"},
		},
	},
	"sagittarius": {
		"zh": {
			overall: [3]string{"乐观的你", "自由的你", "有冒险精神的你"},
			love:    [3]string{"自由独立", "需要空间", "不喜欢束缚"},
			career:  [3]string{"喜欢挑战", "有冒险精神", "适应力强"},
			wealth:  [3]string{"投资有眼光", "理性消费", "抓住机会"},
			health:  [3]string{"注意肝脏", "保持活力", "适度运动"},
			advice:  [3]string{"保持乐观但要有计划", "注意承诺", "合理安排时间"},
		},
		"en": {
			overall: [3]string{"Optimistic you", "Free you", "Adventurous you"},
			love:    [3]string{"Free and independent", "Need space", "Dislike constraints"},
			career:  [3]string{"Like challenges", "Adventurous", "Strong adaptability"},
			wealth:  [3]string{"Good investment vision", "Rational consumption", "Seize opportunities"},
			health:  [3]string{"Watch liver", "Maintain vitality", "Moderate exercise"},
			advice:  [3]string{"Stay optimistic but plan", "Pay attention to commitments", "Manage time well"},
		},
	},
	"capricorn": {
		"zh": {
			overall: [3]string{"有责任感的你", "务实的你", "有野心的你"},
			love:    [3]string{"认真负责", "需要时间", "重视稳定"},
			career:  [3]string{"目标明确", "有野心", "有责任感"},
			wealth:  [3]string{"稳健理财", "理性投资", "注重积累"},
			health:  [3]string{"注意骨骼", "保持规律", "适度放松"},
			advice:  [3]string{"保持责任感但要有灵活性", "注意放松", "合理安排时间"},
		},
		"en": {
			overall: [3]string{"Responsible you", "Practical you", "Ambitious you"},
			love:    [3]string{"Serious and responsible", "Need time", "Value stability"},
			career:  [3]string{"Clear goals", "Ambitious", "Responsible"},
			wealth:  [3]string{"Steady finance", "Rational investment", "Focus on accumulation"},
			health:  [3]string{"Watch bones", "Maintain regularity", "Moderate relaxation"},
			advice:  [3]string{"Stay responsible but flexible", "Relax", "Manage time well"},
		},
	},
	"aquarius": {
		"zh": {
			overall: [3]string{"创新的你", "独立的你", "人道主义的你"},
			love:    [3]string{"需要自由", "重视友谊", "不喜欢束缚"},
			career:  [3]string{"有创新精神", "独立自主", "适应力强"},
			wealth:  [3]string{"投资有眼光", "理性消费", "注重未来"},
			health:  [3]string{"注意循环系统", "保持活力", "适度运动"},
			advice:  [3]string{"保持创新但要有计划", "注意情感表达", "合理安排时间"},
		},
		"en": {
			overall: [3]string{"Innovative you", "Independent you", "Humanitarian you"},
			love:    [3]string{"Need freedom", "Value friendship", "Dislike constraints"},
			career:  [3]string{"Innovative", "Independent", "Strong adaptability"},
			wealth:  [3]string{"Good investment vision", "Rational consumption", "Focus on future"},
			health:  [3]string{"Watch circulatory system", "Maintain vitality", "Moderate exercise"},
			advice:  [3]string{"Stay innovative but plan", "Pay attention to emotional expression", "Manage time well"},
		},
	},
	"pisces": {
		"zh": {
			overall: [3]string{"有同情心的你", "有创造力的你", "直觉强的你"},
			love:    [3]string{"浪漫敏感", "需要理解", "情感丰富"},
			career:  [3]string{"有创造力", "适应力强", "有艺术感"},
			wealth:  [3]string{"理性理财", "投资有眼光", "注重精神"},
			health:  [3]string{"注意脚部", "保持心情愉快", "适度运动"},
			advice:  [3]string{"保持敏感但要有边界", "注意现实", "合理安排时间"},
		},
		"en": {
			overall: [3]string{"Compassionate you", "Creative you", "Intuitive you"},
			love:    [3]string{"Romantic and sensitive", "Need understanding", "Emotionally rich"},
			career:  [3]string{"Creative", "Strong adaptability", "Artistic"},
			wealth:  [3]string{"Rational finance", "Good investment vision", "Focus on spirit"},
			health:  [3]string{"Watch feet", "Stay happy", "Moderate exercise"},
			advice:  [3]string{"Stay sensitive but set boundaries", "Pay attention to reality", "Manage time well"},
		},
	},
}
