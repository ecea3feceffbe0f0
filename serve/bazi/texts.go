package bazi

import "TianjiMeta/cmn/locale"

// 日主性格特点，按日干字查表
var personalityTraits = locale.Table{
	"甲": {
		locale.ZH: "性格直率，有领导力，做事果断。",
		locale.EN: "Straightforward character, leadership ability, decisive.",
	},
	"乙": {
		locale.ZH: "性格温和，善于沟通，适应能力强。",
		locale.EN: "Gentle character, good communication skills, adaptable.",
	},
	"丙": {
		locale.ZH: "性格热情，积极向上，有创造力。",
		locale.EN: "Enthusiastic character, positive attitude, creative.",
	},
	"丁": {
		locale.ZH: "性格细腻，注重细节，有艺术天赋。",
		locale.EN: "Detail-oriented character, artistic talent.",
	},
	"戊": {
		locale.ZH: "性格稳重，踏实可靠，有责任感。",
		locale.EN: "Stable character, reliable, responsible.",
	},
	"己": {
		locale.ZH: "性格包容，善于协调，人际关系好。",
		locale.EN: "Tolerant character, good at coordination, good interpersonal relationships.",
	},
	"庚": {
		locale.ZH: "性格刚强，意志坚定，有执行力。",
		locale.EN: "Strong character, determined, executive ability.",
	},
	"辛": {
		locale.ZH: "性格敏锐，善于分析，追求完美。",
		locale.EN: "Sharp character, analytical, perfectionist.",
	},
	"壬": {
		locale.ZH: "性格灵活，适应力强，有智慧。",
		locale.EN: "Flexible character, adaptable, wise.",
	},
	"癸": {
		locale.ZH: "性格温和，善于思考，有洞察力。",
		locale.EN: "Gentle character, thoughtful, insightful.",
	},
}

// 分析文案的固定片段
var analysisTexts = locale.Table{
	"strongSupported": {
		locale.ZH: "日主得助，性格较为强势，有领导才能。",
		locale.EN: "Day Master is supported, indicating strong character and leadership ability.",
	},
	"strongOpposed": {
		locale.ZH: "可能对日主形成压力，需要注意平衡。",
		locale.EN: "May create pressure on Day Master, balance is needed.",
	},
	"missingAdvice": {
		locale.ZH: "建议在生活中多接触相关元素，以平衡五行。",
		locale.EN: "Suggest incorporating related elements in life to balance the Five Elements.",
	},
	"balanced": {
		locale.ZH: "五行分布相对均衡，性格较为平和，适应能力强。",
		locale.EN: "Five Elements are relatively balanced, indicating peaceful character and strong adaptability.",
	},
	"disclaimer": {
		locale.ZH: "建议：八字仅供参考，人生的成功更多取决于后天的努力和选择。保持积极的心态，发挥自己的优势，克服不足，才能创造美好的未来。",
		locale.EN: "Note: Bazi is for reference only. Success in life depends more on hard work and choices. Maintain a positive attitude, leverage your strengths, and overcome weaknesses to create a better future.",
	},
}
