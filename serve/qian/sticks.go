package qian

// Level 签的吉凶等级
type Level struct {
	Key    string `json:"key"`
	NameZh string `json:"nameZh"`
	NameEn string `json:"nameEn"`
}

// 五档签级，权重可配置
var levels = [5]Level{
	{Key: "shangshang", NameZh: "上上签", NameEn: "Great Fortune"},
	{Key: "shang", NameZh: "上签", NameEn: "Good Fortune"},
	{Key: "zhong", NameZh: "中签", NameEn: "Fair Fortune"},
	{Key: "xia", NameZh: "下签", NameEn: "Poor Fortune"},
	{Key: "xiaxia", NameZh: "下下签", NameEn: "Bad Fortune"},
}

// 各档默认权重，解签时按权重抽取签级
var defaultWeights = map[string]uint{
	"shangshang": 10,
	"shang":      25,
	"zhong":      35,
	"xia":        20,
	"xiaxia":     10,
}

// stick 一支签的签诗和解语，中英双语
type stick struct {
	verseZh   string
	verseEn   string
	meaningZh string
	meaningEn string
}

// 各签级的候选签文
var sticksByLevel = map[string][]stick{
	"shangshang": {
		{
			verseZh:   "天开地阔见光明，万里无云月正中",
			verseEn:   "The sky opens wide and bright, the moon rides high in a cloudless night.",
			meaningZh: "时运极佳，所求皆遂，宜把握良机，放手去做。",
			meaningEn: "Fortune is at its peak and all you seek will be granted. Seize the moment and act boldly.",
		},
		{
			verseZh:   "枯木逢春花自开，贵人扶持上高台",
			verseEn:   "A withered tree blooms again in spring, a benefactor lifts you to the high stage.",
			meaningZh: "绝处逢生之象，久候之事将成，且有贵人相助。",
			meaningEn: "A sign of rebirth out of hardship. The long-awaited matter will succeed, with a benefactor's help.",
		},
		{
			verseZh:   "春风得意马蹄疾，一日看尽长安花",
			verseEn:   "Riding high on the spring wind, you see all the flowers of the capital in one day.",
			meaningZh: "顺风顺水，名利双收，唯须谦逊自持，不可张扬。",
			meaningEn: "Everything flows your way and both fame and fortune arrive. Stay humble and do not flaunt it.",
		},
	},
	"shang": {
		{
			verseZh:   "云开雾散见青天，渐入佳境莫迟延",
			verseEn:   "Clouds part and mist disperses to reveal blue sky. Things are improving, so do not delay.",
			meaningZh: "前路渐明，稳步推进即可见成效。",
			meaningEn: "The road ahead is clearing. Steady progress will bring results.",
		},
		{
			verseZh:   "潮平两岸阔，风正一帆悬",
			verseEn:   "The tide is calm, the banks are wide, a fair wind fills the single sail.",
			meaningZh: "大势向好，乘势而为，所谋之事多半可成。",
			meaningEn: "The trend is in your favor. Ride it, and most of what you plan will succeed.",
		},
		{
			verseZh:   "梅花香自苦寒来，守得云开见月明",
			verseEn:   "Plum blossoms owe their fragrance to bitter cold. Wait out the clouds to see the bright moon.",
			meaningZh: "先劳后获，坚持当下的方向终有回报。",
			meaningEn: "Effort comes before reward. Persist on your present course and it will pay off.",
		},
	},
	"zhong": {
		{
			verseZh:   "行到水穷处，坐看云起时",
			verseEn:   "Walk to where the stream runs out, then sit and watch the clouds rise.",
			meaningZh: "进退之间宜静观其变，不必强求速成。",
			meaningEn: "Between advance and retreat, watch and wait. Do not force a quick result.",
		},
		{
			verseZh:   "半江瑟瑟半江红，得失参半在其中",
			verseEn:   "Half the river shimmers green, half glows red. Gain and loss are evenly mixed within.",
			meaningZh: "吉凶相伴，谋事宜谨慎权衡，不可孤注一掷。",
			meaningEn: "Fortune and misfortune travel together. Weigh your moves carefully and never stake everything on one throw.",
		},
		{
			verseZh:   "路遥知马力，日久见人心",
			verseEn:   "A long road tests the horse's strength, and time reveals a person's heart.",
			meaningZh: "眼下难辨真伪，时间会给出答案，耐心为上。",
			meaningEn: "Truth is hard to tell right now. Time will give the answer, so patience serves best.",
		},
	},
	"xia": {
		{
			verseZh:   "逆水行舟用力撑，一篙松劲退千寻",
			verseEn:   "Poling a boat against the current, one slack stroke loses a thousand fathoms.",
			meaningZh: "阻力较大，须加倍用心，稍有松懈便前功尽弃。",
			meaningEn: "Resistance is strong. Redouble your effort, for the slightest slack undoes it all.",
		},
		{
			verseZh:   "月被云遮星半隐，前路朦胧且慢行",
			verseEn:   "Clouds veil the moon and half the stars. The road ahead is dim, so walk slowly.",
			meaningZh: "形势不明，不宜贸然行事，守成为佳。",
			meaningEn: "The situation is unclear. Do not act rashly. Holding your ground is best.",
		},
		{
			verseZh:   "浅滩搁舟待潮信，强行出海恐翻覆",
			verseEn:   "A boat aground on the shallows must wait for the tide. Forcing out to sea risks capsizing.",
			meaningZh: "时机未到，强求有损，静待转机方为上策。",
			meaningEn: "The time is not ripe. Forcing it brings loss. Waiting for the turn is the wiser course.",
		},
	},
	"xiaxia": {
		{
			verseZh:   "风急浪高舟楫危，回头是岸莫迟疑",
			verseEn:   "Fierce wind and high waves imperil the boat. Turn back to shore without hesitation.",
			meaningZh: "所谋凶险，及时止损为宜，不可执迷不悟。",
			meaningEn: "The venture is perilous. Cut your losses now and do not cling to it.",
		},
		{
			verseZh:   "寒夜孤灯油将尽，添薪守灶待天明",
			verseEn:   "A lone lamp in the cold night burns low. Feed the stove and wait for dawn.",
			meaningZh: "处境艰难，收敛锋芒，保全自身以待时变。",
			meaningEn: "Times are hard. Draw in your edges and preserve yourself until things change.",
		},
		{
			verseZh:   "雪上加霜行路难，且安本分莫妄动",
			verseEn:   "Frost upon snow makes the road hard. Keep to your place and make no rash move.",
			meaningZh: "诸事不顺，宜守不宜攻，心安即是福。",
			meaningEn: "Nothing goes smoothly. Defend rather than attack. Peace of mind is itself a blessing.",
		},
	},
}
