package liuyao

// 64卦静态数据，按通行卦序（乾一坤二）排列，下标 = id - 1
var hexagrams = [64]Hexagram{
	{Id: 1, NameZh: "乾", NameEn: "Qian (Heaven)", GuaCi: "元亨利贞", YaoCi: [6]string{"初九：潜龙勿用", "九二：见龙在田", "九三：君子终日乾乾", "九四：或跃在渊", "九五：飞龙在天", "上九：亢龙有悔"}, Meaning: "天行健，君子以自强不息"},
	{Id: 2, NameZh: "坤", NameEn: "Kun (Earth)", GuaCi: "元亨，利牝马之贞", YaoCi: [6]string{"初六：履霜坚冰至", "六二：直方大", "六三：含章可贞", "六四：括囊", "六五：黄裳元吉", "上六：龙战于野"}, Meaning: "地势坤，君子以厚德载物"},
	{Id: 3, NameZh: "屯", NameEn: "Zhun (Difficulty)", GuaCi: "元亨利贞", YaoCi: [6]string{"初九：磐桓", "六二：屯如邅如", "六三：即鹿无虞", "六四：乘马班如", "九五：屯其膏", "上六：泣血涟如"}, Meaning: "云雷屯，君子以经纶"},
	{Id: 4, NameZh: "蒙", NameEn: "Meng (Youthful Folly)", GuaCi: "亨", YaoCi: [6]string{"初六：发蒙", "九二：包蒙", "六三：勿用取女", "六四：困蒙", "六五：童蒙", "上九：击蒙"}, Meaning: "山下出泉，蒙，君子以果行育德"},
	{Id: 5, NameZh: "需", NameEn: "Xu (Waiting)", GuaCi: "有孚，光亨", YaoCi: [6]string{"初九：需于郊", "九二：需于沙", "九三：需于泥", "六四：需于血", "九五：需于酒食", "上六：入于穴"}, Meaning: "云上于天，需，君子以饮食宴乐"},
	{Id: 6, NameZh: "讼", NameEn: "Song (Conflict)", GuaCi: "有孚，窒惕", YaoCi: [6]string{"初六：不永所事", "九二：不克讼", "六三：食旧德", "九四：不克讼", "九五：讼元吉", "上九：或锡之鞶带"}, Meaning: "天与水违行，讼，君子以作事谋始"},
	{Id: 7, NameZh: "师", NameEn: "Shi (Army)", GuaCi: "贞，丈人吉", YaoCi: [6]string{"初六：师出以律", "九二：在师中", "六三：师或舆尸", "六四：师左次", "六五：田有禽", "上六：大君有命"}, Meaning: "地中有水，师，君子以容民畜众"},
	{Id: 8, NameZh: "比", NameEn: "Bi (Union)", GuaCi: "吉", YaoCi: [6]string{"初六：有孚比之", "六二：比之自内", "六三：比之匪人", "六四：外比之", "九五：显比", "上六：比之无首"}, Meaning: "水在地上，比，先王以建万国，亲诸侯"},
	{Id: 9, NameZh: "小畜", NameEn: "Xiao Xu (Small Accumulation)", GuaCi: "亨", YaoCi: [6]string{"初九：复自道", "九二：牵复", "九三：舆说辐", "六四：有孚", "九五：有孚挛如", "上九：既雨既处"}, Meaning: "风行天上，小畜，君子以懿文德"},
	{Id: 10, NameZh: "履", NameEn: "Lu (Treading)", GuaCi: "履虎尾，不咥人", YaoCi: [6]string{"初九：素履", "九二：履道坦坦", "六三：眇能视", "九四：履虎尾", "九五：夬履", "上九：视履考祥"}, Meaning: "天泽履，君子以辨上下，定民志"},
	{Id: 11, NameZh: "泰", NameEn: "Tai (Peace)", GuaCi: "小往大来，吉亨", YaoCi: [6]string{"初九：拔茅茹", "九二：包荒", "九三：无平不陂", "六四：翩翩", "六五：帝乙归妹", "上六：城复于隍"}, Meaning: "天地交，泰，后以财成天地之道"},
	{Id: 12, NameZh: "否", NameEn: "Pi (Stagnation)", GuaCi: "否之匪人", YaoCi: [6]string{"初六：拔茅茹", "六二：包承", "六三：包羞", "九四：有命", "九五：休否", "上九：倾否"}, Meaning: "天地不交，否，君子以俭德辟难"},
	{Id: 13, NameZh: "同人", NameEn: "Tong Ren (Fellowship)", GuaCi: "同人于野，亨", YaoCi: [6]string{"初九：同人于门", "六二：同人于宗", "九三：伏戎于莽", "九四：乘其墉", "九五：同人先号咷", "上九：同人于郊"}, Meaning: "天与火，同人，君子以类族辨物"},
	{Id: 14, NameZh: "大有", NameEn: "Da You (Great Possession)", GuaCi: "元亨", YaoCi: [6]string{"初九：无交害", "九二：大车以载", "九三：公用亨于天子", "九四：匪其彭", "六五：厥孚交如", "上九：自天祐之"}, Meaning: "火在天上，大有，君子以遏恶扬善"},
	{Id: 15, NameZh: "谦", NameEn: "Qian (Modesty)", GuaCi: "亨，君子有终", YaoCi: [6]string{"初六：谦谦君子", "六二：鸣谦", "九三：劳谦", "六四：无不利", "六五：不富以其邻", "上六：鸣谦"}, Meaning: "地中有山，谦，君子以裒多益寡"},
	{Id: 16, NameZh: "豫", NameEn: "Yu (Enthusiasm)", GuaCi: "利建侯行师", YaoCi: [6]string{"初六：鸣豫", "六二：介于石", "六三：盱豫", "九四：由豫", "六五：贞疾", "上六：冥豫"}, Meaning: "雷出地奋，豫，先王以作乐崇德"},
	{Id: 17, NameZh: "随", NameEn: "Sui (Following)", GuaCi: "元亨利贞", YaoCi: [6]string{"初九：官有渝", "六二：系小子", "六三：系丈夫", "九四：随有获", "九五：孚于嘉", "上六：拘系之"}, Meaning: "泽中有雷，随，君子以向晦入宴息"},
	{Id: 18, NameZh: "蛊", NameEn: "Gu (Decay)", GuaCi: "元亨", YaoCi: [6]string{"初六：干父之蛊", "九二：干母之蛊", "九三：干父之蛊", "六四：裕父之蛊", "六五：干父之蛊", "上九：不事王侯"}, Meaning: "山下有风，蛊，君子以振民育德"},
	{Id: 19, NameZh: "临", NameEn: "Lin (Approach)", GuaCi: "元亨利贞", YaoCi: [6]string{"初九：咸临", "九二：咸临", "六三：甘临", "六四：至临", "六五：知临", "上六：敦临"}, Meaning: "泽上有地，临，君子以教思无穷"},
	{Id: 20, NameZh: "观", NameEn: "Guan (Contemplation)", GuaCi: "盥而不荐", YaoCi: [6]string{"初六：童观", "六二：窥观", "六三：观我生", "六四：观国之光", "九五：观我生", "上九：观其生"}, Meaning: "风行地上，观，先王以省方观民设教"},
	{Id: 21, NameZh: "噬嗑", NameEn: "Shi Ke (Biting Through)", GuaCi: "亨", YaoCi: [6]string{"初九：屦校灭趾", "六二：噬肤灭鼻", "六三：噬腊肉", "九四：噬干胏", "六五：噬干肉", "上九：何校灭耳"}, Meaning: "雷电，噬嗑，先王以明罚敕法"},
	{Id: 22, NameZh: "贲", NameEn: "Bi (Grace)", GuaCi: "亨", YaoCi: [6]string{"初九：贲其趾", "六二：贲其须", "九三：贲如濡如", "六四：贲如皤如", "六五：贲于丘园", "上九：白贲"}, Meaning: "山下有火，贲，君子以明庶政"},
	{Id: 23, NameZh: "剥", NameEn: "Bo (Splitting Apart)", GuaCi: "不利有攸往", YaoCi: [6]string{"初六：剥床以足", "六二：剥床以辨", "六三：剥之无咎", "六四：剥床以肤", "六五：贯鱼", "上九：硕果不食"}, Meaning: "山附于地，剥，上以厚下安宅"},
	{Id: 24, NameZh: "复", NameEn: "Fu (Return)", GuaCi: "亨", YaoCi: [6]string{"初九：不远复", "六二：休复", "六三：频复", "六四：中行独复", "六五：敦复", "上六：迷复"}, Meaning: "雷在地中，复，先王以至日闭关"},
	{Id: 25, NameZh: "无妄", NameEn: "Wu Wang (Innocence)", GuaCi: "元亨利贞", YaoCi: [6]string{"初九：无妄", "六二：不耕获", "六三：无妄之灾", "九四：可贞", "九五：无妄之疾", "上九：无妄行"}, Meaning: "天下雷行，无妄，先王以茂对时育万物"},
	{Id: 26, NameZh: "大畜", NameEn: "Da Xu (Great Accumulation)", GuaCi: "利贞", YaoCi: [6]string{"初九：有厉", "九二：舆说辐", "九三：良马逐", "六四：童牛之牿", "六五：豮豕之牙", "上九：何天之衢"}, Meaning: "天在山中，大畜，君子以多识前言往行"},
	{Id: 27, NameZh: "颐", NameEn: "Yi (Nourishment)", GuaCi: "贞吉", YaoCi: [6]string{"初九：舍尔灵龟", "六二：颠颐", "六三：拂颐", "六四：颠颐", "六五：拂经", "上九：由颐"}, Meaning: "山下有雷，颐，君子以慎言语"},
	{Id: 28, NameZh: "大过", NameEn: "Da Guo (Great Exceeding)", GuaCi: "栋桡", YaoCi: [6]string{"初六：藉用白茅", "九二：枯杨生稊", "九三：栋桡", "九四：栋隆", "九五：枯杨生华", "上六：过涉灭顶"}, Meaning: "泽灭木，大过，君子以独立不惧"},
	{Id: 29, NameZh: "坎", NameEn: "Kan (Water)", GuaCi: "有孚", YaoCi: [6]string{"初六：习坎", "九二：坎有险", "六三：来之坎坎", "六四：樽酒", "九五：坎不盈", "上六：系用徽纆"}, Meaning: "水洊至，习坎，君子以常德行"},
	{Id: 30, NameZh: "离", NameEn: "Li (Fire)", GuaCi: "利贞，亨", YaoCi: [6]string{"初九：履错然", "六二：黄离", "九三：日昃之离", "九四：突如其来如", "六五：出涕沱若", "上九：王用出征"}, Meaning: "明两作，离，大人以继明照于四方"},
	{Id: 31, NameZh: "咸", NameEn: "Xian (Influence)", GuaCi: "亨，利贞", YaoCi: [6]string{"初六：咸其拇", "六二：咸其腓", "九三：咸其股", "九四：贞吉", "九五：咸其脢", "上六：咸其辅颊舌"}, Meaning: "山上有泽，咸，君子以虚受人"},
	{Id: 32, NameZh: "恒", NameEn: "Heng (Duration)", GuaCi: "亨，无咎", YaoCi: [6]string{"初六：浚恒", "九二：悔亡", "九三：不恒其德", "九四：田无禽", "六五：恒其德", "上六：振恒"}, Meaning: "雷风恒，君子以立不易方"},
	{Id: 33, NameZh: "遁", NameEn: "Dun (Retreat)", GuaCi: "亨", YaoCi: [6]string{"初六：遁尾", "六二：执之用黄牛之革", "九三：系遁", "九四：好遁", "九五：嘉遁", "上九：肥遁"}, Meaning: "天下有山，遁，君子以远小人"},
	{Id: 34, NameZh: "大壮", NameEn: "Da Zhuang (Great Power)", GuaCi: "利贞", YaoCi: [6]string{"初九：壮于趾", "九二：贞吉", "九三：小人用壮", "九四：贞吉", "六五：丧羊于易", "上六：羝羊触藩"}, Meaning: "雷在天上，大壮，君子以非礼弗履"},
	{Id: 35, NameZh: "晋", NameEn: "Jin (Progress)", GuaCi: "康侯用锡马", YaoCi: [6]string{"初六：晋如摧如", "六二：晋如愁如", "六三：众允", "九四：晋如鼫鼠", "六五：悔亡", "上九：晋其角"}, Meaning: "明出地上，晋，君子以自昭明德"},
	{Id: 36, NameZh: "明夷", NameEn: "Ming Yi (Darkening of the Light)", GuaCi: "利艰贞", YaoCi: [6]string{"初九：明夷于飞", "六二：明夷", "九三：明夷于南狩", "六四：入于左腹", "六五：箕子之明夷", "上六：不明晦"}, Meaning: "明入地中，明夷，君子以莅众用晦而明"},
	{Id: 37, NameZh: "家人", NameEn: "Jia Ren (Family)", GuaCi: "利女贞", YaoCi: [6]string{"初九：闲有家", "六二：无攸遂", "九三：家人嗃嗃", "六四：富家", "九五：王假有家", "上九：有孚威如"}, Meaning: "风自火出，家人，君子以言有物而行有恒"},
	{Id: 38, NameZh: "睽", NameEn: "Kui (Opposition)", GuaCi: "小事吉", YaoCi: [6]string{"初九：悔亡", "九二：遇主于巷", "六三：见舆曳", "九四：睽孤", "六五：悔亡", "上九：睽孤"}, Meaning: "上火下泽，睽，君子以同而异"},
	{Id: 39, NameZh: "蹇", NameEn: "Jian (Obstruction)", GuaCi: "利西南", YaoCi: [6]string{"初六：往蹇来誉", "六二：王臣蹇蹇", "九三：往蹇来反", "六四：往蹇来连", "九五：大蹇朋来", "上六：往蹇来硕"}, Meaning: "山上有水，蹇，君子以反身修德"},
	{Id: 40, NameZh: "解", NameEn: "Jie (Deliverance)", GuaCi: "利西南", YaoCi: [6]string{"初六：无咎", "九二：田获三狐", "六三：负且乘", "九四：解而拇", "六五：君子维有解", "上九：公用射隼"}, Meaning: "雷雨作，解，君子以赦过宥罪"},
	{Id: 41, NameZh: "损", NameEn: "Sun (Decrease)", GuaCi: "有孚", YaoCi: [6]string{"初九：已事遄往", "九二：利贞", "六三：三人行", "六四：损其疾", "六五：或益之", "上九：弗损益之"}, Meaning: "山下有泽，损，君子以惩忿窒欲"},
	{Id: 42, NameZh: "益", NameEn: "Yi (Increase)", GuaCi: "利有攸往", YaoCi: [6]string{"初九：利用为大作", "六二：或益之", "六三：益之用凶事", "六四：中行告公", "九五：有孚惠心", "上九：莫益之"}, Meaning: "风雷益，君子以见善则迁"},
	{Id: 43, NameZh: "夬", NameEn: "Guai (Breakthrough)", GuaCi: "扬于王庭", YaoCi: [6]string{"初九：壮于前趾", "九二：惕号", "九三：壮于頄", "九四：臀无肤", "九五：苋陆夬夬", "上六：无号"}, Meaning: "泽上于天，夬，君子以施禄及下"},
	{Id: 44, NameZh: "姤", NameEn: "Gou (Coming to Meet)", GuaCi: "女壮", YaoCi: [6]string{"初六：系于金柅", "九二：包有鱼", "九三：臀无肤", "九四：包无鱼", "九五：以杞包瓜", "上九：姤其角"}, Meaning: "天下有风，姤，后以施命诰四方"},
	{Id: 45, NameZh: "萃", NameEn: "Cui (Gathering)", GuaCi: "亨", YaoCi: [6]string{"初六：有孚不终", "六二：引吉", "六三：萃如嗟如", "九四：大吉", "九五：萃有位", "上六：齎咨涕洟"}, Meaning: "泽上于地，萃，君子以除戎器"},
	{Id: 46, NameZh: "升", NameEn: "Sheng (Rising)", GuaCi: "元亨", YaoCi: [6]string{"初六：允升", "九二：孚乃利用禴", "九三：升虚邑", "六四：王用亨于岐山", "六五：贞吉", "上六：冥升"}, Meaning: "地中生木，升，君子以顺德"},
	{Id: 47, NameZh: "困", NameEn: "Kun (Oppression)", GuaCi: "亨", YaoCi: [6]string{"初六：臀困于株木", "九二：困于酒食", "六三：困于石", "九四：来徐徐", "九五：劓刖", "上六：困于葛藟"}, Meaning: "泽无水，困，君子以致命遂志"},
	{Id: 48, NameZh: "井", NameEn: "Jing (Well)", GuaCi: "改邑不改井", YaoCi: [6]string{"初六：井泥不食", "九二：井谷射鲋", "九三：井渫不食", "六四：井甃", "九五：井冽寒泉", "上六：井收勿幕"}, Meaning: "木上有水，井，君子以劳民劝相"},
	{Id: 49, NameZh: "革", NameEn: "Ge (Revolution)", GuaCi: "己日乃孚", YaoCi: [6]string{"初九：巩用黄牛之革", "六二：己日乃革之", "九三：征凶", "九四：悔亡", "九五：大人虎变", "上六：君子豹变"}, Meaning: "泽中有火，革，君子以治历明时"},
	{Id: 50, NameZh: "鼎", NameEn: "Ding (Cauldron)", GuaCi: "元吉，亨", YaoCi: [6]string{"初六：鼎颠趾", "九二：鼎有实", "九三：鼎耳革", "九四：鼎折足", "六五：鼎黄耳", "上九：鼎玉铉"}, Meaning: "木上有火，鼎，君子以正位凝命"},
	{Id: 51, NameZh: "震", NameEn: "Zhen (Thunder)", GuaCi: "亨", YaoCi: [6]string{"初九：震来虩虩", "六二：震来厉", "六三：震苏苏", "九四：震遂泥", "六五：震往来厉", "上六：震索索"}, Meaning: "洊雷，震，君子以恐惧修省"},
	{Id: 52, NameZh: "艮", NameEn: "Gen (Mountain)", GuaCi: "艮其背", YaoCi: [6]string{"初六：艮其趾", "六二：艮其腓", "九三：艮其限", "六四：艮其身", "六五：艮其辅", "上九：敦艮"}, Meaning: "兼山，艮，君子以思不出其位"},
	{Id: 53, NameZh: "渐", NameEn: "Jian (Gradual Progress)", GuaCi: "女归吉", YaoCi: [6]string{"初六：鸿渐于干", "六二：鸿渐于磐", "九三：鸿渐于陆", "六四：鸿渐于木", "九五：鸿渐于陵", "上九：鸿渐于陆"}, Meaning: "山上有木，渐，君子以居贤德善俗"},
	{Id: 54, NameZh: "归妹", NameEn: "Gui Mei (Marrying Maiden)", GuaCi: "征凶", YaoCi: [6]string{"初九：归妹以娣", "九二：眇能视", "六三：归妹以须", "九四：归妹愆期", "六五：帝乙归妹", "上六：女承筐无实"}, Meaning: "雷上有泽，归妹，君子以永终知敝"},
	{Id: 55, NameZh: "丰", NameEn: "Feng (Abundance)", GuaCi: "亨", YaoCi: [6]string{"初九：遇其配主", "六二：丰其蔀", "九三：丰其沛", "九四：丰其蔀", "六五：来章", "上六：丰其屋"}, Meaning: "雷电皆至，丰，君子以折狱致刑"},
	{Id: 56, NameZh: "旅", NameEn: "Lü (Travel)", GuaCi: "小亨", YaoCi: [6]string{"初六：旅琐琐", "六二：旅即次", "九三：旅焚其次", "九四：旅于处", "六五：射雉一矢亡", "上九：鸟焚其巢"}, Meaning: "山上有火，旅，君子以明慎用刑"},
	{Id: 57, NameZh: "巽", NameEn: "Xun (Wind)", GuaCi: "小亨", YaoCi: [6]string{"初九：进退", "九二：巽在床下", "九三：频巽", "六四：悔亡", "九五：贞吉", "上九：巽在床下"}, Meaning: "随风，巽，君子以申命行事"},
	{Id: 58, NameZh: "兑", NameEn: "Dui (Lake)", GuaCi: "亨", YaoCi: [6]string{"初九：和兑", "九二：孚兑", "六三：来兑", "九四：商兑", "九五：孚于剥", "上六：引兑"}, Meaning: "丽泽，兑，君子以朋友讲习"},
	{Id: 59, NameZh: "涣", NameEn: "Huan (Dispersion)", GuaCi: "亨", YaoCi: [6]string{"初六：用拯马壮", "九二：涣奔其机", "六三：涣其躬", "六四：涣其群", "九五：涣汗其大号", "上九：涣其血"}, Meaning: "风行水上，涣，先王以享于帝立庙"},
	{Id: 60, NameZh: "节", NameEn: "Jie (Limitation)", GuaCi: "亨", YaoCi: [6]string{"初九：不出户庭", "九二：不出门庭", "六三：不节若", "六四：安节", "九五：甘节", "上六：苦节"}, Meaning: "泽上有水，节，君子以制数度"},
	{Id: 61, NameZh: "中孚", NameEn: "Zhong Fu (Inner Truth)", GuaCi: "豚鱼吉", YaoCi: [6]string{"初九：虞吉", "九二：鸣鹤在阴", "六三：得敌", "六四：月几望", "九五：有孚挛如", "上九：翰音登于天"}, Meaning: "泽上有风，中孚，君子以议狱缓死"},
	{Id: 62, NameZh: "小过", NameEn: "Xiao Guo (Small Exceeding)", GuaCi: "亨", YaoCi: [6]string{"初六：飞鸟以凶", "六二：过其祖", "九三：弗过防之", "九四：无咎", "六五：密云不雨", "上六：弗遇过之"}, Meaning: "山上有雷，小过，君子以行过乎恭"},
	{Id: 63, NameZh: "既济", NameEn: "Ji Ji (After Completion)", GuaCi: "亨", YaoCi: [6]string{"初九：曳其轮", "六二：妇丧其茀", "九三：高宗伐鬼方", "六四：繻有衣袽", "九五：东邻杀牛", "上六：濡其首"}, Meaning: "水在火上，既济，君子以思患而豫防之"},
	{Id: 64, NameZh: "未济", NameEn: "Wei Ji (Before Completion)", GuaCi: "亨", YaoCi: [6]string{"初六：濡其尾", "九二：曳其轮", "六三：未济征凶", "九四：贞吉", "六五：贞吉", "上九：有孚于饮酒"}, Meaning: "火在水上，未济，君子以慎辨物居方"},
}

// kingWenByCode 把六爻二进制编码映射到通行卦序编号。
// 编码按上爻到初爻读位，阳爻为 1：code = 上爻*32 + 五爻*16 + ... + 初爻*1。
// 全阳 code 63 对应乾（1），全阴 code 0 对应坤（2）。
var kingWenByCode = [64]int{
	2, 24, 7, 19, 15, 36, 46, 11,
	16, 51, 40, 54, 62, 55, 32, 34,
	8, 3, 29, 60, 39, 63, 48, 5,
	45, 17, 47, 58, 31, 49, 28, 43,
	23, 27, 4, 41, 52, 22, 18, 26,
	35, 21, 64, 38, 56, 30, 50, 14,
	20, 42, 59, 61, 53, 37, 57, 9,
	12, 25, 6, 10, 33, 13, 44, 1,
}
