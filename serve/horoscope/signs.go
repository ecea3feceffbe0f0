package horoscope

import "fmt"

// 十二星座，顺序从白羊座开始
var signs = [12]Sign{
	{Id: "aries", NameZh: "白羊座", NameEn: "Aries", DateRange: "3/21-4/19", Element: "fire", Emoji: "♈"},
	{Id: "taurus", NameZh: "金牛座", NameEn: "Taurus", DateRange: "4/20-5/20", Element: "earth", Emoji: "♉"},
	{Id: "gemini", NameZh: "双子座", NameEn: "Gemini", DateRange: "5/21-6/21", Element: "air", Emoji: "♊"},
	{Id: "cancer", NameZh: "巨蟹座", NameEn: "Cancer", DateRange: "6/22-7/22", Element: "water", Emoji: "♋"},
	{Id: "leo", NameZh: "狮子座", NameEn: "Leo", DateRange: "7/23-8/22", Element: "fire", Emoji: "♌"},
	{Id: "virgo", NameZh: "处女座", NameEn: "Virgo", DateRange: "8/23-9/22", Element: "earth", Emoji: "♍"},
	{Id: "libra", NameZh: "天秤座", NameEn: "Libra", DateRange: "9/23-10/23", Element: "air", Emoji: "♎"},
	{Id: "scorpio", NameZh: "天蝎座", NameEn: "Scorpio", DateRange: "10/24-11/22", Element: "water", Emoji: "♏"},
	{Id: "sagittarius", NameZh: "射手座", NameEn: "Sagittarius", DateRange: "11/23-12/21", Element: "fire", Emoji: "♐"},
	{Id: "capricorn", NameZh: "摩羯座", NameEn: "Capricorn", DateRange: "12/22-1/19", Element: "earth", Emoji: "♑"},
	{Id: "aquarius", NameZh: "水瓶座", NameEn: "Aquarius", DateRange: "1/20-2/18", Element: "air", Emoji: "♒"},
	{Id: "pisces", NameZh: "双鱼座", NameEn: "Pisces", DateRange: "2/19-3/20", Element: "water", Emoji: "♓"},
}

// SignById 按星座 id 查静态资料
func SignById(id string) (Sign, error) {
	for _, sign := range signs {
		if sign.Id == id {
			return sign, nil
		}
	}
	return Sign{}, fmt.Errorf("unknown zodiac sign %q", id)
}

// SignByDate 按公历月日查星座
func SignByDate(month, day int) (Sign, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return Sign{}, fmt.Errorf("invalid month/day %d/%d", month, day)
	}

	date := month*100 + day

	switch {
	case date >= 321 && date <= 419:
		return signs[0], nil
	case date >= 420 && date <= 520:
		return signs[1], nil
	case date >= 521 && date <= 621:
		return signs[2], nil
	case date >= 622 && date <= 722:
		return signs[3], nil
	case date >= 723 && date <= 822:
		return signs[4], nil
	case date >= 823 && date <= 922:
		return signs[5], nil
	case date >= 923 && date <= 1023:
		return signs[6], nil
	case date >= 1024 && date <= 1122:
		return signs[7], nil
	case date >= 1123 && date <= 1221:
		return signs[8], nil
	case date >= 1222 || date <= 119:
		return signs[9], nil
	case date >= 120 && date <= 218:
		return signs[10], nil
	case date >= 219 && date <= 320:
		return signs[11], nil
	}

	return Sign{}, fmt.Errorf("invalid month/day %d/%d", month, day)
}

// Signs 全部星座资料
func Signs() []Sign {
	return signs[:]
}
