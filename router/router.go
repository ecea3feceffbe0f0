package router

import (
	"TianjiMeta/cmn/locale"
	"TianjiMeta/serve/almanac"
	"TianjiMeta/serve/bazi"
	"TianjiMeta/serve/horoscope"
	"TianjiMeta/serve/liuyao"
	"TianjiMeta/serve/qian"
	"TianjiMeta/serve/tarot"
	"strings"

	"github.com/gin-gonic/gin"
)

// LocaleMiddleware 解析请求语言：query 参数 locale 优先，
// 其次 Accept-Language 头，不支持的语言一律回落到中文
func LocaleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tag := c.Query("locale")
		if tag == "" {
			accept := c.GetHeader("Accept-Language")
			if i := strings.IndexAny(accept, ",;"); i >= 0 {
				accept = accept[:i]
			}
			tag = strings.TrimSpace(accept)
		}

		loc, err := locale.Normalize(tag)
		if err != nil {
			loc = locale.ZH
		}
		c.Set("locale", loc)

		c.Next()
	}
}

// InitRoutes 初始化路由
func InitRoutes(r *gin.Engine) {

	almanacHandler := almanac.NewHandler()
	baziHandler := bazi.NewHandler()
	liuyaoHandler := liuyao.NewHandler()
	tarotHandler := tarot.NewHandler()
	horoscopeHandler := horoscope.NewHandler()
	qianHandler := qian.NewHandler()

	// 路由组 /api
	api := r.Group("/api")
	api.Use(LocaleMiddleware())
	{
		api.GET("/calendar/today", almanacHandler.HandleGetToday) // 今日黄历
		api.GET("/calendar/day", almanacHandler.HandleGetDay)     // 指定日期黄历
		api.GET("/calendar/days", almanacHandler.HandleGetDays)   // 多日黄历

		api.GET("/bazi", baziHandler.HandleCalculate)        // 八字排盘
		api.GET("/bazi/zodiac", baziHandler.HandleGetZodiac) // 生肖查询

		api.POST("/fortune/liuyao", liuyaoHandler.HandleCast)                         // 六爻起卦
		api.POST("/fortune/liuyao/interpretation", liuyaoHandler.HandleMasterReading) // 六爻大师解卦

		api.GET("/fortune/tarot", tarotHandler.HandleDraw)                          // 按张数抽塔罗牌
		api.GET("/fortune/tarot/spread", tarotHandler.HandleDrawSpread)             // 按牌阵抽塔罗牌
		api.POST("/fortune/tarot/interpretation", tarotHandler.HandleMasterReading) // 塔罗大师解读

		api.GET("/horoscope/signs", horoscopeHandler.HandleGetSigns)              // 星座列表
		api.GET("/horoscope/:period", horoscopeHandler.HandleGetHoroscope)        // 日/周/月运势
		api.GET("/horoscope-compatibility", horoscopeHandler.HandleCompatibility) // 星座配对
		api.GET("/horoscope-personality", horoscopeHandler.HandlePersonality)     // 星座性格

		api.POST("/fortune/qian", qianHandler.HandleDraw) // 求签
	}
}
