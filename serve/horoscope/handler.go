package horoscope

import (
	"TianjiMeta/cmn"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler interface {
	HandleGetSigns(c *gin.Context)
	HandleGetHoroscope(c *gin.Context)
	HandleCompatibility(c *gin.Context)
	HandlePersonality(c *gin.Context)
}

type handler struct {
}

func NewHandler() Handler {
	return &handler{}
}

// HandleGetSigns 星座列表
func (h *handler) HandleGetSigns(c *gin.Context) {
	signsJson, err := json.Marshal(Signs())
	if err != nil {
		z.Error("failed to marshal signs", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "星座列表序列化失败",
		})
		return
	}

	c.JSON(http.StatusOK, cmn.ReplyProto{
		Status:   0,
		Msg:      "success",
		Data:     signsJson,
		RowCount: int64(len(signs)),
	})
}

// HandleGetHoroscope 日/周/月运势，周期由路由参数决定
func (h *handler) HandleGetHoroscope(c *gin.Context) {
	loc := c.GetString("locale")
	period := c.Param("period")
	signId := c.Query("sign")

	date := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			z.Error("invalid date param", zap.String("date", dateStr))
			c.JSON(http.StatusOK, cmn.ReplyProto{
				Status: 1,
				Msg:    "date 参数无效，格式应为 2006-01-02",
			})
			return
		}
		date = parsed
	}

	content, err := ByPeriod(period, signId, date, loc)
	if err != nil {
		z.Error("failed to generate horoscope", zap.Error(err),
			zap.String("period", period), zap.String("sign", signId))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "运势参数无效",
		})
		return
	}

	contentJson, err := json.Marshal(content)
	if err != nil {
		z.Error("failed to marshal horoscope", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "运势结果序列化失败",
		})
		return
	}

	c.JSON(http.StatusOK, cmn.ReplyProto{
		Status: 0,
		Msg:    "success",
		Data:   contentJson,
	})
}

// HandleCompatibility 星座配对
func (h *handler) HandleCompatibility(c *gin.Context) {
	loc := c.GetString("locale")

	result, err := Compatibility(c.Query("sign1"), c.Query("sign2"), loc)
	if err != nil {
		z.Error("failed to get compatibility", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "星座配对参数无效",
		})
		return
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		z.Error("failed to marshal compatibility", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "配对结果序列化失败",
		})
		return
	}

	c.JSON(http.StatusOK, cmn.ReplyProto{
		Status: 0,
		Msg:    "success",
		Data:   resultJson,
	})
}

// HandlePersonality 星座性格画像
func (h *handler) HandlePersonality(c *gin.Context) {
	loc := c.GetString("locale")

	traits, err := Personality(c.Query("sign"), loc)
	if err != nil {
		z.Error("failed to get personality", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "星座性格参数无效",
		})
		return
	}

	traitsJson, err := json.Marshal(traits)
	if err != nil {
		z.Error("failed to marshal personality", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "性格画像序列化失败",
		})
		return
	}

	c.JSON(http.StatusOK, cmn.ReplyProto{
		Status: 0,
		Msg:    "success",
		Data:   traitsJson,
	})
}
