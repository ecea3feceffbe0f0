package bazi

import (
	"TianjiMeta/cmn"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler interface {
	HandleCalculate(c *gin.Context)
	HandleGetZodiac(c *gin.Context)
}

type handler struct {
}

func NewHandler() Handler {
	return &handler{}
}

// HandleCalculate 八字排盘
func (h *handler) HandleCalculate(c *gin.Context) {
	loc := c.GetString("locale")

	birthStr := c.Query("birthDate")
	birth, err := time.ParseInLocation("2006-01-02", birthStr, time.Local)
	if err != nil {
		z.Error("invalid birthDate param", zap.String("birthDate", birthStr))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "birthDate 参数无效，格式应为 2006-01-02",
		})
		return
	}

	hourStr := c.DefaultQuery("birthHour", "0")
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		z.Error("invalid birthHour param", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "birthHour 参数无效，无法转换为整数",
		})
		return
	}

	result, err := Calculate(birth, hour, loc)
	if err != nil {
		z.Error("failed to calculate bazi", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "八字排盘失败",
		})
		return
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		z.Error("failed to marshal bazi result", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "八字结果序列化失败",
		})
		return
	}

	c.JSON(http.StatusOK, cmn.ReplyProto{
		Status: 0,
		Msg:    "success",
		Data:   resultJson,
	})
}

// HandleGetZodiac 按年份查生肖
func (h *handler) HandleGetZodiac(c *gin.Context) {
	yearStr := c.Query("year")
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		z.Error("invalid year param", zap.String("year", yearStr))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "year 参数无效，无法转换为整数",
		})
		return
	}

	zodiacJson, err := json.Marshal(gin.H{
		"year":   year,
		"zodiac": Zodiac(year),
	})
	if err != nil {
		z.Error("failed to marshal zodiac", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "生肖结果序列化失败",
		})
		return
	}

	c.JSON(http.StatusOK, cmn.ReplyProto{
		Status: 0,
		Msg:    "success",
		Data:   zodiacJson,
	})
}
