package almanac

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
	HandleGetDay(c *gin.Context)
	HandleGetDays(c *gin.Context)
	HandleGetToday(c *gin.Context)
}

type handler struct {
}

func NewHandler() Handler {
	return &handler{}
}

// parseDateParam 解析 date 参数，缺省取当前时间
func parseDateParam(c *gin.Context, key string) (time.Time, bool) {
	dateStr := c.Query(key)
	if dateStr == "" {
		return time.Now(), true
	}
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

// HandleGetDay 查询指定日期的黄历
func (h *handler) HandleGetDay(c *gin.Context) {
	loc := c.GetString("locale")

	date, ok := parseDateParam(c, "date")
	if !ok {
		z.Error("invalid date param", zap.String("date", c.Query("date")))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "date 参数无效，格式应为 2006-01-02",
		})
		return
	}

	day, err := GetCalendarDay(date, loc)
	if err != nil {
		z.Error("failed to get calendar day", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "黄历查询失败",
		})
		return
	}

	dayJson, err := json.Marshal(day)
	if err != nil {
		z.Error("failed to marshal calendar day", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "黄历结果序列化失败",
		})
		return
	}

	c.JSON(http.StatusOK, cmn.ReplyProto{
		Status: 0,
		Msg:    "success",
		Data:   dayJson,
	})
}

// HandleGetDays 查询从指定日期起连续多天的黄历
func (h *handler) HandleGetDays(c *gin.Context) {
	loc := c.GetString("locale")

	start, ok := parseDateParam(c, "start")
	if !ok {
		z.Error("invalid start param", zap.String("start", c.Query("start")))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "start 参数无效，格式应为 2006-01-02",
		})
		return
	}

	countStr := c.DefaultQuery("count", "7")
	count, err := strconv.Atoi(countStr)
	if err != nil {
		z.Error("invalid count param", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "count 参数无效，无法转换为整数",
		})
		return
	}

	days, err := GetCalendarDays(start, count, loc)
	if err != nil {
		z.Error("failed to get calendar days", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "黄历区间查询失败",
		})
		return
	}

	daysJson, err := json.Marshal(days)
	if err != nil {
		z.Error("failed to marshal calendar days", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "黄历结果序列化失败",
		})
		return
	}

	c.JSON(http.StatusOK, cmn.ReplyProto{
		Status:   0,
		Msg:      "success",
		Data:     daysJson,
		RowCount: int64(len(days)),
	})
}

// HandleGetToday 查询今日黄历（走缓存）
func (h *handler) HandleGetToday(c *gin.Context) {
	loc := c.GetString("locale")

	day, err := Today(loc)
	if err != nil {
		z.Error("failed to get today calendar", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "今日黄历查询失败",
		})
		return
	}

	dayJson, err := json.Marshal(day)
	if err != nil {
		z.Error("failed to marshal today calendar", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "黄历结果序列化失败",
		})
		return
	}

	c.JSON(http.StatusOK, cmn.ReplyProto{
		Status: 0,
		Msg:    "success",
		Data:   dayJson,
	})
}
