package tarot

import (
	"TianjiMeta/cmn"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler interface {
	HandleDraw(c *gin.Context)
	HandleDrawSpread(c *gin.Context)
	HandleMasterReading(c *gin.Context)
}

type handler struct {
}

func NewHandler() Handler {
	return &handler{}
}

// HandleDraw 按张数抽牌
func (h *handler) HandleDraw(c *gin.Context) {
	countStr := c.DefaultQuery("count", "1")
	count, err := strconv.Atoi(countStr)
	if err != nil {
		z.Error("invalid count param", zap.String("count", countStr))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "count 参数无效，无法转换为整数",
		})
		return
	}

	cards, err := Draw(count)
	if err != nil {
		z.Error("failed to draw tarot cards", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "抽牌张数超出范围",
		})
		return
	}

	cardsJson, err := json.Marshal(cards)
	if err != nil {
		z.Error("failed to marshal tarot cards", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "抽牌结果序列化失败",
		})
		return
	}

	c.JSON(http.StatusOK, cmn.ReplyProto{
		Status:   0,
		Msg:      "success",
		Data:     cardsJson,
		RowCount: int64(len(cards)),
	})
}

// HandleDrawSpread 按牌阵抽牌
func (h *handler) HandleDrawSpread(c *gin.Context) {
	loc := c.GetString("locale")
	spread := c.DefaultQuery("spread", SpreadSingle)

	result, err := DrawSpread(spread, loc)
	if err != nil {
		z.Error("failed to draw tarot spread", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "牌阵类型无效",
		})
		return
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		z.Error("failed to marshal tarot spread", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "抽牌结果序列化失败",
		})
		return
	}

	c.JSON(http.StatusOK, cmn.ReplyProto{
		Status: 0,
		Msg:    "success",
		Data:   resultJson,
	})
}

// masterReadingReq 大师解读请求体
type masterReadingReq struct {
	Spread   string    `json:"spread"`
	Cards    []CardRef `json:"cards"`
	Question string    `json:"question"`
}

// HandleMasterReading 大师解读
func (h *handler) HandleMasterReading(c *gin.Context) {
	loc := c.GetString("locale")

	var req masterReadingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		z.Error("failed to bind master reading request", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "请求体无效",
		})
		return
	}

	reading, err := MasterReading(req.Spread, req.Cards, req.Question, loc)
	if err != nil {
		z.Error("failed to build master reading", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "解读参数无效",
		})
		return
	}

	readingJson, err := json.Marshal(reading)
	if err != nil {
		z.Error("failed to marshal master reading", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "解读结果序列化失败",
		})
		return
	}

	c.JSON(http.StatusOK, cmn.ReplyProto{
		Status: 0,
		Msg:    "success",
		Data:   readingJson,
	})
}
