package liuyao

import (
	"TianjiMeta/cmn"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler interface {
	HandleCast(c *gin.Context)
	HandleMasterReading(c *gin.Context)
}

type handler struct {
}

func NewHandler() Handler {
	return &handler{}
}

// HandleCast 起卦
func (h *handler) HandleCast(c *gin.Context) {
	loc := c.GetString("locale")

	result, err := Cast(loc)
	if err != nil {
		z.Error("failed to cast liuyao", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "六爻起卦失败",
		})
		return
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		z.Error("failed to marshal liuyao result", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "起卦结果序列化失败",
		})
		return
	}

	c.JSON(http.StatusOK, cmn.ReplyProto{
		Status: 0,
		Msg:    "success",
		Data:   resultJson,
	})
}

// masterReadingReq 大师解卦请求体
type masterReadingReq struct {
	BenGuaId     int    `json:"benGuaId"`
	BianGuaId    int    `json:"bianGuaId"`
	ChangingYaos []int  `json:"changingYaos"`
	Question     string `json:"question"`
}

// HandleMasterReading 大师解卦
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

	reading, err := MasterReading(req.BenGuaId, req.BianGuaId, req.ChangingYaos, req.Question, loc)
	if err != nil {
		z.Error("failed to build master reading", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: 1,
			Msg:    "解卦参数无效",
		})
		return
	}

	readingJson, err := json.Marshal(reading)
	if err != nil {
		z.Error("failed to marshal master reading", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "解卦结果序列化失败",
		})
		return
	}

	c.JSON(http.StatusOK, cmn.ReplyProto{
		Status: 0,
		Msg:    "success",
		Data:   readingJson,
	})
}
