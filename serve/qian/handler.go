package qian

import (
	"TianjiMeta/cmn"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler interface {
	HandleDraw(c *gin.Context)
}

type handler struct {
}

func NewHandler() Handler {
	return &handler{}
}

// HandleDraw 求签
func (h *handler) HandleDraw(c *gin.Context) {
	loc := c.GetString("locale")

	result, err := machine.Draw(loc)
	if err != nil {
		z.Error("failed to draw qian", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "求签失败",
		})
		return
	}

	resultJson, err := json.Marshal(result)
	if err != nil {
		z.Error("failed to marshal qian result", zap.Error(err))
		c.JSON(http.StatusOK, cmn.ReplyProto{
			Status: -1,
			Msg:    "求签结果序列化失败",
		})
		return
	}

	c.JSON(http.StatusOK, cmn.ReplyProto{
		Status: 0,
		Msg:    "success",
		Data:   resultJson,
	})
}
