package bazi

import (
	"TianjiMeta/cmn"

	"go.uber.org/zap"
)

var z *zap.Logger

func Init() {
	z = cmn.GetLogger()

	cmn.MiniLogger.Info("[ OK ] bazi module initialed")
}
