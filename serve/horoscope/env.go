package horoscope

import (
	"TianjiMeta/cmn"

	"go.uber.org/zap"
)

var z *zap.Logger

func Init() {
	z = cmn.GetLogger()

	cmn.MiniLogger.Info("[ OK ] horoscope module initialed")
}
