package qian

import (
	"TianjiMeta/cmn"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var z *zap.Logger

var machine *Machine

func Init() {
	z = cmn.GetLogger()

	// 权重支持通过配置覆盖，如 qian.weights.shangshang
	weights := make(map[string]uint)
	for _, level := range levels {
		key := "qian.weights." + level.Key
		if viper.IsSet(key) {
			weights[level.Key] = viper.GetUint(key)
		}
	}

	var err error
	machine, err = NewMachine(weights)
	if err != nil {
		cmn.MiniLogger.Fatal("[ FAIL ] failed to init qian machine", zap.Error(err))
	}

	cmn.MiniLogger.Info("[ OK ] qian module initialed")
}
