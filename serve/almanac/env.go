package almanac

import (
	"TianjiMeta/cmn"
	"context"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var z *zap.Logger

var (
	timezoneName string // 黄历按此时区归一化"今天"
)

func Init() {
	z = cmn.GetLogger()

	timezoneName = viper.GetString("almanac.timezone")
	if timezoneName == "" {
		timezoneName = "Asia/Shanghai"
	}

	// 预热今日缓存，失败只告警，按需计算仍然可用
	err := refreshTodayCache()
	if err != nil {
		z.Warn("failed to warm today calendar cache", zap.Error(err))
	}

	if viper.GetBool("almanac.dailyRefresh") {
		go todayRefresher(context.Background())
	}

	cmn.MiniLogger.Info("[ OK ] almanac module initialed", zap.String("timezone", timezoneName))
}
