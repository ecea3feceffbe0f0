package llm

import (
	"TianjiMeta/cmn"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	logger   *zap.Logger
	enable   bool
	platform string

	chatTimeout time.Duration

	platformConfig PlatformConfig
)

// PlatformConfig 大模型平台连接配置
type PlatformConfig struct {
	ApiKey  string
	Model   string
	BaseUrl string
}

func Init() {
	logger = cmn.GetLogger()

	enable = viper.GetBool("llm.enable")
	if !enable {
		cmn.MiniLogger.Info("[ -- ] llm module disabled")
		return
	}

	platform = viper.GetString("llm.platform")
	if platform == "" {
		logger.Fatal("[ FAIL ] llm platform not set")
	}

	// 对外请求必须有界超时，超时与非 2xx 同样走本地兜底
	chatTimeout = viper.GetDuration("llm.timeout")
	if chatTimeout <= 0 {
		chatTimeout = 30 * time.Second
	}

	switch platform {
	case "deepseek", "zhipu":
		err := initPlatformConfig()
		if err != nil {
			logger.Fatal("[ FAIL ] failed to init llm platform config", zap.Error(err))
		}
	default:
		logger.Fatal("[ FAIL ] llm platform not supported", zap.String("platform", platform))
	}

	cmn.MiniLogger.Info("[ OK ] llm module initialed", zap.String("platform", platform))
}

func initPlatformConfig() error {
	platformConfig.ApiKey = viper.GetString("llm.data.apiKey")
	if platformConfig.ApiKey == "" {
		logger.Error("api key not set")
		return fmt.Errorf("llm module api key not set")
	}

	platformConfig.Model = viper.GetString("llm.data.model")
	if platformConfig.Model == "" {
		logger.Error("model not set")
		return fmt.Errorf("llm module model not set")
	}

	platformConfig.BaseUrl = viper.GetString("llm.data.baseUrl")
	if platformConfig.BaseUrl == "" {
		logger.Error("base url not set")
		return fmt.Errorf("llm module base url not set")
	}

	return nil
}
