package cmn

import (
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logDir = "logs"
)

var (
	logger     *zap.Logger
	MiniLogger *zap.Logger
	once       sync.Once = sync.Once{}
)

func InitLogger(debug bool) {
	once = sync.Once{}
	once.Do(func() {
		// 初始化日志文件目录
		err := InitDir(logDir)
		if err != nil {
			fmt.Printf("init log dir failed: %v\n", err)
			os.Exit(1)
		}

		// 日志文件名带上启动时间戳
		now := time.Now()
		timestamp := now.Format("2006-01-02T15-04-05")
		logFileName := fmt.Sprintf("%s/%s.log", logDir, timestamp)

		// 初始化日志
		if debug {
			err = initDevLogger()
			if err != nil {
				fmt.Printf("init dev logger failed: %v\n", err)
				os.Exit(1)
			}
		} else {
			err = initProdLogger(logFileName)
			if err != nil {
				fmt.Printf("init prod logger failed: %v\n", err)
				os.Exit(1)
			}
		}

		// 初始化极简日志
		err = initMiniLogger()
		if err != nil {
			fmt.Printf("init mini logger failed: %v\n", err)
			os.Exit(1)
		}

		logger = zap.L()
	})

	MiniLogger.Info("[ OK ] log module initialized")
}

// GetLogger 获取全局的logger
func GetLogger() *zap.Logger {
	return logger
}

// initDevLogger 初始化开发环境日志（彩色控制台输出）
func initDevLogger() error {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = "T"
	encoderConfig.CallerKey = "C"
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.FullCallerEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderConfig)
	consoleCore := zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), zapcore.DebugLevel)

	core := zapcore.NewTee(consoleCore)
	logger := zap.New(core, zap.AddCaller())
	zap.ReplaceGlobals(logger)

	return nil
}

// initProdLogger 初始化生产环境日志（JSON输出到控制台和文件）
func initProdLogger(logFilePath string) error {
	if logFilePath == "" {
		return fmt.Errorf("log file path is empty")
	}

	file, err := os.Create(logFilePath)
	if err != nil {
		return fmt.Errorf("create log file failed: %w", err)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder

	consoleCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(os.Stdout),
		zapcore.InfoLevel,
	)
	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(file),
		zapcore.InfoLevel,
	)

	core := zapcore.NewTee(consoleCore, fileCore)
	logger := zap.New(core, zap.AddCaller())
	zap.ReplaceGlobals(logger)

	return nil
}

// initMiniLogger 初始化极简日志（只输出消息本身，用于启动横幅）
func initMiniLogger() error {
	encoderConfig := zapcore.EncoderConfig{
		MessageKey:   "msg",
		EncodeTime:   nil,
		EncodeLevel:  nil,
		EncodeCaller: nil,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(zapcore.Lock(os.Stdout)),
		zapcore.InfoLevel,
	)

	MiniLogger = zap.New(core)

	return nil
}
