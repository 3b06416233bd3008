package logging

import "go.uber.org/zap"

// Log is the process-wide structured logger, initialized once in main.
var Log *zap.Logger = zap.NewNop()

func Init() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("logging: " + err.Error())
	}
	Log = logger
}

func Sync() {
	_ = Log.Sync()
}
