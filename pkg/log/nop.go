package log

import "go.uber.org/zap"

func newNopLogger() *zapLogger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}
