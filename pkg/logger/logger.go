package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu  sync.RWMutex
	log = zap.NewNop().Sugar()
)

// Init builds the process-wide logger. Production environments get JSON
// output at info level, everything else a colored console at debug level.
func Init(environment string) {
	var (
		base *zap.Logger
		err  error
	)

	if environment == "production" {
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "ts"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		base, err = cfg.Build(zap.AddCallerSkip(1))
	} else {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		base, err = cfg.Build(zap.AddCallerSkip(1))
	}
	if err != nil {
		base = zap.NewExample()
	}

	Set(base)
}

// Set swaps the process-wide logger. Tests use it with zaptest/observer.
func Set(base *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = base.Sugar()
	zap.ReplaceGlobals(base)
}

func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = log.Sync()
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

func Debug(msg string, keysAndValues ...any) {
	current().Debugw(msg, pairs(keysAndValues)...)
}

func Info(msg string, keysAndValues ...any) {
	current().Infow(msg, pairs(keysAndValues)...)
}

func Warn(msg string, keysAndValues ...any) {
	current().Warnw(msg, pairs(keysAndValues)...)
}

func Error(msg string, keysAndValues ...any) {
	current().Errorw(msg, pairs(keysAndValues)...)
}

func Fatal(msg string, keysAndValues ...any) {
	current().Fatalw(msg, pairs(keysAndValues)...)
}

// pairs turns a loose argument list into zap key/value pairs. A trailing
// value without a key, or a non-string key, is logged under "arg".
func pairs(args []any) []any {
	out := make([]any, 0, len(args)+1)
	for i := 0; i < len(args); i++ {
		key, ok := args[i].(string)
		if !ok || i+1 == len(args) {
			out = append(out, "arg", args[i])
			continue
		}
		out = append(out, key, args[i+1])
		i++
	}
	return out
}
