package logger

import (
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Log is the global logger. It discards everything until Init is called.
	Log = zap.NewNop()

	customTimeFormat string
	onceInit         sync.Once
)

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format(customTimeFormat))
}

// Init initializes Log.
// lvl - global log level: Debug(-1), Info(0), Warn(1), Error(2), DPanic(3), Panic(4), Fatal(5)
// timeFormat - custom time format, or empty for the zap default
//
// Everything goes to stderr; stdout is reserved for the state dump.
func Init(lvl int, timeFormat string) error {
	if lvl < int(zapcore.DebugLevel) || lvl > int(zapcore.FatalLevel) {
		return fmt.Errorf("logger: level %d out of range [%d, %d]", lvl, zapcore.DebugLevel, zapcore.FatalLevel)
	}
	onceInit.Do(func() {
		globalLevel := zapcore.Level(lvl)
		highPriority := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return l >= zapcore.ErrorLevel && l >= globalLevel
		})
		lowPriority := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return l >= globalLevel && l < zapcore.ErrorLevel
		})

		sink := zapcore.Lock(os.Stderr)

		ecfg := zap.NewProductionEncoderConfig()
		useCustomTimeFormat := false
		if len(timeFormat) > 0 {
			customTimeFormat = timeFormat
			ecfg.EncodeTime = customTimeEncoder
			useCustomTimeFormat = true
		}
		encoder := zapcore.NewJSONEncoder(ecfg)

		core := zapcore.NewTee(
			zapcore.NewCore(encoder, sink, highPriority),
			zapcore.NewCore(encoder, sink, lowPriority),
		)
		Log = zap.New(core)
		zap.RedirectStdLog(Log)

		if !useCustomTimeFormat {
			Log.Debug("time format for logger is not provided - use zap default")
		}
	})
	return nil
}
