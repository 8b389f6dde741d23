package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	root   *zap.SugaredLogger
	atom   = zap.NewAtomicLevel()
)

func init() {
	InitLogger("info")
}

// InitLogger writes JSON logs to stderr; stdout is reserved for program output.
func InitLogger(level string) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.RFC3339TimeEncoder

	SetLevel(level)
	logger = zap.New(zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		atom,
	))
	root = logger.Sugar()
}

func Sync() {
	_ = logger.Sync()
}

func NewLogger(name string) *zap.SugaredLogger {
	return root.Named(name)
}

// SetLevel accepts zap level names; anything unparsable means info.
func SetLevel(level string) {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil {
		l = zapcore.InfoLevel
	}
	atom.SetLevel(l)
}

func Level() zapcore.Level {
	return atom.Level()
}
