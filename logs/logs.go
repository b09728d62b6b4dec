// Package logs builds the zap loggers used by the binaries.
package logs

import (
	"io"
	"os"
	"strings"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel keeps the console quiet during play
const DefaultLevel = zapcore.WarnLevel

// Config controls log level and destinations
type Config struct {
	Level      string // debug, info, warn, error; case-insensitive
	File       string // optional JSON log file, rotated by size
	MaxSize    int    // megabytes per file
	MaxBackups int
	MaxAge     int // days
	Compress   bool
	Dev        bool // development mode with stack traces from warn up

	// Output receives the console log; nil means os.Stderr. Standard output
	// is reserved for the game protocol.
	Output io.Writer
}

// ParseLevel parses a level name, falling back to DefaultLevel
func ParseLevel(name string) zapcore.Level {
	if strings.TrimSpace(name) == "" {
		return DefaultLevel
	}
	lvl := DefaultLevel
	if err := lvl.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return DefaultLevel
	}
	return lvl
}

// New creates a logger named appName
func New(appName string, cfg Config) *zap.Logger {
	atomicLevel := zap.NewAtomicLevelAt(ParseLevel(cfg.Level))

	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stack",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	consoleCfg := encoderCfg
	consoleCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	consoleEncoder := zapcore.NewConsoleEncoder(consoleCfg)

	var out io.Writer = os.Stderr
	if cfg.Output != nil {
		out = cfg.Output
	}
	consoleSyncer := zapcore.Lock(zapcore.AddSync(out))

	core := zapcore.NewCore(consoleEncoder, consoleSyncer, atomicLevel)
	if cfg.File != "" {
		fileCfg := encoderCfg
		fileCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		fileWriter := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    max(1, cfg.MaxSize),
			MaxBackups: max(0, cfg.MaxBackups),
			MaxAge:     max(0, cfg.MaxAge),
			Compress:   cfg.Compress,
		}
		core = zapcore.NewTee(
			core,
			zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), zapcore.AddSync(fileWriter), atomicLevel),
		)
	}

	opts := []zap.Option{zap.AddCaller()}
	if cfg.Dev {
		opts = append(opts, zap.Development(), zap.AddStacktrace(zapcore.WarnLevel))
	}

	return zap.New(core, opts...).Named(appName)
}
