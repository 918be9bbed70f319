package log

import (
	"io"
	"os"
	"sync"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu     sync.RWMutex
	logger = zap.New(jsonCore(zapcore.AddSync(os.Stdout)))
)

func jsonCore(ws zapcore.WriteSyncer) zapcore.Core {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "ts"
	enc.MessageKey = "action"
	enc.EncodeTime = zapcore.RFC3339TimeEncoder
	return zapcore.NewCore(zapcore.NewJSONEncoder(enc), ws, zapcore.DebugLevel)
}

// Init sends entries to stdout and, when file is set, to a rotated log file.
func Init(file string, maxSizeMB int) {
	cores := []zapcore.Core{jsonCore(zapcore.AddSync(os.Stdout))}
	if file != "" {
		cores = append(cores, jsonCore(zapcore.AddSync(&lumberjack.Logger{
			Filename:   file,
			MaxSize:    maxSizeMB,
			MaxBackups: 7,
			MaxAge:     7,
		})))
	}
	mu.Lock()
	logger = zap.New(zapcore.NewTee(cores...))
	mu.Unlock()
}

// SetOutput redirects all entries to w and returns a func restoring the previous logger.
func SetOutput(w io.Writer) (restore func()) {
	mu.Lock()
	prev := logger
	logger = zap.New(jsonCore(zapcore.AddSync(w)))
	mu.Unlock()
	return func() {
		mu.Lock()
		logger = prev
		mu.Unlock()
	}
}

func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = logger.Sync()
}

func write(level zapcore.Level, kind string, c *fiber.Ctx, action string, err error, fields map[string]any) {
	zf := []zap.Field{zap.String("kind", kind)}
	if c != nil {
		zf = append(zf,
			zap.String("ip", c.IP()),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
		)
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			zf = append(zf, zap.String("req_id", rid))
		}
	}
	if err != nil {
		zf = append(zf, zap.String("err", err.Error()))
	}
	if len(fields) > 0 {
		zf = append(zf, zap.Any("fields", fields))
	}
	mu.RLock()
	l := logger
	mu.RUnlock()
	if ce := l.Check(level, action); ce != nil {
		ce.Write(zf...)
	}
}

func Info(c *fiber.Ctx, action string, fields map[string]any) {
	write(zapcore.InfoLevel, "info", c, action, nil, fields)
}
func Audit(c *fiber.Ctx, action string, fields map[string]any) {
	write(zapcore.InfoLevel, "audit", c, action, nil, fields)
}
func Security(c *fiber.Ctx, action string, fields map[string]any) {
	write(zapcore.WarnLevel, "security", c, action, nil, fields)
}
func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	write(zapcore.ErrorLevel, "error", c, action, err, fields)
}
