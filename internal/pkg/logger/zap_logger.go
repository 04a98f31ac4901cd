package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/locations/internal/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger wraps zap with optional file output and New Relic log forwarding
type ZapLogger struct {
	*zap.Logger
	sugar    *zap.SugaredLogger
	nrApp    *newrelic.Application
	service  string
	filePath string
	file     *os.File
}

// newRelicCore is a zapcore.Core that forwards logs to New Relic
type newRelicCore struct {
	level   zapcore.Level
	service string
	nrApp   *newrelic.Application
}

func (c *newRelicCore) Enabled(level zapcore.Level) bool {
	return c.level.Enabled(level)
}

func (c *newRelicCore) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	return &clone
}

func (c *newRelicCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

// Write forwards the entry to New Relic
func (c *newRelicCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	if c.nrApp == nil {
		return nil
	}

	encoder := zapcore.NewMapObjectEncoder()
	for _, field := range fields {
		field.AddTo(encoder)
	}

	attributes := encoder.Fields
	if attributes == nil {
		attributes = make(map[string]any)
	}
	attributes["service"] = c.service
	attributes["caller"] = entry.Caller.TrimmedPath()
	if entry.Stack != "" {
		attributes["stacktrace"] = entry.Stack
	}

	c.nrApp.RecordLog(newrelic.LogData{
		Timestamp:  entry.Time.UnixMilli(),
		Message:    entry.Message,
		Severity:   entry.Level.String(),
		Attributes: attributes,
	})
	return nil
}

func (c *newRelicCore) Sync() error {
	return nil
}

// ZapConfig holds Zap logger configuration
type ZapConfig struct {
	Level    string `json:"level"`
	FilePath string `json:"file_path"`
	Service  string `json:"service"`
	// Console disables stdout output when false and a file path is set
	Console bool `json:"console"`
}

// NewZapLogger creates a new Zap application logger
func NewZapLogger(config ZapConfig, nrApp *newrelic.Application) (*ZapLogger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(config.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	zapLogger := &ZapLogger{
		nrApp:    nrApp,
		service:  config.Service,
		filePath: config.FilePath,
	}

	var cores []zapcore.Core
	if config.Console || config.FilePath == "" {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level))
	}

	if config.FilePath != "" {
		if err := zapLogger.setupFileOutput(config.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(zapLogger.file), level))
	}

	if nrApp != nil {
		cores = append(cores, &newRelicCore{level: level, service: config.Service, nrApp: nrApp})
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	if config.Service != "" {
		logger = logger.With(zap.String("service", config.Service))
	}

	zapLogger.Logger = logger
	zapLogger.sugar = logger.Sugar()

	return zapLogger, nil
}

// NewNopLogger returns a logger that discards everything
func NewNopLogger() *ZapLogger {
	l := zap.NewNop()
	return &ZapLogger{Logger: l, sugar: l.Sugar()}
}

func (zl *ZapLogger) setupFileOutput(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	zl.file = file
	return nil
}

// Close closes the log file and syncs the logger
func (zl *ZapLogger) Close() error {
	_ = zl.Logger.Sync()

	if zl.file != nil {
		return zl.file.Close()
	}
	return nil
}

// WithNewRelicContext adds trace correlation fields from the transaction
func (zl *ZapLogger) WithNewRelicContext(txn *newrelic.Transaction) *zap.Logger {
	if txn == nil {
		return zl.Logger
	}
	if md := txn.GetLinkingMetadata(); md.TraceID != "" {
		return zl.Logger.With(
			zap.String("trace.id", md.TraceID),
			zap.String("span.id", md.SpanID),
		)
	}
	return zl.Logger
}

// WithFields adds custom fields to log entry
func (zl *ZapLogger) WithFields(fields map[string]interface{}) *zap.Logger {
	zapFields := make([]zap.Field, 0, len(fields))
	for key, value := range fields {
		zapFields = append(zapFields, zap.Any(key, value))
	}
	return zl.Logger.With(zapFields...)
}

// LogHTTPRequest logs an HTTP request with its outcome
func (zl *ZapLogger) LogHTTPRequest(txn *newrelic.Transaction, method, path, clientIP, requestID string, statusCode int, latency time.Duration, err error) {
	logger := zl.WithNewRelicContext(txn).With(
		zap.Int("status", statusCode),
		zap.String("latency", latency.String()),
		zap.Int64("latency_ms", latency.Milliseconds()),
		zap.String("client_ip", clientIP),
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
	)

	switch {
	case statusCode >= 500:
		if err != nil {
			logger.Error("Server error", zap.Error(err))
		} else {
			logger.Error("Server error")
		}
	case statusCode >= 400:
		logger.Warn("Client error")
	default:
		logger.Info("Request processed")
	}
}

// Sugar returns the sugared logger for easier use
func (zl *ZapLogger) Sugar() *zap.SugaredLogger {
	return zl.sugar
}

// GetFilePath returns the current log file path
func (zl *ZapLogger) GetFilePath() string {
	return zl.filePath
}

// InitZapLoggerFromConfig initializes the Zap logger from the application config
func InitZapLoggerFromConfig(configs *models.Config, nrApp *newrelic.Application) (*ZapLogger, error) {
	zapConfig := ZapConfig{
		Level:    configs.Logger.Level,
		Service:  configs.App.Name,
		Console:  configs.Logger.Type != "file",
		FilePath: configs.Logger.FilePath,
	}
	if configs.Logger.Type == "console" {
		zapConfig.FilePath = ""
	}
	return NewZapLogger(zapConfig, nrApp)
}

// WithError creates a logger with an error field
func (zl *ZapLogger) WithError(err error) *zap.Logger {
	return zl.Logger.With(zap.Error(err))
}
