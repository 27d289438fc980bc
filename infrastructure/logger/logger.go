// Package logger provides the application logger: JSON lines in a log file, optionally mirrored
// to a colored console writer.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Logger interface {
	Info(msg string)
	Error(msg string, err error)
	Warning(msg string)
	Debug(msg string)
	Close()
}

type Config struct {
	Dir    string
	Prefix string
	Level  string // "debug", "info", "warn", "error"
	// Console receives human readable output in addition to the file; nil disables it.
	Console io.Writer
}

type fileLogger struct {
	mu      sync.Mutex
	logFile *os.File
	zl      zerolog.Logger
	runID   string
}

func NewFileLogger(cfg Config) (Logger, error) {
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("falha ao criar o diretório de log '%s': %w", cfg.Dir, err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logFileName := fmt.Sprintf("%s_%s.json", cfg.Prefix, timestamp)

	logFilePath := filepath.Join(cfg.Dir, logFileName)

	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir/criar o arquivo de log '%s': %w", logFilePath, err)
	}

	var writer io.Writer = file
	if cfg.Console != nil {
		writer = zerolog.MultiLevelWriter(file, zerolog.ConsoleWriter{
			Out:        cfg.Console,
			TimeFormat: time.TimeOnly,
			FieldsExclude: []string{
				"run_id", "file", "function",
			},
		})
	}

	runID := uuid.NewString()
	zl := zerolog.New(writer).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Str("run_id", runID).
		Logger()

	return &fileLogger{
		logFile: file,
		zl:      zl,
		runID:   runID,
	}, nil
}

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() Logger {
	return &fileLogger{zl: zerolog.Nop()}
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *fileLogger) writeLogInternal(event *zerolog.Event, msg string, errIn error, skip int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logFile == nil && l.runID != "" {
		fmt.Fprintf(os.Stderr, "Logger está fechado, não é possível escrever log: %s\n", msg)
		return
	}

	pc, filePath, _, ok := runtime.Caller(skip)

	shortFileName := "???"
	funcName := "???"
	if ok {
		shortFileName = filepath.Base(filePath)
		if fn := runtime.FuncForPC(pc); fn != nil {
			parts := strings.Split(fn.Name(), ".")
			funcName = parts[len(parts)-1]
		}
	}

	event.Str("file", shortFileName).Str("function", funcName)
	if errIn != nil {
		event.Err(errIn)
	}
	event.Msg(msg)
}

func (l *fileLogger) Info(msg string) {
	l.writeLogInternal(l.zl.Info(), msg, nil, 2)
}

func (l *fileLogger) Error(msg string, err error) {
	l.writeLogInternal(l.zl.Error(), msg, err, 2)
}

func (l *fileLogger) Warning(msg string) {
	l.writeLogInternal(l.zl.Warn(), msg, nil, 2)
}

func (l *fileLogger) Debug(msg string) {
	l.writeLogInternal(l.zl.Debug(), msg, nil, 2)
}

func (l *fileLogger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.logFile != nil {
		err := l.logFile.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Erro ao fechar arquivo de log: %v\n", err)
		}
		l.logFile = nil
	}
}
