package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wheelshare/wheelshare/internal/pkg/models"
)

// AppLogger is a logrus-based logger used for plain file or hybrid
// output where the structured zap pipeline is not needed (batch tooling,
// local debugging).
type AppLogger struct {
	*logrus.Logger
	filePath string
	file     *os.File
}

// NewAppLogger creates a new logrus application logger
func NewAppLogger(config models.LoggerConfig) (*AppLogger, error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	appLogger := &AppLogger{
		Logger:   logger,
		filePath: config.FilePath,
	}

	switch config.Type {
	case "file":
		if err := appLogger.setupFileOutput(config.FilePath, false); err != nil {
			return nil, err
		}
	case "hybrid":
		if err := appLogger.setupFileOutput(config.FilePath, true); err != nil {
			return nil, err
		}
	default:
		logger.SetOutput(os.Stdout)
	}

	return appLogger, nil
}

func (al *AppLogger) setupFileOutput(filePath string, alsoConsole bool) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	al.file = file
	if alsoConsole {
		al.SetOutput(io.MultiWriter(os.Stdout, file))
	} else {
		al.SetOutput(file)
	}
	return nil
}

// Close closes the log file if one is open
func (al *AppLogger) Close() error {
	if al.file != nil {
		return al.file.Close()
	}
	return nil
}
