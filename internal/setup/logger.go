package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// GetLogger sets up the logging infrastructure by creating a timestamped
// session directory under logDir and initializing the application logger
// inside it. Old session directories beyond maxLogsToKeep are removed first.
func GetLogger(logDir string, level string, maxLogsToKeep int) (*zap.Logger, error) {
	// Ensure log directory exists
	err := os.MkdirAll(logDir, os.ModePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	// Clean up old log sessions before creating a new one
	err = rotateLogSessions(logDir, maxLogsToKeep)
	if err != nil {
		return nil, fmt.Errorf("failed to rotate log sessions: %w", err)
	}

	// Create timestamped directory for this session's logs
	sessionDir := filepath.Join(logDir, time.Now().Format("2006-01-02_15-04-05"))
	err = os.MkdirAll(sessionDir, os.ModePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	logger, err := initLogger(filepath.Join(sessionDir, "main.log"), level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize main logger: %w", err)
	}

	return logger, nil
}

// initLogger creates a zap logger instance with development settings and file
// output. Uses atomic level control to allow log level changes.
func initLogger(logPath string, level string) (*zap.Logger, error) {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{logPath}
	config.Level = zap.NewAtomicLevelAt(zapLevel)

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}

// rotateLogSessions removes the oldest session directories so that at most
// maxLogsToKeep remain. Session directory names are timestamps, so
// lexicographic order matches chronological order.
func rotateLogSessions(logDir string, maxLogsToKeep int) error {
	if maxLogsToKeep < 1 {
		return nil
	}

	entries, err := os.ReadDir(logDir)
	if err != nil {
		return err
	}

	var sessions []string
	for _, entry := range entries {
		if entry.IsDir() {
			sessions = append(sessions, entry.Name())
		}
	}

	if len(sessions) < maxLogsToKeep {
		return nil
	}

	sort.Strings(sessions)

	// Keep maxLogsToKeep-1 existing sessions; a new one is about to be created
	remove := len(sessions) - maxLogsToKeep + 1
	for _, name := range sessions[:remove] {
		if err := os.RemoveAll(filepath.Join(logDir, name)); err != nil {
			return err
		}
	}

	return nil
}
