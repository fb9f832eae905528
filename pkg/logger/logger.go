package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// logFilePattern names one log file per day
const logFilePattern = "directpro-api-%s.log"

// Global variable to track the rotating writer for proper cleanup
var activeRotatingWriter *DailyRotatingWriter

// SetupLogging configures the application logging
func SetupLogging() (*log.Logger, error) {
	// Ensure logs directory exists
	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %v", err)
	}

	// Create a daily rotating writer
	fileWriter, err := NewDailyRotatingWriter(logDir, logFilePattern)
	if err != nil {
		return nil, fmt.Errorf("failed to create log writer: %v", err)
	}

	// Store the writer for later cleanup
	activeRotatingWriter = fileWriter

	// Create multi-writer to log to both file and console
	multiWriter := io.MultiWriter(os.Stdout, fileWriter)
	logger := log.New(multiWriter, "", log.LstdFlags|log.Lshortfile)

	today := time.Now().Format("2006-01-02")
	logger.Printf("Logging initialized to %s", filepath.Join(logDir, fmt.Sprintf(logFilePattern, today)))

	return logger, nil
}

// SetupFallbackLogger creates a simple console logger when file logging fails
func SetupFallbackLogger() *log.Logger {
	fmt.Printf("Failed to set up file logging, using console logging only\n")
	return log.New(os.Stdout, "", log.LstdFlags|log.Lshortfile)
}

// GetWriter returns the writer for the logger
func GetWriter(logger *log.Logger) io.Writer {
	return logger.Writer()
}

// CloseLogger properly closes the log file
func CloseLogger() error {
	if activeRotatingWriter != nil {
		return activeRotatingWriter.Close()
	}
	return nil
}
