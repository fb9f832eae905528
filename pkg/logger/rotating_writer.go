package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DailyRotatingWriter is a writer that automatically rotates log files daily
type DailyRotatingWriter struct {
	file           *os.File
	currentDate    string
	logDir         string
	filenameFormat string
	mu             sync.Mutex
}

// NewDailyRotatingWriter creates a new daily rotating writer
func NewDailyRotatingWriter(logDir string, filenameFormat string) (*DailyRotatingWriter, error) {
	writer := &DailyRotatingWriter{
		logDir:         logDir,
		filenameFormat: filenameFormat,
	}

	// Initialize with the current date and file
	if err := writer.rotateIfNeeded(); err != nil {
		return nil, err
	}

	return writer, nil
}

// rotateIfNeeded checks if the log file needs to be rotated and does so if necessary
func (w *DailyRotatingWriter) rotateIfNeeded() error {
	today := time.Now().Format("2006-01-02")

	if today == w.currentDate && w.file != nil {
		return nil
	}

	if w.file != nil {
		w.file.Close()
		w.file = nil
	}

	logFilePath := filepath.Join(w.logDir, fmt.Sprintf(w.filenameFormat, today))

	file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	w.file = file
	w.currentDate = today

	return nil
}

// Write implements the io.Writer interface
func (w *DailyRotatingWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.rotateIfNeeded(); err != nil {
		return 0, err
	}

	return w.file.Write(p)
}

// Close closes the underlying file
func (w *DailyRotatingWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file != nil {
		err := w.file.Close()
		w.file = nil
		return err
	}

	return nil
}
