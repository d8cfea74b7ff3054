package core

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger provides leveled logging for the front-end
type Logger struct {
	debug   bool
	console bool
	logger  *log.Logger
	file    *os.File
	mu      sync.Mutex
}

// NewLogger creates a new logger instance
func NewLogger(debug bool) *Logger {
	return &Logger{
		debug:   debug,
		console: true,
		logger:  log.New(os.Stdout, "", 0),
	}
}

// SetConsole enables or disables mirroring log output to stdout
func (l *Logger) SetConsole(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.console = enabled
}

// SetFile sets the log file output
func (l *Logger) SetFile(path string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		l.file.Close()
		l.file = nil
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	l.file = file
	l.logger.SetOutput(file)
	return nil
}

// Debug logs debug messages
func (l *Logger) Debug(format string, v ...interface{}) {
	if l.debug {
		l.log("DEBUG", format, v...)
	}
}

// Info logs info messages
func (l *Logger) Info(format string, v ...interface{}) {
	l.log("INFO", format, v...)
}

// Warn logs warning messages
func (l *Logger) Warn(format string, v ...interface{}) {
	l.log("WARN", format, v...)
}

// Error logs error messages
func (l *Logger) Error(format string, v ...interface{}) {
	l.log("ERROR", format, v...)
}

func (l *Logger) log(level, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	message := fmt.Sprintf(format, v...)
	output := fmt.Sprintf("[%s] [%s] %s", timestamp, level, message)

	if l.file != nil {
		l.logger.Print(output)
	}
	if l.console {
		fmt.Println(output)
	}
}

// Close closes the log file if one is open
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}
