// Package logger provides leveled logging for the engine.
package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
)

// Level represents a logging level.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

var (
	mu       sync.RWMutex
	level    = InfoLevel
	std      = log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds)
	levelTag = map[Level]string{
		DebugLevel: "[DEBUG] ",
		InfoLevel:  "[INFO] ",
		WarnLevel:  "[WARN] ",
		ErrorLevel: "[ERROR] ",
	}
)

// Init sets the minimum level for the package-level logger.
func Init(name string) {
	mu.Lock()
	defer mu.Unlock()
	switch strings.ToLower(name) {
	case "debug":
		level = DebugLevel
	case "info":
		level = InfoLevel
	case "warn":
		level = WarnLevel
	case "error":
		level = ErrorLevel
	default:
		level = InfoLevel
	}
}

func output(l Level, format string, args ...interface{}) {
	mu.RLock()
	enabled := level <= l
	mu.RUnlock()
	if !enabled {
		return
	}
	_ = std.Output(3, levelTag[l]+fmt.Sprintf(format, args...))
}

func Debug(format string, args ...interface{}) { output(DebugLevel, format, args...) }
func Info(format string, args ...interface{})  { output(InfoLevel, format, args...) }
func Warn(format string, args ...interface{})  { output(WarnLevel, format, args...) }
func Error(format string, args ...interface{}) { output(ErrorLevel, format, args...) }
