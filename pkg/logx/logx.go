package logx

import (
	"fmt"
	"log"
	"os"
	"sync/atomic"
)

// Level controls which messages are emitted.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	currentLevel atomic.Int32
	logger       = log.New(os.Stderr, "", log.LstdFlags)
)

func init() {
	currentLevel.Store(int32(LevelInfo))
}

// SetLevel sets the minimum level that will be logged.
func SetLevel(l Level) {
	currentLevel.Store(int32(l))
}

func enabled(l Level) bool {
	return l >= Level(currentLevel.Load())
}

func output(l Level, prefix, msg string) {
	if !enabled(l) {
		return
	}
	logger.Println(prefix + " " + msg)
}

func Debug(msg string)                  { output(LevelDebug, "DEBUG", msg) }
func Debugf(format string, args ...any) { output(LevelDebug, "DEBUG", fmt.Sprintf(format, args...)) }

func Info(msg string)                  { output(LevelInfo, "INFO", msg) }
func Infof(format string, args ...any) { output(LevelInfo, "INFO", fmt.Sprintf(format, args...)) }

func Warn(msg string)                  { output(LevelWarn, "WARN", msg) }
func Warnf(format string, args ...any) { output(LevelWarn, "WARN", fmt.Sprintf(format, args...)) }

func Error(msg string)                  { output(LevelError, "ERROR", msg) }
func Errorf(format string, args ...any) { output(LevelError, "ERROR", fmt.Sprintf(format, args...)) }

// Fatalf logs at error level and exits the process.
func Fatalf(format string, args ...any) {
	logger.Println("FATAL " + fmt.Sprintf(format, args...))
	os.Exit(1)
}
