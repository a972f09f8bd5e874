package logging

import (
	"log"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var current Level = LevelInfo

// ParseLevel maps debug|info|warn|error to a Level. Anything else is info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return LevelError
	case "warn", "warning":
		return LevelWarn
	case "debug":
		return LevelDebug
	default:
		return LevelInfo
	}
}

// SetLevel changes the minimum level that is written.
func SetLevel(l Level) {
	current = l
}

func Enabled(l Level) bool {
	return current <= l
}

func Debugf(format string, args ...interface{}) {
	if Enabled(LevelDebug) {
		log.Printf(format, args...)
	}
}

func Infof(format string, args ...interface{}) {
	if Enabled(LevelInfo) {
		log.Printf(format, args...)
	}
}

func Warnf(format string, args ...interface{}) {
	if Enabled(LevelWarn) {
		log.Printf(format, args...)
	}
}

func Errorf(format string, args ...interface{}) {
	log.Printf(format, args...)
}

func Fatalf(format string, args ...interface{}) {
	log.Fatalf(format, args...)
}
