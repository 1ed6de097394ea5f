// Package logger собирает логгер процесса из уровня, заданного в конфигурации.
package logger

import (
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Уровни, которых нет в logrus, но которые встречаются в LOG_LEVEL.
var aliases = map[string]log.Level{
	"critical": log.FatalLevel,
	"warning":  log.WarnLevel,
}

// ParseLevel разбирает уровень без учёта регистра.
func ParseLevel(level string) (log.Level, error) {
	name := strings.ToLower(strings.TrimSpace(level))
	if lvl, ok := aliases[name]; ok {
		return lvl, nil
	}
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("parse log level %q: %w", level, err)
	}
	return lvl, nil
}

// New создаёт логгер с текстовым форматом. При неизвестном уровне логгер
// всё равно возвращается (на уровне info) вместе с ошибкой.
func New(level string, out io.Writer) (*log.Logger, error) {
	l := log.New()
	l.SetOutput(out)
	l.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	lvl, err := ParseLevel(level)
	l.SetLevel(lvl)

	return l, err
}
