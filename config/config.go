package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

// Имена переменных окружения
const (
	EnvBotToken             = "TELEGRAM_BOT_TOKEN"
	EnvDatabaseURL          = "DATABASE_URL"
	EnvCheckIntervalMinutes = "CHECK_INTERVAL_MINUTES"
	EnvSummaryMinLen        = "SUMMARY_MIN_LEN"
	EnvSummaryMaxLen        = "SUMMARY_MAX_LEN"
	EnvLogLevel             = "LOG_LEVEL"
)

// Значения по умолчанию
const (
	DefaultCheckIntervalMinutes = 15
	DefaultSummaryMinLen        = 140
	DefaultSummaryMaxLen        = 280
	DefaultLogLevel             = "INFO"
)

// DefaultEnvFile файл, который Load читает при первом вызове
const DefaultEnvFile = ".env"

// Config неизменяемая конфигурация сервиса.
// Создаётся только через Load, поля доступны лишь на чтение.
type Config struct {
	botToken             string
	databaseURL          string
	checkIntervalMinutes int
	summaryMinLen        int
	summaryMaxLen        int
	logLevel             string
}

var (
	envFileOnce sync.Once
	envFileErr  error
)

// Load читает .env (один раз за процесс, без перезаписи уже заданных
// переменных), затем собирает и проверяет Config из окружения.
func Load() (Config, error) {
	envFileOnce.Do(func() {
		envFileErr = loadEnvFiles(DefaultEnvFile)
	})
	if envFileErr != nil {
		return Config{}, envFileErr
	}

	return fromEnv(os.LookupEnv)
}

// loadEnvFiles применяет файлы переменных. Отсутствующий файл не ошибка.
func loadEnvFiles(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return newError(ErrEnvFile, "read %s: %v", path, err)
		}
	}
	return nil
}

func fromEnv(lookup func(string) (string, bool)) (Config, error) {
	get := func(name string) string {
		v, _ := lookup(name)
		return strings.TrimSpace(v)
	}

	botToken := get(EnvBotToken)
	databaseURL := get(EnvDatabaseURL)

	var missing []string
	if botToken == "" {
		missing = append(missing, EnvBotToken)
	}
	if databaseURL == "" {
		missing = append(missing, EnvDatabaseURL)
	}
	if len(missing) > 0 {
		return Config{}, newError(ErrMissingVariable,
			"missing required environment variable(s): %s. Create a .env file or set them in the environment.",
			strings.Join(missing, ", "))
	}

	checkInterval, err := intEnv(lookup, EnvCheckIntervalMinutes, DefaultCheckIntervalMinutes)
	if err != nil {
		return Config{}, err
	}
	summaryMin, err := intEnv(lookup, EnvSummaryMinLen, DefaultSummaryMinLen)
	if err != nil {
		return Config{}, err
	}
	summaryMax, err := intEnv(lookup, EnvSummaryMaxLen, DefaultSummaryMaxLen)
	if err != nil {
		return Config{}, err
	}

	logLevel := get(EnvLogLevel)
	if logLevel == "" {
		logLevel = DefaultLogLevel
	}

	for _, f := range []struct {
		name  string
		value int
	}{
		{EnvCheckIntervalMinutes, checkInterval},
		{EnvSummaryMinLen, summaryMin},
		{EnvSummaryMaxLen, summaryMax},
	} {
		if f.value <= 0 {
			return Config{}, newError(ErrNotPositive, "%s must be > 0", f.name)
		}
	}
	if summaryMin > summaryMax {
		return Config{}, newError(ErrSummaryBounds, "%s must be <= %s", EnvSummaryMinLen, EnvSummaryMaxLen)
	}

	return Config{
		botToken:             botToken,
		databaseURL:          databaseURL,
		checkIntervalMinutes: checkInterval,
		summaryMinLen:        summaryMin,
		summaryMaxLen:        summaryMax,
		logLevel:             logLevel,
	}, nil
}

// intEnv возвращает def для незаданной переменной. Заданная, но пустая
// переменная считается некорректным числом.
func intEnv(lookup func(string) (string, bool), name string, def int) (int, error) {
	raw, ok := lookup(name)
	if !ok {
		return def, nil
	}
	raw = strings.TrimSpace(raw)

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, newError(ErrInvalidInteger, "invalid integer for %s: %q", name, raw)
	}
	return n, nil
}

// BotToken токен Telegram-бота
func (c Config) BotToken() string { return c.botToken }

// DatabaseURL строка подключения к базе
func (c Config) DatabaseURL() string { return c.databaseURL }

// CheckIntervalMinutes период проверки новостей в минутах
func (c Config) CheckIntervalMinutes() int { return c.checkIntervalMinutes }

// CheckInterval период проверки новостей
func (c Config) CheckInterval() time.Duration {
	return time.Duration(c.checkIntervalMinutes) * time.Minute
}

// SummaryMinLen минимальная длина саммари
func (c Config) SummaryMinLen() int { return c.summaryMinLen }

// SummaryMaxLen максимальная длина саммари
func (c Config) SummaryMaxLen() int { return c.summaryMaxLen }

// LogLevel уровень логирования
func (c Config) LogLevel() string { return c.logLevel }

// String печатает конфигурацию без секретов: токен маскируется,
// пароль в DATABASE_URL скрывается.
func (c Config) String() string {
	return fmt.Sprintf(
		"Config{BotToken:%s DatabaseURL:%s CheckIntervalMinutes:%d SummaryMinLen:%d SummaryMaxLen:%d LogLevel:%s}",
		maskToken(c.botToken), redactURL(c.databaseURL),
		c.checkIntervalMinutes, c.summaryMinLen, c.summaryMaxLen, c.logLevel,
	)
}

func maskToken(token string) string {
	if token == "" {
		return ""
	}
	// Токен вида "<id>:<secret>", id не секретен.
	if id, _, ok := strings.Cut(token, ":"); ok {
		return id + ":***"
	}
	return "***"
}

func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		// Не URL: ничего не показываем, там может быть пароль в key=value виде.
		if strings.Contains(raw, "password") {
			return "***"
		}
		return raw
	}
	return u.Redacted()
}
