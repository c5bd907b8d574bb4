// internal/logging/logger.go
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Level определяет уровни логирования
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel разбирает имя уровня без учёта регистра. Пустая строка означает INFO.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return DEBUG, nil
	case "", "info":
		return INFO, nil
	case "warn", "warning":
		return WARN, nil
	case "error":
		return ERROR, nil
	}
	return INFO, fmt.Errorf("unknown log level %q", name)
}

// Logger пишет в консоль сообщения от заданного уровня и выше,
// в файл (если подключён) пишет всё.
type Logger struct {
	level   Level
	console *log.Logger
	file    *log.Logger
	closer  io.Closer
}

// New создаёт логгер без файла.
func New(level Level, console io.Writer) *Logger {
	return &Logger{
		level:   level,
		console: log.New(console, "", log.LstdFlags),
	}
}

// AttachFile открывает файл лога с временной меткой в каталоге dir.
func (l *Logger) AttachFile(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	name := filepath.Join(dir, fmt.Sprintf("ironslay_%s.log", time.Now().Format("2006-01-02_15-04-05")))
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	l.file = log.New(f, "", log.LstdFlags)
	l.closer = f
	return nil
}

// Close закрывает файл лога, если он был открыт.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer, l.file = nil, nil
	return err
}

func (l *Logger) Level() Level { return l.level }

func (l *Logger) Debugf(format string, args ...interface{}) { l.write(DEBUG, format, args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.write(INFO, format, args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.write(WARN, format, args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.write(ERROR, format, args...) }

func (l *Logger) write(level Level, format string, args ...interface{}) {
	message := fmt.Sprintf("[%s] %s", level, fmt.Sprintf(format, args...))
	if l.file != nil {
		l.file.Println(message)
	}
	if level >= l.level {
		l.console.Println(message)
	}
}

// Глобальный экземпляр логгера. До Init сообщения INFO+ идут в stderr.
var std = New(INFO, os.Stderr)

// Init настраивает глобальный логгер по имени уровня и каталогу логов.
// Пустой dir отключает запись в файл.
func Init(levelName, dir string) error {
	level, err := ParseLevel(levelName)
	if err != nil {
		return err
	}
	l := New(level, os.Stdout)
	if dir != "" {
		if err := l.AttachFile(dir); err != nil {
			return err
		}
	}
	SetDefault(l)
	return nil
}

// SetDefault заменяет глобальный логгер. Предыдущий файл закрывается.
func SetDefault(l *Logger) {
	if std != nil && std != l {
		std.Close()
	}
	std = l
}

// Default возвращает текущий глобальный логгер.
func Default() *Logger { return std }

// Close закрывает глобальный логгер
func Close() {
	std.Close()
}

func LogDebug(format string, args ...interface{}) { std.write(DEBUG, format, args...) }
func LogInfo(format string, args ...interface{})  { std.write(INFO, format, args...) }
func LogWarn(format string, args ...interface{})  { std.write(WARN, format, args...) }
func LogError(format string, args ...interface{}) { std.write(ERROR, format, args...) }
