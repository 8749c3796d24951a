package logging

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
)

// writerHook позволяет отправлять записи лога сразу в несколько io.Writer.
type writerHook struct {
	Writer    []io.Writer
	LogLevels []logrus.Level
}

// Fire вызывается logrus'ом для каждой записи лога.
func (hook *writerHook) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		return err
	}
	for _, w := range hook.Writer {
		if _, err := w.Write([]byte(line)); err != nil {
			return err
		}
	}
	return nil
}

// Levels возвращает уровни, для которых активен хук.
func (hook *writerHook) Levels() []logrus.Level {
	return hook.LogLevels
}

var e *logrus.Entry

// Logger — тонкая обёртка над logrus.Entry, чтобы сервисы не зависели
// от logrus напрямую и могли добавлять контекстные поля.
type Logger struct {
	*logrus.Entry
}

// GetLogger возвращает глобальный экземпляр логгера.
func GetLogger() *Logger {
	return &Logger{e}
}

// WithField возвращает новый логгер с дополнительным полем.
func (l *Logger) WithField(k string, v interface{}) *Logger {
	return &Logger{l.Entry.WithField(k, v)}
}

// WithFields возвращает новый логгер с набором дополнительных полей.
func (l *Logger) WithFields(fields logrus.Fields) *Logger {
	return &Logger{l.Entry.WithFields(fields)}
}

func init() {
	l := logrus.New()
	l.SetReportCaller(true)
	l.Formatter = &logrus.TextFormatter{
		CallerPrettyfier: func(f *runtime.Frame) (string, string) {
			filename := path.Base(f.File)
			return fmt.Sprintf("%s()", f.Function), fmt.Sprintf("%s:%d", filename, f.Line)
		},
		DisableColors: false,
		FullTimestamp: true,
	}

	// Весь вывод идет через хук, сам логгер пишет "в никуда".
	l.SetOutput(io.Discard)

	l.AddHook(&writerHook{
		Writer:    []io.Writer{os.Stdout},
		LogLevels: logrus.AllLevels,
	})

	l.SetLevel(logrus.TraceLevel)

	e = logrus.NewEntry(l)
}
