package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Info(action, message, requestID string, details map[string]interface{})
	Debug(action, message, requestID string, details map[string]interface{})
	Error(action, message, requestID string, details map[string]interface{}, err error)
}

type logrusLogger struct {
	entry *logrus.Entry
}

// New builds a JSON logger tagged with the service name and hostname.
// Unknown levels fall back to info.
func New(service, level string) Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	hostname, _ := os.Hostname()
	return &logrusLogger{entry: l.WithFields(logrus.Fields{
		"service":  service,
		"hostname": hostname,
	})}
}

func (l *logrusLogger) Info(action, message, requestID string, details map[string]interface{}) {
	l.with(action, requestID, details).Info(message)
}

func (l *logrusLogger) Debug(action, message, requestID string, details map[string]interface{}) {
	l.with(action, requestID, details).Debug(message)
}

func (l *logrusLogger) Error(action, message, requestID string, details map[string]interface{}, err error) {
	entry := l.with(action, requestID, details)
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Error(message)
}

func (l *logrusLogger) with(action, requestID string, details map[string]interface{}) *logrus.Entry {
	entry := l.entry.WithField("action", action)
	if requestID != "" {
		entry = entry.WithField("request_id", requestID)
	}
	if len(details) > 0 {
		entry = entry.WithField("details", details)
	}
	return entry
}
