package logger

// NopLogger отбрасывает все сообщения. Используется в тестах.
type NopLogger struct{}

func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

func (l *NopLogger) Debugf(format string, args ...any)          {}
func (l *NopLogger) Infof(format string, args ...any)           {}
func (l *NopLogger) Warnf(format string, args ...any)           {}
func (l *NopLogger) Errorf(err error, format string, args ...any) {}
