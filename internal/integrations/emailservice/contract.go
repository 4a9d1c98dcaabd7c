package emailservice

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder фиксирует результат и длительность отправки
type MetricsRecorder interface {
	ObserveNotification(status string, seconds float64)
}
