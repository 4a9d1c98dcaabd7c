package middleware

import (
	"fmt"
	"net/http"

	"github.com/gorilla/handlers"
)

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

// recoveryLogger адаптер под handlers.RecoveryHandlerLogger
type recoveryLogger struct {
	log Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.log.Error("panic recovered: %s", fmt.Sprint(v...))
}

// Recovery превращает панику в обработчике в 500 ответ с записью в лог
func Recovery(log Logger) func(http.Handler) http.Handler {
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{log: log}),
		handlers.PrintRecoveryStack(false),
	)
}
