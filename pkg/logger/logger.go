package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger é a interface para logging
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// ZerologLogger é a implementação de Logger baseada em zerolog
type ZerologLogger struct {
	log zerolog.Logger
}

// NewLogger cria uma nova instância de Logger escrevendo no stdout
func NewLogger() Logger {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	return &ZerologLogger{
		log: zerolog.New(output).With().Timestamp().Logger(),
	}
}

// NewLoggerTo cria um Logger escrevendo no destino informado (útil em testes)
func NewLoggerTo(w io.Writer) Logger {
	return &ZerologLogger{
		log: zerolog.New(w).With().Timestamp().Logger(),
	}
}

// Info registra uma mensagem de informação
func (l *ZerologLogger) Info(msg string, keysAndValues ...interface{}) {
	withFields(l.log.Info(), keysAndValues).Msg(msg)
}

// Error registra uma mensagem de erro
func (l *ZerologLogger) Error(msg string, keysAndValues ...interface{}) {
	withFields(l.log.Error(), keysAndValues).Msg(msg)
}

// Debug registra uma mensagem de debug
func (l *ZerologLogger) Debug(msg string, keysAndValues ...interface{}) {
	withFields(l.log.Debug(), keysAndValues).Msg(msg)
}

// Warn registra uma mensagem de aviso
func (l *ZerologLogger) Warn(msg string, keysAndValues ...interface{}) {
	withFields(l.log.Warn(), keysAndValues).Msg(msg)
}

// withFields anexa os pares chave/valor ao evento de log
func withFields(event *zerolog.Event, keysAndValues []interface{}) *zerolog.Event {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprint(keysAndValues[i])
		}
		event = event.Interface(key, keysAndValues[i+1])
	}
	return event
}
