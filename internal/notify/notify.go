// Package notify carries user-facing notifications from the data layer
// to whatever surface displays them. Consumers subscribe a sink; the
// default sink logs.
package notify

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/kit-start/kitstart/internal/remote"
)

// Level grades a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Event is one notification.
type Event struct {
	Level   Level
	Message string
	Time    time.Time
}

// Sink receives notifications.
type Sink interface {
	Notify(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

func (f SinkFunc) Notify(e Event) { f(e) }

// Service fans notifications out to subscribed sinks.
type Service struct {
	mu     sync.Mutex
	sinks  []Sink
	logger *slog.Logger
}

// NewService creates a notification service whose fallback sink is the
// logger.
func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// Subscribe registers a sink for all subsequent events.
func (s *Service) Subscribe(sink Sink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sinks = append(s.sinks, sink)
}

func (s *Service) publish(level Level, message string) {
	event := Event{Level: level, Message: message, Time: time.Now()}

	s.mu.Lock()
	sinks := make([]Sink, len(s.sinks))
	copy(sinks, s.sinks)
	s.mu.Unlock()

	if len(sinks) == 0 {
		s.logger.Info("notification", "level", level, "message", message)
		return
	}
	for _, sink := range sinks {
		sink.Notify(event)
	}
}

// Info publishes an informational message.
func (s *Service) Info(message string) { s.publish(LevelInfo, message) }

// Success publishes a success message.
func (s *Service) Success(message string) { s.publish(LevelSuccess, message) }

// Warning publishes a warning.
func (s *Service) Warning(message string) { s.publish(LevelWarning, message) }

// Error publishes an error message.
func (s *Service) Error(message string) { s.publish(LevelError, message) }

// HandleAPIError translates an API failure into a user-facing error
// notification and returns the message shown.
func (s *Service) HandleAPIError(err error) string {
	message := APIErrorMessage(err)
	s.Error(message)
	return message
}

// APIErrorMessage maps an API failure onto the message a user sees.
func APIErrorMessage(err error) string {
	var statusErr *remote.StatusError
	if !errors.As(err, &statusErr) {
		return "Сервер недоступен, проверьте подключение к сети"
	}

	switch statusErr.Code {
	case http.StatusUnauthorized:
		return "Сессия истекла, войдите в систему снова"
	case http.StatusForbidden:
		return "Недостаточно прав для выполнения операции"
	case http.StatusNotFound:
		return "Запрашиваемые данные не найдены"
	case http.StatusInternalServerError:
		return "Ошибка сервера, попробуйте позже"
	default:
		if statusErr.Message != "" {
			return statusErr.Message
		}
		return "Произошла ошибка при обращении к серверу"
	}
}
