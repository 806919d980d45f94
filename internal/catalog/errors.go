package catalog

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNoMatch каталог не смог подобрать собаку из переданного списка
	ErrNoMatch = errors.New("каталог не нашел подходящую собаку")
	// ErrUnauthorized каталог отклонил запрос из-за отсутствия или истечения авторизации
	ErrUnauthorized = errors.New("нет авторизации в каталоге")
	// ErrEmptyIDs запрос с пустым списком идентификаторов не отправляется
	ErrEmptyIDs = errors.New("пустой список идентификаторов")
)

// TransportError ошибка связи с каталогом. Status равен 0, если ответа не было вовсе
type TransportError struct {
	Status  int
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("ошибка связи с каталогом. %s", e.Message)
	}
	return fmt.Sprintf("каталог вернул статус %d. %s", e.Status, e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is ошибки авторизации считаются ErrUnauthorized
func (e *TransportError) Is(target error) bool {
	return target == ErrUnauthorized && (e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden)
}
