package domain

import "errors"

// Доменные ошибки сервиса
var (
	// ErrUnknownTimezone возвращается, когда идентификатор не найден в базе часовых поясов
	ErrUnknownTimezone = errors.New("unknown timezone")

	// ErrRosterLoad возвращается при любой ошибке загрузки состава из файла
	ErrRosterLoad = errors.New("failed to load team roster")

	// ErrInvalidMember возвращается, когда у записи состава нет обязательного поля
	ErrInvalidMember = errors.New("invalid team member record")

	// ErrEmptyRoster возвращается, когда файл состава не содержит ни одной записи
	ErrEmptyRoster = errors.New("team roster is empty")

	// ErrMissingToken возвращается, когда не задан токен бота
	ErrMissingToken = errors.New("bot token is missing")

	// ErrSendFailed возвращается, когда транспорт не смог отправить ответ
	ErrSendFailed = errors.New("failed to send reply")

	// ErrUnauthorized возвращается при неудачной аутентификации
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidToken возвращается когда JWT токен невалиден
	ErrInvalidToken = errors.New("invalid token")
)

// ErrorCode представляет коды ошибок HTTP API
type ErrorCode string

// Коды ошибок HTTP API
const (
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"   // Токен отсутствует или невалиден
	CodeInternal     ErrorCode = "INTERNAL_ERROR" // Внутренняя ошибка
)

// MapErrorToCode преобразует доменные ошибки в коды ошибок API
func MapErrorToCode(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidToken):
		return CodeUnauthorized
	default:
		return CodeInternal
	}
}
