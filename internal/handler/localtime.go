package handler

import (
	"net/http"

	"github.com/aidar/localtime-bot/internal/domain"
)

// LocalTimeReader предоставляет состав команды и локальное время участников
type LocalTimeReader interface {
	Roster() []domain.TeamMember
	MemberTimes() []domain.MemberTime
	LocalTimes() string
}

// LocalTimeHandler обрабатывает эндпоинты состава и локального времени
type LocalTimeHandler struct {
	localTimes LocalTimeReader
}

// NewLocalTimeHandler создает новый LocalTimeHandler
func NewLocalTimeHandler(localTimes LocalTimeReader) *LocalTimeHandler {
	return &LocalTimeHandler{
		localTimes: localTimes,
	}
}

// RosterResponse представляет ответ со составом команды
type RosterResponse struct {
	Members []domain.TeamMember `json:"members"`
}

// LocalTimeResponse представляет ответ с локальным временем участников
type LocalTimeResponse struct {
	Members []domain.MemberTime `json:"members"`
	Text    string              `json:"text"` // Тот же текст, что отправляет бот
}

// GetRoster обрабатывает GET /api/roster
func (h *LocalTimeHandler) GetRoster(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, r, http.StatusOK, RosterResponse{Members: h.localTimes.Roster()})
}

// GetLocalTimes обрабатывает GET /api/localtime
func (h *LocalTimeHandler) GetLocalTimes(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, r, http.StatusOK, LocalTimeResponse{
		Members: h.localTimes.MemberTimes(),
		Text:    h.localTimes.LocalTimes(),
	})
}
