package repository

import (
	"github.com/aidar/localtime-bot/internal/domain"
)

// RosterRepository определяет источник состава команды
type RosterRepository interface {
	// Load возвращает состав команды в порядке отображения.
	// Никогда не возвращает пустой состав: при ошибке подставляется состав по умолчанию.
	Load() []domain.TeamMember
}
