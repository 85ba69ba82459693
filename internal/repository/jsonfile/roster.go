package jsonfile

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/aidar/localtime-bot/internal/domain"
)

// DefaultPath is the well-known roster file name looked up in the working directory.
const DefaultPath = "team_members.json"

// RosterStore реализует repository.RosterRepository поверх JSON файла
type RosterStore struct {
	path   string
	logger *slog.Logger
}

// NewRosterStore создает новый экземпляр RosterStore
func NewRosterStore(path string, logger *slog.Logger) *RosterStore {
	if path == "" {
		path = DefaultPath
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RosterStore{path: path, logger: logger}
}

// record mirrors one entry of the roster file. Pointers distinguish
// absent and null fields from empty strings.
type record struct {
	Name     *string `json:"name"`
	City     *string `json:"city"`
	Timezone *string `json:"timezone"`
}

func (r record) toMember(index int) (domain.TeamMember, error) {
	switch {
	case r.Name == nil:
		return domain.TeamMember{}, fmt.Errorf("%w: record %d: missing \"name\"", domain.ErrInvalidMember, index)
	case r.City == nil:
		return domain.TeamMember{}, fmt.Errorf("%w: record %d: missing \"city\"", domain.ErrInvalidMember, index)
	case r.Timezone == nil:
		return domain.TeamMember{}, fmt.Errorf("%w: record %d: missing \"timezone\"", domain.ErrInvalidMember, index)
	}
	return domain.TeamMember{Name: *r.Name, City: *r.City, Timezone: *r.Timezone}, nil
}

// Load читает состав из файла. Любая ошибка (нет файла, битый JSON,
// запись без обязательного поля) приводит к полной подмене составом по умолчанию.
func (s *RosterStore) Load() []domain.TeamMember {
	roster, err := s.Read()
	if err != nil {
		s.logger.Error("Error loading team members from file", "path", s.path, "error", err)
		s.logger.Info("Using default team members configuration")
		return domain.DefaultRoster()
	}

	s.logger.Info("Loaded team members from file", "path", s.path, "count", len(roster))
	return roster
}

// Read parses the roster file without falling back. Every failure wraps
// domain.ErrRosterLoad.
func (s *RosterStore) Read() ([]domain.TeamMember, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRosterLoad, err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrRosterLoad, s.path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrRosterLoad, s.path, domain.ErrEmptyRoster)
	}

	roster := make([]domain.TeamMember, 0, len(records))
	for i, r := range records {
		member, err := r.toMember(i)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrRosterLoad, s.path, err)
		}
		roster = append(roster, member)
	}

	return roster, nil
}

// Path возвращает путь к файлу состава
func (s *RosterStore) Path() string {
	return s.path
}
