package service

import (
	"github.com/aidar/localtime-bot/internal/domain"
	"github.com/aidar/localtime-bot/internal/repository"
)

// LocalTimeService serves the roster loaded at startup together with
// freshly resolved local times
type LocalTimeService struct {
	roster    []domain.TeamMember
	resolver  Resolver
	formatter *ReplyFormatter
}

// NewLocalTimeService loads the roster once from rosterRepo and creates a new LocalTimeService
func NewLocalTimeService(rosterRepo repository.RosterRepository, resolver Resolver) *LocalTimeService {
	return &LocalTimeService{
		roster:    rosterRepo.Load(),
		resolver:  resolver,
		formatter: NewReplyFormatter(resolver),
	}
}

// LocalTimes returns the reply text for the whole roster
func (s *LocalTimeService) LocalTimes() string {
	return s.formatter.Format(s.roster)
}

// Roster returns a copy of the loaded roster
func (s *LocalTimeService) Roster() []domain.TeamMember {
	return domain.CloneRoster(s.roster)
}

// MemberTimes returns each member with the resolved local time, in roster order
func (s *LocalTimeService) MemberTimes() []domain.MemberTime {
	out := make([]domain.MemberTime, 0, len(s.roster))
	for _, member := range s.roster {
		out = append(out, domain.MemberTime{
			TeamMember: member,
			LocalTime:  s.resolver.Resolve(member.Timezone),
		})
	}
	return out
}
