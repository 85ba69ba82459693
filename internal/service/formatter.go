package service

import (
	"strings"

	"github.com/aidar/localtime-bot/internal/domain"
)

// Resolver resolves a timezone identifier into a display string
type Resolver interface {
	Resolve(timezoneID string) string
}

// ReplyFormatter renders a roster as one "{name}: {time}" line per member
type ReplyFormatter struct {
	resolver Resolver
}

// NewReplyFormatter creates a new ReplyFormatter
func NewReplyFormatter(resolver Resolver) *ReplyFormatter {
	return &ReplyFormatter{resolver: resolver}
}

// Format resolves each member in roster order. The city label is not rendered.
func (f *ReplyFormatter) Format(roster []domain.TeamMember) string {
	var b strings.Builder
	for _, member := range roster {
		b.WriteString(member.Name)
		b.WriteString(": ")
		b.WriteString(f.resolver.Resolve(member.Timezone))
		b.WriteByte('\n')
	}
	return b.String()
}
