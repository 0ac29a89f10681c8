// Package sanitizer strips markup from user-supplied free text before
// it is persisted. Ticket descriptions and resolution notes are rendered
// verbatim by clients, so stored values must be plain text.
package sanitizer

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Service sanitizes free-form text fields.
type Service struct {
	policy *bluemonday.Policy
	mu     sync.RWMutex
}

// NewService creates a sanitizer with a strict text-only policy.
func NewService() *Service {
	return &Service{
		policy: bluemonday.StrictPolicy(),
	}
}

// Sanitize removes all HTML from the input and trims surrounding whitespace.
func (s *Service) Sanitize(input string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return strings.TrimSpace(s.policy.Sanitize(input))
}
