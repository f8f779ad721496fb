// Package blacklist holds the list ids hidden from every view.
package blacklist

import (
	"strings"

	pstrings "babylist/pkg/platform/strings"
)

// Set is an immutable set of list ids.
type Set struct {
	ids map[string]struct{}
}

// New builds a set, ignoring blanks.
func New(ids ...string) *Set {
	s := &Set{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			s.ids[id] = struct{}{}
		}
	}
	return s
}

// Parse reads a comma separated list of ids.
func Parse(raw string) *Set {
	return New(pstrings.SplitList(raw)...)
}

func (s *Set) IsBlacklisted(listID string) bool {
	_, ok := s.ids[strings.TrimSpace(listID)]
	return ok
}

func (s *Set) Len() int {
	return len(s.ids)
}
