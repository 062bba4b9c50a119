// Package tags implements the autocomplete multi-select used for
// equipment and accessibility filters.
package tags

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"
)

// Vocabulary fetches the full tag list for an endpoint.
type Vocabulary interface {
	FetchTags(ctx context.Context, endpoint string) ([]string, error)
}

// Selector maintains a selected tag set plus a typed prefix filtering
// the fetched vocabulary.
type Selector struct {
	vocabulary []string
	selected   []string
	input      string
}

// NewSelector fetches the vocabulary once from endpoint. A failed fetch
// leaves the vocabulary empty; the selector stays usable.
func NewSelector(ctx context.Context, source Vocabulary, endpoint string) *Selector {
	s := &Selector{}

	vocabulary, err := source.FetchTags(ctx, endpoint)
	if err != nil {
		log.Warn().Err(err).Str("endpoint", endpoint).Msg("tag vocabulary fetch failed")
		return s
	}
	s.vocabulary = vocabulary
	return s
}

// SetInput updates the typed prefix.
func (s *Selector) SetInput(text string) {
	s.input = text
}

// Suggestions returns vocabulary entries that start with the typed
// prefix, case-insensitively, excluding already-selected tags. Source
// order is preserved and an empty prefix yields nothing.
func (s *Selector) Suggestions() []string {
	if s.input == "" {
		return nil
	}

	prefix := strings.ToLower(s.input)
	var out []string
	for _, tag := range s.vocabulary {
		if !strings.HasPrefix(strings.ToLower(tag), prefix) {
			continue
		}
		if s.isSelected(tag) {
			continue
		}
		out = append(out, tag)
	}
	return out
}

// Choose appends a suggestion to the selected set and clears the input.
func (s *Selector) Choose(tag string) {
	s.selected = append(s.selected, tag)
	s.input = ""
}

// Remove drops a tag from the selected set by exact match.
func (s *Selector) Remove(tag string) {
	out := s.selected[:0]
	for _, t := range s.selected {
		if t != tag {
			out = append(out, t)
		}
	}
	s.selected = out
}

// Selected returns the selected tags in insertion order.
func (s *Selector) Selected() []string {
	return append([]string(nil), s.selected...)
}

// DisplayName converts a stored tag to its presentation form. Only the
// display changes; the stored value keeps its underscores.
func DisplayName(tag string) string {
	return strings.ReplaceAll(tag, "_", " ")
}

func (s *Selector) isSelected(tag string) bool {
	for _, t := range s.selected {
		if t == tag {
			return true
		}
	}
	return false
}
