package search

import (
	"iter"
	"strings"
)

// Suggestions yields the facet's vocabulary minus already-selected values,
// keeping only candidates that contain partial as a case-insensitive
// substring. The sequence is lazy and restartable; nothing is memoized, so a
// fresh call always reflects the current selection.
func (f *FilterState) Suggestions(facet Facet, partial string) iter.Seq[string] {
	needle := strings.ToLower(partial)
	return func(yield func(string) bool) {
		selected := f.tagSet(facet)
		for _, candidate := range Vocabulary(facet) {
			if selected != nil && selected.Contains(candidate) {
				continue
			}
			if !strings.Contains(strings.ToLower(candidate), needle) {
				continue
			}
			if !yield(candidate) {
				return
			}
		}
	}
}

// SuggestionList collects Suggestions into a slice, capped at limit when
// limit > 0. Handlers use this; the iterator form exists for callers that
// stop early.
func (f *FilterState) SuggestionList(facet Facet, partial string, limit int) []string {
	out := []string{}
	for s := range f.Suggestions(facet, partial) {
		out = append(out, s)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
