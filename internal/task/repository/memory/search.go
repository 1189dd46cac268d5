package memory

import (
	"strings"

	"voice-task-management/internal/model"
)

// significantWordLen is the length a query word must exceed to count in the
// last search tier.
const significantWordLen = 3

// searchTier decides whether a task matches a query. A tier that does not
// apply to the query (e.g. all-words on a one-word query) returns nil.
type searchTier func(query string, words []string) func(haystack []string) bool

// searchTiers run in order; the first tier with any match supplies the result.
var searchTiers = []searchTier{
	substringTier,
	allWordsTier,
	significantWordTier,
}

func substringTier(query string, _ []string) func([]string) bool {
	return func(haystack []string) bool {
		return containsAny(haystack, query)
	}
}

func allWordsTier(_ string, words []string) func([]string) bool {
	if len(words) < 2 {
		return nil
	}
	return func(haystack []string) bool {
		for _, w := range words {
			if !containsAny(haystack, w) {
				return false
			}
		}
		return true
	}
}

func significantWordTier(_ string, words []string) func([]string) bool {
	var significant []string
	for _, w := range words {
		if len([]rune(w)) > significantWordLen {
			significant = append(significant, w)
		}
	}
	if len(significant) == 0 {
		return nil
	}
	return func(haystack []string) bool {
		for _, w := range significant {
			if containsAny(haystack, w) {
				return true
			}
		}
		return false
	}
}

// Search returns the tasks whose title or category match query, in store
// order. Callers that need a single task take the first element, so ties
// resolve to the earliest position. A blank query matches nothing.
func (r *implRepository) Search(query string) []model.Task {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []model.Task{}
	}
	words := strings.Fields(q)

	r.mu.RLock()
	defer r.mu.RUnlock()

	haystacks := make([][]string, len(r.tasks))
	for i, t := range r.tasks {
		haystacks[i] = []string{strings.ToLower(t.Title), strings.ToLower(t.Category)}
	}

	for _, tier := range searchTiers {
		match := tier(q, words)
		if match == nil {
			continue
		}

		var found []model.Task
		for i, t := range r.tasks {
			if match(haystacks[i]) {
				found = append(found, t)
			}
		}
		if len(found) > 0 {
			return found
		}
	}

	return []model.Task{}
}

func containsAny(haystack []string, needle string) bool {
	for _, h := range haystack {
		if h != "" && strings.Contains(h, needle) {
			return true
		}
	}
	return false
}
