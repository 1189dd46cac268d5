package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"voice-task-management/internal/model"
	"voice-task-management/internal/task/repository"
)

func TestSearchTiers(t *testing.T) {
	r := newTestRepo(t)
	r.Create(repository.CreateTaskOptions{Title: "Fix bug in login"})
	r.Create(repository.CreateTaskOptions{Title: "Write docs", Category: "Documentation"})
	r.Create(repository.CreateTaskOptions{Title: "Compliance review"})
	r.Create(repository.CreateTaskOptions{Title: "Review login flow"})

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "substring in title", query: "compliance", want: []string{"Compliance review"}},
		{name: "case folded", query: "FIX BUG", want: []string{"Fix bug in login"}},
		{name: "substring in category", query: "documentation", want: []string{"Write docs"}},
		{name: "substring tier wins over word tiers", query: "review", want: []string{"Compliance review", "Review login flow"}},
		{name: "all words any order", query: "login bug", want: []string{"Fix bug in login"}},
		{name: "all words across title and category", query: "docs documentation", want: []string{"Write docs"}},
		{name: "significant word", query: "the compliance thing", want: []string{"Compliance review"}},
		{name: "short words ignored in last tier", query: "fix the car", want: []string{}},
		{name: "nothing", query: "nonexistent", want: []string{}},
		{name: "blank", query: "   ", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(r.Search(tt.query)))
		})
	}
}

func TestSearchFindsEveryTitleBySubstring(t *testing.T) {
	r := newTestRepo(t)
	all := seed(t, r, "Buy milk", "Call mom about the trip", "Quarterly tax filing", "Renew passport")

	for _, task := range all {
		for _, q := range []string{task.Title, task.Title[2:], task.Title[:len(task.Title)-2]} {
			found := r.Search(q)
			assert.Contains(t, found, task, "query %q", q)
		}
	}
}

func TestSearchMultiWordOrderInsensitive(t *testing.T) {
	r := newTestRepo(t)
	target := r.Create(repository.CreateTaskOptions{Title: "prepare quarterly budget report"})
	r.Create(repository.CreateTaskOptions{Title: "unrelated"})

	for _, q := range []string{"report budget", "budget quarterly prepare", "report prepare"} {
		assert.Equal(t, []model.Task{target}, r.Search(q), "query %q", q)
	}
}

func TestSearchTieBreakIsStoreOrder(t *testing.T) {
	r := newTestRepo(t)
	seed(t, r, "review A", "review B", "review C")

	found := r.Search("review")
	assert.Equal(t, []string{"review A", "review B", "review C"}, titles(found))
}
