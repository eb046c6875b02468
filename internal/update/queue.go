package update

import "github.com/sandeepkv93/rem/internal/model"

// Queue collects the actions of one slice.
type Queue struct {
	items []model.Action
}

// Push appends a. ToggleCompletedVisibility is applied locally and never
// queued.
func (q *Queue) Push(a model.Action) bool {
	if a == nil || a.Kind() == model.KindToggleCompletedVisibility {
		return false
	}
	q.items = append(q.items, a)
	return true
}

func (q *Queue) Len() int { return len(q.items) }

// Drain returns every queued action and empties the queue.
func (q *Queue) Drain() []model.Action {
	out := q.items
	q.items = nil
	if out == nil {
		return []model.Action{}
	}
	return out
}

func (q *Queue) Reset() { q.items = nil }
