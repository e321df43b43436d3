package taskboard

import (
	"sort"
	"time"

	"crm-admin-gateway/internal/model"
)

// dateLayouts are tried in order when parsing backend date strings.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseDate parses a backend date string leniently. Absent or malformed
// input yields ok=false, never an error.
func parseDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// Classify partitions tasks into due-date buckets relative to now.
//
// today is now truncated to local midnight; the due-soon window ends at
// today + DueSoonWindowDays. Completion (status code OR completion
// timestamp) is checked first and short-circuits the date rules. A task
// with no parseable due date lands in upcoming. Every input task lands in
// exactly one bucket.
func Classify(tasks []model.Task, now time.Time) Buckets {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dueSoonThreshold := today.AddDate(0, 0, DueSoonWindowDays)

	var b Buckets
	for _, t := range tasks {
		due, hasDue := parseDate(t.DueDate)
		switch {
		case t.Completed():
			b.Completed = append(b.Completed, t)
		case !hasDue:
			b.Upcoming = append(b.Upcoming, t)
		case due.Before(today):
			b.Overdue = append(b.Overdue, t)
		case !due.After(dueSoonThreshold):
			b.DueSoon = append(b.DueSoon, t)
		default:
			b.Upcoming = append(b.Upcoming, t)
		}
	}

	sortByDueDate(b.Overdue)
	sortByDueDate(b.DueSoon)
	sortByDueDate(b.Upcoming)
	sortByCompletion(b.Completed)

	return b
}

// sortByDueDate orders ascending by due date; tasks with no parseable due
// date sort last. Stable: equal keys keep input order.
func sortByDueDate(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		di, oki := parseDate(tasks[i].DueDate)
		dj, okj := parseDate(tasks[j].DueDate)
		if oki != okj {
			return oki
		}
		if !oki {
			return false
		}
		return di.Before(dj)
	})
}

// completionKey is CompletedAt, falling back to UpdatedAt, else epoch so
// the task sorts last among completed.
func completionKey(t model.Task) time.Time {
	if ts, ok := parseDate(t.CompletedAt); ok {
		return ts
	}
	if ts, ok := parseDate(t.UpdatedAt); ok {
		return ts
	}
	return time.Unix(0, 0).UTC()
}

// sortByCompletion orders descending by completion timestamp. Stable.
func sortByCompletion(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return completionKey(tasks[i]).After(completionKey(tasks[j]))
	})
}

// Filter selects one bucket by key; BucketAll returns the flattened set
// in bucket order (overdue, dueSoon, upcoming, completed). The second
// return is false for unknown keys.
func Filter(b Buckets, key BucketKey) ([]model.Task, bool) {
	switch key {
	case BucketOverdue:
		return b.Overdue, true
	case BucketDueSoon:
		return b.DueSoon, true
	case BucketUpcoming:
		return b.Upcoming, true
	case BucketCompleted:
		return b.Completed, true
	case BucketAll:
		all := make([]model.Task, 0, b.Total())
		all = append(all, b.Overdue...)
		all = append(all, b.DueSoon...)
		all = append(all, b.Upcoming...)
		all = append(all, b.Completed...)
		return all, true
	default:
		return nil, false
	}
}
