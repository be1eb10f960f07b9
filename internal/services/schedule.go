package services

import (
	"sort"
	"time"
)

// Pure transforms over the flat task list. These are deterministic and
// stateless; the handlers apply them to one GoalsAndTasks result.

// DefaultScheduleLimit caps the overdue/upcoming lists shown on the home
// schedule view.
const DefaultScheduleLimit = 5

// Overdue returns incomplete tasks due strictly before now, sorted by due
// date descending, truncated to limit. Tasks without a due date are skipped.
func Overdue(items []TaskItem, now time.Time, limit int) []TaskItem {
	var out []TaskItem
	for _, item := range items {
		if item.Completed || item.DueDate == nil {
			continue
		}
		if item.DueDate.Before(now) {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.After(*out[j].DueDate)
	})
	return truncate(out, limit)
}

// Upcoming returns incomplete tasks due strictly after now, sorted by due
// date ascending, truncated to limit.
func Upcoming(items []TaskItem, now time.Time, limit int) []TaskItem {
	var out []TaskItem
	for _, item := range items {
		if item.Completed || item.DueDate == nil {
			continue
		}
		if item.DueDate.After(now) {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(*out[j].DueDate)
	})
	return truncate(out, limit)
}

func truncate(items []TaskItem, limit int) []TaskItem {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

// DueGroup is one calendar bucket: all tasks sharing a due day.
type DueGroup struct {
	Date  string     `json:"date"` // "2006-01-02", empty for unscheduled
	Tasks []TaskItem `json:"tasks"`
}

// GroupByDueDate buckets tasks by due day for the calendar view. Groups are
// sorted by date ascending; tasks without a due date land in a trailing
// group with an empty date.
func GroupByDueDate(items []TaskItem) []DueGroup {
	buckets := make(map[string][]TaskItem)
	var unscheduled []TaskItem

	for _, item := range items {
		if item.DueDate == nil {
			unscheduled = append(unscheduled, item)
			continue
		}
		day := item.DueDate.Format("2006-01-02")
		buckets[day] = append(buckets[day], item)
	}

	days := make([]string, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	sort.Strings(days)

	groups := make([]DueGroup, 0, len(days)+1)
	for _, day := range days {
		groups = append(groups, DueGroup{Date: day, Tasks: buckets[day]})
	}
	if len(unscheduled) > 0 {
		groups = append(groups, DueGroup{Tasks: unscheduled})
	}
	return groups
}

// TimelineEntry positions one task on the Gantt axis: DayOffset days from
// the window start, with WindowDays spanning the earliest to latest due date.
type TimelineEntry struct {
	TaskItem
	DayOffset  int `json:"day_offset"`
	WindowDays int `json:"window_days"`
}

// Timeline computes Gantt positions for all tasks that carry a due date.
// A single-task window has WindowDays 1 so division by the span stays safe
// for renderers.
func Timeline(items []TaskItem) []TimelineEntry {
	var dated []TaskItem
	for _, item := range items {
		if item.DueDate != nil {
			dated = append(dated, item)
		}
	}
	if len(dated) == 0 {
		return nil
	}

	start, end := *dated[0].DueDate, *dated[0].DueDate
	for _, item := range dated[1:] {
		if item.DueDate.Before(start) {
			start = *item.DueDate
		}
		if item.DueDate.After(end) {
			end = *item.DueDate
		}
	}

	windowDays := int(end.Sub(start).Hours()/24) + 1

	entries := make([]TimelineEntry, 0, len(dated))
	for _, item := range dated {
		entries = append(entries, TimelineEntry{
			TaskItem:   item,
			DayOffset:  int(item.DueDate.Sub(start).Hours() / 24),
			WindowDays: windowDays,
		})
	}
	return entries
}
