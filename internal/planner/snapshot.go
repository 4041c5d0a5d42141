package planner

import (
	"time"

	"github.com/jkasmommy/brainpod-sub000/internal/store"
)

// ItemsData converts plan items to their persisted form.
func ItemsData(items []PlanItem) []*store.PlanItemData {
	out := make([]*store.PlanItemData, len(items))
	for i, item := range items {
		d := &store.PlanItemData{
			LessonID:     item.LessonID,
			Skills:       append([]string(nil), item.Skills...),
			ScheduledFor: item.ScheduledFor.Format(time.RFC3339),
			Status:       string(item.Status),
			Priority:     item.Priority,
		}
		if item.CompletedAt != nil {
			s := item.CompletedAt.Format(time.RFC3339)
			d.CompletedAt = &s
		}
		out[i] = d
	}
	return out
}

// ItemsFromData rebuilds plan items from their persisted form, dropping
// records whose dates don't parse.
func ItemsFromData(data []*store.PlanItemData) []PlanItem {
	items := make([]PlanItem, 0, len(data))
	for _, d := range data {
		if d == nil {
			continue
		}
		scheduled, err := time.Parse(time.RFC3339, d.ScheduledFor)
		if err != nil {
			continue
		}
		item := PlanItem{
			LessonID:     d.LessonID,
			Skills:       append([]string(nil), d.Skills...),
			ScheduledFor: scheduled,
			Status:       Status(d.Status),
			Priority:     d.Priority,
		}
		if d.CompletedAt != nil {
			if t, err := time.Parse(time.RFC3339, *d.CompletedAt); err == nil {
				item.CompletedAt = &t
			}
		}
		items = append(items, item)
	}
	return items
}
