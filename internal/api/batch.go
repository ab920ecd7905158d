package api

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"roomboard/internal/room"
)

// SaveReport summarizes a batch working-hours save: how many rooms were
// written, how many were skipped as read-only, and which room failed when
// the pass was aborted.
type SaveReport struct {
	Saved      int
	Skipped    int
	FailedRoom string // display name, empty on full success
}

func (r SaveReport) String() string {
	s := fmt.Sprintf("%d room(s) saved", r.Saved)
	if r.Skipped > 0 {
		s += fmt.Sprintf(", %d read-only room(s) skipped", r.Skipped)
	}
	if r.FailedRoom != "" {
		s += fmt.Sprintf(", aborted at %s", r.FailedRoom)
	}
	return s
}

// FetchAllWorkingHours loads working hours for every room concurrently and
// waits for the whole batch; no ordering is guaranteed between rooms.
// A per-room failure leaves that room unrestricted (no document) and
// read-only, and is logged rather than failing the batch: the dashboard
// still renders with the rooms that did load.
func (c *Client) FetchAllWorkingHours(ctx context.Context, rooms []*room.Room) {
	var wg sync.WaitGroup
	for _, r := range rooms {
		wg.Add(1)
		go func(r *room.Room) {
			defer wg.Done()
			hours, editable, err := c.WorkingHours(ctx, r.Email)
			if err != nil {
				c.log.Warn("working hours unavailable",
					zap.String("room", r.DisplayName), zap.Error(err))
				r.Hours = nil
				r.Editable = false
				return
			}
			r.Hours = hours
			r.Editable = editable
		}(r)
	}
	wg.Wait()
}

// SaveAllWorkingHours replaces the documents of all editable rooms,
// sequentially, one room at a time. Read-only rooms are skipped and
// counted. The first failure aborts the remaining saves in this pass; the
// report then carries the failing room's display name alongside the counts
// so partial completion is visible to the user.
func (c *Client) SaveAllWorkingHours(ctx context.Context, rooms []*room.Room) (SaveReport, error) {
	var report SaveReport
	for _, r := range rooms {
		if !r.Editable {
			report.Skipped++
			continue
		}
		if err := c.SaveWorkingHours(ctx, r.Email, r.Hours.WireDocument()); err != nil {
			report.FailedRoom = r.DisplayName
			return report, fmt.Errorf("saving %s: %w", r.DisplayName, err)
		}
		report.Saved++
	}
	c.log.Info("working hours saved",
		zap.Int("saved", report.Saved), zap.Int("skipped", report.Skipped))
	return report, nil
}
