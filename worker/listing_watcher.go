package worker

import (
	"context"
	"log/slog"
	"time"

	"hnfetch/hackernews"
)

// StoriesFetcher is the part of hackernews.Client the watcher needs.
type StoriesFetcher interface {
	Stories(ctx context.Context, l hackernews.Listing, count int) ([]hackernews.Item, error)
}

// ListingWatcher polls listings and reports items that were not in the previous poll.
// The first poll reports every item.
type ListingWatcher struct {
	Client   StoriesFetcher
	Lists    []hackernews.Listing
	Interval time.Duration
	Count    int // items per listing
	// OnItems receives the new items of one listing, in listing order.
	OnItems func(l hackernews.Listing, items []hackernews.Item)

	seen map[hackernews.Listing]map[int]struct{}
}

func (w *ListingWatcher) Start(ctx context.Context) error {
	if w.Interval <= 0 {
		w.Interval = 10 * time.Minute
	}
	if w.Count <= 0 {
		w.Count = hackernews.DefaultCount
	}

	// initial run
	w.runOnce(ctx)

	t := time.NewTicker(w.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			w.runOnce(ctx)
		}
	}
}

func (w *ListingWatcher) runOnce(ctx context.Context) {
	if w.seen == nil {
		w.seen = make(map[hackernews.Listing]map[int]struct{})
	}
	lists := w.Lists
	if len(lists) == 0 {
		lists = []hackernews.Listing{hackernews.Top}
	}
	for _, l := range lists {
		items, err := w.Client.Stories(ctx, l, w.Count)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Error("listing-watcher: fetch list error", "list", l.Short(), "error", err)
			continue
		}
		prev := w.seen[l]
		cur := make(map[int]struct{}, len(items))
		fresh := make([]hackernews.Item, 0, len(items))
		for _, it := range items {
			cur[it.ID] = struct{}{}
			if _, ok := prev[it.ID]; !ok {
				fresh = append(fresh, it)
			}
		}
		w.seen[l] = cur
		slog.Info("listing-watcher: polled list", "list", l.Short(), "items", len(items), "new", len(fresh))
		if len(fresh) > 0 && w.OnItems != nil {
			w.OnItems(l, fresh)
		}
	}
}
