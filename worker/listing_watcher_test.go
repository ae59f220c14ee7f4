package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hnfetch/hackernews"
)

type fakeFetcher struct {
	mu     sync.Mutex
	polls  map[hackernews.Listing][][]int // successive responses per listing
	fail   map[hackernews.Listing]error
	counts []int
}

func (f *fakeFetcher) Stories(_ context.Context, l hackernews.Listing, count int) ([]hackernews.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts = append(f.counts, count)
	if err := f.fail[l]; err != nil {
		return nil, err
	}
	seq := f.polls[l]
	if len(seq) == 0 {
		return nil, nil
	}
	ids := seq[0]
	if len(seq) > 1 {
		f.polls[l] = seq[1:]
	}
	items := make([]hackernews.Item, len(ids))
	for i, id := range ids {
		items[i] = hackernews.Item{ID: id, Type: hackernews.TypeStory}
	}
	return items, nil
}

func ids(items []hackernews.Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestListingWatcherReportsOnlyNewItems(t *testing.T) {
	f := &fakeFetcher{polls: map[hackernews.Listing][][]int{
		hackernews.New: {{3, 2, 1}, {4, 3, 2}, {4, 3, 2}},
	}}
	var got [][]int
	w := &ListingWatcher{
		Client: f,
		Lists:  []hackernews.Listing{hackernews.New},
		Count:  3,
		OnItems: func(l hackernews.Listing, items []hackernews.Item) {
			assert.Equal(t, hackernews.New, l)
			got = append(got, ids(items))
		},
	}

	ctx := context.Background()
	w.runOnce(ctx)
	w.runOnce(ctx)
	w.runOnce(ctx)

	assert.Equal(t, [][]int{{3, 2, 1}, {4}}, got)
	assert.Equal(t, []int{3, 3, 3}, f.counts)
}

func TestListingWatcherContinuesAfterFailure(t *testing.T) {
	f := &fakeFetcher{
		polls: map[hackernews.Listing][][]int{hackernews.Job: {{9}}},
		fail:  map[hackernews.Listing]error{hackernews.Top: errors.New("status 500")},
	}
	reported := map[hackernews.Listing][]int{}
	w := &ListingWatcher{
		Client:  f,
		Lists:   []hackernews.Listing{hackernews.Top, hackernews.Job},
		OnItems: func(l hackernews.Listing, items []hackernews.Item) { reported[l] = ids(items) },
	}

	w.runOnce(context.Background())

	assert.Equal(t, map[hackernews.Listing][]int{hackernews.Job: {9}}, reported)
}

func TestManagerStopsOnCancel(t *testing.T) {
	f := &fakeFetcher{polls: map[hackernews.Listing][][]int{hackernews.Top: {{1}}}}
	polled := make(chan struct{}, 1)
	w := &ListingWatcher{
		Client:   f,
		Interval: time.Hour,
		OnItems: func(hackernews.Listing, []hackernews.Item) {
			select {
			case polled <- struct{}{}:
			default:
			}
		},
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewManager(w).Start(ctx) }()

	select {
	case <-polled:
	case <-time.After(time.Second):
		t.Fatal("watcher did not poll")
	}
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("manager did not stop")
	}
	assert.Equal(t, []int{hackernews.DefaultCount}, f.counts)
}
