package hackernews

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultCount is the listing size used when Config.DefaultCount is unset.
const DefaultCount = 10

// Config controls a Client.
type Config struct {
	BaseAPI string // defaults to DefaultBaseAPI
	// DefaultCount is used by the named listing accessors when the caller omits a count.
	DefaultCount int
	// MaxConcurrency bounds the item fan-out of a listing. Zero or negative launches
	// one request per item at once.
	MaxConcurrency int
	Timeout        time.Duration // per request, used by the default transport
	UserAgent      string
}

// Client is a read-only Hacker News API client.
// Docs: https://github.com/HackerNews/API
type Client struct {
	endpoints      Endpoints
	transport      Transport
	defaultCount   int
	maxConcurrency int
	logger         *slog.Logger
}

// NewClient creates a client over an HTTPTransport built from cfg.
func NewClient(cfg Config) *Client {
	if cfg.DefaultCount <= 0 {
		cfg.DefaultCount = DefaultCount
	}
	return &Client{
		endpoints:      NewEndpoints(cfg.BaseAPI),
		transport:      NewHTTPTransport(cfg.Timeout, cfg.UserAgent),
		defaultCount:   cfg.DefaultCount,
		maxConcurrency: cfg.MaxConcurrency,
		logger:         slog.Default().With("component", "hackernews"),
	}
}

// WithTransport returns a copy of the client that sends requests through t.
func (c *Client) WithTransport(t Transport) *Client {
	c2 := *c
	if t != nil {
		c2.transport = t
	}
	return &c2
}

// WithLogger returns a copy of the client that logs to logger.
func (c *Client) WithLogger(logger *slog.Logger) *Client {
	c2 := *c
	if logger != nil {
		c2.logger = logger.With("component", "hackernews")
	}
	return &c2
}

// Endpoints returns the URLs the client requests.
func (c *Client) Endpoints() Endpoints {
	return c.endpoints
}

// ParseItemID parses a decimal item ID. Anything other than a positive integer
// is rejected with ErrInvalidArgument.
func ParseItemID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: item id %q is not an integer", ErrInvalidArgument, s)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%w: item id must be positive, got %d", ErrInvalidArgument, id)
	}
	return id, nil
}

// Item fetches a single item by ID.
func (c *Client) Item(ctx context.Context, id int) (Item, error) {
	if id <= 0 {
		return Item{}, fmt.Errorf("%w: item id must be positive, got %d", ErrInvalidArgument, id)
	}
	u := ResolveURL(c.endpoints.Item, strconv.Itoa(id))
	var it *Item
	if err := c.get(ctx, "item", u, &it); err != nil {
		return Item{}, err
	}
	if it == nil {
		return Item{}, &FetchError{Op: "item", URL: u, Err: ErrNotFound}
	}
	return *it, nil
}

// User fetches a user profile. Surrounding whitespace in username is ignored.
func (c *Client) User(ctx context.Context, username string) (User, error) {
	name := strings.TrimSpace(username)
	if name == "" {
		return User{}, fmt.Errorf("%w: username must not be empty", ErrInvalidArgument)
	}
	u := ResolveURL(c.endpoints.User, name)
	var usr *User
	if err := c.get(ctx, "user", u, &usr); err != nil {
		return User{}, err
	}
	if usr == nil {
		return User{}, &FetchError{Op: "user", URL: u, Err: ErrNotFound}
	}
	return *usr, nil
}

// MaxItem returns the current largest item ID.
func (c *Client) MaxItem(ctx context.Context) (int, error) {
	var id int
	if err := c.get(ctx, "maxitem", c.endpoints.MaxItem, &id); err != nil {
		return 0, err
	}
	return id, nil
}

// TopStories returns the first count top stories (default count when omitted).
func (c *Client) TopStories(ctx context.Context, count ...int) ([]Item, error) {
	return c.named(ctx, Top, count)
}

// NewStories returns the first count newest stories.
func (c *Client) NewStories(ctx context.Context, count ...int) ([]Item, error) {
	return c.named(ctx, New, count)
}

// BestStories returns the first count best stories.
func (c *Client) BestStories(ctx context.Context, count ...int) ([]Item, error) {
	return c.named(ctx, Best, count)
}

// AskStories returns the first count Ask HN posts.
func (c *Client) AskStories(ctx context.Context, count ...int) ([]Item, error) {
	return c.named(ctx, Ask, count)
}

// ShowStories returns the first count Show HN posts.
func (c *Client) ShowStories(ctx context.Context, count ...int) ([]Item, error) {
	return c.named(ctx, Show, count)
}

// JobStories returns the first count job posts.
func (c *Client) JobStories(ctx context.Context, count ...int) ([]Item, error) {
	return c.named(ctx, Job, count)
}

func (c *Client) named(ctx context.Context, l Listing, count []int) ([]Item, error) {
	switch len(count) {
	case 0:
		return c.Stories(ctx, l, c.defaultCount)
	case 1:
		return c.Stories(ctx, l, count[0])
	default:
		return nil, fmt.Errorf("%w: at most one count, got %d", ErrInvalidArgument, len(count))
	}
}

// Stories fetches listing l and expands its first count IDs into items, in listing order.
// A listing shorter than count yields fewer items. Any failed item fails the whole call.
func (c *Client) Stories(ctx context.Context, l Listing, count int) ([]Item, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: count must be positive, got %d", ErrInvalidArgument, count)
	}
	u, ok := c.endpoints.ListingURL(l)
	if !ok {
		return nil, fmt.Errorf("%w: unknown listing %q", ErrInvalidArgument, l)
	}
	var ids []int
	if err := c.get(ctx, "listing", u, &ids); err != nil {
		return nil, err
	}
	if len(ids) > count {
		ids = ids[:count]
	}
	c.logger.Debug("fetching items", "list", l.Short(), "count", len(ids))
	return c.Items(ctx, ids)
}

// Items fetches ids concurrently and returns them in the order given. The first
// failure cancels the remaining requests and is returned alone.
func (c *Client) Items(ctx context.Context, ids []int) ([]Item, error) {
	for _, id := range ids {
		if id <= 0 {
			return nil, fmt.Errorf("%w: item id must be positive, got %d", ErrInvalidArgument, id)
		}
	}
	if len(ids) == 0 {
		return []Item{}, nil
	}
	items := make([]Item, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	if c.maxConcurrency > 0 {
		g.SetLimit(c.maxConcurrency)
	}
	for i, id := range ids {
		g.Go(func() error {
			it, err := c.Item(gctx, id)
			if err != nil {
				return err
			}
			items[i] = it
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		c.logger.Warn("item fan-out failed", "count", len(ids), "error", err)
		return nil, err
	}
	return items, nil
}

func (c *Client) get(ctx context.Context, op, url string, v any) error {
	if err := c.transport.Get(ctx, url, v); err != nil {
		return &FetchError{Op: op, URL: url, Err: err}
	}
	return nil
}
