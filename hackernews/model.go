package hackernews

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ItemType is the "type" field of an item.
type ItemType string

const (
	TypeStory   ItemType = "story"
	TypeComment ItemType = "comment"
	TypeJob     ItemType = "job"
	TypePoll    ItemType = "poll"
	TypePollOpt ItemType = "pollopt"
)

// Item is a story, comment, job, poll or poll option.
// Docs: https://github.com/HackerNews/API#items
type Item struct {
	ID          int      `json:"id" yaml:"id"`
	Type        ItemType `json:"type" yaml:"type"`
	By          string   `json:"by,omitempty" yaml:"by,omitempty"`
	Time        int64    `json:"time" yaml:"time"` // unix seconds
	Text        string   `json:"text,omitempty" yaml:"text,omitempty"`
	Title       string   `json:"title,omitempty" yaml:"title,omitempty"`
	URL         string   `json:"url,omitempty" yaml:"url,omitempty"`
	Score       int      `json:"score,omitempty" yaml:"score,omitempty"`
	Kids        []int    `json:"kids,omitempty" yaml:"kids,omitempty"`
	Parent      int      `json:"parent,omitempty" yaml:"parent,omitempty"`
	Descendants int      `json:"descendants,omitempty" yaml:"descendants,omitempty"`
	Parts       []int    `json:"parts,omitempty" yaml:"parts,omitempty"` // polls
	Poll        int      `json:"poll,omitempty" yaml:"poll,omitempty"`   // poll options
	Deleted     bool     `json:"deleted,omitempty" yaml:"deleted,omitempty"`
	Dead        bool     `json:"dead,omitempty" yaml:"dead,omitempty"`
}

// User is a public user profile.
type User struct {
	ID        string `json:"id" yaml:"id"`
	Created   int64  `json:"created" yaml:"created"` // unix seconds
	Karma     int    `json:"karma" yaml:"karma"`
	About     string `json:"about,omitempty" yaml:"about,omitempty"`
	Submitted []int  `json:"submitted,omitempty" yaml:"submitted,omitempty"`
	Delay     int    `json:"delay,omitempty" yaml:"delay,omitempty"`
}

// CreatedAt returns the item creation time.
func (it Item) CreatedAt() time.Time {
	return time.Unix(it.Time, 0)
}

// CreatedAt returns the account creation time.
func (u User) CreatedAt() time.Time {
	return time.Unix(u.Created, 0)
}

// Category derives the front-page section of an item. Stories titled
// "Ask HN:" or "Show HN:" map to ask and show; everything else keeps its type.
func (it Item) Category() string {
	typ := strings.ToLower(strings.TrimSpace(string(it.Type)))
	if typ != string(TypeStory) {
		return typ
	}
	t := strings.ToLower(strings.TrimSpace(it.Title))
	switch {
	case strings.HasPrefix(t, "ask hn:"):
		return "ask"
	case strings.HasPrefix(t, "show hn:"):
		return "show"
	default:
		return typ
	}
}

// DiscussionURL is the news.ycombinator.com page for the item.
func (it Item) DiscussionURL() string {
	return "https://news.ycombinator.com/item?id=" + strconv.Itoa(it.ID)
}

// Link returns the external URL, falling back to the discussion page for text posts.
func (it Item) Link() string {
	if u := strings.TrimSpace(it.URL); u != "" {
		return u
	}
	return it.DiscussionURL()
}

func (it Item) String() string {
	if it.Title != "" {
		return fmt.Sprintf("%d %s %q", it.ID, it.Type, it.Title)
	}
	return fmt.Sprintf("%d %s", it.ID, it.Type)
}

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

var entityReplacer = strings.NewReplacer(
	"&quot;", "\"",
	"&#x27;", "'",
	"&#x2F;", "/",
	"&apos;", "'",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
)

// PlainText returns Text with HTML tags removed and common entities unescaped.
// Paragraph tags become blank lines.
func (it Item) PlainText() string {
	s := strings.TrimSpace(it.Text)
	if s == "" {
		return s
	}
	s = strings.ReplaceAll(s, "<p>", "\n\n")
	s = htmlTagRe.ReplaceAllString(s, "")
	s = entityReplacer.Replace(s)
	return strings.TrimSpace(s)
}
