package hackernews

import (
	"fmt"
	"strings"
)

// Listing names a ranked list of item IDs published by the API.
type Listing string

const (
	Top  Listing = "topstories"
	New  Listing = "newstories"
	Best Listing = "beststories"
	Ask  Listing = "askstories"
	Show Listing = "showstories"
	Job  Listing = "jobstories"
)

// Listings is every listing the API publishes, in front-page order.
var Listings = []Listing{Top, New, Best, Ask, Show, Job}

// ParseListing maps a short ("top") or full ("topstories") name to a Listing.
func ParseListing(name string) (Listing, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "top", "topstories":
		return Top, nil
	case "new", "newstories":
		return New, nil
	case "best", "beststories":
		return Best, nil
	case "ask", "askstories":
		return Ask, nil
	case "show", "showstories":
		return Show, nil
	case "job", "jobs", "jobstories":
		return Job, nil
	default:
		return "", fmt.Errorf("%w: unknown listing %q", ErrInvalidArgument, name)
	}
}

// Short returns the listing name without the "stories" suffix.
func (l Listing) Short() string {
	return strings.TrimSuffix(string(l), "stories")
}
