package hackernews

import (
	"strings"
)

// DefaultBaseAPI is the public v0 Firebase endpoint.
const DefaultBaseAPI = "https://hacker-news.firebaseio.com/v0"

// Placeholder is the token ResolveURL substitutes in an endpoint template.
const Placeholder = "{id}"

// Endpoints holds the resolved request URLs for one API base.
type Endpoints struct {
	Item    string // template
	User    string // template
	MaxItem string
	lists   map[Listing]string
}

// NewEndpoints builds the endpoint set for baseAPI. An empty baseAPI selects DefaultBaseAPI.
func NewEndpoints(baseAPI string) Endpoints {
	if strings.TrimSpace(baseAPI) == "" {
		baseAPI = DefaultBaseAPI
	}
	base := strings.TrimRight(baseAPI, "/")
	e := Endpoints{
		Item:    base + "/item/" + Placeholder + ".json",
		User:    base + "/user/" + Placeholder + ".json",
		MaxItem: base + "/maxitem.json",
		lists:   make(map[Listing]string, len(Listings)),
	}
	for _, l := range Listings {
		e.lists[l] = base + "/" + string(l) + ".json"
	}
	return e
}

// ListingURL returns the URL for a listing, or false if the listing is unknown.
func (e Endpoints) ListingURL(l Listing) (string, bool) {
	u, ok := e.lists[l]
	return u, ok
}

// ResolveURL replaces the first Placeholder in template with id. The id is not escaped or validated.
func ResolveURL(template, id string) string {
	return strings.Replace(template, Placeholder, id, 1)
}
