package hackernews

import "testing"

func TestResolveURL(t *testing.T) {
	e := NewEndpoints("")
	if got, want := ResolveURL(e.Item, "123"), "https://hacker-news.firebaseio.com/v0/item/123.json"; got != want {
		t.Errorf("item url: want %q, got %q", want, got)
	}
	if got, want := ResolveURL(e.User, "dh"), "https://hacker-news.firebaseio.com/v0/user/dh.json"; got != want {
		t.Errorf("user url: want %q, got %q", want, got)
	}
}

func TestResolveURLReplacesOnce(t *testing.T) {
	got := ResolveURL("/a/{id}/b/{id}", "7")
	if got != "/a/7/b/{id}" {
		t.Fatalf("expected single replacement, got %q", got)
	}
	// no escaping
	if got := ResolveURL("/user/{id}.json", "a b"); got != "/user/a b.json" {
		t.Fatalf("expected raw substitution, got %q", got)
	}
}

func TestNewEndpointsTrimsBase(t *testing.T) {
	e := NewEndpoints("http://localhost:8080/v0/")
	if e.MaxItem != "http://localhost:8080/v0/maxitem.json" {
		t.Errorf("maxitem url: %q", e.MaxItem)
	}
	want := map[Listing]string{
		Top:  "http://localhost:8080/v0/topstories.json",
		New:  "http://localhost:8080/v0/newstories.json",
		Best: "http://localhost:8080/v0/beststories.json",
		Ask:  "http://localhost:8080/v0/askstories.json",
		Show: "http://localhost:8080/v0/showstories.json",
		Job:  "http://localhost:8080/v0/jobstories.json",
	}
	for l, w := range want {
		got, ok := e.ListingURL(l)
		if !ok || got != w {
			t.Errorf("listing %s: want %q, got %q (ok=%v)", l, w, got, ok)
		}
	}
	if _, ok := e.ListingURL(Listing("frontpage")); ok {
		t.Errorf("unexpected url for unknown listing")
	}
}
