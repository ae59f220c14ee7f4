package cmd

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch p := strings.TrimPrefix(r.URL.Path, "/v0"); {
		case p == "/askstories.json":
			fmt.Fprint(w, "[5,6,7]")
		case p == "/user/pg.json":
			fmt.Fprint(w, `{"id":"pg","created":1160418092,"karma":157236}`)
		case strings.HasPrefix(p, "/item/"):
			id := strings.TrimSuffix(strings.TrimPrefix(p, "/item/"), ".json")
			fmt.Fprintf(w, `{"id":%s,"type":"story","title":"Ask HN: question %s","by":"pg","time":1160418111}`, id, id)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestStoriesCommand(t *testing.T) {
	srv := fakeAPI(t)

	out, err := run(t, "stories", "ask", "-n", "2", "-o", "json", "--base-api", srv.URL+"/v0")

	require.NoError(t, err)
	assert.Contains(t, out, `"id": 5`)
	assert.Contains(t, out, `"id": 6`)
	assert.NotContains(t, out, `"id": 7`)
}

func TestItemCommandRejectsBadID(t *testing.T) {
	_, err := run(t, "item", "abc")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid argument")
}

func TestUserCommand(t *testing.T) {
	srv := fakeAPI(t)

	out, err := run(t, "user", " pg ", "-o", "text", "--base-api", srv.URL+"/v0")

	require.NoError(t, err)
	assert.Contains(t, out, "user:      pg")
	assert.Contains(t, out, "karma:     157236")
}
