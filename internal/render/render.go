package render

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"

	"hnfetch/hackernews"

	"gopkg.in/yaml.v3"
)

// Format selects how values are written.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat validates a --output value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, JSON, YAML:
		return f, nil
	case "yml":
		return YAML, nil
	case "":
		return Text, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

//go:embed items.tmpl
var itemsTpl string

//go:embed user.tmpl
var userTpl string

// now is replaced in tests.
var now = time.Now

var funcs = template.FuncMap{
	"rank":   func(i int) string { return fmt.Sprintf("%2d.", i+1) },
	"ago":    func(t time.Time) string { return ago(now().Sub(t)) },
	"date":   func(t time.Time) string { return t.UTC().Format("2006-01-02") },
	"indent": indent,
	"plain":  func(s string) string { return hackernews.Item{Text: s}.PlainText() },
}

var (
	itemsCompiled = template.Must(template.New("items").Funcs(funcs).Parse(itemsTpl))
	userCompiled  = template.Must(template.New("user").Funcs(funcs).Parse(userTpl))
)

// Items writes items in the given format.
func Items(w io.Writer, f Format, items []hackernews.Item) error {
	if f == Text {
		return execute(w, itemsCompiled, struct{ Items []hackernews.Item }{items})
	}
	return encode(w, f, items)
}

// User writes a user profile in the given format.
func User(w io.Writer, f Format, u hackernews.User) error {
	if f == Text {
		return execute(w, userCompiled, u)
	}
	return encode(w, f, u)
}

// Value writes any other value (e.g., the max item ID).
func Value(w io.Writer, f Format, v any) error {
	if f == Text {
		_, err := fmt.Fprintln(w, v)
		return err
	}
	return encode(w, f, v)
}

func execute(w io.Writer, t *template.Template, data any) error {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Errorf("render %s: %w", t.Name(), err)
	}
	out := strings.Trim(buf.String(), "\n") + "\n"
	_, err := io.WriteString(w, out)
	return err
}

func encode(w io.Writer, f Format, v any) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}

func indent(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = "    " + l
		}
	}
	return strings.Join(lines, "\n")
}

func ago(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute") + " ago"
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour") + " ago"
	default:
		return plural(int(d/(24*time.Hour)), "day") + " ago"
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
