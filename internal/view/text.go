package view

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// md renders description fields. Raw HTML is not enabled, so embedded tags
// are dropped and dangerous link schemes are neutralised by goldmark itself.
var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// markdown renders src into a wrapper div; empty input renders nothing.
func markdown(src string) g.Node {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return g.Text(src)
	}
	return h.Div(h.Class("prose"), g.Raw(buf.String()))
}

// safeURL keeps http(s), mailto, tel, relative paths and fragments; anything
// else (javascript:, data:, ...) becomes "#".
func safeURL(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "#"
	}
	u, err := url.Parse(s)
	if err != nil {
		return "#"
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https", "mailto", "tel":
		return s
	default:
		return "#"
	}
}

// navTitle falls back to a title-cased anchor id ("about-me" -> "About Me").
func navTitle(title, id string) string {
	if t := strings.TrimSpace(title); t != "" {
		return t
	}
	// a Caser is stateful, so each call gets its own
	return cases.Title(language.English).String(strings.NewReplacer("-", " ", "_", " ").Replace(id))
}
