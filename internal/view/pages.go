// Package view renders the portfolio page with gomponents.
//
// Every section component receives only its own slice of the document and
// renders an empty state when that slice is missing. Pages compose sections
// for one of three states: ready, loading and failed.
package view

import (
	"io"
	"strconv"
	"strings"

	"github.com/maxviazov/portfolio-service/internal/model"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// NavbarContainerAttr marks the fixed container the scroll script toggles classes on.
const NavbarContainerAttr = "navbar-container"

// Render writes the page for p.State.
func Render(w io.Writer, p model.Page) error {
	switch p.State {
	case model.PageReady:
		return ReadyPage(p.Meta, p.Doc).Render(w)
	case model.PageFailed:
		return FailedPage(p.Meta).Render(w)
	default:
		return LoadingPage(p.Meta, p.RefreshSeconds).Render(w)
	}
}

// ReadyPage renders every section plus the scroll behaviour for the navbar.
func ReadyPage(meta model.SiteMeta, doc model.Document) g.Node {
	return document(meta, nil,
		h.Div(h.Class("app"), g.Attr("data-state", model.PageReady.String()),
			h.Div(h.Class("navbar-container fade-in"), g.Attr("data-"+NavbarContainerAttr, ""),
				h.Div(h.Class("container"), Navbar(doc.NavLinks)),
			),
			h.Div(h.Class("container"),
				h.Main(h.Class("content"),
					Hero(doc.Hero),
					Stats(doc.Stats),
					Abilities(doc.Abilities),
					Projects(doc.Projects),
					Education(doc.Educations),
					Feedback(doc.Feedbacks),
					Contacts(doc.Contacts),
					Footer(doc.Footer, doc.SocialMedia),
					decorations(5),
				),
			),
		),
		h.Script(h.Src(assetURL(meta, "navbar.js")), h.Defer()),
	)
}

// LoadingPage renders the decorative background only. A positive refresh
// makes the browser retry until the document resolves.
func LoadingPage(meta model.SiteMeta, refreshSeconds int) g.Node {
	var head []g.Node
	if refreshSeconds > 0 {
		head = append(head, h.Meta(g.Attr("http-equiv", "refresh"), h.Content(strconv.Itoa(refreshSeconds))))
	}
	return document(meta, head,
		h.Div(h.Class("app app--loading"), g.Attr("data-state", model.PageLoading.String()),
			h.Div(h.Class("container"),
				h.Div(h.Class("content"), decorations(3)),
			),
		),
	)
}

// FailedPage is shown instead of everything else when the document could not be fetched.
func FailedPage(meta model.SiteMeta) g.Node {
	return document(meta, nil,
		h.Div(h.Class("app failed"), g.Attr("data-state", model.PageFailed.String()),
			h.H1(g.Text("Failed to fetch data")),
			h.P(h.Class("muted"), g.Text("The portfolio content could not be loaded. Please try again later.")),
		),
	)
}

func document(meta model.SiteMeta, head []g.Node, body ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(meta.Title)),
				g.If(meta.Description != "", h.Meta(h.Name("description"), h.Content(meta.Description))),
				openGraph(meta),
				h.Link(h.Rel("stylesheet"), h.Href(assetURL(meta, "app.css"))),
				g.Group(head),
			),
			h.Body(body...),
		),
	)
}

func assetURL(meta model.SiteMeta, name string) string {
	base := meta.AssetBase
	if base == "" {
		base = StaticPrefix
	}
	return strings.TrimSuffix(base, "/") + "/" + name
}

func openGraph(meta model.SiteMeta) g.Node {
	props := []struct{ key, value string }{
		{"type", meta.Type},
		{"title", meta.Title},
		{"description", meta.Description},
		{"image", meta.Image},
		{"url", meta.URL},
		{"site_name", meta.SiteName},
	}
	var nodes []g.Node
	for _, p := range props {
		if p.value == "" {
			continue
		}
		nodes = append(nodes, h.Meta(g.Attr("property", "og:"+p.key), h.Content(p.value)))
	}
	return g.Group(nodes)
}
