package view

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// section wraps a section body under an anchor id. A nil body renders the
// empty state: the anchor stays so navbar links keep working.
func section(id, title string, body g.Node) g.Node {
	if body == nil {
		return h.Section(h.ID(id), h.Class("section section--empty"))
	}
	return h.Section(h.ID(id), h.Class("section"),
		g.If(title != "", h.H2(h.Class("section__title"), g.Text(title))),
		body,
	)
}

// anchor renders a link with a sanitised href; absolute links open in a new tab.
func anchor(raw string, children ...g.Node) g.Node {
	href := safeURL(raw)
	external := strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
	return h.A(h.Href(href),
		g.If(external, g.Group([]g.Node{h.Target("_blank"), h.Rel("noopener noreferrer")})),
		g.Group(children),
	)
}

// image renders nothing for an empty source.
func image(src, alt, class string) g.Node {
	if strings.TrimSpace(src) == "" {
		return nil
	}
	return h.Img(h.Src(safeURL(src)), h.Alt(alt), g.If(class != "", h.Class(class)), g.Attr("loading", "lazy"))
}

func tags(items []string) g.Node {
	if len(items) == 0 {
		return nil
	}
	return h.Ul(h.Class("tags"), g.Map(items, func(t string) g.Node {
		return h.Li(h.Class("tag"), g.Text(t))
	}))
}

func textIf(tag func(...g.Node) g.Node, class, text string) g.Node {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return tag(h.Class(class), g.Text(text))
}

// decorations are the blurred background shapes; the loading view shows the first three.
func decorations(n int) g.Node {
	kinds := []string{"white", "secondary", "gradient", "glow", "gradient-low"}
	if n > len(kinds) {
		n = len(kinds)
	}
	return g.Map(kinds[:n], func(k string) g.Node {
		return h.Div(h.Class("blob blob--"+k), h.Aria("hidden", "true"))
	})
}
