package view

import (
	"github.com/maxviazov/portfolio-service/internal/model"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Section anchor ids; navLinks point at these.
const (
	NavbarID    = "navbar"
	HeroID      = "home"
	StatsID     = "stats"
	AbilitiesID = "ability"
	ProjectsID  = "projects"
	EducationID = "education"
	FeedbackID  = "feedback"
	ContactsID  = "contact"
	FooterID    = "footer"
)

// Navbar renders the navigation links; an empty list renders a bare bar.
func Navbar(links []model.NavLink) g.Node {
	return h.Nav(h.ID(NavbarID), h.Class("navbar"), h.Aria("label", "Main"),
		g.If(len(links) > 0, h.Ul(h.Class("navbar__links"), g.Map(links, func(l model.NavLink) g.Node {
			target := l.URL
			if target == "" {
				target = "#" + l.ID
			}
			return h.Li(anchor(target, g.Text(navTitle(l.Title, l.ID))))
		}))),
	)
}

func Hero(hero *model.Hero) g.Node {
	if hero == nil {
		return section(HeroID, "", nil)
	}
	return h.Section(h.ID(HeroID), h.Class("section section--hero"),
		h.Div(h.Class("hero__text"),
			textIf(h.P, "muted", hero.Greeting),
			textIf(h.H1, "hero__name", hero.Name),
			textIf(h.H2, "hero__role", hero.Role),
			markdown(hero.Description),
			g.If(len(hero.Buttons) > 0, h.Div(h.Class("hero__buttons"), g.Map(hero.Buttons, func(l model.Link) g.Node {
				return anchor(l.URL, h.Class("button"), g.Text(l.Name))
			}))),
		),
		image(hero.Image, hero.Name, "hero__image"),
	)
}

func Stats(stats []model.Stat) g.Node {
	if len(stats) == 0 {
		return section(StatsID, "", nil)
	}
	return section(StatsID, "", h.Div(h.Class("stats"), g.Map(stats, func(s model.Stat) g.Node {
		return h.Div(h.Class("stat"),
			h.Span(h.Class("stat__value"), g.Text(s.Value.String())),
			textIf(h.P, "stat__label muted", s.Label),
		)
	})))
}

func Abilities(abilities []model.Ability) g.Node {
	if len(abilities) == 0 {
		return section(AbilitiesID, "", nil)
	}
	return section(AbilitiesID, "Abilities", h.Div(h.Class("grid"), g.Map(abilities, func(a model.Ability) g.Node {
		return h.Div(h.Class("card"),
			image(a.Icon, a.Title, "card__icon"),
			textIf(h.H3, "card__title", a.Title),
			markdown(a.Description),
			g.If(len(a.Skills) > 0, h.Ul(h.Class("tags"), g.Map(a.Skills, func(s model.Skill) g.Node {
				return h.Li(h.Class("tag"), image(s.Icon, s.Name, "tag__icon"), g.Text(s.Name))
			}))),
		)
	})))
}

func Projects(projects []model.Project) g.Node {
	if len(projects) == 0 {
		return section(ProjectsID, "", nil)
	}
	return section(ProjectsID, "Projects", h.Div(h.Class("grid"), g.Map(projects, func(p model.Project) g.Node {
		return h.Article(h.Class("card"),
			image(p.Image, p.Title, "card__image"),
			textIf(h.H3, "card__title", p.Title),
			markdown(p.Description),
			tags(p.Tags),
			h.Div(h.Class("card__links"),
				g.If(p.Demo != "", anchor(p.Demo, g.Text("Live demo"))),
				g.If(p.Source != "", anchor(p.Source, g.Text("Source code"))),
			),
		)
	})))
}

func Education(educations []model.Education) g.Node {
	if len(educations) == 0 {
		return section(EducationID, "", nil)
	}
	return section(EducationID, "Education", h.Div(h.Class("grid"), g.Map(educations, func(e model.Education) g.Node {
		return h.Div(h.Class("card"),
			image(e.Logo, e.School, "card__icon"),
			textIf(h.H3, "card__title", e.School),
			textIf(h.P, "card__subtitle", e.Degree),
			textIf(h.P, "muted", e.Period),
			markdown(e.Description),
		)
	})))
}

func Feedback(feedbacks []model.Feedback) g.Node {
	if len(feedbacks) == 0 {
		return section(FeedbackID, "", nil)
	}
	return section(FeedbackID, "Feedback", h.Div(h.Class("grid"), g.Map(feedbacks, func(f model.Feedback) g.Node {
		return g.El("figure", h.Class("card"),
			g.El("blockquote", g.Text(f.Comment)),
			g.El("figcaption",
				image(f.Avatar, f.Name, "card__avatar"),
				textIf(h.Strong, "", f.Name),
				textIf(h.Span, "muted", f.Role),
			),
		)
	})))
}

func Contacts(contacts []model.Contact) g.Node {
	if len(contacts) == 0 {
		return section(ContactsID, "", nil)
	}
	return section(ContactsID, "Contact", h.Ul(h.Class("grid"), g.Map(contacts, func(c model.Contact) g.Node {
		value := g.Text(c.Value)
		if c.URL != "" {
			value = anchor(c.URL, g.Text(c.Value))
		}
		return h.Li(h.Class("card"),
			image(c.Icon, c.Title, "card__icon"),
			textIf(h.H3, "card__title", c.Title),
			h.P(value),
		)
	})))
}

// Footer receives the link groups and social profiles; either may be empty.
func Footer(groups []model.FooterGroup, social []model.SocialMedia) g.Node {
	return h.Footer(h.ID(FooterID), h.Class("footer"),
		g.Map(groups, func(fg model.FooterGroup) g.Node {
			return h.Div(h.Class("footer__group"),
				textIf(h.H4, "footer__title", fg.Title),
				h.Ul(g.Map(fg.Links, func(l model.Link) g.Node {
					return h.Li(anchor(l.URL, g.Text(l.Name)))
				})),
			)
		}),
		g.If(len(social) > 0, h.Ul(h.Class("footer__social"), g.Map(social, func(s model.SocialMedia) g.Node {
			label := s.Name
			if s.Icon != "" {
				return h.Li(anchor(s.URL, h.Aria("label", label), image(s.Icon, label, "footer__icon")))
			}
			return h.Li(anchor(s.URL, g.Text(label)))
		}))),
	)
}
