package portal

import (
	"fmt"
	"strings"

	"github.com/louisbranch/extracurricular-portal/internal/services/web/content"
	"github.com/louisbranch/extracurricular-portal/internal/services/web/platform/pagerender"
	"github.com/louisbranch/extracurricular-portal/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/extracurricular-portal/internal/services/web/templates"
	"golang.org/x/text/language"
)

// PageOptions controls how content maps onto the rendered document.
type PageOptions struct {
	// BasePath prefixes root-relative asset and link paths.
	BasePath string
	// Lang is the document language; the zero tag means Korean.
	Lang language.Tag
}

// BuildPage maps portal content onto the full landing page document.
func BuildPage(portal content.Portal, opts PageOptions) pagerender.Page {
	return pagerender.Page{
		Document: webtemplates.DocumentOptions{
			Lang:           documentLang(opts.Lang),
			Title:          portal.Title,
			StylesheetHref: routepath.WithBase(opts.BasePath, routepath.Stylesheet),
		},
		Body: webtemplates.PageShell(portalPageView(portal, opts.BasePath)),
	}
}

func documentLang(tag language.Tag) string {
	if tag == language.Und {
		tag = language.Korean
	}
	return tag.String()
}

func portalPageView(portal content.Portal, base string) webtemplates.PortalPage {
	return webtemplates.PortalPage{
		Nav: webtemplates.NavBar{
			Brand: webtemplates.Brand{
				Label:   portal.Brand.Label,
				LogoSrc: routepath.WithBase(base, portal.Brand.LogoSrc),
				LogoAlt: portal.Brand.LogoAlt,
			},
			Links: navLinksView(portal.NavLinks, base),
		},
		Title:       portal.Title,
		Subtitle:    portal.Subtitle,
		Stats:       statCardsView(portal.StatCards),
		Copyright:   portal.Copyright,
		LastUpdated: portal.LastUpdated,
	}
}

func navLinksView(links []content.NavLink, base string) []webtemplates.NavLink {
	if len(links) == 0 {
		return nil
	}
	out := make([]webtemplates.NavLink, 0, len(links))
	for _, link := range links {
		out = append(out, webtemplates.NavLink{
			Label: link.Label,
			Href:  routepath.WithBase(base, link.Target),
		})
	}
	return out
}

func statCardsView(cards []content.StatCard) []webtemplates.StatCard {
	if len(cards) == 0 {
		return nil
	}
	out := make([]webtemplates.StatCard, 0, len(cards))
	for _, card := range cards {
		out = append(out, webtemplates.StatCard{Label: card.Label, Value: card.Value})
	}
	return out
}

// ParseLang parses a BCP 47 document language. Blank input means Korean.
func ParseLang(raw string) (language.Tag, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return language.Korean, nil
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return language.Und, fmt.Errorf("parse lang %q: %w", raw, err)
	}
	return tag, nil
}
