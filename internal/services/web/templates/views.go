// Package templates renders the portal's HTML components.
//
// Components are templ.Component values built from plain view structs, so
// they can be rendered by templ.Handler, composed with templ.WithChildren, or
// written straight to any io.Writer for static export.
package templates

// Brand is the logo mark and label shown in the navigation bar.
type Brand struct {
	Label   string
	LogoSrc string
	LogoAlt string
}

// NavLink is one anchor in the navigation bar.
type NavLink struct {
	Label string
	Href  string
}

// NavBar holds everything NavigationBar renders.
type NavBar struct {
	Brand Brand
	Links []NavLink
}

// StatCard is one metric tile in the statistics grid.
type StatCard struct {
	Label string
	Value string
}

// PortalPage holds everything PageShell renders.
type PortalPage struct {
	Nav         NavBar
	Title       string
	Subtitle    string
	Stats       []StatCard
	Copyright   string
	LastUpdated string
}

// DocumentOptions configures the HTML document wrapper.
type DocumentOptions struct {
	Lang           string
	Title          string
	StylesheetHref string
}
