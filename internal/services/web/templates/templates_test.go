package templates

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"
)

func fixturePage() PortalPage {
	return PortalPage{
		Nav: NavBar{
			Brand: Brand{Label: "비교과 프로그램", LogoSrc: "/api/placeholder/32/32", LogoAlt: "Logo"},
			Links: []NavLink{
				{Label: "홈", Href: "#"},
				{Label: "대시보드", Href: "#"},
				{Label: "프로그램 목록", Href: "#"},
			},
		},
		Title:    "비교과 프로그램 포털",
		Subtitle: "2025년 프로그램 안내 및 성과 분석",
		Stats: []StatCard{
			{Label: "총 프로그램", Value: "20개"},
			{Label: "참여 학생", Value: "100명"},
			{Label: "평균 만족도", Value: "4.2/5.0"},
			{Label: "취업 연계율", Value: "87.5%"},
		},
		Copyright:   "© 2025 비교과 프로그램 포털. All rights reserved.",
		LastUpdated: "최종 업데이트: 2025년 12월 21일",
	}
}

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := c.Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return b.String()
}

func parseHTML(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		t.Fatalf("html.Parse() error = %v", err)
	}
	return doc
}

// elements returns every element in document order matching keep.
func elements(root *html.Node, keep func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && keep(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

func byTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == tag }
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func TestNavigationBarRendersThreeLinksInOrder(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, renderString(t, NavigationBar(fixturePage().Nav)))
	anchors := elements(doc, byTag("a"))
	if len(anchors) != 3 {
		t.Fatalf("anchor count = %d, want 3", len(anchors))
	}
	var labels []string
	for _, a := range anchors {
		labels = append(labels, textContent(a))
		if got := attr(a, "href"); got != "#" {
			t.Fatalf("href = %q, want %q", got, "#")
		}
	}
	if diff := cmp.Diff([]string{"홈", "대시보드", "프로그램 목록"}, labels); diff != "" {
		t.Fatalf("link labels mismatch (-want +got):\n%s", diff)
	}
}

func TestNavigationBarRendersBrand(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, renderString(t, NavigationBar(fixturePage().Nav)))
	images := elements(doc, byTag("img"))
	if len(images) != 1 {
		t.Fatalf("img count = %d, want 1", len(images))
	}
	if got := attr(images[0], "src"); got != "/api/placeholder/32/32" {
		t.Fatalf("logo src = %q", got)
	}
	if got := attr(images[0], "alt"); got != "Logo" {
		t.Fatalf("logo alt = %q", got)
	}
	spans := elements(doc, byTag("span"))
	if len(spans) != 1 || textContent(spans[0]) != "비교과 프로그램" {
		t.Fatalf("brand label spans = %d", len(spans))
	}
}

func TestNavigationBarEscapesText(t *testing.T) {
	t.Parallel()

	got := renderString(t, NavigationBar(NavBar{
		Brand: Brand{Label: "<b>x</b>", LogoSrc: "/logo.svg", LogoAlt: `"quoted"`},
		Links: []NavLink{{Label: "a & b", Href: "#"}},
	}))
	for _, unwanted := range []string{"<b>", `alt=""quoted""`} {
		if strings.Contains(got, unwanted) {
			t.Fatalf("output contains unescaped %q: %q", unwanted, got)
		}
	}
	if !strings.Contains(got, "a &amp; b") {
		t.Fatalf("expected escaped ampersand, got %q", got)
	}
}

func TestNavigationBarSanitizesUnsafeHref(t *testing.T) {
	t.Parallel()

	got := renderString(t, NavigationBar(NavBar{
		Links: []NavLink{{Label: "x", Href: "javascript:alert(1)"}},
	}))
	if strings.Contains(got, "javascript:") {
		t.Fatalf("expected unsafe href to be sanitized, got %q", got)
	}
}

func TestPageShellRendersFourStatCardsInOrder(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, renderString(t, PageShell(fixturePage())))
	cards := elements(doc, func(n *html.Node) bool { return hasAttr(n, "data-stat-card") })
	if len(cards) != 4 {
		t.Fatalf("stat card count = %d, want 4", len(cards))
	}
	var got []StatCard
	for _, card := range cards {
		parts := elements(card, func(n *html.Node) bool { return n != card && n.Data == "div" })
		if len(parts) != 2 {
			t.Fatalf("card parts = %d, want label and value", len(parts))
		}
		got = append(got, StatCard{Label: textContent(parts[0]), Value: textContent(parts[1])})
		if attr(card, "class") != attr(cards[0], "class") {
			t.Fatalf("stat cards must share markup, got class %q", attr(card, "class"))
		}
	}
	if diff := cmp.Diff(fixturePage().Stats, got); diff != "" {
		t.Fatalf("stat cards mismatch (-want +got):\n%s", diff)
	}
}

func TestPageShellComposesOneNavigationBarBeforeMain(t *testing.T) {
	t.Parallel()

	doc := parseHTML(t, renderString(t, PageShell(fixturePage())))
	navs := elements(doc, byTag("nav"))
	if len(navs) != 1 {
		t.Fatalf("nav count = %d, want 1", len(navs))
	}
	order := elements(doc, func(n *html.Node) bool { return n.Data == "nav" || n.Data == "main" || n.Data == "footer" })
	var tags []string
	for _, n := range order {
		tags = append(tags, n.Data)
	}
	if diff := cmp.Diff([]string{"nav", "main", "footer"}, tags); diff != "" {
		t.Fatalf("landmark order mismatch (-want +got):\n%s", diff)
	}
}

func TestPageShellTextContent(t *testing.T) {
	t.Parallel()

	text := textContent(parseHTML(t, renderString(t, PageShell(fixturePage()))))
	for _, want := range []string{
		"비교과 프로그램 포털",
		"2025년 프로그램 안내 및 성과 분석",
		"4.2/5.0",
		"© 2025 비교과 프로그램 포털. All rights reserved.",
		"최종 업데이트: 2025년 12월 21일",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("text content missing %q", want)
		}
	}
}

func TestPageShellRenderIsIdempotent(t *testing.T) {
	t.Parallel()

	page := fixturePage()
	first := renderString(t, PageShell(page))
	for i := 0; i < 3; i++ {
		if got := renderString(t, PageShell(page)); got != first {
			t.Fatalf("render %d differs from first render", i+2)
		}
	}
}

func textComponent(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func TestDocumentWrapsChildren(t *testing.T) {
	t.Parallel()

	ctx := templ.WithChildren(context.Background(), textComponent(`<section id="child">ok</section>`))
	var b strings.Builder
	err := Document(DocumentOptions{Lang: "ko", Title: "비교과 프로그램 포털", StylesheetHref: "/static/portal.css"}).Render(ctx, &b)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	got := b.String()
	if !strings.HasPrefix(got, "<!doctype html>") {
		t.Fatalf("expected doctype prefix, got %q", got)
	}
	for _, marker := range []string{
		`<html lang="ko">`,
		`<meta charset="UTF-8">`,
		`<title>비교과 프로그램 포털</title>`,
		`<link rel="stylesheet" href="/static/portal.css">`,
		`<body><section id="child">ok</section></body>`,
	} {
		if !strings.Contains(got, marker) {
			t.Fatalf("document missing %q: %q", marker, got)
		}
	}
}

func TestDocumentOmitsEmptyOptionalParts(t *testing.T) {
	t.Parallel()

	got := renderString(t, Document(DocumentOptions{Title: "t"}))
	if strings.Contains(got, "lang=") || strings.Contains(got, "stylesheet") {
		t.Fatalf("expected no lang or stylesheet, got %q", got)
	}
	if !strings.Contains(got, "<body></body>") {
		t.Fatalf("expected empty body, got %q", got)
	}
}

func TestDocumentChildrenDoNotLeakIntoNestedComponents(t *testing.T) {
	t.Parallel()

	ctx := templ.WithChildren(context.Background(), PageShell(fixturePage()))
	var b strings.Builder
	if err := Document(DocumentOptions{Title: "x"}).Render(ctx, &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	doc := parseHTML(t, b.String())
	if got := len(elements(doc, byTag("nav"))); got != 1 {
		t.Fatalf("nav count = %d, want 1", got)
	}
}

func TestComponentsStopOnCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var b bytes.Buffer
	err := PageShell(fixturePage()).Render(ctx, &b)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Render() error = %v, want context.Canceled", err)
	}
	if b.Len() != 0 {
		t.Fatalf("expected no output, got %q", b.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestComponentsReturnWriterError(t *testing.T) {
	t.Parallel()

	err := PageShell(fixturePage()).Render(context.Background(), failingWriter{})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("Render() error = %v, want writer error", err)
	}
}

func TestTemplSourcesHaveGeneratedCode(t *testing.T) {
	t.Parallel()

	sources, err := filepath.Glob("*.templ")
	if err != nil {
		t.Fatalf("glob templ sources: %v", err)
	}
	if len(sources) == 0 {
		t.Fatal("expected templ sources")
	}
	for _, source := range sources {
		generated := strings.TrimSuffix(source, ".templ") + "_templ.go"
		data, err := os.ReadFile(generated)
		if err != nil {
			t.Fatalf("%s has no generated code: %v", source, err)
		}
		if !strings.HasPrefix(string(data), "// Code generated by templ - DO NOT EDIT.") {
			t.Fatalf("%s is missing the templ generated header", generated)
		}
	}
}
