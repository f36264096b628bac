package placeholder

import (
	"encoding/xml"
	"net/http"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/extracurricular-portal/internal/services/web/platform/errors"
)

func TestParseSizeAcceptsValidDimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		width, height string
		want          Size
	}{
		{width: "32", height: "32", want: Size{Width: 32, Height: 32}},
		{width: "1", height: "2048", want: Size{Width: 1, Height: 2048}},
		{width: "32", height: "32.svg", want: Size{Width: 32, Height: 32}},
	}
	for _, tc := range tests {
		got, err := ParseSize(tc.width, tc.height)
		if err != nil {
			t.Fatalf("ParseSize(%q, %q) error = %v", tc.width, tc.height, err)
		}
		if got != tc.want {
			t.Fatalf("ParseSize(%q, %q) = %+v, want %+v", tc.width, tc.height, got, tc.want)
		}
	}
}

func TestParseSizeRejectsInvalidDimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		width, height string
	}{
		{name: "zero width", width: "0", height: "32"},
		{name: "negative height", width: "32", height: "-1"},
		{name: "too wide", width: "2049", height: "32"},
		{name: "not a number", width: "abc", height: "32"},
		{name: "empty height", width: "32", height: ""},
		{name: "png suffix", width: "32", height: "32.png"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseSize(tc.width, tc.height)
			if err == nil {
				t.Fatalf("expected error")
			}
			if got := apperrors.HTTPStatus(err); got != http.StatusBadRequest {
				t.Fatalf("HTTPStatus() = %d, want %d", got, http.StatusBadRequest)
			}
		})
	}
}

func TestSVGIsWellFormedWithRequestedSize(t *testing.T) {
	t.Parallel()

	data := SVG(Size{Width: 120, Height: 40})
	var doc struct {
		XMLName xml.Name `xml:"svg"`
		Width   string   `xml:"width,attr"`
		Height  string   `xml:"height,attr"`
		Text    string   `xml:"text"`
	}
	if err := xml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("xml.Unmarshal() error = %v", err)
	}
	if doc.Width != "120" || doc.Height != "40" {
		t.Fatalf("size = %sx%s, want 120x40", doc.Width, doc.Height)
	}
	if doc.Text != "120×40" {
		t.Fatalf("label = %q, want %q", doc.Text, "120×40")
	}
}

func TestSVGIsDeterministic(t *testing.T) {
	t.Parallel()

	a := SVG(Size{Width: 32, Height: 32})
	b := SVG(Size{Width: 32, Height: 32})
	if string(a) != string(b) {
		t.Fatal("SVG output differs between calls")
	}
	if !strings.Contains(string(a), `font-size="8"`) {
		t.Fatalf("unexpected font size in %q", a)
	}
}
