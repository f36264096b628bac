// Package placeholder generates the gray SVG stand-in images served under
// /api/placeholder/{width}/{height}.
package placeholder

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/extracurricular-portal/internal/services/web/platform/errors"
)

// MaxDimension bounds both sides of a placeholder image.
const MaxDimension = 2048

// Size is a validated placeholder size in pixels.
type Size struct {
	Width  int
	Height int
}

// ParseSize parses width and height path segments. A trailing ".svg" on the
// height is accepted so exported file paths resolve against the live server.
func ParseSize(width, height string) (Size, error) {
	w, err := parseDimension("width", width)
	if err != nil {
		return Size{}, err
	}
	h, err := parseDimension("height", strings.TrimSuffix(height, ".svg"))
	if err != nil {
		return Size{}, err
	}
	return Size{Width: w, Height: h}, nil
}

func parseDimension(name, raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, apperrors.Wrap(apperrors.KindInvalidInput, fmt.Sprintf("parse %s %q", name, raw), err)
	}
	if value < 1 || value > MaxDimension {
		return 0, apperrors.E(apperrors.KindInvalidInput, fmt.Sprintf("%s %d out of range 1-%d", name, value, MaxDimension))
	}
	return value, nil
}

// SVG renders a flat placeholder image labelled with its dimensions.
func SVG(size Size) []byte {
	fontSize := min(size.Width, size.Height) / 4
	if fontSize < 6 {
		fontSize = 6
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		size.Width, size.Height, size.Width, size.Height)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="#e5e7eb"/>`, size.Width, size.Height)
	fmt.Fprintf(&b, `<text x="50%%" y="50%%" fill="#6b7280" font-family="sans-serif" font-size="%d" text-anchor="middle" dominant-baseline="middle">%d×%d</text>`,
		fontSize, size.Width, size.Height)
	b.WriteString("</svg>")
	return []byte(b.String())
}
