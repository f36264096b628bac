// Package app assembles portal modules into the root HTTP handler.
package app

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	module "github.com/louisbranch/extracurricular-portal/internal/services/web/module"
	"github.com/louisbranch/extracurricular-portal/internal/services/web/routepath"
	"github.com/louisbranch/extracurricular-portal/internal/services/web/transport/httpmux"
)

const sharedRoutesOwner = "shared"

// ComposeInput carries the modules and shared assets of the root handler.
type ComposeInput struct {
	Modules        []module.Module
	StaticFS       fs.FS
	WithStaticMime func(http.Handler) http.Handler
}

// Route records which owner claimed a prefix of the root handler.
type Route struct {
	Owner    string
	Prefix   string
	Patterns []string
}

// Composition is the root handler plus the route table it was built from.
type Composition struct {
	Handler http.Handler
	Routes  []Route
}

// Compose mounts the shared static and health routes, then every module in
// order. A prefix may be claimed once.
func Compose(input ComposeInput) (Composition, error) {
	root := http.NewServeMux()
	table := routeTable{owners: map[string]string{}}
	table.claim(sharedRoutesOwner, routepath.StaticPrefix, []string{"GET " + routepath.StaticPrefix})
	table.claim(sharedRoutesOwner, routepath.Health, []string{"GET " + routepath.Health})
	httpmux.MountStatic(root, input.StaticFS, input.WithStaticMime)
	httpmux.MountHealth(root)

	for i, feature := range input.Modules {
		if feature == nil {
			return Composition{}, fmt.Errorf("module %d is nil", i)
		}
		id := feature.ID()
		mount, err := feature.Mount()
		if err != nil {
			return Composition{}, fmt.Errorf("mount module %q: %w", id, err)
		}
		if err := checkPrefix(mount.Prefix); err != nil {
			return Composition{}, fmt.Errorf("mount module %q has invalid prefix %q: %w", id, mount.Prefix, err)
		}
		if mount.Handler == nil {
			return Composition{}, fmt.Errorf("mount module %q: handler is required", id)
		}
		if owner, taken := table.owners[mount.Prefix]; taken {
			return Composition{}, fmt.Errorf("module %q duplicates prefix %q owned by %q", id, mount.Prefix, owner)
		}
		table.claim(id, mount.Prefix, mount.Patterns)
		root.Handle(mount.Prefix, mount.Handler)
	}
	return Composition{Handler: root, Routes: table.routes}, nil
}

type routeTable struct {
	owners map[string]string
	routes []Route
}

func (t *routeTable) claim(owner, prefix string, patterns []string) {
	t.owners[prefix] = owner
	t.routes = append(t.routes, Route{Owner: owner, Prefix: prefix, Patterns: patterns})
}

func checkPrefix(prefix string) error {
	switch {
	case prefix == "":
		return errors.New("prefix is required")
	case strings.TrimSpace(prefix) != prefix:
		return errors.New("prefix has surrounding whitespace")
	case !strings.HasPrefix(prefix, "/") || !strings.HasSuffix(prefix, "/"):
		return errors.New("prefix must begin and end with /")
	}
	return nil
}
