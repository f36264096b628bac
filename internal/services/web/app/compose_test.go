package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	module "github.com/louisbranch/extracurricular-portal/internal/services/web/module"
)

func noContent() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestComposeRejectsDuplicateModulePrefix(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "one", mount: module.Mount{Prefix: "/one/", Handler: noContent()}},
			stubModule{id: "two", mount: module.Mount{Prefix: "/one/", Handler: noContent()}},
		},
	})
	if err == nil {
		t.Fatalf("expected duplicate prefix error")
	}
	if got := err.Error(); !strings.Contains(got, `"two"`) || !strings.Contains(got, `"one"`) {
		t.Fatalf("unexpected error = %q", got)
	}
}

func TestComposeRejectsModuleClaimingStaticPrefix(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "assets", mount: module.Mount{Prefix: "/static/", Handler: noContent()}},
		},
	})
	if err == nil || !strings.Contains(err.Error(), "shared") {
		t.Fatalf("expected shared prefix error, got %v", err)
	}
}

func TestComposeRejectsInvalidModulePrefixes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
	}{
		{name: "empty", prefix: ""},
		{name: "missing leading slash", prefix: "api/x/"},
		{name: "missing trailing slash", prefix: "/api/x"},
		{name: "contains surrounding whitespace", prefix: "/api/x/ "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Compose(ComposeInput{
				Modules: []module.Module{
					stubModule{id: "bad", mount: module.Mount{Prefix: tc.prefix, Handler: noContent()}},
				},
			})
			if err == nil {
				t.Fatalf("expected invalid prefix error")
			}
			if got := err.Error(); !strings.Contains(got, "invalid prefix") || !strings.Contains(got, "bad") {
				t.Fatalf("unexpected error = %q", got)
			}
		})
	}
}

func TestComposeRejectsNilModule(t *testing.T) {
	t.Parallel()

	if _, err := Compose(ComposeInput{Modules: []module.Module{nil}}); err == nil {
		t.Fatalf("expected nil module error")
	}
}

func TestComposeRejectsMissingHandler(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		Modules: []module.Module{stubModule{id: "empty", mount: module.Mount{Prefix: "/empty/"}}},
	})
	if err == nil || !strings.Contains(err.Error(), "handler is required") {
		t.Fatalf("expected handler error, got %v", err)
	}
}

func TestComposeWrapsMountError(t *testing.T) {
	t.Parallel()

	mountErr := errors.New("content unavailable")
	_, err := Compose(ComposeInput{
		Modules: []module.Module{stubModule{id: "portal", err: mountErr}},
	})
	if !errors.Is(err, mountErr) {
		t.Fatalf("Compose() error = %v, want wrapped %v", err, mountErr)
	}
}

func TestComposeMountsModulesAndSharedRoutes(t *testing.T) {
	t.Parallel()

	composed, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "api", mount: module.Mount{Prefix: "/api/", Handler: noContent(), Patterns: []string{"GET /api/{id}"}}},
		},
		StaticFS: fstest.MapFS{"portal.css": &fstest.MapFile{Data: []byte("body{}")}},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	tests := []struct {
		path string
		want int
	}{
		{path: "/api/anything", want: http.StatusNoContent},
		{path: "/static/portal.css", want: http.StatusOK},
		{path: "/up", want: http.StatusOK},
		{path: "/missing", want: http.StatusNotFound},
	}
	for _, tc := range tests {
		rr := httptest.NewRecorder()
		composed.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if rr.Code != tc.want {
			t.Fatalf("%s status = %d, want %d", tc.path, rr.Code, tc.want)
		}
	}

	want := []Route{
		{Owner: "shared", Prefix: "/static/", Patterns: []string{"GET /static/"}},
		{Owner: "shared", Prefix: "/up", Patterns: []string{"GET /up"}},
		{Owner: "api", Prefix: "/api/", Patterns: []string{"GET /api/{id}"}},
	}
	if diff := cmp.Diff(want, composed.Routes); diff != "" {
		t.Fatalf("routes mismatch (-want +got):\n%s", diff)
	}
}

type stubModule struct {
	id    string
	mount module.Mount
	err   error
}

func (s stubModule) ID() string {
	return s.id
}

func (s stubModule) Mount() (module.Mount, error) {
	return s.mount, s.err
}
