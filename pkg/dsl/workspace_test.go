package dsl

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	c4errors "github.com/c4dsl/c4dsl/pkg/errors"
	"github.com/c4dsl/c4dsl/pkg/model"
)

func newWorkspace(t *testing.T) *Workspace {
	t.Helper()
	ws, err := NewWorkspace(WorkspaceConfig{Name: "Shop", Description: "Online shop"})
	if err != nil {
		t.Fatalf("NewWorkspace() error = %v", err)
	}
	return ws
}

// must fails the test when err is set: must(model.NewPerson(ids, cfg))(t).
func must[T any](v T, err error) func(*testing.T) T {
	return func(t *testing.T) T {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return v
	}
}

func serialize(t *testing.T, ws *Workspace) string {
	t.Helper()
	out, err := ws.Serialize()
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	return out
}

func TestSerializePersonOnly(t *testing.T) {
	ids := model.NewSequentialAllocator()
	ws := newWorkspace(t)
	user := must(model.NewPerson(ids, model.PersonConfig{Name: "User", Description: "A user of the system"}))(t)
	if err := ws.AddPerson(user); err != nil {
		t.Fatal(err)
	}

	want := `workspace "Shop" "Online shop" {
    !identifiers hierarchical

    model {
        u = person "User" "A user of the system"
    }
}`
	if got := serialize(t, ws); got != want {
		t.Errorf("Serialize() =\n%s\nwant\n%s", got, want)
	}
}

func TestSerializeSystemWithContainer(t *testing.T) {
	ids := model.NewSequentialAllocator()
	ws := newWorkspace(t)
	api := must(model.NewSoftwareSystem(ids, model.SoftwareSystemConfig{Name: "API", Description: "Public API"}))(t)
	web := must(model.NewContainer(ids, model.ContainerConfig{
		Name: "Web App", Description: "Serves pages", Type: model.ContainerWebApplication,
	}))(t)
	if err := api.AddContainer(web); err != nil {
		t.Fatal(err)
	}
	_ = ws.AddSoftwareSystem(api)

	got := serialize(t, ws)
	want := `        a = softwareSystem "API" "Public API" {
            wa = container "Web App" "Serves pages" {}
        }`
	if !strings.Contains(got, want) {
		t.Errorf("Serialize() =\n%s\nwant fragment\n%s", got, want)
	}
}

func TestSerializeEmptySystem(t *testing.T) {
	ids := model.NewSequentialAllocator()
	ws := newWorkspace(t)
	_ = ws.AddSoftwareSystem(must(model.NewSoftwareSystem(ids, model.SoftwareSystemConfig{Name: "Legacy", Description: "Old"}))(t))

	if got := serialize(t, ws); !strings.Contains(got, "\n        l = softwareSystem \"Legacy\" \"Old\" {}\n") {
		t.Errorf("Serialize() =\n%s\nwant inline empty block", got)
	}
}

// buildShop returns the workspace used by the golden test.
func buildShop(t *testing.T) *Workspace {
	t.Helper()
	ids := model.NewSequentialAllocator()
	ws := newWorkspace(t)

	user := must(model.NewPerson(ids, model.PersonConfig{Name: "User", Description: "A user of the system"}))(t)
	admin := must(model.NewPerson(ids, model.PersonConfig{Name: "Admin", Description: "Back office", Location: model.External}))(t)

	api := must(model.NewSoftwareSystem(ids, model.SoftwareSystemConfig{Name: "API", Description: "Public API"}))(t)
	web := must(model.NewContainer(ids, model.ContainerConfig{Name: "Web App", Description: "Serves pages"}))(t)
	worker := must(model.NewContainer(ids, model.ContainerConfig{Name: "Worker", Description: "Async jobs", Technology: "Go"}))(t)
	auth := must(model.NewComponent(ids, model.ComponentConfig{Name: "Auth", Description: "Handles login", Technology: "Go"}))(t)
	audit := must(model.NewComponent(ids, model.ComponentConfig{Name: "Audit", Description: "Writes logs"}))(t)
	mail := must(model.NewSoftwareSystem(ids, model.SoftwareSystemConfig{Name: "Mail", Description: "Email provider", Location: model.External}))(t)

	for _, err := range []error{
		api.AddContainer(web),
		api.AddContainer(worker),
		worker.AddComponent(auth),
		worker.AddComponent(audit),
		ws.AddPerson(user),
		ws.AddPerson(admin),
		ws.AddSoftwareSystem(api),
		ws.AddSoftwareSystem(mail),
	} {
		if err != nil {
			t.Fatal(err)
		}
	}

	rels := []model.RelationshipConfig{
		{Source: model.Ref(user), Target: model.Ref(web), Description: "Uses", Technology: "HTTPS"},
		{Source: model.Ref(auth), Target: model.Ref(mail), Description: "Sends email", Style: model.Asynchronous},
		{Source: model.Raw("x"), Target: model.Raw("y"), Description: "raw"},
	}
	for _, cfg := range rels {
		if err := ws.AddRelationship(must(model.NewRelationship(cfg))(t)); err != nil {
			t.Fatal(err)
		}
	}

	ws.AddView(ViewConfig{
		Type: SystemContextView, Element: model.Ref(api), Title: "API context",
		Include: []string{"*"}, AutoLayout: AutoLayoutLeftRight,
	})
	ws.AddView(ViewConfig{
		Type: ContainerView, Element: model.Ref(api), Title: "API containers",
		Include: []string{"*"}, Exclude: []string{"m"},
	})
	ws.AddView(ViewConfig{Type: SystemLandscapeView, Title: "Everything", Include: []string{"*"}})

	dashed := false
	ws.AddElementStyle(ElementStyle{Tag: "Person", Background: "#08427b", Color: "#ffffff", Shape: ShapePerson})
	ws.AddRelationshipStyle(RelationshipStyle{Tag: "Relationship", Thickness: 2, Dashed: &dashed})
	return ws
}

const shopGolden = `workspace "Shop" "Online shop" {
    !identifiers hierarchical

    model {
        u = person "User" "A user of the system"
        a = person "Admin" "Back office" {
            tags "External"
        }
        a1 = softwareSystem "API" "Public API" {
            wa = container "Web App" "Serves pages" {}
            w = container "Worker" "Async jobs" "Go" {
                a = component "Auth" "Handles login" "Go"
                a1 = component "Audit" "Writes logs"
            }
        }
        m = softwareSystem "Mail" "Email provider" {
            tags "External"
        }

        u -> a1.wa "Uses" "HTTPS"
        a1.w.a -> m "Sends email"
        x -> y "raw"
    }

    views {
        systemContext a1 "API context" {
            include *
            autoLayout lr
        }
        container a1 "API containers" {
            include *
            exclude m
        }
        systemLandscape "Everything" {
            include *
        }
        styles {
            element "Person" {
                background #08427b
                color #ffffff
                shape Person
            }
            relationship "Relationship" {
                thickness 2
                dashed false
            }
        }
    }
}`

func TestSerializeGolden(t *testing.T) {
	got := serialize(t, buildShop(t))
	if got != shopGolden {
		t.Errorf("Serialize() =\n%s\nwant\n%s", got, shopGolden)
	}
}

func TestSerializeDeterministic(t *testing.T) {
	ws := buildShop(t)
	first := serialize(t, ws)
	for i := 0; i < 5; i++ {
		if got := serialize(t, ws); got != first {
			t.Fatalf("Serialize() call %d differs from first call", i+2)
		}
	}
}

// Braces inside string literals are text, so only structural braces are
// counted.
func TestSerializeBracesBalanced(t *testing.T) {
	ids := model.NewSequentialAllocator()
	braced := newWorkspace(t)
	sys := must(model.NewSoftwareSystem(ids, model.SoftwareSystemConfig{Name: "Sys }", Description: `{ "nested" }`}))(t)
	_ = sys.AddContainer(must(model.NewContainer(ids, model.ContainerConfig{Name: "X {", Description: `ends in \`}))(t))
	_ = braced.AddPerson(must(model.NewPerson(ids, model.PersonConfig{Name: "{{", Description: "}"}))(t))
	_ = braced.AddSoftwareSystem(sys)

	tests := []struct {
		name string
		ws   *Workspace
	}{
		{"shop", buildShop(t)},
		{"braces in names", braced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			depth := 0
			for i, line := range strings.Split(serialize(t, tt.ws), "\n") {
				opens, closes, _ := countBraces(line)
				depth += opens - closes
				if depth < 0 {
					t.Fatalf("line %d %q closes an unopened block", i+1, line)
				}
			}
			if depth != 0 {
				t.Errorf("brace depth at end = %d, want 0", depth)
			}
		})
	}
}

func TestSerializeNonASCIINames(t *testing.T) {
	ids := model.NewSequentialAllocator()
	ws := newWorkspace(t)
	_ = ws.AddPerson(must(model.NewPerson(ids, model.PersonConfig{Name: "Über", Description: "d"}))(t))
	_ = ws.AddPerson(must(model.NewPerson(ids, model.PersonConfig{Name: "Ärger", Description: "d"}))(t))

	got := serialize(t, ws)
	for _, want := range []string{
		`_ü = person "Über" "d"`,
		`_ä = person "Ärger" "d"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Serialize() missing %q:\n%s", want, got)
		}
	}
}

func TestSerializeNestedPath(t *testing.T) {
	ids := model.NewSequentialAllocator()
	ws := newWorkspace(t)
	api := must(model.NewSoftwareSystem(ids, model.SoftwareSystemConfig{Name: "API", Description: "d"}))(t)
	web := must(model.NewContainer(ids, model.ContainerConfig{Name: "Web App", Description: "d"}))(t)
	auth := must(model.NewComponent(ids, model.ComponentConfig{Name: "Auth", Description: "d"}))(t)
	_ = api.AddContainer(web)
	_ = web.AddComponent(auth)
	_ = ws.AddSoftwareSystem(api)

	ix, err := ws.Index()
	if err != nil {
		t.Fatalf("Index() error = %v", err)
	}
	a, ok := ix.Lookup(auth.Identity())
	if !ok {
		t.Fatal("Lookup(auth) ok = false")
	}
	if a.Path != "a.wa.a" {
		t.Errorf("Path = %q, want %q", a.Path, "a.wa.a")
	}
	if a.Parent != web.Identity() {
		t.Errorf("Parent = %q, want %q", a.Parent, web.Identity())
	}
	if got := ix.Resolve(model.Ref(auth)); got != "a.wa.a" {
		t.Errorf("Resolve(auth) = %q, want %q", got, "a.wa.a")
	}
	if len(ix.Allocations) != 3 {
		t.Errorf("len(Allocations) = %d, want 3", len(ix.Allocations))
	}
}

func TestRelationshipOrderIndependentOfDeclaration(t *testing.T) {
	ids := model.NewSequentialAllocator()
	ws := newWorkspace(t)
	alpha := must(model.NewPerson(ids, model.PersonConfig{Name: "Alpha", Description: "d"}))(t)
	beta := must(model.NewPerson(ids, model.PersonConfig{Name: "Beta", Description: "d"}))(t)

	_ = ws.AddRelationship(must(model.NewRelationship(model.RelationshipConfig{
		Source: model.Ref(beta), Target: model.Ref(alpha), Description: "first"}))(t))
	_ = ws.AddRelationship(must(model.NewRelationship(model.RelationshipConfig{
		Source: model.Ref(alpha), Target: model.Ref(beta), Description: "second"}))(t))
	_ = ws.AddPerson(alpha)
	_ = ws.AddPerson(beta)

	got := serialize(t, ws)
	first := strings.Index(got, `b -> a "first"`)
	second := strings.Index(got, `a -> b "second"`)
	if first < 0 || second < 0 || first > second {
		t.Errorf("relationships out of order:\n%s", got)
	}
}

func TestSerializeEscapesText(t *testing.T) {
	ids := model.NewSequentialAllocator()
	ws, err := NewWorkspace(WorkspaceConfig{Name: `The "Big" One`, Description: `C:\apps`})
	if err != nil {
		t.Fatal(err)
	}
	_ = ws.AddPerson(must(model.NewPerson(ids, model.PersonConfig{Name: `Bob "B"`, Description: `back\slash`}))(t))

	got := serialize(t, ws)
	if !strings.HasPrefix(got, `workspace "The \"Big\" One" "C:\\apps" {`) {
		t.Errorf("header not escaped:\n%s", got)
	}
	if !strings.Contains(got, `b_ = person "Bob \"B\"" "back\\slash"`) {
		t.Errorf("person not escaped:\n%s", got)
	}
}

func TestSerializeDuplicateElement(t *testing.T) {
	ids := model.NewSequentialAllocator()
	ws := newWorkspace(t)
	user := must(model.NewPerson(ids, model.PersonConfig{Name: "User", Description: "d"}))(t)
	_ = ws.AddPerson(user)
	_ = ws.AddPerson(user)

	out, err := ws.Serialize()
	if !c4errors.Is(err, c4errors.ErrCodeDuplicateElement) {
		t.Errorf("Serialize() error = %v, want %v", err, c4errors.ErrCodeDuplicateElement)
	}
	if out != "" {
		t.Errorf("Serialize() returned partial output %q", out)
	}
}

func TestSerializeInvalidViewReturnsNothing(t *testing.T) {
	ws := newWorkspace(t)
	ws.AddView(ViewConfig{Type: ComponentView, Title: "no element"})

	out, err := ws.Serialize()
	if !c4errors.Is(err, c4errors.ErrCodeTemplate) {
		t.Errorf("Serialize() error = %v, want %v", err, c4errors.ErrCodeTemplate)
	}
	if out != "" {
		t.Errorf("Serialize() returned partial output %q", out)
	}
}

func TestSerializeStylesDSL(t *testing.T) {
	ws := newWorkspace(t)
	ws.AddElementStyle(ElementStyle{Tag: "Ignored", Shape: ShapeBox})
	ws.SetStylesDSL("styles {\nelement \"Software System\" {\nbackground #1168bd\n}\n}")

	want := `workspace "Shop" "Online shop" {
    !identifiers hierarchical

    model {
    }

    views {
        styles {
            element "Software System" {
                background #1168bd
            }
        }
    }
}`
	if got := serialize(t, ws); got != want {
		t.Errorf("Serialize() =\n%s\nwant\n%s", got, want)
	}
}

func TestNewWorkspaceValidation(t *testing.T) {
	_, err := NewWorkspace(WorkspaceConfig{Description: "d"})
	if !c4errors.Is(err, c4errors.ErrCodeInvalidInput) {
		t.Errorf("NewWorkspace() error = %v, want %v", err, c4errors.ErrCodeInvalidInput)
	}
}

func TestAddNil(t *testing.T) {
	ws := newWorkspace(t)
	if err := ws.AddPerson(nil); err == nil {
		t.Error("AddPerson(nil) error = nil")
	}
	if err := ws.AddSoftwareSystem(nil); err == nil {
		t.Error("AddSoftwareSystem(nil) error = nil")
	}
	if err := ws.AddRelationship(nil); err == nil {
		t.Error("AddRelationship(nil) error = nil")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteTo(t *testing.T) {
	ws := buildShop(t)

	var buf bytes.Buffer
	n, err := ws.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if n != int64(len(shopGolden)) || buf.String() != shopGolden {
		t.Errorf("WriteTo() wrote %d bytes, want golden document", n)
	}

	if _, err := ws.WriteTo(failingWriter{}); !c4errors.Is(err, c4errors.ErrCodeTemplate) {
		t.Errorf("WriteTo(failing) error = %v, want %v", err, c4errors.ErrCodeTemplate)
	}
}
