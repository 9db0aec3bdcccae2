package model

import (
	"strings"
	"testing"

	"github.com/c4dsl/c4dsl/pkg/errors"
)

func TestNewPerson(t *testing.T) {
	ids := NewSequentialAllocator()
	p, err := NewPerson(ids, PersonConfig{Name: "User", Description: "A user of the system", Location: External})
	if err != nil {
		t.Fatalf("NewPerson() error = %v", err)
	}
	if p.Name() != "User" {
		t.Errorf("Name() = %q, want %q", p.Name(), "User")
	}
	if p.Kind() != KindPerson {
		t.Errorf("Kind() = %v, want %v", p.Kind(), KindPerson)
	}
	if !p.IsExternal() {
		t.Error("IsExternal() = false, want true")
	}
	if p.Identity() != "e1" {
		t.Errorf("Identity() = %q, want %q", p.Identity(), "e1")
	}
}

func TestNewElementValidation(t *testing.T) {
	ids := NewSequentialAllocator()
	long := strings.Repeat("x", errors.MaxTechnologyLength+1)

	tests := []struct {
		name  string
		build func() error
		field string
	}{
		{"missing name", func() error {
			_, err := NewPerson(ids, PersonConfig{Description: "d"})
			return err
		}, "name"},
		{"missing description", func() error {
			_, err := NewSoftwareSystem(ids, SoftwareSystemConfig{Name: "API"})
			return err
		}, "description"},
		{"technology too long", func() error {
			_, err := NewContainer(ids, ContainerConfig{Name: "Web", Description: "d", Technology: long})
			return err
		}, "technology"},
		{"bad location", func() error {
			_, err := NewComponent(ids, ComponentConfig{Name: "Auth", Description: "d", Location: Location(7)})
			return err
		}, "location"},
		{"nil allocator", func() error {
			_, err := NewCodeElement(nil, CodeElementConfig{Name: "Foo", Description: "d"})
			return err
		}, "allocator"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error = %v, want mention of %q", err, tt.field)
			}
		})
	}
}

func TestOwnership(t *testing.T) {
	ids := NewSequentialAllocator()
	api, _ := NewSoftwareSystem(ids, SoftwareSystemConfig{Name: "API", Description: "d"})
	other, _ := NewSoftwareSystem(ids, SoftwareSystemConfig{Name: "Other", Description: "d"})
	web, _ := NewContainer(ids, ContainerConfig{Name: "Web App", Description: "d", Type: ContainerWebApplication})
	auth, _ := NewComponent(ids, ComponentConfig{Name: "Auth", Description: "d"})
	cls, _ := NewCodeElement(ids, CodeElementConfig{Name: "Token", Description: "d", Type: CodeStruct})

	if err := api.AddContainer(web); err != nil {
		t.Fatalf("AddContainer() error = %v", err)
	}
	if err := web.AddComponent(auth); err != nil {
		t.Fatalf("AddComponent() error = %v", err)
	}
	if err := auth.AddCodeElement(cls); err != nil {
		t.Fatalf("AddCodeElement() error = %v", err)
	}

	if got := len(api.Containers()); got != 1 {
		t.Errorf("len(Containers()) = %d, want 1", got)
	}
	if web.Type() != ContainerWebApplication {
		t.Errorf("Type() = %v, want %v", web.Type(), ContainerWebApplication)
	}
	if cls.Type() != CodeStruct {
		t.Errorf("Type() = %v, want %v", cls.Type(), CodeStruct)
	}

	err := other.AddContainer(web)
	if !errors.Is(err, errors.ErrCodeInvalidHierarchy) {
		t.Errorf("second AddContainer() error = %v, want %v", err, errors.ErrCodeInvalidHierarchy)
	}
	if got := len(other.Containers()); got != 0 {
		t.Errorf("len(other.Containers()) = %d, want 0", got)
	}

	if err := web.AddComponent(nil); !errors.Is(err, errors.ErrCodeInvalidHierarchy) {
		t.Errorf("AddComponent(nil) error = %v, want %v", err, errors.ErrCodeInvalidHierarchy)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    ElementKind
		wantErr bool
	}{
		{"person", KindPerson, false},
		{"SoftwareSystem", KindSoftwareSystem, false},
		{"system", KindSoftwareSystem, false},
		{" Container ", KindContainer, false},
		{"component", KindComponent, false},
		{"code", KindCode, false},
		{"deployment", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseLocation(t *testing.T) {
	if loc, err := ParseLocation(""); err != nil || loc != Internal {
		t.Errorf("ParseLocation(\"\") = %v, %v, want Internal", loc, err)
	}
	if loc, err := ParseLocation("External"); err != nil || loc != External {
		t.Errorf("ParseLocation(External) = %v, %v, want External", loc, err)
	}
	if _, err := ParseLocation("offsite"); err == nil {
		t.Error("ParseLocation(offsite) error = nil, want error")
	}
}
