package io

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/c4dsl/c4dsl/pkg/errors"
	"github.com/c4dsl/c4dsl/pkg/model"
)

const bankDSL = `workspace "Big Bank" "Internet banking" {
    !identifiers hierarchical

    model {
        c = person "Customer" "A bank customer"
        ib = softwareSystem "Internet Banking" "Accounts and payments" {
            wa = container "Web App" "Delivers content" "Go" {
                si = component "Sign In" "Authenticates customers"
            }
        }
        m = softwareSystem "Mainframe" "Core banking" {
            tags "External"
        }

        c -> ib.wa "Visits" "HTTPS"
        ib.wa.si -> m "Checks credentials"
    }

    views {
        container ib "Containers" {
            include *
            autoLayout lr
        }
        styles {
            element "Person" {
                background #08427b
                shape Person
            }
        }
    }
}`

func TestImportWorkspace(t *testing.T) {
	for _, name := range []string{"bank.toml", "bank.json", "bank.yaml"} {
		t.Run(name, func(t *testing.T) {
			ws, err := ImportWorkspace(filepath.Join("testdata", name), model.NewSequentialAllocator())
			if err != nil {
				t.Fatalf("ImportWorkspace() error: %v", err)
			}
			got, err := ws.Serialize()
			if err != nil {
				t.Fatalf("Serialize() error: %v", err)
			}
			if got != bankDSL {
				t.Errorf("Serialize() =\n%s\nwant\n%s", got, bankDSL)
			}
		})
	}
}

func TestImportWorkspace_Errors(t *testing.T) {
	dir := t.TempDir()
	unknown := filepath.Join(dir, "model.txt")
	if err := os.WriteFile(unknown, []byte("name = \"x\""), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want errors.Code
	}{
		{"missing file", filepath.Join(dir, "missing.toml"), errors.ErrCodeFileNotFound},
		{"unknown extension", unknown, errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ImportWorkspace(tt.path, model.NewSequentialAllocator())
			if !errors.Is(err, tt.want) {
				t.Errorf("ImportWorkspace() error = %v, want code %s", err, tt.want)
			}
		})
	}
}

func TestDecode_Strict(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
	}{
		{"toml unknown key", FormatTOML, "name = \"x\"\ndescription = \"d\"\n[[elements]]\nkind = \"person\"\nname = \"P\"\nparnet = \"Q\"\n"},
		{"json unknown key", FormatJSON, `{"name": "x", "description": "d", "elements": [{"kind": "person", "name": "P", "parnet": "Q"}]}`},
		{"json unknown top-level key", FormatJSON, `{"name": "x", "description": "d", "model": {}}`},
		{"yaml unknown key", FormatYAML, "name: x\ndescription: d\nelements:\n  - kind: person\n    name: P\n    parnet: Q\n"},
		{"malformed json", FormatJSON, `{"name": "x",`},
		{"unknown format", Format("xml"), "<workspace/>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), tt.format)
			if !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("Decode() error = %v, want code %s", err, errors.ErrCodeInvalidFormat)
			}
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		file File
		want errors.Code
	}{
		{
			name: "missing workspace name",
			file: File{Description: "d"},
			want: errors.ErrCodeInvalidInput,
		},
		{
			name: "unknown kind",
			file: File{Name: "w", Description: "d", Elements: []Element{{Kind: "robot", Name: "R", Description: "d"}}},
			want: errors.ErrCodeInvalidInput,
		},
		{
			name: "unknown location",
			file: File{Name: "w", Description: "d", Elements: []Element{{Kind: "person", Name: "P", Description: "d", Location: "mars"}}},
			want: errors.ErrCodeInvalidInput,
		},
		{
			name: "wrong parent kind",
			file: File{Name: "w", Description: "d", Elements: []Element{
				{Kind: "person", Name: "P", Description: "d"},
				{Kind: "container", Name: "C", Description: "d", Parent: "P"},
			}},
			want: errors.ErrCodeInvalidHierarchy,
		},
		{
			name: "cycle",
			file: File{Name: "w", Description: "d", Elements: []Element{
				{Kind: "container", Name: "A", Description: "d", Parent: "B"},
				{Kind: "component", Name: "B", Description: "d", Parent: "A"},
			}},
			want: errors.ErrCodeCircularHierarchy,
		},
		{
			name: "unknown style",
			file: File{Name: "w", Description: "d", Relationships: []Relationship{
				{Source: "a", Target: "b", Description: "d", Style: "sideways"},
			}},
			want: errors.ErrCodeInvalidInput,
		},
		{
			name: "relationship without description",
			file: File{Name: "w", Description: "d", Relationships: []Relationship{{Source: "a", Target: "b"}}},
			want: errors.ErrCodeInvalidElement,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws, err := Build(&tt.file, model.NewSequentialAllocator())
			if !errors.Is(err, tt.want) {
				t.Errorf("Build() error = %v, want code %s", err, tt.want)
			}
			if ws != nil {
				t.Error("Build() returned a workspace on error")
			}
		})
	}
}

func TestBuild_RawEndpoints(t *testing.T) {
	f := &File{
		Name:        "w",
		Description: "d",
		Elements:    []Element{{Kind: "person", Name: "User", Description: "d"}},
		Relationships: []Relationship{
			{Source: "User", Target: "legacy.db", Description: "Reads"},
		},
		Views: []View{{Type: "systemContext", Element: "legacy", Title: "Legacy", Include: []string{"*"}}},
	}
	ws, err := Build(f, model.NewSequentialAllocator())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	got, err := ws.Serialize()
	if err != nil {
		t.Fatalf("Serialize() error: %v", err)
	}
	for _, want := range []string{`u -> legacy.db "Reads"`, `systemContext legacy "Legacy" {`} {
		if !strings.Contains(got, want) {
			t.Errorf("Serialize() missing %q:\n%s", want, got)
		}
	}
}

func TestBuild_StylesDSL(t *testing.T) {
	f := &File{
		Name:        "w",
		Description: "d",
		Styles: Styles{
			Elements: []ElementStyle{{Tag: "Ignored", Shape: "Box"}},
			DSL:      "styles {\n  element \"Database\" {\n    shape Cylinder\n  }\n}\n",
		},
	}
	ws, err := Build(f, model.NewSequentialAllocator())
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	got, _ := ws.Serialize()
	if strings.Contains(got, "Ignored") {
		t.Errorf("Serialize() used built styles despite styles.dsl:\n%s", got)
	}
	want := "        styles {\n            element \"Database\" {\n                shape Cylinder\n            }\n        }"
	if !strings.Contains(got, want) {
		t.Errorf("Serialize() =\n%s\nwant fragment\n%s", got, want)
	}
}

func TestEncode_Convert(t *testing.T) {
	src, err := Load(filepath.Join("testdata", "bank.toml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	for _, format := range []Format{FormatJSON, FormatTOML, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, src, format); err != nil {
				t.Fatalf("Encode() error: %v", err)
			}
			got, err := Decode(&buf, format)
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if !reflect.DeepEqual(got, src) {
				t.Errorf("Decode(Encode()) = %+v, want %+v", got, src)
			}
		})
	}
}

func TestExport(t *testing.T) {
	src, err := Load(filepath.Join("testdata", "bank.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	path := filepath.Join(t.TempDir(), "out.json")
	if err := Export(src, path); err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !reflect.DeepEqual(got, src) {
		t.Errorf("Load(Export()) = %+v, want %+v", got, src)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"a.json", FormatJSON, false},
		{"dir/a.TOML", FormatTOML, false},
		{"a.yaml", FormatYAML, false},
		{"a.yml", FormatYAML, false},
		{"a.dsl", "", true},
		{"noext", "", true},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"json": FormatJSON, "TOML": FormatTOML, "yml": FormatYAML, " yaml ": FormatYAML} {
		if got, err := ParseFormat(in); err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v, want %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ParseFormat(xml) error = %v, want code %s", err, errors.ErrCodeInvalidFormat)
	}
}
