// Package pkg provides the libraries behind c4dsl, which turns in-memory
// software architecture models into Structurizr-style DSL documents.
//
// # Overview
//
// The pkg directory is organized into these areas:
//
//  1. [model] - Element and relationship types, identities and hierarchy assembly
//  2. [dsl] - Identifier allocation, formatting and the workspace serializer
//  3. [io] - Workspace files in JSON, TOML and YAML
//  4. [render] - Graphviz diagrams and SVG conversion
//  5. [pipeline] - Orchestration (load → serialize → render)
//
// Supporting packages are [errors] for coded errors, [observability] for
// pipeline hooks and [buildinfo] for version information.
//
// # Architecture
//
// The typical data flow through c4dsl:
//
//	Workspace file (JSON/TOML/YAML)
//	         ↓
//	    [io] package (decode, assemble the hierarchy)
//	         ↓
//	    [dsl] package (allocate identifiers, serialize)
//	         ↓
//	    DSL document, or render/nodelink for DOT/SVG/PNG/PDF
//
// # Quick Start
//
// Build a model in code and serialize it:
//
//	import (
//	    "fmt"
//
//	    "github.com/c4dsl/c4dsl/pkg/dsl"
//	    "github.com/c4dsl/c4dsl/pkg/model"
//	)
//
//	ids := model.NewSequentialAllocator()
//	user, _ := model.NewPerson(ids, model.PersonConfig{Name: "User", Description: "A user"})
//	shop, _ := model.NewSoftwareSystem(ids, model.SoftwareSystemConfig{Name: "Shop", Description: "Sells things"})
//
//	ws, _ := dsl.NewWorkspace(dsl.WorkspaceConfig{Name: "Shop", Description: "Online shop"})
//	ws.AddPerson(user)
//	ws.AddSoftwareSystem(shop)
//
//	doc, err := ws.Serialize()
//	if err != nil {
//	    return err
//	}
//	fmt.Println(doc)
//
// Or load a workspace file:
//
//	ws, err := io.ImportWorkspace("bank.yaml", model.NewSequentialAllocator())
//
// [model]: https://pkg.go.dev/github.com/c4dsl/c4dsl/pkg/model
// [dsl]: https://pkg.go.dev/github.com/c4dsl/c4dsl/pkg/dsl
// [io]: https://pkg.go.dev/github.com/c4dsl/c4dsl/pkg/io
// [render]: https://pkg.go.dev/github.com/c4dsl/c4dsl/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/c4dsl/c4dsl/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/c4dsl/c4dsl/pkg/errors
// [observability]: https://pkg.go.dev/github.com/c4dsl/c4dsl/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/c4dsl/c4dsl/pkg/buildinfo
package pkg
