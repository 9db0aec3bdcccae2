// Package dsl serializes a [model] workspace into the hierarchical
// architecture-description DSL.
//
// # Overview
//
// Serialization is a single, ordered pass over a [Workspace]:
//
//	header → model (people, systems → containers → components, relationships)
//	       → views (views, styles) → footer
//
// The output is byte-stable: identical workspaces built in the same order
// produce identical strings, which external tooling and golden tests depend on.
//
// # Identifiers
//
// Every emitted element gets a short identifier derived from its name by
// [Generate] (the first letter of each word, lower-cased). Identifiers are
// unique per [Scope]: people and software systems share the top-level scope,
// the containers of one system share a scope, and so do the components of one
// container. Collisions get numeric suffixes in allocation order:
//
//	User, User, User  →  u, u1, u2
//
// Because the workspace is written with "!identifiers hierarchical", nested
// elements are referenced by their dotted path, for example "a.wa.a" for the
// component Auth in container Web App of system API.
//
// # References
//
// Relationships and views refer to elements through [model.Endpoint] values.
// [Paths] resolves them after all elements are registered. Endpoints that are
// not part of the walked model fall back to a formatted identifier instead of
// failing, so the DSL can reference elements declared elsewhere.
//
// # Escaping
//
// All free text goes through [EscapeString] before it is placed inside a
// string literal, and raw references go through [FormatIdentifier] or
// [FormatReference] before they are emitted as bare tokens.
//
// # Example
//
//	ids := model.NewSequentialAllocator()
//	ws, _ := dsl.NewWorkspace(dsl.WorkspaceConfig{Name: "Shop", Description: "Online shop"})
//	user, _ := model.NewPerson(ids, model.PersonConfig{Name: "User", Description: "A customer"})
//	_ = ws.AddPerson(user)
//	out, err := ws.Serialize()
//
// # Concurrency
//
// A [Workspace] must be used by a single owner. Serialize does no I/O and
// keeps all allocation state local to the call.
package dsl
