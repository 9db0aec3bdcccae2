// Package io reads and writes workspace definition files.
//
// # Overview
//
// A workspace file describes a model as flat lists, which is easier to write
// by hand than nested blocks. This package decodes such files from JSON,
// TOML or YAML and builds a [dsl.Workspace] ready to serialize.
//
// # File Format
//
//	name = "Big Bank"
//	description = "Internet banking"
//
//	[[elements]]
//	kind = "softwareSystem"
//	name = "Internet Banking"
//	description = "Accounts and payments"
//
//	[[elements]]
//	kind = "container"
//	name = "Web App"
//	description = "Delivers content"
//	technology = "Go"
//	parent = "Internet Banking"
//
//	[[relationships]]
//	source = "Customer"
//	target = "Web App"
//	description = "Visits"
//
//	[[views]]
//	type = "container"
//	element = "Internet Banking"
//	title = "Containers"
//	include = ["*"]
//
//	[[styles.elements]]
//	tag = "Person"
//	shape = "Person"
//
// JSON and YAML files use the same keys. Elements name their owner with
// "parent"; containers belong to software systems, components to containers
// and code elements to components. Relationship and view endpoints name
// elements. A name that matches no element is passed through as a raw DSL
// reference, which allows references such as "*" or elements defined
// elsewhere.
//
// A "dsl" key under styles holds a pre-rendered styles block that replaces
// the element and relationship styles.
//
// # Import
//
// Use [ImportWorkspace] to read a workspace from a file path, picking the
// format from its extension, or [ReadWorkspace] to read from any io.Reader:
//
//	ws, err := io.ImportWorkspace("bank.toml", model.NewSequentialAllocator())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := ws.Serialize()
//
// Errors carry the codes of [github.com/c4dsl/c4dsl/pkg/errors]:
// FILE_NOT_FOUND, INVALID_FORMAT for undecodable files or unknown keys, and
// the model codes for invalid elements or hierarchies.
//
// # Export
//
// [Encode] and [Export] write a [File] back out. Decoding one format and
// encoding another converts between them.
//
// [dsl.Workspace]: github.com/c4dsl/c4dsl/pkg/dsl.Workspace
package io
