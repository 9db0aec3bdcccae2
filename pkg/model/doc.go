// Package model defines the in-memory architecture model that c4dsl serializes.
//
// # Elements
//
// A model consists of five element kinds arranged in a strict ownership tree:
//
//	SoftwareSystem → Container → Component → CodeElement
//
// plus free-standing [Person] elements. Every element is created through a
// constructor that takes a plain configuration struct and an
// [IdentityAllocator], and returns an error naming the first field that is
// missing or out of bounds:
//
//	ids := model.NewSequentialAllocator()
//	api, err := model.NewSoftwareSystem(ids, model.SoftwareSystemConfig{
//	    Name:        "API",
//	    Description: "Public API",
//	})
//
// # Identity
//
// Each element receives an opaque [Identity] when it is constructed. Identities
// are name-independent: two elements may share a display name and still be
// distinct. There is no package-level counter; the allocator is threaded
// through construction so tests can run with deterministic, resettable
// identities ([NewSequentialAllocator]) while long-lived processes may prefer
// random ones ([NewUUIDAllocator]).
//
// # Relationships
//
// A [Relationship] joins two [Endpoint] values rather than element values, so
// it never duplicates ownership. Endpoints are created with [Ref] for model
// elements or [Raw] for references to elements declared elsewhere.
//
// # Declared Hierarchies
//
// Models loaded from files name their parents instead of nesting. [Assemble]
// turns a flat list of [Declaration] values into the owned tree, rejecting
// parents of the wrong kind and circular parent chains.
package model
