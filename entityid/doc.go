// Package entityid provides a strongly typed unique identifier for domain
// entities.
//
// An ID wraps a random version 4 UUID and carries a type-level marker naming
// the entity kind it identifies. Identifiers of different kinds share the
// same 128-bit value space yet remain distinct Go types, so an order
// identifier cannot be passed, assigned or compared where a user identifier
// is expected:
//
//	type Order struct{}
//	type OrderID = entityid.ID[Order]
//
//	id := entityid.New[Order]()
//	same := entityid.FromUUID[Order](id.UUID())
//	// id == same
//
// The marker occupies no storage and never appears in the textual form; the
// rendered identifier is the plain canonical UUID string.
package entityid
