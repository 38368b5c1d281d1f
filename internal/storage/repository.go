package storage

import "context"

// Collection names. The store is schema-flexible; these are the only
// collections the application writes.
const (
	CollectionUsers  = "user"
	CollectionClubs  = "club"
	CollectionEvents = "event"
)

// Document is a stored record: a database-generated id plus an arbitrary
// key/value body. Shape validation is the caller's responsibility.
type Document struct {
	ID  string
	Doc map[string]any
}

// DocumentStore is the generic persistence gateway. Insert mints a fresh id
// and durably stores the document; FindAll returns every document in a
// collection in insertion order.
type DocumentStore interface {
	Insert(ctx context.Context, collection string, doc map[string]any) (string, error)
	FindAll(ctx context.Context, collection string) ([]Document, error)
	Collections(ctx context.Context) ([]string, error)
}
