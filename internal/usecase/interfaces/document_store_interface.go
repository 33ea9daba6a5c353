package interfaces

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrConditionFailed is returned when a conditional write finds the key already taken
// or the stored version differs from the expected one.
var ErrConditionFailed = errors.New("document store: condition failed")

const (
	// IndexSoW lists quotes of a scope of work ordered by price.
	IndexSoW = "sow-index"
	// IndexBuilder lists quotes of a builder ordered by status and submission time.
	IndexBuilder = "builder-index"
)

// DocumentKey addresses one item of the single-table store.
type DocumentKey struct {
	PK string
	SK string
}

// Document is a stored item. Index attributes are optional; items without them are
// not visible through the matching index.
type Document struct {
	Key     DocumentKey
	Type    string
	GSI1PK  string
	GSI1SK  string
	GSI2PK  string
	GSI2SK  string
	// Version is an optional counter that conditional writes can match against.
	Version int
	Body    json.RawMessage
}

// TransactItem is one write of an all-or-nothing TransactPut.
//
// IfAbsent requires the key to be free. IfVersion, when positive, requires the
// stored item to exist with that Version.
type TransactItem struct {
	Document  Document
	IfAbsent  bool
	IfVersion int
}

// IDocumentStore abstracts the key-value document table shared by every repository.
//
// Get returns a zero Document (empty Key.PK) when the key does not exist.
// PutIfAbsent and TransactPut return ErrConditionFailed when a guarded key exists.
type IDocumentStore interface {
	Get(ctx context.Context, key DocumentKey) (Document, error)
	Put(ctx context.Context, doc Document) error
	PutIfAbsent(ctx context.Context, doc Document) error
	TransactPut(ctx context.Context, items []TransactItem) error
	QueryByPartitionPrefix(ctx context.Context, pk, skPrefix string) ([]Document, error)
	QueryByIndex(ctx context.Context, index, key, skPrefix string) ([]Document, error)
}
