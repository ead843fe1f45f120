// Package storage provides the persistent record store used by the
// inventory and the cart. A record is an opaque byte payload under a fixed
// string key; the store neither interprets nor validates payloads.
package storage

// RecordStore is the persistence port injected into the bookkeeping layer.
// ReadRecord returns (nil, nil) when the key has never been written; a
// non-nil error means the backing store itself failed, not that the key is
// absent.
type RecordStore interface {
	ReadRecord(key string) ([]byte, error)
	WriteRecord(key string, data []byte) error
}
