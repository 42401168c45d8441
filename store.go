package mygit

// Writer persists objects.
type Writer interface {
	Write(kind Kind, payload []byte) (Digest, error)
}

// Reader retrieves persisted objects.
type Reader interface {
	Read(d Digest) (Object, error)
	Has(d Digest) (bool, error)
}

// ObjectStore is implemented by DB.
type ObjectStore interface {
	Writer
	Reader
	Path(d Digest) string
	Close() error
}

var _ ObjectStore = (*DB)(nil)
