package mygit

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/aweris/mygit/internal/metrics"
	"github.com/aweris/mygit/internal/store"
)

// DB is the object database of one repository. It is safe for concurrent
// use.
type DB struct {
	root    string
	store   store.Store
	log     *zap.Logger
	metrics *metrics.Metrics
	verify  bool
}

// Open returns the object database stored under root, a directory
// previously returned by CreateRoot or LocateRoot.
func Open(root string, opts ...Option) (*DB, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	if root == "" {
		return nil, ErrRootNotFound
	}
	objectsDir := filepath.Join(root, "objects")
	if info, err := os.Stat(objectsDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}

	m, err := metrics.New(options.Registerer)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	s, err := store.NewLocalStore(objectsDir, options.CacheSize, options.CompressionLevel, m)
	if err != nil {
		return nil, err
	}

	return &DB{
		root:    root,
		store:   s,
		log:     options.Logger.With(zap.String("root", root)),
		metrics: m,
		verify:  options.Verify,
	}, nil
}

// Root returns the metadata root the database was opened on.
func (db *DB) Root() string { return db.root }

// Write persists (kind, payload) and returns its digest. Writing an object
// that already exists is a successful no-op.
func (db *DB) Write(kind Kind, payload []byte) (Digest, error) {
	d := HashObject(kind, payload)

	created, err := db.store.Put(d.String(), Encode(kind, payload))
	if err != nil {
		return "", fmt.Errorf("write %s %s: %w", kind, d, err)
	}
	db.metrics.ObjectWritten(created)

	db.log.Debug("object written",
		zap.Stringer("digest", d),
		zap.Stringer("kind", kind),
		zap.Int("size", len(payload)),
		zap.Bool("created", created))

	return d, nil
}

// Read returns the object stored under d. A missing object yields
// ErrObjectNotFound; an undecodable one yields a *CorruptObjectError.
func (db *DB) Read(d Digest) (Object, error) {
	d, err := ParseDigest(d.String())
	if err != nil {
		return Object{}, err
	}

	raw, err := db.store.Get(d.String())
	switch {
	case errors.Is(err, store.ErrNotFound):
		db.metrics.ObjectRead(metrics.ReadMissing)
		return Object{}, fmt.Errorf("%w: %s", ErrObjectNotFound, d)
	case errors.Is(err, store.ErrCorrupt):
		return Object{}, db.corrupt(d, err)
	case err != nil:
		return Object{}, fmt.Errorf("read %s: %w", d, err)
	}

	if db.verify {
		sum := sha1.Sum(raw)
		if got := hex.EncodeToString(sum[:]); got != d.String() {
			return Object{}, db.corrupt(d, fmt.Errorf("digest mismatch: content hashes to %s", got))
		}
	}

	kind, payload, err := decode(raw, db.verify)
	if err != nil {
		return Object{}, db.corrupt(d, err)
	}
	db.metrics.ObjectRead(metrics.ReadOK)

	db.log.Debug("object read",
		zap.Stringer("digest", d),
		zap.Stringer("kind", kind),
		zap.Int("size", len(payload)))

	// The cache shares raw; callers get their own copy.
	return Object{Kind: kind, Payload: bytes.Clone(payload)}, nil
}

func (db *DB) corrupt(d Digest, cause error) error {
	db.store.Evict(d.String())
	db.metrics.ObjectRead(metrics.ReadCorrupt)

	path := db.store.Path(d.String())
	db.log.Warn("corrupt object",
		zap.Stringer("digest", d),
		zap.String("path", path),
		zap.Error(cause))

	return &CorruptObjectError{Digest: d, Path: path, Err: cause}
}

// Has reports whether an object file exists for d. The file is not read.
func (db *DB) Has(d Digest) (bool, error) {
	d, err := ParseDigest(d.String())
	if err != nil {
		return false, err
	}
	return db.store.Has(d.String())
}

// Path returns the file an object with digest d is stored in. Uppercase
// digests are normalized; other malformed input is used as given.
func (db *DB) Path(d Digest) string {
	if parsed, err := ParseDigest(d.String()); err == nil {
		d = parsed
	}
	return db.store.Path(d.String())
}

// Close drops cached objects. The database must not be used afterwards.
func (db *DB) Close() error {
	db.store.Clear()
	return nil
}

// WriteObject hashes (kind, payload) and, when persist is set, stores it
// under root. Without persist the filesystem is never touched and root is
// ignored.
func WriteObject(kind Kind, payload []byte, persist bool, root string) (Digest, error) {
	if !persist {
		return HashObject(kind, payload), nil
	}

	db, err := Open(root, WithCacheSize(0))
	if err != nil {
		return "", err
	}
	defer db.Close()

	return db.Write(kind, payload)
}

// ReadObject reads the object with digest d from root.
func ReadObject(d Digest, root string) (Object, error) {
	db, err := Open(root, WithCacheSize(0))
	if err != nil {
		return Object{}, err
	}
	defer db.Close()

	return db.Read(d)
}
