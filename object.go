package mygit

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind labels an object. The database treats it as opaque data; these are
// the kinds git itself defines.
type Kind string

const (
	KindBlob   Kind = "blob"
	KindTree   Kind = "tree"
	KindCommit Kind = "commit"
)

func (k Kind) String() string { return string(k) }

// DigestSize is the size in bytes of a raw object digest.
const DigestSize = sha1.Size

// Digest is the lowercase hex SHA-1 of an object's canonical encoding.
type Digest string

func (d Digest) String() string { return string(d) }

// ParseDigest validates a 40 character hex digest. Uppercase input is
// accepted and normalized.
func ParseDigest(s string) (Digest, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2*DigestSize {
		return "", fmt.Errorf("%w: %q: want %d hex characters", ErrInvalidDigest, s, 2*DigestSize)
	}
	if _, err := hex.DecodeString(s); err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidDigest, s, err)
	}
	return Digest(s), nil
}

// Object is a kind paired with its payload.
type Object struct {
	Kind    Kind
	Payload []byte
}

// Digest computes the object's digest.
func (o Object) Digest() Digest { return HashObject(o.Kind, o.Payload) }

func header(kind Kind, size int) []byte {
	return []byte(string(kind) + " " + strconv.Itoa(size) + "\x00")
}

// Encode returns the canonical encoding "<kind> <len>\x00<payload>" that
// is hashed and, compressed, persisted.
func Encode(kind Kind, payload []byte) []byte {
	h := header(kind, len(payload))
	raw := make([]byte, 0, len(h)+len(payload))
	raw = append(raw, h...)
	return append(raw, payload...)
}

// HashObject computes the digest of (kind, payload) without touching the
// filesystem.
func HashObject(kind Kind, payload []byte) Digest {
	h := sha1.New()
	h.Write(header(kind, len(payload)))
	h.Write(payload)
	return Digest(hex.EncodeToString(h.Sum(nil)))
}

// decode splits a canonical encoding. The payload aliases raw. When strict
// is set the length field must match the payload length.
func decode(raw []byte, strict bool) (Kind, []byte, error) {
	nul := bytes.IndexByte(raw, 0)
	if nul < 0 {
		return "", nil, errors.New("invalid format (no NUL)")
	}
	hdr := string(raw[:nul])
	payload := raw[nul+1:]

	parts := strings.Split(hdr, " ")
	if len(parts) != 2 {
		return "", nil, fmt.Errorf("invalid header %q", hdr)
	}

	if strict {
		size, err := strconv.Atoi(parts[1])
		if err != nil {
			return "", nil, fmt.Errorf("invalid length %q: %w", parts[1], err)
		}
		if size != len(payload) {
			return "", nil, fmt.Errorf("length mismatch (header=%d, actual=%d)", size, len(payload))
		}
	}

	return Kind(parts[0]), payload, nil
}
