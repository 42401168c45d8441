package mygit

import (
	"encoding/hex"
	"fmt"

	gocid "github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multihash"
)

// DefaultCIDBase is the multibase used for CID strings unless another one
// is requested.
const DefaultCIDBase = "base32"

// CID returns the CIDv1 addressing the object under IPLD's git-raw codec.
// The multihash wraps the same SHA-1 digest, so the mapping is lossless.
func (d Digest) CID() (gocid.Cid, error) {
	raw, err := hex.DecodeString(string(d))
	if err != nil || len(raw) != DigestSize {
		return gocid.Undef, fmt.Errorf("%w: %q", ErrInvalidDigest, string(d))
	}

	mh, err := multihash.Encode(raw, multihash.SHA1)
	if err != nil {
		return gocid.Undef, fmt.Errorf("multihash: %w", err)
	}
	return gocid.NewCidV1(gocid.GitRaw, mh), nil
}

// CIDString renders the CID in the named multibase (e.g. "base32",
// "base58btc").
func (d Digest) CIDString(base string) (string, error) {
	c, err := d.CID()
	if err != nil {
		return "", err
	}

	enc, err := multibase.EncoderByName(base)
	if err != nil {
		return "", fmt.Errorf("cid base %q: %w", base, err)
	}
	return c.Encode(enc), nil
}

// ParseCID converts a git-raw SHA-1 CID back into a digest.
func ParseCID(s string) (Digest, error) {
	c, err := gocid.Decode(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidDigest, s, err)
	}

	prefix := c.Prefix()
	if prefix.Codec != gocid.GitRaw || prefix.MhType != multihash.SHA1 {
		return "", fmt.Errorf("%w: %s does not address a git object", ErrInvalidDigest, s)
	}

	decoded, err := multihash.Decode(c.Hash())
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidDigest, s, err)
	}
	return Digest(hex.EncodeToString(decoded.Digest)), nil
}

// ParseObjectName accepts either a hex digest or a CID.
func ParseObjectName(s string) (Digest, error) {
	if d, err := ParseDigest(s); err == nil {
		return d, nil
	}
	return ParseCID(s)
}
