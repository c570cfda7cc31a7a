package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// HashSize is the byte length of a file content digest.
const HashSize = 32

// PrincipalSize is the byte length of a principal address.
const PrincipalSize = 20

// FileHash is the SHA-256 digest that keys a file record.
type FileHash [HashSize]byte

// ComputeFileHash digests file content into its FileHash.
func ComputeFileHash(content []byte) FileHash {
	return sha256.Sum256(content)
}

// ParseFileHash decodes a hex digest, with or without a 0x prefix.
func ParseFileHash(s string) (FileHash, error) {
	var h FileHash
	raw, err := decodeHex(s, HashSize)
	if err != nil {
		return h, fmt.Errorf("parse file hash: %w", err)
	}
	copy(h[:], raw)
	return h, nil
}

// String returns the 0x-prefixed lowercase hex form of the hash.
func (h FileHash) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

// IsZero reports whether the hash is the all-zero value.
func (h FileHash) IsZero() bool {
	return h == FileHash{}
}

// Principal identifies an uploader or grantee as an opaque 20-byte address.
// The zero value is the null identity: it never owns records and can never
// be granted access.
type Principal [PrincipalSize]byte

// ParsePrincipal decodes a hex address, with or without a 0x prefix.
func ParsePrincipal(s string) (Principal, error) {
	var p Principal
	raw, err := decodeHex(s, PrincipalSize)
	if err != nil {
		return p, fmt.Errorf("parse principal: %w", err)
	}
	copy(p[:], raw)
	return p, nil
}

// String returns the 0x-prefixed lowercase hex form of the address.
func (p Principal) String() string {
	return "0x" + hex.EncodeToString(p[:])
}

// IsZero reports whether the principal is the null identity.
func (p Principal) IsZero() bool {
	return p == Principal{}
}

func decodeHex(s string, want int) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if len(raw) != want {
		return nil, fmt.Errorf("expected %d bytes, got %d", want, len(raw))
	}
	return raw, nil
}

// FileRecord binds uploaded content to its uploader, storage pointer,
// attached signature and optional location lock. Records are write-once:
// every field is fixed when the registry creates the record.
type FileRecord struct {
	FileHash         FileHash
	Uploader         Principal
	StoragePointer   string
	Signature        []byte
	Timestamp        time.Time
	HasLocationLock  bool
	LockLatMicro     int32
	LockLonMicro     int32
	LockRadiusMeters uint32
}

// Clone returns a copy of the record with its own signature buffer, so the
// stored record cannot be mutated through a returned value.
func (r FileRecord) Clone() FileRecord {
	c := r
	if r.Signature != nil {
		c.Signature = make([]byte, len(r.Signature))
		copy(c.Signature, r.Signature)
	}
	return c
}
