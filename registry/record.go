package registry

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Record is one tamper-evident registry entry.
//
// IntegrityHash is SHA-256 over the canonical JSON encoding of Payload.
// ID is SHA-256 over IntegrityHash and the RFC 3339 timestamp, making it
// content-derived: the same payload stored at the same instant always
// yields the same id.
type Record struct {
	ID            string         `json:"id"`
	Timestamp     time.Time      `json:"timestamp"`
	Payload       map[string]any `json:"payload"`
	IntegrityHash string         `json:"integrity_hash"`
}

// New builds a record for payload, stamped with the current UTC time.
//
// Errors: ErrNilPayload, plus JSON encoding failures for payloads
// containing unmarshalable values (channels, funcs, NaN).
func New(payload map[string]any) (*Record, error) {
	return newAt(payload, time.Now().UTC())
}

// newAt is the timestamp-injected constructor backing New; tests use it
// for reproducible ids.
func newAt(payload map[string]any, ts time.Time) (*Record, error) {
	if payload == nil {
		return nil, ErrNilPayload
	}

	hash, err := payloadHash(payload)
	if err != nil {
		return nil, err
	}

	id := sha256.Sum256([]byte(hash + ts.Format(time.RFC3339Nano)))

	return &Record{
		ID:            hex.EncodeToString(id[:]),
		Timestamp:     ts,
		Payload:       payload,
		IntegrityHash: hash,
	}, nil
}

// Verify recomputes the payload hash and compares it to the stored one.
// False means the payload no longer matches what was hashed at creation
// — mutated in memory, edited on disk, or unhashable. No recovery is
// attempted; the caller decides.
func (r *Record) Verify() bool {
	if r == nil {
		return false
	}

	hash, err := payloadHash(r.Payload)
	if err != nil {
		return false
	}

	return hash == r.IntegrityHash
}

// payloadHash returns the hex SHA-256 of the payload's canonical JSON.
// encoding/json writes map keys in sorted order and renders whole-number
// floats without a fraction, so the encoding is stable across a
// marshal/unmarshal round trip (ints reload as float64 yet hash alike).
func payloadHash(payload map[string]any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("registry: encode payload: %w", err)
	}

	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:]), nil
}
