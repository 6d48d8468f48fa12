// Package registry stores scan outcomes as tamper-evident JSON records.
//
// 🚀 What is the registry?
//
//	A flat, human-readable JSON file of records. Each record binds an
//	arbitrary string-keyed payload to a SHA-256 integrity hash computed
//	over the payload's canonical JSON encoding; the record id is itself
//	a SHA-256 over hash and timestamp, so ids are content-derived and
//	collision-free for distinct payload/time pairs.
//
// ✨ Key properties:
//   - Verify() recomputes the payload hash and compares — a boolean, not
//     an error: tamper detection has no automatic recovery, the caller
//     decides what a false means
//   - Canonical encoding: Go's encoding/json writes map keys in sorted
//     order, so hashing survives a save/load round trip
//   - Append-only store: duplicate ids are rejected, existing records
//     are never rewritten in place
//
// ⚙️ Usage:
//
//	import "github.com/kvalterin/aureum/registry"
//
//	rec, err := registry.New(map[string]any{"optimal_n": 113})
//	store, err := registry.Open("predictions.json")
//	err = store.Append(rec)
//	err = store.Save()
//	ok := rec.Verify() // true until the payload is mutated
//
// Complexity: hashing is O(payload size); the store is O(records) in
// memory and on disk.
package registry
