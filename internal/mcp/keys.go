// ABOUTME: Static access key set gating the MCP endpoint.
// ABOUTME: Keys come from configuration; an empty set disables the gate.

package mcp

import "crypto/subtle"

// KeySet holds the access keys accepted by the MCP endpoint. Immutable
// after construction, so lookups need no locking.
type KeySet struct {
	keys []string
}

// NewKeySet builds a KeySet from the configured keys. Empty strings are
// ignored.
func NewKeySet(keys []string) *KeySet {
	s := &KeySet{}
	for _, k := range keys {
		if k != "" {
			s.keys = append(s.keys, k)
		}
	}
	return s
}

// Required reports whether any keys are configured. A nil KeySet requires
// nothing.
func (s *KeySet) Required() bool {
	return s != nil && len(s.keys) > 0
}

// Allowed reports whether the given key is in the set. Comparison is
// constant-time per candidate.
func (s *KeySet) Allowed(key string) bool {
	if s == nil || key == "" {
		return false
	}
	for _, k := range s.keys {
		if len(k) == len(key) && subtle.ConstantTimeCompare([]byte(k), []byte(key)) == 1 {
			return true
		}
	}
	return false
}
