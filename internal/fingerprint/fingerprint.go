// Package fingerprint derives short content hashes used to tell loaded values apart in
// logs.
package fingerprint

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
)

// Compute returns the first 8 bytes of SHA256 over the JSON encoding of v, hex encoded.
// Values that cannot be encoded get an "invalid-<type>" marker instead.
func Compute(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("invalid-%T", v)
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash[:8])
}
