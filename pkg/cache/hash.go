package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// layoutKey names the layout of source rendered as format. Keys read
// kind:sha256, where the hash covers both the format and the source, so an
// SVG and a PNG of one graph never collide.
func layoutKey(kind, format, source string) string {
	h := sha256.New()
	h.Write([]byte(format))
	h.Write([]byte{0})
	h.Write([]byte(source))
	return kind + ":" + hex.EncodeToString(h.Sum(nil))
}

// splitKey returns the kind of key and its hashed remainder. Keys without a
// kind are filed under "misc".
func splitKey(key string) (kind, rest string) {
	kind, rest, ok := strings.Cut(key, ":")
	if !ok || kind == "" || strings.ContainsAny(kind, `/\.`) {
		return "misc", key
	}
	return kind, rest
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
