package idmap

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// Normalize lowers every UUID spelling (hyphenated, braced, urn-prefixed,
// upper-case, simple) to the 32-char lower-case simple form Jellyfin uses
// internally. Values that do not parse as UUIDs pass through verbatim, so
// symbolic IDs like "merged-…" are unaffected.
func Normalize(id string) string {
	u, err := uuid.Parse(id)
	if err != nil {
		return id
	}
	return hex.EncodeToString(u[:])
}

// IsIDLike reports whether a string is a UUID in any accepted spelling.
// Path segments are tested with this when scanning a URL for media IDs.
func IsIDLike(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// NewVirtualID mints a fresh virtual media ID: a random UUID in simple form.
// Virtual IDs carry no information about the owning server or original ID.
func NewVirtualID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}
