// Package playsession remembers which upstream server owns each active
// playback stream. Stream URLs (HLS manifests, segments, direct streams)
// carry IDs minted by the upstream transcoder that never pass through the
// media-mapping store, so byte-serving routes can only be routed through
// this tracker.
package playsession

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"

	"github.com/jellyswarrm/jellyswarrm/idmap"
)

// entryTTL outlives any reasonable playback pause; entries touch on hit, so
// an active stream never expires mid-play.
const entryTTL = 4 * time.Hour

const capacity = 10_000

// Tracker maps stream IDs to the owning server.
type Tracker struct {
	cache *ttlcache.Cache[string, uuid.UUID]
}

// NewTracker builds a tracker and starts its eviction janitor. Call Stop on
// shutdown.
func NewTracker() *Tracker {
	t := &Tracker{
		cache: ttlcache.New[string, uuid.UUID](
			ttlcache.WithTTL[string, uuid.UUID](entryTTL),
			ttlcache.WithCapacity[string, uuid.UUID](capacity),
		),
	}
	go t.cache.Start()
	return t
}

// Stop terminates the eviction janitor.
func (t *Tracker) Stop() {
	t.cache.Stop()
}

// Track records that streamID belongs to serverID. IDs are normalized so the
// hyphenated and simple UUID spellings hit the same entry.
func (t *Tracker) Track(streamID string, serverID uuid.UUID) {
	if streamID == "" {
		return
	}
	t.cache.Set(idmap.Normalize(streamID), serverID, ttlcache.DefaultTTL)
}

// Lookup returns the server owning streamID, refreshing the entry's TTL.
func (t *Tracker) Lookup(streamID string) (uuid.UUID, bool) {
	item := t.cache.Get(idmap.Normalize(streamID))
	if item == nil {
		return uuid.UUID{}, false
	}
	return item.Value(), true
}

// Len reports the number of tracked streams.
func (t *Tracker) Len() int {
	return t.cache.Len()
}

var videosSegment = regexp.MustCompile(`(?i)/videos/([^/?]+)/`)

// StreamIDFromTranscodingURL extracts the stream ID from a transcoding or
// direct-stream URL like "/videos/T1/master.m3u8?...". Returns false when
// the URL has no /Videos/{id}/ segment.
func StreamIDFromTranscodingURL(u string) (string, bool) {
	m := videosSegment.FindStringSubmatch(u)
	if m == nil {
		return "", false
	}
	return m[1], true
}
