package playsession_test

import (
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jellyswarrm/jellyswarrm/playsession"
)

var _ = Describe("Tracker", func() {
	var (
		tracker *playsession.Tracker
		serverA uuid.UUID
		serverB uuid.UUID
	)

	BeforeEach(func() {
		tracker = playsession.NewTracker()
		DeferCleanup(tracker.Stop)
		serverA = uuid.New()
		serverB = uuid.New()
	})

	It("returns the tracked server", func() {
		tracker.Track("stream-1", serverA)

		got, ok := tracker.Lookup("stream-1")
		Expect(ok).To(BeTrue())
		Expect(got).To(Equal(serverA))
	})

	It("misses for unknown streams", func() {
		_, ok := tracker.Lookup("never-seen")
		Expect(ok).To(BeFalse())
	})

	It("overwrites on re-track", func() {
		tracker.Track("stream-1", serverA)
		tracker.Track("stream-1", serverB)

		got, ok := tracker.Lookup("stream-1")
		Expect(ok).To(BeTrue())
		Expect(got).To(Equal(serverB))
	})

	It("ignores empty stream IDs", func() {
		tracker.Track("", serverA)
		Expect(tracker.Len()).To(Equal(0))
	})

	It("matches hyphenated and simple UUID spellings", func() {
		tracker.Track("550e8400e29b41d4a716446655440000", serverA)

		got, ok := tracker.Lookup("550e8400-e29b-41d4-a716-446655440000")
		Expect(ok).To(BeTrue())
		Expect(got).To(Equal(serverA))
	})
})

var _ = DescribeTable("StreamIDFromTranscodingURL",
	func(url, wantID string, wantOK bool) {
		id, ok := playsession.StreamIDFromTranscodingURL(url)
		Expect(ok).To(Equal(wantOK))
		Expect(id).To(Equal(wantID))
	},
	Entry("HLS master playlist", "/videos/T1/master.m3u8?DeviceId=d&api_key=k", "T1", true),
	Entry("upper-case route", "/Videos/abc123/stream.mp4", "abc123", true),
	Entry("absolute URL", "http://jf.local:8096/videos/T9/main.m3u8", "T9", true),
	Entry("no videos segment", "/Audio/xyz/stream.mp3", "", false),
	Entry("videos without trailing segment", "/videos/T1", "", false),
	Entry("empty", "", "", false),
)
