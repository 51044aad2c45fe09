package accounts_test

import (
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jellyswarrm/jellyswarrm/accounts"
)

var _ = Describe("QuickConnectStore", func() {
	var store *accounts.QuickConnectStore

	BeforeEach(func() {
		store = accounts.NewQuickConnectStore()
	})

	device := accounts.DeviceInfo{DeviceID: "tv-1", DeviceName: "TV", Client: "Jellyfin Web", Version: "10.9"}

	It("issues a secret and a 6-digit code", func() {
		e := store.Initiate(device)
		Expect(e.Secret).NotTo(BeEmpty())
		Expect(e.Code).To(MatchRegexp(`^\d{6}$`))
		Expect(e.Authenticated).To(BeFalse())
	})

	It("is pollable by secret until consumed", func() {
		e := store.Initiate(device)

		got, ok := store.BySecret(e.Secret)
		Expect(ok).To(BeTrue())
		Expect(got.Code).To(Equal(e.Code))
		Expect(got.Authenticated).To(BeFalse())

		_, ok = store.BySecret("no-such-secret")
		Expect(ok).To(BeFalse())
	})

	It("marks the entry authenticated on authorize", func() {
		e := store.Initiate(device)
		userID := uuid.New()

		Expect(store.Authorize(e.Code, userID)).To(BeTrue())

		got, ok := store.BySecret(e.Secret)
		Expect(ok).To(BeTrue())
		Expect(got.Authenticated).To(BeTrue())
		Expect(got.UserID).To(Equal(userID))
	})

	It("rejects authorizing an unknown code", func() {
		Expect(store.Authorize("000000", uuid.New())).To(BeFalse())
	})

	It("consumes an entry exactly once", func() {
		e := store.Initiate(device)
		Expect(store.Authorize(e.Code, uuid.New())).To(BeTrue())

		got, ok := store.Consume(e.Secret)
		Expect(ok).To(BeTrue())
		Expect(got.Device.DeviceID).To(Equal("tv-1"))

		_, ok = store.Consume(e.Secret)
		Expect(ok).To(BeFalse())
		Expect(store.Len()).To(BeZero())

		// The code dies with the secret.
		Expect(store.Authorize(e.Code, uuid.New())).To(BeFalse())
	})
})
