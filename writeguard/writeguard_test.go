package writeguard_test

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/jellyswarrm/jellyswarrm/writeguard"
)

var _ = Describe("Guard", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("acquires and releases", func() {
		g := writeguard.New()

		release, err := g.Acquire(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(g.WriteInProgress()).To(BeTrue())

		release()
		Expect(g.WriteInProgress()).To(BeFalse())
	})

	It("serializes two writers", func() {
		g := writeguard.New()
		var order atomic.Int32

		release, err := g.Acquire(ctx)
		Expect(err).NotTo(HaveOccurred())

		done := make(chan struct{})
		go func() {
			defer GinkgoRecover()
			defer close(done)
			r, err := g.Acquire(ctx)
			Expect(err).NotTo(HaveOccurred())
			defer r()
			// Must observe the first writer's store.
			Expect(order.Load()).To(Equal(int32(1)))
		}()

		time.Sleep(20 * time.Millisecond)
		order.Store(1)
		release()
		Eventually(done).Should(BeClosed())
	})

	It("fails TryAcquire while held", func() {
		g := writeguard.New()

		release, err := g.Acquire(ctx)
		Expect(err).NotTo(HaveOccurred())
		defer release()

		_, ok := g.TryAcquire()
		Expect(ok).To(BeFalse())
	})

	It("succeeds TryAcquire when free", func() {
		g := writeguard.New()

		release, ok := g.TryAcquire()
		Expect(ok).To(BeTrue())
		release()
	})

	It("returns ErrTimeout when the budget runs out", func() {
		g := writeguard.NewWithBudget(50 * time.Millisecond)

		release, err := g.Acquire(ctx)
		Expect(err).NotTo(HaveOccurred())
		defer release()

		_, err = g.Acquire(ctx)
		Expect(err).To(MatchError(writeguard.ErrTimeout))
	})

	It("honors caller context cancellation", func() {
		g := writeguard.New()

		release, err := g.Acquire(ctx)
		Expect(err).NotTo(HaveOccurred())
		defer release()

		cancelCtx, cancel := context.WithCancel(ctx)
		go func() {
			time.Sleep(20 * time.Millisecond)
			cancel()
		}()

		_, err = g.Acquire(cancelCtx)
		Expect(errors.Is(err, context.Canceled)).To(BeTrue())
	})

	Describe("Do", func() {
		It("runs the function under the permit", func() {
			g := writeguard.New()
			ran := false

			err := g.Do(ctx, func() error {
				ran = true
				Expect(g.WriteInProgress()).To(BeTrue())
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(ran).To(BeTrue())
			Expect(g.WriteInProgress()).To(BeFalse())
		})

		It("propagates the function's error and releases", func() {
			g := writeguard.New()
			boom := errors.New("boom")

			Expect(g.Do(ctx, func() error { return boom })).To(MatchError(boom))
			Expect(g.WriteInProgress()).To(BeFalse())
		})
	})
})
