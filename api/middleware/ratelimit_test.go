package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gin-gonic/gin"

	"github.com/jellyswarrm/jellyswarrm/api/middleware"
	"github.com/jellyswarrm/jellyswarrm/config"
)

var _ = Describe("LoginRateLimiter", func() {
	var (
		router    *gin.Engine
		onFail    func(string)
		onSuccess func(string)
		stop      func()
	)

	newRouter := func(cfg config.Config) {
		var mw gin.HandlerFunc
		mw, onFail, onSuccess, stop = middleware.LoginRateLimiter(cfg)

		gin.SetMode(gin.TestMode)
		router = gin.New()
		router.POST("/users/authenticatebyname", mw, func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
	}

	AfterEach(func() {
		if stop != nil {
			stop()
			stop = nil
		}
	})

	attempt := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/users/authenticatebyname", nil)
		req.RemoteAddr = ip + ":51234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("locks an IP out after the configured number of failures", func() {
		newRouter(config.Config{LoginMaxAttempts: 3, LoginWindow: time.Minute})

		for i := 0; i < 3; i++ {
			Expect(attempt("10.0.0.1").Code).To(Equal(http.StatusOK))
			onFail("10.0.0.1")
		}

		w := attempt("10.0.0.1")
		Expect(w.Code).To(Equal(http.StatusTooManyRequests))
		Expect(w.Header().Get("Retry-After")).NotTo(BeEmpty())
	})

	It("keeps other IPs unaffected", func() {
		newRouter(config.Config{LoginMaxAttempts: 1, LoginWindow: time.Minute})

		onFail("10.0.0.1")
		Expect(attempt("10.0.0.1").Code).To(Equal(http.StatusTooManyRequests))
		Expect(attempt("10.0.0.2").Code).To(Equal(http.StatusOK))
	})

	It("clears the count on success", func() {
		newRouter(config.Config{LoginMaxAttempts: 2, LoginWindow: time.Minute})

		onFail("10.0.0.1")
		onSuccess("10.0.0.1")
		onFail("10.0.0.1")
		Expect(attempt("10.0.0.1").Code).To(Equal(http.StatusOK))
	})

	It("unlocks once the window expires", func() {
		newRouter(config.Config{LoginMaxAttempts: 1, LoginWindow: 30 * time.Millisecond})

		onFail("10.0.0.1")
		Expect(attempt("10.0.0.1").Code).To(Equal(http.StatusTooManyRequests))

		Eventually(func() int {
			return attempt("10.0.0.1").Code
		}, time.Second, 20*time.Millisecond).Should(Equal(http.StatusOK))
	})

	It("is disabled when max attempts is zero", func() {
		newRouter(config.Config{LoginMaxAttempts: 0, LoginWindow: time.Minute})

		for i := 0; i < 10; i++ {
			onFail("10.0.0.1")
		}
		Expect(attempt("10.0.0.1").Code).To(Equal(http.StatusOK))
	})
})
