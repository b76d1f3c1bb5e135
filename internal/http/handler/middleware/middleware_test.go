package middleware_test

import (
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"habitd/internal/http/handler/middleware"
)

var _ = Describe("Middleware", func() {
	var (
		w    *httptest.ResponseRecorder
		next http.Handler
	)

	BeforeEach(func() {
		w = httptest.NewRecorder()
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})
	})

	Describe("RequestID", func() {
		var seen string

		BeforeEach(func() {
			next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = r.Context().Value(middleware.RequestIDKey).(string)
			})
		})

		It("should generate an id and expose it in context and header", func() {
			req := httptest.NewRequest("GET", "/habits", nil)
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)

			Expect(seen).NotTo(BeEmpty())
			Expect(w.Header().Get("X-Request-Id")).To(Equal(seen))
		})

		It("should keep an id supplied by the client", func() {
			req := httptest.NewRequest("GET", "/habits", nil)
			req.Header.Set("X-Request-Id", "client-id")
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)

			Expect(seen).To(Equal("client-id"))
			Expect(w.Header().Get("X-Request-Id")).To(Equal("client-id"))
		})
	})

	Describe("CORS", func() {
		var cors http.Handler

		BeforeEach(func() {
			cors = middleware.NewCORSMiddleware([]string{"https://app.example"}).CORS(next)
		})

		It("should allow a configured origin", func() {
			req := httptest.NewRequest("GET", "/habits", nil)
			req.Header.Set("Origin", "https://app.example")
			cors.ServeHTTP(w, req)

			Expect(w.Header().Get("Access-Control-Allow-Origin")).To(Equal("https://app.example"))
			Expect(w.Code).To(Equal(http.StatusTeapot))
		})

		It("should not echo an unknown origin", func() {
			req := httptest.NewRequest("GET", "/habits", nil)
			req.Header.Set("Origin", "https://evil.example")
			cors.ServeHTTP(w, req)

			Expect(w.Header().Get("Access-Control-Allow-Origin")).To(BeEmpty())
		})

		It("should short-circuit preflight requests", func() {
			req := httptest.NewRequest("OPTIONS", "/habits", nil)
			req.Header.Set("Origin", "https://app.example")
			cors.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(w.Header().Get("Access-Control-Allow-Methods")).To(ContainSubstring("PUT"))
		})

		It("should allow every origin with a wildcard", func() {
			wildcard := middleware.NewCORSMiddleware([]string{"*"}).CORS(next)
			req := httptest.NewRequest("GET", "/habits", nil)
			req.Header.Set("Origin", "https://anywhere.example")
			wildcard.ServeHTTP(w, req)

			Expect(w.Header().Get("Access-Control-Allow-Origin")).To(Equal("https://anywhere.example"))
		})
	})

	Describe("Logging", func() {
		It("should pass the request through", func() {
			logging := middleware.NewLoggingMiddleware(zap.NewNop().Sugar()).Logging(next)
			req := httptest.NewRequest("GET", "/habits", nil)
			logging.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusTeapot))
		})
	})
})
