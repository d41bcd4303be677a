package auth_test

import (
	goerrors "errors"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/vitalog-org/vitalog/auth"
	"github.com/vitalog-org/vitalog/errors"
)

var _ = Describe("Authentication Middleware", func() {
	var e *echo.Echo

	BeforeEach(func() {
		e = echo.New()
	})

	handle := func(middleware echo.MiddlewareFunc, request *http.Request, handler echo.HandlerFunc) (echo.Context, error) {
		recorder := httptest.NewRecorder()
		c := e.NewContext(request, recorder)
		return c, middleware(handler)(c)
	}

	noop := func(c echo.Context) error {
		return nil
	}

	It("sets the authenticated identity from the request headers", func() {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(auth.UserIdHeaderKey, "user-1234")

		c, err := handle(auth.NewAuthMiddleware(auth.AuthMiddlewareOpts{}), request, noop)
		Expect(err).ToNot(HaveOccurred())

		identity, err := auth.FromContext(c)
		Expect(err).ToNot(HaveOccurred())
		Expect(identity.UserId).To(Equal("user-1234"))
		Expect(identity.IsClinician()).To(BeFalse())
	})

	It("recognizes a clinician identity", func() {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(auth.ClinicianIdHeaderKey, "clinician-1234")

		c, err := handle(auth.NewAuthMiddleware(auth.AuthMiddlewareOpts{}), request, noop)
		Expect(err).ToNot(HaveOccurred())

		identity, err := auth.FromContext(c)
		Expect(err).ToNot(HaveOccurred())
		Expect(identity.IsClinician()).To(BeTrue())
	})

	It("rejects requests without an identity", func() {
		request := httptest.NewRequest(http.MethodGet, "/", nil)

		_, err := handle(auth.NewAuthMiddleware(auth.AuthMiddlewareOpts{}), request, noop)
		Expect(err).To(HaveOccurred())

		var httpError *echo.HTTPError
		Expect(goerrors.As(err, &httpError)).To(BeTrue())
		Expect(httpError.Code).To(Equal(http.StatusUnauthorized))
	})

	It("skips authentication for skipped routes", func() {
		request := httptest.NewRequest(http.MethodGet, "/ready", nil)
		middleware := auth.NewAuthMiddleware(auth.AuthMiddlewareOpts{
			Skipper: func(c echo.Context) bool {
				return true
			},
		})

		_, err := handle(middleware, request, noop)
		Expect(err).ToNot(HaveOccurred())
	})
})

var _ = Describe("Authorization", func() {
	var e *echo.Echo

	BeforeEach(func() {
		e = echo.New()
	})

	contextWith := func(identity *auth.Auth) echo.Context {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(request, httptest.NewRecorder())
		if identity != nil {
			c.Set(string(auth.AuthContextKey), identity)
		}
		return c
	}

	Describe("AuthorizeUser", func() {
		It("allows the owner", func() {
			c := contextWith(&auth.Auth{UserId: "user-1234"})
			Expect(auth.AuthorizeUser(c, "user-1234")).To(Succeed())
		})

		It("rejects a different user", func() {
			c := contextWith(&auth.Auth{UserId: "user-1234"})
			Expect(auth.AuthorizeUser(c, "user-5678")).To(MatchError(errors.Forbidden))
		})

		It("rejects an unauthenticated request", func() {
			c := contextWith(nil)
			Expect(auth.AuthorizeUser(c, "user-1234")).To(MatchError(errors.Unauthorized))
		})
	})

	Describe("AuthorizeClinician", func() {
		It("returns the clinician id", func() {
			c := contextWith(&auth.Auth{ClinicianId: "clinician-1234"})
			clinicianId, err := auth.AuthorizeClinician(c)
			Expect(err).ToNot(HaveOccurred())
			Expect(clinicianId).To(Equal("clinician-1234"))
		})

		It("rejects a non-clinician identity", func() {
			c := contextWith(&auth.Auth{UserId: "user-1234"})
			_, err := auth.AuthorizeClinician(c)
			Expect(err).To(MatchError(errors.Forbidden))
		})
	})
})
