package auth

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/vitalog-org/vitalog/errors"
)

// Identity is established by the authentication collaborator in front of
// this service. The engine trusts the ids it is handed and performs no
// credential checks of its own.
var (
	UserIdHeaderKey      = "X-Vitalog-User-Id"
	ClinicianIdHeaderKey = "X-Vitalog-Clinician-Id"

	AuthContextKey = AuthKey("auth")
)

type AuthKey string

type Auth struct {
	UserId      string
	ClinicianId string
}

func (a *Auth) IsClinician() bool {
	return a != nil && a.ClinicianId != ""
}

type AuthMiddlewareOpts struct {
	Skipper middleware.Skipper
}

func NewAuthMiddleware(opts AuthMiddlewareOpts) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Allow skipping authentication for certain routes (e.g. readiness probe)
			if opts.Skipper != nil {
				if opts.Skipper(c) {
					return next(c)
				}
			}

			auth := &Auth{
				UserId:      c.Request().Header.Get(UserIdHeaderKey),
				ClinicianId: c.Request().Header.Get(ClinicianIdHeaderKey),
			}
			if auth.UserId == "" && auth.ClinicianId == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authenticated identity is missing")
			}

			c.Set(string(AuthContextKey), auth)
			return next(c)
		}
	}
}

func FromContext(c echo.Context) (*Auth, error) {
	auth, ok := c.Get(string(AuthContextKey)).(*Auth)
	if !ok || auth == nil {
		return nil, fmt.Errorf("%w: authenticated identity is missing", errors.Unauthorized)
	}
	return auth, nil
}

// AuthorizeUser ensures the authenticated identity owns the resources under
// the given user id
func AuthorizeUser(c echo.Context, userId string) error {
	auth, err := FromContext(c)
	if err != nil {
		return err
	}
	if auth.UserId != userId {
		return fmt.Errorf("%w: identity does not match the requested user", errors.Forbidden)
	}
	return nil
}

// AuthorizeClinician returns the authenticated clinician id
func AuthorizeClinician(c echo.Context) (string, error) {
	auth, err := FromContext(c)
	if err != nil {
		return "", err
	}
	if !auth.IsClinician() {
		return "", fmt.Errorf("%w: a clinician identity is required", errors.Forbidden)
	}
	return auth.ClinicianId, nil
}
