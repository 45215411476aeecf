package httpserver

import (
	"net/http"
	"slices"

	"github.com/go-chi/cors"
	"github.com/labstack/echo/v4"

	"movieapi/errs"
)

// preflightMethods are advertised on OPTIONS /movies/:id.
const preflightMethods = "GET, POST, PATCH, DELETE"

var errOriginNotAllowed = errs.Errorf(errs.EFORBIDDEN, "origin not allowed")

func originAllowed(allowed []string, origin string) bool {
	return slices.Contains(allowed, "*") || slices.Contains(allowed, origin)
}

// originGuard rejects requests whose Origin header is set and not in allowed.
// Requests without an Origin header always pass.
func originGuard(allowed []string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			origin := c.Request().Header.Get(echo.HeaderOrigin)
			if origin != "" && !originAllowed(allowed, origin) {
				return errOriginNotAllowed
			}
			return next(c)
		}
	}
}

// corsMiddleware echoes allowed origins back in Access-Control-Allow-Origin.
// Preflights fall through to the route so OPTIONS handlers answer them.
func corsMiddleware(allowed []string) echo.MiddlewareFunc {
	return echo.WrapMiddleware(cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, origin string) bool {
			return originAllowed(allowed, origin)
		},
		AllowedMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:     []string{echo.HeaderAccept, echo.HeaderContentType, echo.HeaderOrigin, "X-Requested-With"},
		ExposedHeaders:     []string{echo.HeaderXRequestID},
		OptionsPassthrough: true,
	}))
}
