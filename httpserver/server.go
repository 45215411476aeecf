package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"movieapi/errs"
	"movieapi/movie"
	"movieapi/pkg/config"
	"movieapi/pkg/sentry"
)

type Server struct {
	// Router is the Echo router instance
	Router *echo.Echo

	// Addr represents the address the server will listen on
	Addr string

	// Allowed origins for CORS; empty disables CORS handling
	AllowOrigins []string

	// RateLimit is requests per second per client; 0 disables it
	RateLimit float64

	MovieService movie.Service
}

func Default(cfg *config.Config) *Server {
	s := Server{
		Router:       echo.New(),
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		AllowOrigins: cfg.Origins(),
		RateLimit:    cfg.RateLimit,
	}

	s.Router.HideBanner = true
	s.Router.JSONSerializer = jsonSerializer{}
	s.Router.HTTPErrorHandler = customHTTPErrorHandler
	s.Router.Validator = NewValidator()
	s.RegisterGlobalMiddlewares()
	s.RegisterHealthRoutes()
	s.RegisterMovieRoutes()
	return &s
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.Router.Use(middleware.Recover())
	s.Router.Use(middleware.Secure())
	s.Router.Use(middleware.RequestID())
	s.Router.Use(requestLogger())
	s.Router.Use(middleware.Gzip())
	s.Router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
	if s.RateLimit > 0 {
		s.Router.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(s.RateLimit))))
	}

	// CORS
	if len(s.AllowOrigins) > 0 {
		s.Router.Use(originGuard(s.AllowOrigins))
		s.Router.Use(corsMiddleware(s.AllowOrigins))
	}
}

func (s *Server) Start() error {
	return s.Router.Start(s.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Router.Shutdown(ctx)
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			}
			level := slog.LevelInfo
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				if v.Status >= http.StatusInternalServerError {
					level = slog.LevelError
				}
			}
			slog.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}

// customHTTPErrorHandler maps application errors to appropriate HTTP status codes.
// Invalid input is reported as {"error": ...}, everything else as {"message": ...}.
func customHTTPErrorHandler(err error, c echo.Context) {
	// Don't write response if already committed
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var body interface{} = messageResponse{Message: "Internal server error"}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message := fmt.Sprint(he.Message)
		if code == http.StatusBadRequest {
			body = errorResponse{Error: message}
		} else {
			body = messageResponse{Message: message}
		}
	} else {
		switch errs.ErrorCode(err) {
		case errs.EINVALID:
			code = http.StatusBadRequest
			body = invalidBody(err)
		case errs.ENOTFOUND:
			code = http.StatusNotFound
			body = messageResponse{Message: errs.ErrorMessage(err)}
		case errs.ECONFLICT:
			code = http.StatusConflict
			body = messageResponse{Message: errs.ErrorMessage(err)}
		case errs.EUNAUTHORIZED:
			code = http.StatusUnauthorized
			body = messageResponse{Message: errs.ErrorMessage(err)}
		case errs.EFORBIDDEN:
			code = http.StatusForbidden
			body = messageResponse{Message: errs.ErrorMessage(err)}
		case errs.ENOTIMPLEMENTED:
			code = http.StatusNotImplemented
			body = messageResponse{Message: errs.ErrorMessage(err)}
		}
	}

	if code >= http.StatusInternalServerError {
		sentry.WithContext(c).Error(err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, body)
	}
	if err != nil {
		c.Logger().Error(err)
	}
}
