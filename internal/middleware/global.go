package middleware

import (
	"net/http"

	"github.com/deppfellow/go-shops/internal/errs"
	"github.com/deppfellow/go-shops/internal/server"
	"github.com/deppfellow/go-shops/internal/sqlerr"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// RouteNotFoundMessage is returned for paths no route matches.
const RouteNotFoundMessage = "Route not found"

// GlobalMiddlewares groups the global middleware and the error handler.
type GlobalMiddlewares struct {
	server *server.Server
}

func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// CORS allows the origins listed in server.cors_allowed_origins.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
	})
}

// RequestLogger emits one "API" line per request.
//
// When the handler returned an error the response has not been written yet,
// so the status is derived from the error the same way GlobalErrorHandler
// derives it.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status
			if v.Error != nil {
				statusCode = ToHTTPError(v.Error).Status
			}

			logger := GetLogger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// Recover turns panics into errors handled by GlobalErrorHandler.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll:   true,
		DisablePrintStack: true,
	})
}

// Secure sets the standard security headers.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// ToHTTPError maps any error reaching the edge of the server to the
// application error rendered to the client.
//
//   - *errs.HTTPError is kept as-is
//   - echo 404 becomes "Route not found", echo 405 "Method Not Allowed"
//   - other echo errors keep their status with the status text as message
//   - everything else goes through sqlerr.HandleError
func ToHTTPError(err error) *errs.HTTPError {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		switch echoErr.Code {
		case http.StatusNotFound:
			return errs.NewNotFoundError(RouteNotFoundMessage)
		case http.StatusMethodNotAllowed:
			return errs.NewMethodNotAllowedError()
		case http.StatusInternalServerError:
			return errs.NewInternalServerError()
		default:
			return errs.NewStatusError(echoErr.Code)
		}
	}

	return sqlerr.HandleError(err)
}

// GlobalErrorHandler is the echo HTTPErrorHandler. It logs the original
// error with the request-scoped logger and writes the JSON error body once.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	httpErr := ToHTTPError(err)
	logger := GetLogger(c)

	var e *zerolog.Event
	if httpErr.Status >= http.StatusInternalServerError {
		e = logger.Error().Stack()
		if sqlErr := sqlerr.Classify(err); sqlErr != nil {
			e = e.Str("db_code", sqlErr.DatabaseCode).Str("db_detail", sqlerr.Describe(sqlErr))
		}
	} else {
		e = logger.Warn()
	}

	e.Err(err).
		Int("status", httpErr.Status).
		Str("error_code", httpErr.Code).
		Msg(httpErr.Error())

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(httpErr.Status)
	} else {
		writeErr = c.JSON(httpErr.Status, httpErr)
	}
	if writeErr != nil {
		logger.Error().Err(writeErr).Msg("failed to write error response")
	}
}
