package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// RequestObserver records the outcome of an HTTP request.
type RequestObserver interface {
	ObserveHTTPRequest(method, route string, code int, elapsed time.Duration)
}

// MetricsMiddleware reports every request to a RequestObserver, labelled by route template.
type MetricsMiddleware struct {
	observer RequestObserver
}

func NewMetricsMiddleware(observer RequestObserver) *MetricsMiddleware {
	return &MetricsMiddleware{observer: observer}
}

func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		code := c.Response().Status
		if err != nil {
			// Let echo render the error now so the recorded code is the one the client sees.
			c.Error(err)
			code = c.Response().Status
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		m.observer.ObserveHTTPRequest(c.Request().Method, route, code, time.Since(start))

		return nil
	}
}
