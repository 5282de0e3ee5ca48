package middleware

import (
	"bytes"
	"io"
	"log/slog"

	deliverycontext "pushgate/internal/delivery/context"
	"pushgate/internal/domain/constants"
	"pushgate/internal/errors"
	"pushgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Signed request headers.
const (
	HeaderTimestamp = constants.HeaderTimestamp
	HeaderAPIKey    = constants.HeaderAPIKey
	HeaderSignature = constants.HeaderSignature
)

// SignatureMiddlewareParams holds dependencies for SignatureMiddleware, injected by Fx.
type SignatureMiddlewareParams struct {
	fx.In

	TenantAuthUC usecase.TenantAuthUsecase
	Logger       *slog.Logger
}

// SignatureMiddleware is the tenant signature guard.
type SignatureMiddleware struct {
	tenantAuthUC usecase.TenantAuthUsecase
	logger       *slog.Logger
}

func NewSignatureMiddleware(params SignatureMiddlewareParams) *SignatureMiddleware {
	return &SignatureMiddleware{
		tenantAuthUC: params.TenantAuthUC,
		logger:       params.Logger,
	}
}

// Verify checks the request signature against the raw body, restores the body for binding and
// attaches the signing app to the echo context.
func (m *SignatureMiddleware) Verify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		var body []byte
		if req.Body != nil {
			var err error
			body, err = io.ReadAll(req.Body)
			if err != nil {
				return errors.Wrap(err, "failed to read request body")
			}
			_ = req.Body.Close()
		}
		req.Body = io.NopCloser(bytes.NewReader(body))

		app, err := m.tenantAuthUC.VerifyRequest(req.Context(), &usecase.SignedRequest{
			Timestamp:  req.Header.Get(HeaderTimestamp),
			APIKey:     req.Header.Get(HeaderAPIKey),
			Signature:  req.Header.Get(HeaderSignature),
			RequestURI: req.RequestURI,
			Body:       body,
		})
		if err != nil {
			return err
		}

		deliverycontext.SetApp(c, app)
		deliverycontext.AnnotateLogger(c, m.logger, slog.String("app_id", app.ID.String()))

		return next(c)
	}
}
