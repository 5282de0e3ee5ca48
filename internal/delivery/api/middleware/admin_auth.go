package middleware

import (
	"log/slog"

	deliverycontext "pushgate/internal/delivery/context"
	"pushgate/internal/domain/constants"
	"pushgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderAccessToken carries the administrator access token.
const HeaderAccessToken = constants.HeaderAccessToken

// AdminAuthMiddlewareParams holds dependencies for AdminAuthMiddleware, injected by Fx.
type AdminAuthMiddlewareParams struct {
	fx.In

	AdminUC usecase.AdministratorUsecase
	Logger  *slog.Logger
}

// AdminAuthMiddleware is the administrator session gate.
type AdminAuthMiddleware struct {
	adminUC usecase.AdministratorUsecase
	logger  *slog.Logger
}

func NewAdminAuthMiddleware(params AdminAuthMiddlewareParams) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// Authenticate rejects the request unless x-access-token resolves to an enabled administrator,
// which is then attached to the echo context.
func (m *AdminAuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		admin, err := m.adminUC.Authenticate(c.Request().Context(), c.Request().Header.Get(HeaderAccessToken))
		if err != nil {
			return err
		}

		deliverycontext.SetAdministrator(c, admin)
		deliverycontext.AnnotateLogger(c, m.logger, slog.String("admin_id", admin.ID.String()))

		return next(c)
	}
}
