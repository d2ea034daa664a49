package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"scrappix-admin/internal/usecase"
	"scrappix-admin/pkg/response"
)

type AdminMiddleware struct {
	adminUseCase *usecase.AdminUseCase
}

func NewAdminMiddleware(adminUseCase *usecase.AdminUseCase) *AdminMiddleware {
	return &AdminMiddleware{
		adminUseCase: adminUseCase,
	}
}

// AdminOnly loads the caller's userAdmin document and rejects anyone who is
// not an active admin. The admin's email is stored in the context so
// moderation actions can be attributed.
func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		admin, err := m.adminUseCase.GetAdmin(c.Request().Context(), uid)
		if err != nil {
			return response.Error(c, err)
		}

		c.Set("adminEmail", admin.Email)
		c.Set("adminUser", admin)

		return next(c)
	}
}
