package handler

import (
	"github.com/labstack/echo/v4"

	"scrappix-admin/internal/usecase"
	"scrappix-admin/pkg/response"
)

type AdminHandler struct {
	adminUseCase *usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

// Me returns the calling operator's own admin profile.
func (h *AdminHandler) Me(c echo.Context) error {
	admin := adminFromContext(c)

	profile, err := h.adminUseCase.GetAdmin(c.Request().Context(), admin.UID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}
