package handler

import (
	"github.com/labstack/echo/v4"

	"scrappix-admin/internal/usecase"
	"scrappix-admin/pkg/response"
)

type UserHandler struct {
	userAdminUseCase *usecase.UserAdminUseCase
}

func NewUserHandler(userAdminUseCase *usecase.UserAdminUseCase) *UserHandler {
	return &UserHandler{
		userAdminUseCase: userAdminUseCase,
	}
}

// ListUsers returns every user's risk profile, riskiest first.
func (h *UserHandler) ListUsers(c echo.Context) error {
	profiles, err := h.userAdminUseCase.ListUsers(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profiles)
}

func (h *UserHandler) SuspendUser(c echo.Context) error {
	admin := adminFromContext(c)

	if err := h.userAdminUseCase.Suspend(c.Request().Context(), admin, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "User suspended"})
}

func (h *UserHandler) ReinstateUser(c echo.Context) error {
	admin := adminFromContext(c)

	if err := h.userAdminUseCase.Reinstate(c.Request().Context(), admin, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "User reinstated"})
}

func (h *UserHandler) BanUser(c echo.Context) error {
	admin := adminFromContext(c)

	if err := h.userAdminUseCase.Ban(c.Request().Context(), admin, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "User banned"})
}
