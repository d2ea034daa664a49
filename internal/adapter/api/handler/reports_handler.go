package handler

import (
	"github.com/labstack/echo/v4"

	"scrappix-admin/internal/usecase"
	"scrappix-admin/pkg/response"
)

type ReportsHandler struct {
	reportsUseCase *usecase.ReportsUseCase
}

func NewReportsHandler(reportsUseCase *usecase.ReportsUseCase) *ReportsHandler {
	return &ReportsHandler{
		reportsUseCase: reportsUseCase,
	}
}

func (h *ReportsHandler) ListReports(c echo.Context) error {
	reports, err := h.reportsUseCase.ListReports(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reports)
}

func (h *ReportsHandler) ListRemovals(c echo.Context) error {
	removals, err := h.reportsUseCase.ListRemovals(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, removals)
}

func (h *ReportsHandler) ApproveReport(c echo.Context) error {
	admin := adminFromContext(c)

	if err := h.reportsUseCase.ApproveReport(c.Request().Context(), admin, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Report approved"})
}

func (h *ReportsHandler) RejectReport(c echo.Context) error {
	admin := adminFromContext(c)

	if err := h.reportsUseCase.RejectReport(c.Request().Context(), admin, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Report rejected"})
}

func (h *ReportsHandler) UndoRejectReport(c echo.Context) error {
	admin := adminFromContext(c)

	if err := h.reportsUseCase.UndoRejectReport(c.Request().Context(), admin, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Report reopened"})
}

func (h *ReportsHandler) AcknowledgeRemoval(c echo.Context) error {
	admin := adminFromContext(c)

	if err := h.reportsUseCase.AcknowledgeRemoval(c.Request().Context(), admin, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Removal acknowledged"})
}
