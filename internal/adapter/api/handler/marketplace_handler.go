package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"scrappix-admin/internal/domain/entity"
	"scrappix-admin/internal/usecase"
	"scrappix-admin/pkg/errors"
	"scrappix-admin/pkg/response"
)

type MarketplaceHandler struct {
	marketplaceUseCase *usecase.MarketplaceUseCase
}

func NewMarketplaceHandler(marketplaceUseCase *usecase.MarketplaceUseCase) *MarketplaceHandler {
	return &MarketplaceHandler{
		marketplaceUseCase: marketplaceUseCase,
	}
}

// ListItems returns one status bucket of listings, narrowed by the optional
// filter and search query parameters.
func (h *MarketplaceHandler) ListItems(c echo.Context) error {
	status := c.QueryParam("status")
	if status == "" {
		status = entity.ItemStatusPending
	}

	filter := usecase.ItemFilter{
		Category:   c.QueryParam("category"),
		PriceMin:   c.QueryParam("priceMin"),
		PriceMax:   c.QueryParam("priceMax"),
		Location:   c.QueryParam("location"),
		SellerName: c.QueryParam("sellerName"),
	}

	if raw := c.QueryParam("dateFrom"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return response.Error(c, errors.BadRequest("dateFrom must be formatted as YYYY-MM-DD", err))
		}
		filter.DateFrom = from
	}
	if raw := c.QueryParam("dateTo"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return response.Error(c, errors.BadRequest("dateTo must be formatted as YYYY-MM-DD", err))
		}
		filter.DateTo = to
	}

	items, err := h.marketplaceUseCase.ListItems(c.Request().Context(), status, c.QueryParam("search"), filter)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, items)
}

func (h *MarketplaceHandler) GetItem(c echo.Context) error {
	item, err := h.marketplaceUseCase.GetItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, item)
}

func (h *MarketplaceHandler) ApproveItem(c echo.Context) error {
	admin := adminFromContext(c)

	if err := h.marketplaceUseCase.Approve(c.Request().Context(), admin, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Item approved"})
}

func (h *MarketplaceHandler) RejectItem(c echo.Context) error {
	var req struct {
		Message string `json:"message" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	admin := adminFromContext(c)

	if err := h.marketplaceUseCase.Reject(c.Request().Context(), admin, c.Param("id"), req.Message); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Item rejected"})
}

func (h *MarketplaceHandler) RemoveItem(c echo.Context) error {
	var req struct {
		Message string `json:"message" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	admin := adminFromContext(c)

	if err := h.marketplaceUseCase.Remove(c.Request().Context(), admin, c.Param("id"), req.Message); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Item removed"})
}

// DeleteItem permanently erases an archived listing. The caller must pass
// confirm=true; there is no undo.
func (h *MarketplaceHandler) DeleteItem(c echo.Context) error {
	if c.QueryParam("confirm") != "true" {
		return response.Error(c, errors.BadRequest("Permanent deletion requires confirm=true", nil))
	}

	admin := adminFromContext(c)

	if err := h.marketplaceUseCase.PermanentDelete(c.Request().Context(), admin, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Item permanently deleted"})
}
