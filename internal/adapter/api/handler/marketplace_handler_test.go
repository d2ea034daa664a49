package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrappix-admin/internal/adapter/api"
)

func newTestContext(method, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = api.NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestDeleteItemRequiresConfirmation(t *testing.T) {
	c, rec := newTestContext(http.MethodDelete, "/v1/admin/marketplace/items/item-1", "")
	c.SetParamNames("id")
	c.SetParamValues("item-1")

	h := NewMarketplaceHandler(nil)

	// The guard fires before the use case is touched.
	require.NoError(t, h.DeleteItem(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "confirm=true")
}

func TestRejectItemRequiresMessage(t *testing.T) {
	c, rec := newTestContext(http.MethodPost, "/v1/admin/marketplace/items/item-1/reject", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("item-1")

	h := NewMarketplaceHandler(nil)

	require.NoError(t, h.RejectItem(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestListItemsRejectsBadDates(t *testing.T) {
	c, rec := newTestContext(http.MethodGet, "/v1/admin/marketplace/items?dateFrom=20-05-2025", "")

	h := NewMarketplaceHandler(nil)

	require.NoError(t, h.ListItems(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
