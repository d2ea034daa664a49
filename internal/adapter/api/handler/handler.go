package handler

import (
	"github.com/labstack/echo/v4"

	"scrappix-admin/internal/usecase"
)

// adminFromContext reads the identity the auth and admin middlewares stored
// on the request.
func adminFromContext(c echo.Context) usecase.AdminIdentity {
	uid, _ := c.Get("uid").(string)
	email, _ := c.Get("adminEmail").(string)
	return usecase.AdminIdentity{UID: uid, Email: email}
}
