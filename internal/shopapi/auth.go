package shopapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gi-os/ShopTemplateSystem/internal/webserver"
)

type loginPayload struct {
	Password string `json:"password" form:"password"`
}

func registerAuthRoutes() {
	webserver.ApiPOST("/login", login)
	webserver.ApiPOST("/logout", logout)
}

func login(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse request")
	}

	gate := appCtx.Gate()
	if !gate.Verify(payload.Password) {
		return fail(c, http.StatusUnauthorized, "Incorrect password")
	}
	if err := gate.Grant(c.Response(), c.Request()); err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to save session")
	}
	return ok(c, map[string]bool{"granted": true})
}

func logout(c echo.Context) error {
	if err := appCtx.Gate().Revoke(c.Response(), c.Request()); err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to save session")
	}
	return ok(c, map[string]bool{"granted": false})
}
