// Package webserver owns the echo instance, its middleware and the route
// registration helpers used by the storefront handlers.
package webserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/gi-os/ShopTemplateSystem/internal/app"
)

var server *WebServer

type WebServer struct {
	root   *echo.Echo
	appCtx app.AppContext
}

// Init builds the echo instance with recovery, zap request logging and the
// mustache page renderer.
func Init(appCtx app.AppContext, templateDir string) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(zapLoggerMiddleware())
	e.Renderer = NewMustacheRenderer(templateDir)

	server = &WebServer{root: e, appCtx: appCtx}
}

// Instance exposes the echo root, mainly for tests.
func Instance() *echo.Echo {
	return server.root
}

// Listen blocks serving HTTP until Shutdown is called.
func Listen() error {
	cfg := server.appCtx.Config().Web
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	zap.S().Infof("web server listening on %s", addr)
	err := server.root.Start(addr)
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func Shutdown(ctx context.Context) error {
	return server.root.Shutdown(ctx)
}

// GET registers a page route at the site root.
func GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	server.root.GET(path, h, m...)
}

// POST registers a page-form route at the site root.
func POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	server.root.POST(path, h, m...)
}

// ApiGET registers an API route under /api.
func ApiGET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	server.root.GET("/api"+path, h, m...)
}

func ApiPOST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	server.root.POST("/api"+path, h, m...)
}

func ApiPUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	server.root.PUT("/api"+path, h, m...)
}

func ApiDELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	server.root.DELETE("/api"+path, h, m...)
}

func zapLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			req := c.Request()
			res := c.Response()
			zap.S().Debugw("http request",
				"method", req.Method,
				"path", req.URL.Path,
				"status", res.Status,
				"latency", time.Since(start).String(),
			)
			return err
		}
	}
}
