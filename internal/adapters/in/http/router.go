package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterHandlers adds the API routes of s to router.
func RegisterHandlers(router *echo.Group, s *Server) {
	router.GET("/ingredients", s.GetIngredients)
	router.GET("/constructor", s.GetConstructor)
	router.POST("/constructor/ingredients", s.AddIngredient)
	router.DELETE("/constructor/ingredients/:placementId", s.RemoveIngredient)
	router.POST("/constructor/ingredients/:index/:direction", s.MoveIngredient)
	router.POST("/constructor/order", s.SubmitOrder)
	router.DELETE("/constructor/order", s.DismissOrderResult)
	router.GET("/orders", s.GetOrders)
}

// NewEcho builds the echo instance serving the API, health, metrics and
// swagger UI. Requests under /api/v1 are validated against the API document.
func NewEcho(s *Server, gatherer prometheus.Gatherer) (*echo.Echo, error) {
	doc, err := OpenAPI()
	if err != nil {
		return nil, err
	}
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	RegisterHandlers(e.Group("/api/v1", validator), s)

	return e, nil
}
