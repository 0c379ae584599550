package http

import (
	"context"
	"log/slog"
	"net/http"

	"burger/internal/core/application/usecases/commands"
	"burger/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// OrderHistoryHandler reads journaled orders. It is satisfied by
// queries.GetOrderHistoryQueryHandler.
type OrderHistoryHandler interface {
	Handle(ctx context.Context, query queries.GetOrderHistoryQuery) ([]queries.GetOrderHistoryQueryResponse, error)
}

// Server handles the constructor API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addIngredientHandler      commands.AddIngredientCommandHandler
	removeIngredientHandler   commands.RemoveIngredientCommandHandler
	moveIngredientHandler     commands.MoveIngredientCommandHandler
	submitOrderHandler        commands.SubmitOrderCommandHandler
	dismissOrderResultHandler commands.DismissOrderResultCommandHandler

	// Query handlers
	getCatalogHandler      queries.GetCatalogQueryHandler
	getConstructorHandler  queries.GetConstructorQueryHandler
	getOrderHistoryHandler OrderHistoryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addIngredientHandler commands.AddIngredientCommandHandler,
	removeIngredientHandler commands.RemoveIngredientCommandHandler,
	moveIngredientHandler commands.MoveIngredientCommandHandler,
	submitOrderHandler commands.SubmitOrderCommandHandler,
	dismissOrderResultHandler commands.DismissOrderResultCommandHandler,
	getCatalogHandler queries.GetCatalogQueryHandler,
	getConstructorHandler queries.GetConstructorQueryHandler,
	getOrderHistoryHandler OrderHistoryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		addIngredientHandler:      addIngredientHandler,
		removeIngredientHandler:   removeIngredientHandler,
		moveIngredientHandler:     moveIngredientHandler,
		submitOrderHandler:        submitOrderHandler,
		dismissOrderResultHandler: dismissOrderResultHandler,
		getCatalogHandler:         getCatalogHandler,
		getConstructorHandler:     getConstructorHandler,
		getOrderHistoryHandler:    getOrderHistoryHandler,
		logger:                    logger.With("component", "http_server"),
	}
}

// GetIngredients handles GET /api/v1/ingredients - retrieves the catalog.
func (s *Server) GetIngredients(ctx echo.Context) error {
	catalog, err := s.getCatalogHandler.Handle(ctx.Request().Context(), queries.NewGetCatalogQuery())
	if err != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "failed to read catalog", "error", err)
		return respondError(ctx, err, "Failed to retrieve ingredients")
	}

	return ctx.JSON(http.StatusOK, catalogFromQuery(catalog))
}

// GetConstructor handles GET /api/v1/constructor - retrieves the burger under construction.
func (s *Server) GetConstructor(ctx echo.Context) error {
	return s.respondConstructor(ctx, http.StatusOK)
}

// AddIngredient handles POST /api/v1/constructor/ingredients - places a catalog ingredient.
func (s *Server) AddIngredient(ctx echo.Context) error {
	var body NewPlacement
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAddIngredientCommand(body.IngredientID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if _, err = s.addIngredientHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err, "Failed to place ingredient")
	}

	return s.respondConstructor(ctx, http.StatusCreated)
}

// RemoveIngredient handles DELETE /api/v1/constructor/ingredients/{placementId}.
// Unknown placements are ignored.
func (s *Server) RemoveIngredient(ctx echo.Context) error {
	var placementID string
	err := runtime.BindStyledParameterWithOptions("simple", "placementId", ctx.Param("placementId"), &placementID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid format for parameter placementId: " + err.Error(),
		})
	}

	cmd, err := commands.NewRemoveIngredientCommand(placementID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if _, err = s.removeIngredientHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err, "Failed to remove ingredient")
	}

	return s.respondConstructor(ctx, http.StatusOK)
}

// MoveIngredient handles POST /api/v1/constructor/ingredients/{index}/{direction}.
// Moves past either end of the fillings are ignored.
func (s *Server) MoveIngredient(ctx echo.Context) error {
	var index int
	err := runtime.BindStyledParameterWithOptions("simple", "index", ctx.Param("index"), &index,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid format for parameter index: " + err.Error(),
		})
	}

	var rawDirection string
	err = runtime.BindStyledParameterWithOptions("simple", "direction", ctx.Param("direction"), &rawDirection,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid format for parameter direction: " + err.Error(),
		})
	}

	direction, err := commands.DirectionFromString(rawDirection)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewMoveIngredientCommand(index, direction)
	if err != nil {
		return badRequest(ctx, err)
	}

	if _, err = s.moveIngredientHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err, "Failed to move ingredient")
	}

	return s.respondConstructor(ctx, http.StatusOK)
}

// SubmitOrder handles POST /api/v1/constructor/order - places the order and
// waits for the order endpoint. An endpoint failure is still a 200: it is
// reported in lastError.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	snap, err := s.submitOrderHandler.Handle(ctx.Request().Context(), commands.NewSubmitOrderCommand())
	if err != nil {
		return respondError(ctx, err, "Failed to submit order")
	}

	return ctx.JSON(http.StatusOK, constructorFromQuery(queries.ConstructorResponseFromSnapshot(snap)))
}

// DismissOrderResult handles DELETE /api/v1/constructor/order - clears the last result.
func (s *Server) DismissOrderResult(ctx echo.Context) error {
	err := s.dismissOrderResultHandler.Handle(ctx.Request().Context(), commands.NewDismissOrderResultCommand())
	if err != nil {
		return respondError(ctx, err, "Failed to dismiss order result")
	}

	return s.respondConstructor(ctx, http.StatusOK)
}

// GetOrders handles GET /api/v1/orders - retrieves recently placed orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	var limit *int
	err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &limit)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid format for parameter limit: " + err.Error(),
		})
	}

	requested := 0
	if limit != nil {
		requested = *limit
	}

	query, err := queries.NewGetOrderHistoryQuery(requested)
	if err != nil {
		return badRequest(ctx, err)
	}

	orders, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		s.logger.ErrorContext(ctx.Request().Context(), "failed to read order history", "error", err)
		return respondError(ctx, err, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, journaledOrdersFromQuery(orders))
}

func (s *Server) respondConstructor(ctx echo.Context, code int) error {
	view, err := s.getConstructorHandler.Handle(ctx.Request().Context(), queries.NewGetConstructorQuery())
	if err != nil {
		return respondError(ctx, err, "Failed to retrieve constructor")
	}

	return ctx.JSON(code, constructorFromQuery(view))
}
