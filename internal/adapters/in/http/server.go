package http

import (
	"errors"
	"log/slog"
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server handles the HTTP surface of the ordering service.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitOrderHandler commands.SubmitOrderCommandHandler

	// Query handlers
	getMealsByAreaHandler queries.GetMealsByAreaQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	submitOrderHandler commands.SubmitOrderCommandHandler,
	getMealsByAreaHandler queries.GetMealsByAreaQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		submitOrderHandler:    submitOrderHandler,
		getMealsByAreaHandler: getMealsByAreaHandler,
		logger:                logger,
	}
}

// RegisterRoutes attaches the service endpoints to the echo instance.
// The meal listing accepts both GET and POST so the area can travel either
// as a query parameter or in a JSON body.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/meals", s.GetMealsByArea)
	e.POST("/api/v1/meals", s.GetMealsByArea)
	e.POST("/api/v1/orders", s.SubmitOrder)
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// lineItemRequest is one submitted line item as received on the wire.
type lineItemRequest struct {
	MealID string `json:"mealId"`
	Qty    int    `json:"qty"`
}

// submitOrderRequest is the request body for POST /api/v1/orders.
type submitOrderRequest struct {
	Area    string            `json:"area"`
	Address string            `json:"address"`
	Items   []lineItemRequest `json:"items"`
}

// submitOrderResponse is the success body for POST /api/v1/orders.
type submitOrderResponse struct {
	OrderID            string          `json:"orderId"`
	TotalCost          decimal.Decimal `json:"totalCost"`
	EstDeliveryMinutes int             `json:"estDeliveryMinutes"`
}

// mealResponse is one catalog entry in the meal listing.
type mealResponse struct {
	ID             string          `json:"id"`
	RestaurantName string          `json:"restaurantName"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	PrepMinutes    int             `json:"prepMinutes"`
	Price          decimal.Decimal `json:"price"`
}

// SubmitOrder handles POST /api/v1/orders - submits a new order.
//
// Failures never leak internals: the aggregation and persistence errors map
// to fixed generic messages while the cause is logged server-side.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var request submitOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid JSON body",
		})
	}

	items := make([]order.LineItem, len(request.Items))
	for i, item := range request.Items {
		items[i] = order.NewLineItem(item.MealID, item.Qty)
	}

	cmd, err := commands.NewSubmitOrderCommand(request.Area, request.Address, items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Missing or invalid fields: area, address, items[]",
		})
	}

	response, err := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		s.logger.Error("order submission failed",
			"area", request.Area,
			"error", err,
		)

		if errors.Is(err, commands.ErrOrderProcessing) {
			return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "Error processing order items",
			})
		}

		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Error saving order",
		})
	}

	return ctx.JSON(http.StatusOK, submitOrderResponse{
		OrderID:            response.OrderID.String(),
		TotalCost:          response.TotalCost,
		EstDeliveryMinutes: response.EstDeliveryMinutes,
	})
}

// GetMealsByArea handles GET|POST /api/v1/meals - lists the catalog for an area.
// The area comes from the query parameter, or from a JSON body field on POST;
// the query parameter takes precedence.
func (s *Server) GetMealsByArea(ctx echo.Context) error {
	area := ctx.QueryParam("area")
	if area == "" && ctx.Request().Method == http.MethodPost {
		var body struct {
			Area string `json:"area"`
		}
		if err := ctx.Bind(&body); err == nil {
			area = body.Area
		}
	}

	query, err := queries.NewGetMealsByAreaQuery(area)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Missing 'area' parameter",
		})
	}

	meals, err := s.getMealsByAreaHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		s.logger.Error("meal listing failed",
			"area", area,
			"error", err,
		)

		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Server error reading meals",
		})
	}

	response := make([]mealResponse, len(meals))
	for i, m := range meals {
		response[i] = mealResponse{
			ID:             m.ID,
			RestaurantName: m.RestaurantName,
			Name:           m.Name,
			Description:    m.Description,
			PrepMinutes:    m.PrepMinutes,
			Price:          m.Price,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
