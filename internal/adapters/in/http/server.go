// Package http exposes the REST API: order intake and tracking, menu
// management, and order statistics. Successful mutations additionally push
// realtime notifications through the websocket registry without delaying the
// HTTP response.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON error body returned by all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server implements the REST handlers and coordinates between HTTP requests,
// application use cases, and realtime notifications.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	createProductHandler     commands.CreateProductCommandHandler
	updateProductHandler     commands.UpdateProductCommandHandler
	deleteProductHandler     commands.DeleteProductCommandHandler

	// Query handlers
	getOrderHandler     queries.GetOrderQueryHandler
	listOrdersHandler   queries.ListOrdersQueryHandler
	statisticsHandler   queries.GetOrderStatisticsQueryHandler
	getProductHandler   queries.GetProductQueryHandler
	listProductsHandler queries.ListProductsQueryHandler

	notifier ports.RealtimeNotifier
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	updateProductHandler commands.UpdateProductCommandHandler,
	deleteProductHandler commands.DeleteProductCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	statisticsHandler queries.GetOrderStatisticsQueryHandler,
	getProductHandler queries.GetProductQueryHandler,
	listProductsHandler queries.ListProductsQueryHandler,
	notifier ports.RealtimeNotifier,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		createProductHandler:     createProductHandler,
		updateProductHandler:     updateProductHandler,
		deleteProductHandler:     deleteProductHandler,
		getOrderHandler:          getOrderHandler,
		listOrdersHandler:        listOrdersHandler,
		statisticsHandler:        statisticsHandler,
		getProductHandler:        getProductHandler,
		listProductsHandler:      listProductsHandler,
		notifier:                 notifier,
		logger:                   logger.With("component", "http_server"),
	}
}

// RegisterRoutes wires all REST endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/statistics/overview", s.GetOrderStatistics)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	api.DELETE("/orders/:id", s.CancelOrder)

	api.POST("/products", s.CreateProduct)
	api.GET("/products", s.ListProducts)
	api.GET("/products/:id", s.GetProduct)
	api.PATCH("/products/:id", s.UpdateProduct)
	api.DELETE("/products/:id", s.DeleteProduct)
}

type customerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type orderItemRequest struct {
	ProductID       string `json:"product_id"`
	Quantity        int    `json:"quantity"`
	SpecialRequests string `json:"special_requests"`
}

type createOrderRequest struct {
	Customer        customerRequest    `json:"customer"`
	Items           []orderItemRequest `json:"items"`
	Notes           string             `json:"notes"`
	DeliveryAddress string             `json:"delivery_address"`
	DeliveryTime    *time.Time         `json:"delivery_time"`
}

// CreateOrder handles POST /api/v1/orders - places a new order.
// On success, staff and admin clients are notified in the background.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	customer, err := order.NewCustomer(req.Customer.Name, req.Customer.Phone, req.Customer.Email, req.Customer.Address)
	if err != nil {
		return s.badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	items := make([]commands.OrderItemRequest, 0, len(req.Items))
	for _, it := range req.Items {
		productID, idErr := kernel.UUIDFromString(it.ProductID)
		if idErr != nil {
			return s.badRequest(ctx, "Invalid product id: "+it.ProductID)
		}

		item, itemErr := commands.NewOrderItemRequest(productID, it.Quantity, it.SpecialRequests)
		if itemErr != nil {
			return s.badRequest(ctx, "Invalid order item: "+itemErr.Error())
		}

		items = append(items, item)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), customer, items, req.Notes, req.DeliveryAddress, req.DeliveryTime)
	if err != nil {
		return s.badRequest(ctx, "Invalid order data: "+err.Error())
	}

	placed, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	view := orderToView(placed)
	go s.notifier.BroadcastNewOrder(view)

	return ctx.JSON(http.StatusCreated, view)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid order id: "+ctx.Param("id"))
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, view)
}

// ListOrders handles GET /api/v1/orders - retrieves a page of orders.
// Supports status, customer_name, date_from, date_to, page, and limit query
// parameters.
func (s *Server) ListOrders(ctx echo.Context) error {
	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.ParseStatus(raw)
		if err != nil {
			return s.badRequest(ctx, "Unknown status: "+raw)
		}
		status = &parsed
	}

	dateFrom, err := parseTimeParam(ctx.QueryParam("date_from"))
	if err != nil {
		return s.badRequest(ctx, "Invalid date_from")
	}

	dateTo, err := parseTimeParam(ctx.QueryParam("date_to"))
	if err != nil {
		return s.badRequest(ctx, "Invalid date_to")
	}

	page := intParamOrDefault(ctx.QueryParam("page"), 1)
	limit := intParamOrDefault(ctx.QueryParam("limit"), 10)

	query, err := queries.NewListOrdersQuery(status, ctx.QueryParam("customer_name"), dateFrom, dateTo, page, limit)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status - moves an order
// through its lifecycle. Illegal transitions return 400.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid order id: "+ctx.Param("id"))
	}

	var req updateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return s.badRequest(ctx, "Unknown status: "+req.Status)
	}

	return s.changeOrderStatus(ctx, orderID, status)
}

// CancelOrder handles DELETE /api/v1/orders/:id - cancels an order.
// Cancellation is a status transition, so completed orders cannot be cancelled.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid order id: "+ctx.Param("id"))
	}

	return s.changeOrderStatus(ctx, orderID, order.Cancelled)
}

func (s *Server) changeOrderStatus(ctx echo.Context, orderID kernel.UUID, status order.Status) error {
	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	view := orderToView(updated)
	go func() {
		s.notifier.BroadcastOrderUpdate(view.ID, view)
		s.broadcastStatistics()
	}()

	return ctx.JSON(http.StatusOK, view)
}

type statisticsResponse struct {
	Statistics map[string]int `json:"statistics"`
}

// GetOrderStatistics handles GET /api/v1/orders/statistics/overview - returns
// order counts per status, zero-filled for statuses without orders.
func (s *Server) GetOrderStatistics(ctx echo.Context) error {
	stats, err := s.statisticsHandler.Handle(ctx.Request().Context(), queries.NewGetOrderStatisticsQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, statisticsResponse{Statistics: stats})
}

type createProductRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// CreateProduct handles POST /api/v1/products - adds a product to the menu.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req createProductRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), req.Name, req.Price, req.Category, req.Description)
	if err != nil {
		return s.badRequest(ctx, "Invalid product data: "+err.Error())
	}

	created, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, productToView(created))
}

// GetProduct handles GET /api/v1/products/:id - retrieves one product.
func (s *Server) GetProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid product id: "+ctx.Param("id"))
	}

	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	view, err := s.getProductHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, view)
}

// ListProducts handles GET /api/v1/products - retrieves a page of menu
// products. Supports category, available_only, page, and limit query
// parameters.
func (s *Server) ListProducts(ctx echo.Context) error {
	var availableOnly bool
	switch ctx.QueryParam("available_only") {
	case "", "false":
	case "true":
		availableOnly = true
	default:
		return s.badRequest(ctx, "Invalid available_only, expected true or false")
	}

	page := intParamOrDefault(ctx.QueryParam("page"), 1)
	limit := intParamOrDefault(ctx.QueryParam("limit"), 10)

	query, err := queries.NewListProductsQuery(ctx.QueryParam("category"), availableOnly, page, limit)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	result, err := s.listProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	IsAvailable *bool    `json:"is_available"`
}

// UpdateProduct handles PATCH /api/v1/products/:id - partially updates a
// product. Absent fields keep their stored values.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid product id: "+ctx.Param("id"))
	}

	var req updateProductRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateProductCommand(
		productID, req.Name, req.Price, req.Category, req.Description, req.IsAvailable)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	updated, err := s.updateProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productToView(updated))
}

// DeleteProduct handles DELETE /api/v1/products/:id - removes a product from
// the menu. Existing orders keep their line item snapshots.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.badRequest(ctx, "Invalid product id: "+ctx.Param("id"))
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	if err = s.deleteProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// broadcastStatistics recomputes order statistics and pushes them to admin
// clients. Runs after mutations, detached from the request; failures are
// logged and dropped.
func (s *Server) broadcastStatistics() {
	ctx := context.Background()

	stats, err := s.statisticsHandler.Handle(ctx, queries.NewGetOrderStatisticsQuery())
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to refresh statistics for broadcast", "error", err)
		return
	}

	s.notifier.BroadcastStatisticsUpdate(stats)
}

// writeError maps application errors onto HTTP status codes:
// missing objects to 404, rejected input and illegal transitions to 400,
// everything else to 500.
func (s *Server) writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrInvalidStatusTransition),
		errors.Is(err, commands.ErrProductUnavailable),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed", "error", err)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func parseTimeParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func intParamOrDefault(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}
