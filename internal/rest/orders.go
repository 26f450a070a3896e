package rest

import (
	"autoOpsAI/business/operations"
	"autoOpsAI/domain"
	"context"
	"net/http"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	OrdersHandler struct {
		validate      *validator.Validate
		ordersService OrdersService
	}

	OrdersService interface {
		RecordOrder(ctx context.Context, in operations.OrderInput) (domain.Order, error)
		Orders(ctx context.Context) ([]domain.Order, error)
	}

	CreateOrderRequest struct {
		CustomerID string `json:"customer_id" validate:"required"`
		ProductID  string `json:"product_id" validate:"required"`
		Quantity   int    `json:"quantity" validate:"required,gt=0,lte=10000"`
	}
)

func NewOrdersHandler(svc OrdersService) *OrdersHandler {
	return &OrdersHandler{
		validate:      validator.New(),
		ordersService: svc,
	}
}

// POST /api/v1/orders
func (h *OrdersHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	order, err := h.ordersService.RecordOrder(c.Request().Context(), operations.OrderInput{
		CustomerID: req.CustomerID,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(order))
}

// GET /api/v1/orders
func (h *OrdersHandler) GetAllOrders(c echo.Context) error {
	orders, err := h.ordersService.Orders(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(orders))
}
