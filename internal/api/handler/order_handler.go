package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pizzanow/ordering-system/internal/api/metrics"
	"github.com/pizzanow/ordering-system/internal/core/domain"
	"github.com/pizzanow/ordering-system/internal/core/ports"
)

// OrderHandler handles HTTP requests for order operations.
type OrderHandler struct {
	orderService ports.OrderService
	authService  ports.AuthService
}

func NewOrderHandler(orderService ports.OrderService, authService ports.AuthService) *OrderHandler {
	return &OrderHandler{orderService: orderService, authService: authService}
}

// Create handles POST /orders. The endpoint requires no authentication and
// takes the user id from the body, matching the intake contract: whoever can
// reach the API can record an order for any user id.
//
// @Summary      Record a new order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string              false  "Key to make retries safe"
// @Param        body             body      createOrderRequest  true   "Order details"
// @Success      201              {object}  orderResponse
// @Failure      400              {object}  errorResponse
// @Failure      500              {object}  errorResponse
// @Router       /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	result, err := h.orderService.CreateOrder(c.Request().Context(), ports.CreateOrderInput{
		UserID:         req.UserID,
		Item:           req.Item,
		Quantity:       req.Quantity,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to create order"})
	}

	outcome := "created"
	status := http.StatusCreated
	if result.AlreadyExisted {
		outcome = "replayed"
		status = http.StatusOK
	}
	metrics.OrdersCreatedTotal.WithLabelValues(outcome).Inc()

	return c.JSON(status, toOrderResponse(result.Order))
}

// List handles GET /orders: the authenticated caller's orders, newest first.
//
// @Summary      List own orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listOrdersResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	username, _ := c.Get("username").(string)
	if username == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	user, err := h.authService.UserByUsername(c.Request().Context(), username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Valid signature over a subject that no longer resolves.
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}

	orders, err := h.orderService.ListOrders(c.Request().Context(), user.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}

	items := make([]orderResponse, len(orders))
	for i, o := range orders {
		items[i] = toOrderResponse(&o)
	}
	return c.JSON(http.StatusOK, listOrdersResponse{Orders: items})
}

func toOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		Item:      o.Item,
		Quantity:  o.Quantity,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt.UTC(),
	}
}
