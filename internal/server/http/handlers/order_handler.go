package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kdelarosa/deliverytrack/internal/domain/model"
	"github.com/kdelarosa/deliverytrack/internal/server/http/dto"
)

// OrderHandler manages the order resource endpoints. Each handler is bound
// statically to one request projection and one response view.
type OrderHandler struct {
	facade DeliveryFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade DeliveryFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/orders with optional status/driver/city filters.
// Filters combine with AND; matches are projected through the summary view.
func (h *OrderHandler) List(c *gin.Context) {
	filter := model.OrderFilter{
		Status: model.OrderStatus(c.Query("status")),
		Driver: c.Query("driver"),
		City:   c.Query("city"),
	}

	orders, err := h.facade.Orders(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}

	results := make([]dto.OrderSummaryResponse, 0, len(orders))
	for _, o := range orders {
		results = append(results, toOrderSummary(o))
	}

	c.JSON(http.StatusOK, dto.ListOrdersResponse{Count: len(results), Results: results})
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	order := model.Order{
		CustomerName:     req.CustomerName,
		PhoneNumber:      req.PhoneNumber,
		DeliveryAddress:  req.DeliveryAddress,
		DeliveryCity:     req.DeliveryCity,
		OrderDescription: req.OrderDescription,
		CreatedBy:        req.CreatedBy,
	}

	created, err := h.facade.CreateOrder(c.Request.Context(), &order)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*created))
}

// Retrieve handles GET /api/orders/:id.
func (h *OrderHandler) Retrieve(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	order, err := h.facade.Order(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Replace handles PUT /api/orders/:id.
func (h *OrderHandler) Replace(c *gin.Context) {
	h.update(c, false)
}

// PartialUpdate handles PATCH /api/orders/:id.
func (h *OrderHandler) PartialUpdate(c *gin.Context) {
	h.update(c, true)
}

func (h *OrderHandler) update(c *gin.Context, partial bool) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	order, err := h.facade.UpdateOrder(c.Request.Context(), id, toOrderPatch(req), partial)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// UpdateStatus handles PATCH /api/orders/:id/update_status, the quick update
// used by the driver app.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	patch := model.StatusPatch{
		Status:           toStatus(req.OrderStatus),
		DriverNotes:      req.DriverNotes,
		CurrentLatitude:  req.CurrentLatitude,
		CurrentLongitude: req.CurrentLongitude,
		DeliveryPhotoURL: req.DeliveryPhotoURL,
		PickupTime:       req.PickupTime,
		DeliveryTime:     req.DeliveryTime,
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), id, patch)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// Delete handles DELETE /api/orders/:id. The confirmation message is passed
// along, though 204 responses carry no body on the wire.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	if err := h.facade.DeleteOrder(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, dto.MessageResponse{Message: "Order deleted successfully"})
}

// ByDriver handles GET /api/orders/by_driver?driver=Name.
func (h *OrderHandler) ByDriver(c *gin.Context) {
	driver := c.Query("driver")
	if driver == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Driver parameter is required"})
		return
	}

	orders, err := h.facade.OrdersByDriver(c.Request.Context(), driver)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DriverOrdersResponse{
		Driver: driver,
		Count:  len(orders),
		Orders: toOrderResponses(orders),
	})
}

// ByStatus handles GET /api/orders/by_status?status=PENDING.
func (h *OrderHandler) ByStatus(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Status parameter is required"})
		return
	}

	normalized := model.NormalizeStatus(status)
	orders, err := h.facade.OrdersByStatus(c.Request.Context(), normalized)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusOrdersResponse{
		Status: string(normalized),
		Count:  len(orders),
		Orders: toOrderResponses(orders),
	})
}

// Search handles GET /api/orders/search?q=term.
func (h *OrderHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Search query parameter (q) is required"})
		return
	}

	orders, err := h.facade.SearchOrders(c.Request.Context(), query)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SearchOrdersResponse{
		Query:   query,
		Count:   len(orders),
		Results: toOrderResponses(orders),
	})
}

func toOrderPatch(req dto.UpdateOrderRequest) model.OrderPatch {
	return model.OrderPatch{
		CustomerName:       req.CustomerName,
		CustomerEmail:      req.CustomerEmail,
		PhoneNumber:        req.PhoneNumber,
		DeliveryAddress:    req.DeliveryAddress,
		DeliveryCity:       req.DeliveryCity,
		DeliveryPostalCode: req.DeliveryPostalCode,
		OrderDescription:   req.OrderDescription,
		Status:             toStatus(req.OrderStatus),
		AssignedDriver:     req.AssignedDriver,
		DriverNotes:        req.DriverNotes,
		PickupTime:         req.PickupTime,
		DeliveryTime:       req.DeliveryTime,
		CurrentLatitude:    req.CurrentLatitude,
		CurrentLongitude:   req.CurrentLongitude,
		DeliveryPhotoURL:   req.DeliveryPhotoURL,
		CreatedBy:          req.CreatedBy,
	}
}

func toStatus(s *string) *model.OrderStatus {
	if s == nil {
		return nil
	}
	status := model.OrderStatus(*s)
	return &status
}
