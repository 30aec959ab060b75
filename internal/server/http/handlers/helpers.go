package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/kdelarosa/deliverytrack/internal/domain/errors"
	"github.com/kdelarosa/deliverytrack/internal/domain/model"
	"github.com/kdelarosa/deliverytrack/internal/server/http/dto"
)

// orderID parses the :id path parameter. Unparseable values are reported the
// same way as unknown ids.
func orderID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeNotFound(c)
		return 0, false
	}
	return id, true
}

func writeNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Order not found"})
}

// writeError maps domain errors onto the API error contract: field errors
// become a 400 field→messages map, unknown ids a 404 body, everything else
// a bare 500.
func writeError(c *gin.Context, err error) {
	var fieldErrs domainErrors.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		c.JSON(http.StatusBadRequest, fieldErrs)
	case errors.Is(err, domainErrors.ErrNotFound):
		writeNotFound(c)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:                 order.ID,
		OrderNumber:        order.OrderNumber,
		CustomerName:       order.CustomerName,
		CustomerEmail:      order.CustomerEmail,
		PhoneNumber:        order.PhoneNumber,
		DeliveryAddress:    order.DeliveryAddress,
		DeliveryCity:       order.DeliveryCity,
		DeliveryPostalCode: order.DeliveryPostalCode,
		OrderDescription:   order.OrderDescription,
		OrderStatus:        string(order.Status),
		AssignedDriver:     order.AssignedDriver,
		DriverNotes:        order.DriverNotes,
		PickupTime:         order.PickupTime,
		DeliveryTime:       order.DeliveryTime,
		CurrentLatitude:    order.CurrentLatitude,
		CurrentLongitude:   order.CurrentLongitude,
		DeliveryPhotoURL:   order.DeliveryPhotoURL,
		CreatedAt:          order.CreatedAt.Format(dto.TimeLayout),
		UpdatedAt:          order.UpdatedAt.Format(dto.TimeLayout),
		CreatedBy:          order.CreatedBy,
		IsDelivered:        order.IsDelivered(),
		HasDriver:          order.HasDriver(),
	}
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	result := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, toOrderResponse(o))
	}
	return result
}

func toOrderSummary(order model.Order) dto.OrderSummaryResponse {
	return dto.OrderSummaryResponse{
		ID:             order.ID,
		OrderNumber:    order.OrderNumber,
		CustomerName:   order.CustomerName,
		DeliveryCity:   order.DeliveryCity,
		OrderStatus:    string(order.Status),
		AssignedDriver: order.AssignedDriver,
		CreatedAt:      order.CreatedAt,
	}
}
