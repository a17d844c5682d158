package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/restaurant-qr/services"
	"github.com/yeremiapane/restaurant-qr/utils"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// CreateOrder -> POST /orders. All-or-nothing: any bad item rejects the
// whole request and nothing is persisted.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type itemReq struct {
		DishID   uint   `json:"dish_id" binding:"required"`
		Quantity int    `json:"quantity" binding:"required,min=1"`
		Comment  string `json:"comment"`
	}
	type reqBody struct {
		SessionID string    `json:"session_id" binding:"required"`
		Items     []itemReq `json:"items" binding:"required,min=1,dive"`
		Note      string    `json:"note"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, CodeValidationError, "session_id and a non-empty items list are required")
		return
	}

	items := make([]services.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, services.OrderItemInput{
			DishID:   item.DishID,
			Quantity: item.Quantity,
			Comment:  item.Comment,
		})
	}

	order, err := oc.orders.CreateOrder(c.Request.Context(), req.SessionID, items, req.Note)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Order placed successfully", order)
}

// GetOrder -> GET /orders/:order_id
func (oc *OrderController) GetOrder(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, CodeValidationError, "invalid order id")
		return
	}

	order, err := oc.orders.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// ListOrders -> GET /orders?session_id=... (newest first)
func (oc *OrderController) ListOrders(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, CodeValidationError, "session_id query param is required")
		return
	}

	orders, err := oc.orders.ListBySession(c.Request.Context(), sessionID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondList(c, http.StatusOK, len(orders), orders)
}

// UpdateStatus -> PATCH /orders/:order_id/status. Membership check only;
// any enum value is accepted from any current status.
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, CodeValidationError, "invalid order id")
		return
	}

	type reqBody struct {
		Status string `json:"status" binding:"required"`
	}
	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, CodeInvalidStatus, "status is required")
		return
	}

	order, err := oc.orders.UpdateStatus(c.Request.Context(), uint(id), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, fmt.Sprintf("Order status updated to %s", req.Status), order)
}
