package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sevencake/internal/domain"
	ordersvc "sevencake/internal/service/order"
)

type checkoutRequest struct {
	Phone         string `json:"phone" validate:"required,min=8,max=20"`
	PaymentMethod string `json:"paymentMethod" validate:"required,max=32"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

func checkoutHandler(orders orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			badRequest(c, "a valid phone and payment method are required")
			return
		}
		order, err := orders.Checkout(c.Request.Context(), currentUser(c).ID, ordersvc.CheckoutInput{
			Phone:         req.Phone,
			PaymentMethod: req.PaymentMethod,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

func orderHistoryHandler(orders orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.History(c.Request.Context(), currentUser(c).ID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": list})
	}
}

func orderItemsHandler(orders orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		items, err := orders.ItemsForUser(c.Request.Context(), currentUser(c).ID, id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

func listAllOrdersHandler(orders orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.ListAll(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": list})
	}
}

func adminOrderItemsHandler(orders orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		items, err := orders.Items(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

func updateOrderStatusHandler(orders orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req statusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			badRequest(c, "status is required")
			return
		}
		order, err := orders.UpdateStatus(c.Request.Context(), id, domain.OrderStatus(req.Status))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
