package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addCartItemRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
}

type updateCartItemRequest struct {
	// Quantity may legitimately be zero: that removes the line.
	Quantity int `json:"quantity"`
}

func getCartHandler(carts cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := carts.Fetch(c.Request.Context(), currentUser(c).ID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func addCartItemHandler(carts cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			badRequest(c, "productId is required")
			return
		}
		if err := carts.Add(c.Request.Context(), currentUser(c).ID, req.ProductID); err != nil {
			respondError(c, err)
			return
		}
		cart, err := carts.Fetch(c.Request.Context(), currentUser(c).ID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func updateCartItemHandler(carts cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req updateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		if err := carts.UpdateQuantity(c.Request.Context(), id, req.Quantity); err != nil {
			respondError(c, err)
			return
		}
		cart, err := carts.Fetch(c.Request.Context(), currentUser(c).ID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func removeCartItemHandler(carts cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := carts.Remove(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		cart, err := carts.Fetch(c.Request.Context(), currentUser(c).ID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}
