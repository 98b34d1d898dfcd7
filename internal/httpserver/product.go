package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	productsvc "sevencake/internal/service/product"
)

type productRequest struct {
	Name       string `json:"name" validate:"required,max=128"`
	Price      string `json:"price" validate:"required,max=32"`
	Img        string `json:"img" validate:"max=256"`
	CategoryID int64  `json:"categoryId" validate:"gte=0"`
}

func listProductsHandler(products productService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": list})
	}
}

func getProductHandler(products productService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		p, err := products.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func createProductHandler(products productService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req productRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			badRequest(c, "name and price are required")
			return
		}
		p, err := products.Create(c.Request.Context(), productsvc.Input{
			Name:       req.Name,
			Price:      req.Price,
			Img:        req.Img,
			CategoryID: req.CategoryID,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

func updateProductHandler(products productService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var req productRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			badRequest(c, "name and price are required")
			return
		}
		p, err := products.Update(c.Request.Context(), id, productsvc.Input{
			Name:       req.Name,
			Price:      req.Price,
			Img:        req.Img,
			CategoryID: req.CategoryID,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func deleteProductHandler(products productService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := products.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
	}
}
