package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StoreStatus handles GET /api/v1/store/status - reports the backend in use
// and the size of each collection
func (ctl *Controller) StoreStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Store loaded",
		"data":    ctl.store.Stats(),
	})
}

// ListProducts handles GET /api/v1/products
func (ctl *Controller) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    ctl.store.Products(),
	})
}

// GetProduct handles GET /api/v1/products/:id
func (ctl *Controller) GetProduct(c *gin.Context) {
	product, ok := ctl.store.Product(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "PRODUCT_NOT_FOUND",
				"message": "Product not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    product,
	})
}
