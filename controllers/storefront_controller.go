package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Index handles GET / - lists every product
func (ctl *Controller) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title":    "Products",
		"Products": ctl.store.Products(),
	})
}

// ShowProduct handles GET /product/:id
func (ctl *Controller) ShowProduct(c *gin.Context) {
	product, ok := ctl.store.Product(c.Param("id"))
	if !ok {
		notFound(c)
		return
	}

	c.HTML(http.StatusOK, "product.html", gin.H{
		"Title":   product.Title,
		"Product": product,
	})
}
