package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/storefront/middleware"
	"github.com/kendall-kelly/storefront/services"
	"go.uber.org/zap"
)

// AddToCart handles POST /cart/add/:id - stores the submitted custom field
// values as a new cart item
func (ctl *Controller) AddToCart(c *gin.Context) {
	product, ok := ctl.store.Product(c.Param("id"))
	if !ok {
		notFound(c)
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "Invalid form data")
		return
	}

	state, err := middleware.GetSessionState(c)
	if err != nil {
		serverError(c, err)
		return
	}

	state.Cart = services.AddToCart(state.Cart, product, c.Request.PostForm)
	if err := middleware.SaveSessionState(c, state); err != nil {
		serverError(c, fmt.Errorf("failed to save session: %w", err))
		return
	}

	c.Redirect(http.StatusFound, "/cart")
}

// ShowCart handles GET /cart
func (ctl *Controller) ShowCart(c *gin.Context) {
	state, err := middleware.GetSessionState(c)
	if err != nil {
		serverError(c, err)
		return
	}

	c.HTML(http.StatusOK, "cart.html", gin.H{
		"Title": "Cart",
		"Cart":  services.ViewCart(ctl.store, state.Cart),
	})
}

// Checkout handles POST /checkout - turns the session cart into an order
// and empties the cart. The cart is kept when the order cannot be saved.
func (ctl *Controller) Checkout(c *gin.Context) {
	state, err := middleware.GetSessionState(c)
	if err != nil {
		serverError(c, err)
		return
	}

	order, err := services.Checkout(c.Request.Context(), ctl.store, state.Cart)
	if err != nil {
		serverError(c, err)
		return
	}
	ctl.logger.Info("Order placed", zap.String("order_id", order.ID), zap.Int("items", len(order.Items)))

	state.ClearCart()
	if err := middleware.SaveSessionState(c, state); err != nil {
		serverError(c, fmt.Errorf("failed to save session: %w", err))
		return
	}

	c.HTML(http.StatusOK, "order_success.html", gin.H{
		"Title": "Order placed",
		"Order": order,
		"Lines": services.ViewCart(ctl.store, order.Items).Lines,
	})
}
