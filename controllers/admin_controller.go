package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/storefront/middleware"
	"github.com/kendall-kelly/storefront/services"
	"github.com/kendall-kelly/storefront/store"
	"go.uber.org/zap"
)

// LoginRequest represents the admin login form
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// CreateProductRequest represents the new product form. CustomFields is a
// comma separated list of field names.
type CreateProductRequest struct {
	Title        string `form:"title"`
	Description  string `form:"description"`
	Price        string `form:"price"`
	CustomFields string `form:"customFields"`
}

// UpdateStatusRequest represents the order status form
type UpdateStatusRequest struct {
	Status string `form:"status"`
}

// LoginForm handles GET /admin/login
func (ctl *Controller) LoginForm(c *gin.Context) {
	renderLogin(c, "")
}

// Login handles POST /admin/login - sets the session's admin flag when the
// credentials match
func (ctl *Controller) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid form data")
		return
	}

	if !ctl.admin.Check(req.Username, req.Password) {
		ctl.logger.Warn("Rejected admin login", zap.String("username", req.Username), zap.String("client_ip", c.ClientIP()))
		renderLogin(c, "Invalid credentials")
		return
	}

	state, err := middleware.GetSessionState(c)
	if err != nil {
		serverError(c, err)
		return
	}
	state.Admin = true
	if err := middleware.RenewSession(c); err != nil {
		serverError(c, err)
		return
	}
	if err := middleware.SaveSessionState(c, state); err != nil {
		serverError(c, fmt.Errorf("failed to save session: %w", err))
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

func renderLogin(c *gin.Context, errorMessage string) {
	c.HTML(http.StatusOK, "admin_login.html", gin.H{
		"Title": "Admin login",
		"Error": errorMessage,
	})
}

// Dashboard handles GET /admin - lists products and orders
func (ctl *Controller) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"Title":    "Admin",
		"Products": ctl.store.Products(),
		"Orders":   ctl.store.Orders(),
		"Statuses": services.SuggestedStatuses,
	})
}

// Logout handles POST /admin/logout - drops the whole session, cart included
func (ctl *Controller) Logout(c *gin.Context) {
	if err := middleware.DestroySession(c); err != nil {
		serverError(c, fmt.Errorf("failed to destroy session: %w", err))
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// CreateProduct handles POST /admin/products
func (ctl *Controller) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid form data")
		return
	}

	product, err := services.CreateProduct(c.Request.Context(), ctl.store, req.Title, req.Description, req.Price, req.CustomFields)
	if err != nil {
		serverError(c, err)
		return
	}
	ctl.logger.Info("Product created", zap.String("product_id", product.ID), zap.Strings("custom_fields", product.CustomFields))

	c.Redirect(http.StatusFound, "/admin")
}

// UpdateOrderStatus handles POST /admin/orders/:id/status
func (ctl *Controller) UpdateOrderStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid form data")
		return
	}

	order, err := services.UpdateOrderStatus(c.Request.Context(), ctl.store, c.Param("id"), req.Status)
	if errors.Is(err, store.ErrNotFound) {
		notFound(c)
		return
	}
	if err != nil {
		serverError(c, fmt.Errorf("failed to update order status: %w", err))
		return
	}
	ctl.logger.Info("Order status updated", zap.String("order_id", order.ID), zap.String("status", order.Status))

	c.Redirect(http.StatusFound, "/admin")
}
