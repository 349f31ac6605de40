package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/storefront/middleware"
	"github.com/kendall-kelly/storefront/store"
	"go.uber.org/zap"
)

// Controller serves every storefront route. It holds the store explicitly
// so handlers share no package state.
type Controller struct {
	store  *store.Store
	admin  middleware.AdminCredentials
	logger *zap.Logger
}

// New creates a controller over s
func New(s *store.Store, admin middleware.AdminCredentials, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{store: s, admin: admin, logger: logger}
}

// notFound answers unknown product and order ids
func notFound(c *gin.Context) {
	c.String(http.StatusNotFound, "Not found")
}

// serverError records err for the request logger and hides it from the client
func serverError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.String(http.StatusInternalServerError, "Internal server error")
}
