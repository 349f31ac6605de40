package routes

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/storefront/config"
	"github.com/kendall-kelly/storefront/controllers"
	"github.com/kendall-kelly/storefront/middleware"
	"github.com/kendall-kelly/storefront/store"
	"github.com/kendall-kelly/storefront/views"
	"go.uber.org/zap"
)

// Setup builds the gin engine serving the storefront, the admin panel and
// the JSON API over st.
func Setup(cfg *config.Config, st *store.Store, logger *zap.Logger) (*gin.Engine, error) {
	tmpl, err := views.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	admin := middleware.AdminCredentials{Username: cfg.AdminUsername, Password: cfg.AdminPassword}
	ctl := controllers.New(st, admin, logger)
	sessionStore := middleware.NewSessionStore([]byte(cfg.SessionSecret), cfg.SessionDir, cfg.IsProduction())

	router := gin.New()
	router.Use(middleware.RequestLogger(logger), gin.Recovery())
	router.Use(middleware.APICORS("/api/", cfg.CORSAllowedOrigins))
	router.SetHTMLTemplate(tmpl)
	router.StaticFS("/static", views.Static())

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/store/status", ctl.StoreStatus)
		v1.GET("/products", ctl.ListProducts)
		v1.GET("/products/:id", ctl.GetProduct)
	}

	site := router.Group("/", middleware.Sessions(sessionStore, logger))
	{
		site.GET("/", ctl.Index)
		site.GET("/product/:id", ctl.ShowProduct)
		site.POST("/cart/add/:id", ctl.AddToCart)
		site.GET("/cart", ctl.ShowCart)
		site.POST("/checkout", ctl.Checkout)

		site.GET(middleware.LoginPath, ctl.LoginForm)
		site.POST(middleware.LoginPath, ctl.Login)

		adminGroup := site.Group("/admin", middleware.RequireAdmin())
		{
			adminGroup.GET("", ctl.Dashboard)
			adminGroup.POST("/logout", ctl.Logout)
			adminGroup.POST("/products", ctl.CreateProduct)
			adminGroup.POST("/orders/:id/status", ctl.UpdateOrderStatus)
		}
	}

	return router, nil
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Storefront is running",
	})
}
