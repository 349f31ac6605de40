package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// APICORS applies CORS only to requests under prefix, so that origin checks
// never interfere with the storefront's own form posts. It must be
// installed with router.Use so unmatched preflight requests reach it too.
func APICORS(prefix string, allowedOrigins []string) gin.HandlerFunc {
	config := cors.DefaultConfig()
	config.AllowMethods = []string{http.MethodGet, http.MethodHead, http.MethodOptions}
	if len(allowedOrigins) == 0 || containsWildcard(allowedOrigins) {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowedOrigins
	}
	handler := cors.New(config)

	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, prefix) {
			handler(c)
		}
	}
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
