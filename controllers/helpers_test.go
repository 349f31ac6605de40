package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/storefront/middleware"
	"github.com/kendall-kelly/storefront/models"
	"github.com/kendall-kelly/storefront/store"
	"github.com/kendall-kelly/storefront/views"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testAdmin = middleware.AdminCredentials{Username: "admin", Password: "password"}

type testEnv struct {
	router  *gin.Engine
	store   *store.Store
	backend *store.FileBackend
	dataDir string
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	return router
}

// setupTestEnv wires a controller over a JSON file store seeded with
// products, mounted on the same paths the server uses
func setupTestEnv(t *testing.T, products ...models.Product) *testEnv {
	t.Helper()
	dataDir := t.TempDir()
	backend := store.NewFileBackend(dataDir, nil, nil)
	if len(products) > 0 {
		require.NoError(t, store.SaveJSON(filepath.Join(dataDir, store.ProductsFile), products))
	}
	s := store.New(backend)
	ctl := New(s, testAdmin, zap.NewNop())

	router := setupTestRouter()
	tmpl, err := views.Templates()
	require.NoError(t, err)
	router.SetHTMLTemplate(tmpl)
	router.Use(middleware.Sessions(middleware.NewSessionStore([]byte("test-secret"), t.TempDir(), false), zap.NewNop()))

	router.GET("/", ctl.Index)
	router.GET("/product/:id", ctl.ShowProduct)
	router.POST("/cart/add/:id", ctl.AddToCart)
	router.GET("/cart", ctl.ShowCart)
	router.POST("/checkout", ctl.Checkout)
	router.GET("/admin/login", ctl.LoginForm)
	router.POST("/admin/login", ctl.Login)
	admin := router.Group("/admin", middleware.RequireAdmin())
	admin.GET("", ctl.Dashboard)
	admin.POST("/logout", ctl.Logout)
	admin.POST("/products", ctl.CreateProduct)
	admin.POST("/orders/:id/status", ctl.UpdateOrderStatus)
	router.GET("/api/v1/store/status", ctl.StoreStatus)
	router.GET("/api/v1/products", ctl.ListProducts)
	router.GET("/api/v1/products/:id", ctl.GetProduct)

	return &testEnv{router: router, store: s, backend: backend, dataDir: dataDir}
}

// browser keeps cookies between requests like a real client
type browser struct {
	env     *testEnv
	cookies map[string]*http.Cookie
}

func (e *testEnv) newBrowser() *browser {
	return &browser{env: e, cookies: make(map[string]*http.Cookie)}
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	for _, cookie := range b.cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	b.env.router.ServeHTTP(w, req)

	for _, cookie := range w.Result().Cookies() {
		if cookie.MaxAge < 0 {
			delete(b.cookies, cookie.Name)
			continue
		}
		b.cookies[cookie.Name] = cookie
	}
	return w
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

func (b *browser) loginAsAdmin(t *testing.T) {
	t.Helper()
	w := b.postForm("/admin/login", url.Values{"username": {"admin"}, "password": {"password"}})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/admin", w.Header().Get("Location"))
}

var mug = models.Product{ID: "1", Title: "Mug", Description: "Ceramic", Price: "9.50", CustomFields: []string{"color"}}
