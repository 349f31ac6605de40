package testutil

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/storefront/config"
	"github.com/kendall-kelly/storefront/routes"
	"github.com/kendall-kelly/storefront/store"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Test admin credentials used by NewConfig
const (
	AdminUsername = "admin"
	AdminPassword = "password"
)

// Storefront is the full application served over a real listener
type Storefront struct {
	Server *httptest.Server
	Store  *store.Store
	Config *config.Config
}

// NewConfig returns a valid file-driver config whose data and session
// directories are removed when t finishes
func NewConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{
		Port:               "0",
		GoEnv:              "test",
		LogLevel:           "debug",
		DataDir:            t.TempDir(),
		StoreDriver:        config.DriverFile,
		SessionSecret:      "test-secret",
		SessionDir:         t.TempDir(),
		AdminUsername:      AdminUsername,
		AdminPassword:      AdminPassword,
		CORSAllowedOrigins: []string{"*"},
		AWSRegion:          "us-east-1",
		SnapshotPrefix:     "snapshots",
	}
	require.NoError(t, cfg.Validate())
	return cfg
}

// StartStorefront loads a store from backend and serves it until t finishes
func StartStorefront(t *testing.T, cfg *config.Config, backend store.Backend) *Storefront {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(backend)
	router, err := routes.Setup(cfg, st, zap.NewNop())
	require.NoError(t, err)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &Storefront{Server: server, Store: st, Config: cfg}
}

// Client is a browser-like client: it keeps cookies and does not follow
// redirects, so tests can assert on them
type Client struct {
	t    *testing.T
	base string
	http *http.Client
}

// NewClient returns a client with an empty cookie jar
func (s *Storefront) NewClient(t *testing.T) *Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &Client{
		t:    t,
		base: s.Server.URL,
		http: &http.Client{
			Jar: jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Get requests path and returns the response with its body read
func (c *Client) Get(path string) (*http.Response, string) {
	c.t.Helper()

	req, err := http.NewRequest(http.MethodGet, c.base+path, nil)
	require.NoError(c.t, err)
	return c.do(req)
}

// PostForm submits form to path as a browser form post would
func (c *Client) PostForm(path string, form url.Values) (*http.Response, string) {
	c.t.Helper()

	req, err := http.NewRequest(http.MethodPost, c.base+path, strings.NewReader(form.Encode()))
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Origin", c.base)
	return c.do(req)
}

// Login posts the admin login form
func (c *Client) Login(username, password string) (*http.Response, string) {
	c.t.Helper()
	return c.PostForm("/admin/login", url.Values{"username": {username}, "password": {password}})
}

// LoginAsAdmin logs in with the test credentials and fails t otherwise
func (c *Client) LoginAsAdmin() {
	c.t.Helper()

	resp, _ := c.Login(AdminUsername, AdminPassword)
	require.Equal(c.t, http.StatusFound, resp.StatusCode)
	require.Equal(c.t, "/admin", resp.Header.Get("Location"))
}

func (c *Client) do(req *http.Request) (*http.Response, string) {
	c.t.Helper()

	resp, err := c.http.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp, string(body)
}
