package integration

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/kendall-kelly/storefront/models"
	"github.com/kendall-kelly/storefront/services"
	"github.com/kendall-kelly/storefront/store"
	"github.com/kendall-kelly/storefront/tests/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

// MirrorIntegrationTestSuite runs the storefront over the JSON files with
// snapshot mirroring to a mock bucket
type MirrorIntegrationTestSuite struct {
	suite.Suite
	mockS3 *services.MockS3Service
	app    *testutil.Storefront
}

func (suite *MirrorIntegrationTestSuite) SetupTest() {
	t := suite.T()
	testutil.MustSetTestEnvironment(t)

	cfg := testutil.NewConfig(t)
	suite.mockS3 = services.NewMockS3Service(cfg.SnapshotPrefix)
	backend := store.NewFileBackend(cfg.DataDir, suite.mockS3, zap.NewNop())

	suite.app = testutil.StartStorefront(t, cfg, backend)
}

func (suite *MirrorIntegrationTestSuite) TestProductCreationIsMirrored() {
	admin := suite.app.NewClient(suite.T())
	admin.LoginAsAdmin()

	resp, _ := admin.PostForm("/admin/products", url.Values{"title": {"Mug"}, "price": {"9.50"}, "customFields": {"color"}})
	suite.Equal(http.StatusFound, resp.StatusCode)

	suite.True(suite.mockS3.FileExists("snapshots/products.json"))
	suite.False(suite.mockS3.FileExists("snapshots/orders.json"))

	onDisk, err := os.ReadFile(filepath.Join(suite.app.Config.DataDir, store.ProductsFile))
	suite.Require().NoError(err)
	suite.Equal(onDisk, suite.mockS3.GetUploadedFiles()["snapshots/products.json"])
}

func (suite *MirrorIntegrationTestSuite) TestCheckoutIsMirrored() {
	shopper := suite.app.NewClient(suite.T())

	resp, _ := shopper.PostForm("/checkout", nil)
	suite.Equal(http.StatusOK, resp.StatusCode)

	var orders []models.Order
	suite.Require().NoError(json.Unmarshal(suite.mockS3.GetUploadedFiles()["snapshots/orders.json"], &orders))
	suite.Require().Len(orders, 1)
	suite.Equal(models.StatusPending, orders[0].Status)
	suite.Empty(orders[0].Items)
}

func (suite *MirrorIntegrationTestSuite) TestMirrorFailureDoesNotFailCheckout() {
	suite.mockS3.FailWith(errors.New("bucket unavailable"))
	shopper := suite.app.NewClient(suite.T())

	resp, body := shopper.PostForm("/checkout", nil)
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Contains(body, "Pending")

	suite.Empty(suite.mockS3.GetUploadedFiles())
	suite.Len(store.LoadJSON(filepath.Join(suite.app.Config.DataDir, store.OrdersFile), []models.Order{}), 1)
}

func TestMirrorIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(MirrorIntegrationTestSuite))
}
