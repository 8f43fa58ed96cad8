package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"skillmart/internal/config"
	"skillmart/internal/handlers"
	"skillmart/internal/logger"
	"skillmart/internal/middleware"
	"skillmart/internal/services"
	"skillmart/internal/state"
	"skillmart/internal/testutil"
	"skillmart/internal/validator"
)

// issuerKey guards the token issuance endpoint in tests.
const issuerKey = "test-issuer-key"

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB        *gorm.DB
	Store     *state.Store
	Snapshots services.SnapshotServicer
	Router    *gin.Engine
}

// principalCounter ensures each test gets unique principals.
var principalCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "integration-test-secret")
	os.Setenv("ISSUER_API_KEY", issuerKey)
	if _, err := config.Load(); err != nil {
		panic(err)
	}
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack: a fresh in-memory store and an
// isolated in-memory SQLite snapshot database.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	store := state.NewStore()

	// Services
	ledgerService := services.NewLedgerService(store)
	registryService := services.NewRegistryService(store, ledgerService)
	snapshotService := services.NewSnapshotService(db, store)

	// Handlers
	authHandler := handlers.NewAuthHandler()
	assetHandler := handlers.NewAssetHandler(registryService)
	ledgerHandler := handlers.NewLedgerHandler(ledgerService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.Use(middleware.IssuerAuthMiddleware(issuerKey))
	auth.POST("/token", authHandler.IssueToken)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	assets := protected.Group("/assets")
	assets.POST("", assetHandler.Mint)
	assets.GET("", assetHandler.GetAssets)
	assets.GET("/:id", assetHandler.GetAssetByID)
	assets.POST("/:id/list", assetHandler.List)
	assets.POST("/:id/delist", assetHandler.Delist)
	assets.POST("/:id/active", assetHandler.SetActive)
	assets.POST("/:id/purchase", assetHandler.Purchase)
	assets.POST("/:id/transfer", assetHandler.Transfer)

	ledger := protected.Group("/ledger")
	ledger.GET("/balance", ledgerHandler.GetBalance)
	ledger.GET("/royalties", ledgerHandler.GetRoyalties)
	ledger.POST("/deposit", ledgerHandler.Deposit)
	ledger.POST("/withdraw", ledgerHandler.Withdraw)

	return &testApp{DB: db, Store: store, Snapshots: snapshotService, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// newPrincipal returns a unique principal identifier for a test.
func newPrincipal(t *testing.T) string {
	t.Helper()
	return fmt.Sprintf("principal-%d", principalCounter.Add(1))
}

// issueToken obtains a bearer token for a principal via the issuer endpoint.
func (app *testApp) issueToken(t *testing.T, principal string) string {
	t.Helper()

	body := fmt.Sprintf(`{"principal":%q}`, principal)
	req := httptest.NewRequest("POST", "/api/v1/auth/token", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", issuerKey)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("token issuance failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["token"].(string)
}

// mintAsset mints an asset for the token's principal and returns its id.
func (app *testApp) mintAsset(t *testing.T, token string) float64 {
	t.Helper()

	body := `{"name":"Linear Algebra Drills","description":"A structured practice set","content_uri":"ipfs://bafy/drills","attributes":{"level":"beginner"}}`
	rec := app.request("POST", "/api/v1/assets", body, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("mint failed: %d %s", rec.Code, rec.Body.String())
	}
	asset := parseJSON(t, rec)["asset"].(map[string]interface{})
	return asset["id"].(float64)
}

// deposit credits the token's principal with the given amount.
func (app *testApp) deposit(t *testing.T, token string, amount int64) {
	t.Helper()

	body := fmt.Sprintf(`{"amount":%d}`, amount)
	rec := app.request("POST", "/api/v1/ledger/deposit", body, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("deposit failed: %d %s", rec.Code, rec.Body.String())
	}
}

// balance reads the token's principal balance.
func (app *testApp) balance(t *testing.T, token string) float64 {
	t.Helper()

	rec := app.request("GET", "/api/v1/ledger/balance", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("balance query failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["balance"].(float64)
}

// errorCode extracts the error code from an error response.
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	errObj, ok := parseJSON(t, rec)["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected an error payload, got: %s", rec.Body.String())
	}
	return errObj["code"].(string)
}
