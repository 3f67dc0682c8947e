package controllers

import (
	"io"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"paymint-backend/config"
	"paymint-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestDB points the package-global handle at a throwaway sqlite file
// migrated with the same gorm.Config the server uses.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Service{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.InvoiceSequence{},
		&models.ReminderLog{},
	); err != nil {
		t.Fatalf("migration failed: %v", err)
	}

	config.DB = db
	config.C = &config.Config{
		JWTSecret:      "test-secret",
		CurrencyCode:   "usd",
		CurrencySymbol: "$",
	}
	return db
}

// createTestOwner inserts a user with hooks skipped; the bcrypt hash is
// irrelevant to these tests and too slow to compute per fixture.
func createTestOwner(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	u := &models.User{ID: uuid.New(), Name: "Owner", Email: email, Password: "x"}
	if err := db.Session(&gorm.Session{SkipHooks: true}).Create(u).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return u
}

func createTestClient(t *testing.T, db *gorm.DB, ownerID uuid.UUID, email string) *models.Client {
	t.Helper()

	cl := &models.Client{UserID: ownerID, Name: "Acme Corp", Email: email}
	if err := db.Create(cl).Error; err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return cl
}

func createTestInvoice(t *testing.T, db *gorm.DB, inv *models.Invoice) *models.Invoice {
	t.Helper()

	if inv.DueDate.IsZero() {
		inv.DueDate = time.Date(2024, 7, 20, 0, 0, 0, 0, time.UTC)
	}
	if inv.Status == "" {
		inv.Status = models.StatusUnpaid
	}
	if err := db.Create(inv).Error; err != nil {
		t.Fatalf("failed to create invoice: %v", err)
	}
	return inv
}

// invokeHandler drives a single gin handler the way the router would,
// with the authenticated owner already resolved into the context.
func invokeHandler(t *testing.T, handler gin.HandlerFunc, ownerID uuid.UUID, method, body string, params gin.Params) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	c.Request = httptest.NewRequest(method, "/", reader)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	c.Set("userId", ownerID.String())

	handler(c)
	return w
}
