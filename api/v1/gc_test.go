package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/firetm-simple/database"
	"github.com/firetm-simple/models"
	"github.com/firetm-simple/services"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(database.Models()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.DB = db

	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"))
	return router
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func seedPinnedProject(t *testing.T) (models.Project, string) {
	t.Helper()
	rate := 95.0
	project := models.Project{
		Name:        "Harbor Terminal Standpipe",
		BillingType: models.BillingTypeTM,
		TMBillRate:  &rate,
		Status:      models.ProjectStatusActive,
	}
	if err := database.DB.Create(&project).Error; err != nil {
		t.Fatalf("create project: %v", err)
	}

	issued, err := services.NewGcAccessService().IssuePin(project.ID)
	if err != nil {
		t.Fatalf("issue pin: %v", err)
	}
	return project, issued.Pin
}

func TestValidatePinEndpoint(t *testing.T) {
	router := setupTestRouter(t)
	project, pin := seedPinnedProject(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/gc/validate-pin", strings.NewReader(`{"pin":"`+pin+`"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}

	var body struct {
		Status string `json:"status"`
		Data   struct {
			Success   bool   `json:"success"`
			ProjectID string `json:"projectId"`
			NewPin    string `json:"newPin"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Data.Success || body.Data.ProjectID != project.ID {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
	if len(body.Data.NewPin) != 4 {
		t.Fatalf("rotated pin %q is not 4 digits", body.Data.NewPin)
	}
}

func TestValidatePinEndpointUniformRejection(t *testing.T) {
	router := setupTestRouter(t)
	seedPinnedProject(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/gc/validate-pin", strings.NewReader(`{"pin":"0000"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), models.ErrInvalidPin.Error()) {
		t.Fatalf("body %q must carry only the generic rejection", rr.Body.String())
	}
}

// The GC dashboard payload must never carry a dollar figure, whatever the
// underlying records hold.
func TestDashboardEndpointRedactsFinancials(t *testing.T) {
	router := setupTestRouter(t)
	project, _ := seedPinnedProject(t)

	installer := models.Installer{Name: "D. Chen", CostRate: 65, Active: true}
	if err := database.DB.Create(&installer).Error; err != nil {
		t.Fatalf("create installer: %v", err)
	}
	timeLog := models.TimeLog{
		Date:        mustDate(t, "2025-06-02"),
		InstallerID: installer.ID,
		ProjectID:   project.ID,
		Hours:       8,
	}
	if err := database.DB.Create(&timeLog).Error; err != nil {
		t.Fatalf("create time log: %v", err)
	}
	material := models.Material{
		ProjectID:     project.ID,
		Description:   "CPVC pipe",
		Quantity:      40,
		Total:         1500,
		MarkupPercent: 20,
	}
	if err := database.DB.Create(&material).Error; err != nil {
		t.Fatalf("create material: %v", err)
	}

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/gc/projects/"+project.ID+"/dashboard", nil)
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}

	financial := regexp.MustCompile(`(?i)"[^"]*(cost|rate|bill|amount|revenue|profit|margin)[^"]*"\s*:`)
	if match := financial.FindString(rr.Body.String()); match != "" {
		t.Fatalf("dashboard leaked financial field %q in %s", match, rr.Body.String())
	}

	var body struct {
		Data struct {
			TotalHours   float64 `json:"totalHours"`
			TimeLogCount int     `json:"timeLogCount"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Data.TotalHours != 8 || body.Data.TimeLogCount != 1 {
		t.Fatalf("unexpected aggregates: %s", rr.Body.String())
	}
}

func TestOfficeRoutesRequireAuth(t *testing.T) {
	router := setupTestRouter(t)
	project, _ := seedPinnedProject(t)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/projects/"+project.ID+"/analytics", nil)
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 without a token", rr.Code)
	}
}
