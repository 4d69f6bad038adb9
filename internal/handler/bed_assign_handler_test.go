package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-bed-backend/internal/models"
	"hospital-bed-backend/internal/repository"
	"hospital-bed-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
}

// stubAuth stands in for the JWT middleware in tests.
func stubAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", uint(1))
		c.Set("role", "admin")
		c.Next()
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.Patient{},
		&models.BedType{},
		&models.Bed{},
		&models.BedAssign{},
		&models.AuditLog{},
	))

	auditRepo := repository.NewAuditRepo(db)
	bedRepo := repository.NewBedRepo(db)
	bedTypeRepo := repository.NewBedTypeRepo(db)
	assignRepo := repository.NewBedAssignRepo(db)
	patientRepo := repository.NewPatientRepo(db)

	bedService := service.NewBedService(bedRepo, bedTypeRepo, assignRepo, auditRepo)
	assignService := service.NewBedAssignService(assignRepo, bedRepo, patientRepo, auditRepo)
	availabilityService := service.NewAvailabilityService(bedRepo, assignRepo)

	bedHandler := NewBedHandler(bedService, availabilityService)
	assignHandler := NewBedAssignHandler(assignService)

	r := gin.New()
	api := r.Group("/api")
	api.Use(stubAuth())
	{
		api.GET("/beds/auto-select", bedHandler.AutoSelectBed)
		api.POST("/beds", bedHandler.CreateBed)
		api.GET("/bed-assigns", assignHandler.ListAssignments)
		api.POST("/bed-assigns", assignHandler.CreateAssignment)
		api.PATCH("/bed-assigns/:id/status", assignHandler.SetStatus)
	}

	return &testEnv{router: r, db: db}
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) seed(t *testing.T) (patientID, bedTypeID, bed1ID uint) {
	t.Helper()
	bedType := &models.BedType{Name: "General"}
	require.NoError(t, e.db.Create(bedType).Error)
	bed := &models.Bed{Name: "B1", BedTypeID: bedType.ID, Charge: 100}
	require.NoError(t, e.db.Create(bed).Error)
	patient := &models.Patient{Name: "Alice", IPDNo: "IPD-001"}
	require.NoError(t, e.db.Create(patient).Error)
	return patient.ID, bedType.ID, bed.ID
}

func TestAutoSelectBedEndpoint(t *testing.T) {
	env := newTestEnv(t)
	_, _, bedID := env.seed(t)

	w := env.request(t, http.MethodGet, "/api/beds/auto-select", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Bed     *models.Bed `json:"bed"`
			Warning string      `json:"warning"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Data.Bed)
	assert.Equal(t, bedID, resp.Data.Bed.ID)
	assert.Empty(t, resp.Data.Warning)
}

func TestAutoSelectBedEndpoint_NoFreeBeds(t *testing.T) {
	env := newTestEnv(t)
	patientID, _, bedID := env.seed(t)

	w := env.request(t, http.MethodPost, "/api/bed-assigns", gin.H{
		"patient_id":  patientID,
		"ipd_no":      "IPD-001",
		"bed_id":      bedID,
		"assign_date": "2024-03-01",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodGet, "/api/beds/auto-select", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Bed     *models.Bed `json:"bed"`
			Warning string      `json:"warning"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Data.Bed)
	assert.Contains(t, resp.Data.Warning, "No available beds")
}

func TestCreateAssignmentEndpoint_Validation(t *testing.T) {
	env := newTestEnv(t)
	patientID, _, _ := env.seed(t)

	w := env.request(t, http.MethodPost, "/api/bed-assigns", gin.H{
		"patient_id":  patientID,
		"ipd_no":      "IPD-001",
		"assign_date": "2024-03-01",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bed is required")
}

func TestCreateAssignmentEndpoint_DuplicateConflict(t *testing.T) {
	env := newTestEnv(t)
	patientID, _, bedID := env.seed(t)

	payload := gin.H{
		"patient_id":  patientID,
		"ipd_no":      "IPD-001",
		"bed_id":      bedID,
		"assign_date": "2024-03-01",
	}

	w := env.request(t, http.MethodPost, "/api/bed-assigns", payload)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.request(t, http.MethodPost, "/api/bed-assigns", payload)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSetStatusEndpoint(t *testing.T) {
	env := newTestEnv(t)
	patientID, _, bedID := env.seed(t)

	w := env.request(t, http.MethodPost, "/api/bed-assigns", gin.H{
		"patient_id":  patientID,
		"ipd_no":      "IPD-001",
		"bed_id":      bedID,
		"assign_date": "2024-03-01",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var created struct {
		Data struct {
			Assignment models.BedAssign `json:"assignment"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created.Data.Assignment.ID

	w = env.request(t, http.MethodPatch, fmt.Sprintf("/api/bed-assigns/%d/status", id), gin.H{"is_active": false})
	require.Equal(t, http.StatusOK, w.Code)

	var toggled struct {
		Data struct {
			Assignment models.BedAssign `json:"assignment"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &toggled))
	assert.False(t, toggled.Data.Assignment.IsActive)

	// Unknown id maps to 404.
	w = env.request(t, http.MethodPatch, "/api/bed-assigns/999/status", gin.H{"is_active": true})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
