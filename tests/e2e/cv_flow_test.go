package e2e_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hebrew-cv/cv-api/internal/handlers"
	"github.com/hebrew-cv/cv-api/internal/logging"
	"github.com/hebrew-cv/cv-api/internal/repository"
	"github.com/hebrew-cv/cv-api/internal/services"
	"github.com/hebrew-cv/cv-api/tests"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := logging.InitLogger(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newRouter() *gin.Engine {
	router := gin.New()
	router.GET("/resume/render/:cvId", handlers.RenderCV)

	v1 := router.Group("/v1")
	v1.POST("/cvs", handlers.SaveCV)
	v1.GET("/cvs", handlers.ListCVs)
	v1.GET("/cvs/:cvId", handlers.GetCV)
	v1.DELETE("/cvs/:cvId", handlers.DeleteCV)
	v1.POST("/cvs/:cvId/pdf", handlers.GeneratePDF)
	return router
}

// TestCVLifecycle runs the full save, fetch, render, list and delete flow
// against containerized MongoDB and Redis.
func TestCVLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	containers := tests.SetupTestContainers(t)
	defer containers.Cleanup()

	repo := repository.NewMongoCVRepository(containers.MongoDB.Collection("cvs"))
	services.CVServiceInstance = services.NewCVService(repo, containers.Redis, time.Minute)
	defer func() { services.CVServiceInstance = nil }()

	router := newRouter()

	// Save
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/cvs", strings.NewReader(`{
		"cvData": {
			"personalInfo": {"fullName": "דנה לוי", "email": "dana@example.com"},
			"experience": [{
				"jobTitle": "מנהלת פרויקטים",
				"company": "חברת הייטק",
				"location": "תל אביב",
				"startDate": "2020-01",
				"current": true,
				"description": "ניהול צוות פיתוח."
			}]
		},
		"templateId": "modern"
	}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var saved handlers.SaveCVResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	require.NotEmpty(t, saved.CVID)

	// Fetch: first read comes from Mongo, second from the cache; both must
	// return the same merged document
	for i := 0; i < 2; i++ {
		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/cvs/"+saved.CVID, nil))
		require.Equal(t, http.StatusOK, w.Code)

		var cv handlers.CVResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cv))
		assert.Equal(t, "דנה לוי", cv.PersonalInfo.FullName)
		assert.Equal(t, "modern", cv.TemplateID)
		require.Len(t, cv.Experience, 1)
		assert.NotEmpty(t, cv.Experience[0].ID)
	}

	// Render in export mode
	w = httptest.NewRecorder()
	renderReq := httptest.NewRequest(http.MethodGet, "/resume/render/"+saved.CVID, nil)
	renderReq.Header.Set(services.ExportHeader, "true")
	router.ServeHTTP(w, renderReq)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ינואר 2020 - נוכחי")
	assert.NotContains(t, w.Body.String(), "לוח הבקרה")

	// List
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/cvs", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var list handlers.ListCVsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.CVs, 1)
	assert.Equal(t, saved.CVID, list.CVs[0].CVID)
	assert.Equal(t, "דנה לוי", list.CVs[0].Title)

	// Delete, then verify the record and its cache entry are gone
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/cvs/"+saved.CVID, nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/cvs/"+saved.CVID, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestCVUpdateFlow verifies that updates keep identity and template choice
func TestCVUpdateFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	containers := tests.SetupTestContainers(t)
	defer containers.Cleanup()

	repo := repository.NewMongoCVRepository(containers.MongoDB.Collection("cvs"))
	services.CVServiceInstance = services.NewCVService(repo, containers.Redis, time.Minute)
	defer func() { services.CVServiceInstance = nil }()

	router := newRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/cvs", strings.NewReader(`{
		"cvData": {"personalInfo": {"fullName": "דנה לוי", "email": "dana@example.com"}},
		"templateId": "modern"
	}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var saved handlers.SaveCVResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))

	// Update the document without naming a template
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/v1/cvs", strings.NewReader(`{
		"cvData": {
			"id": "`+saved.CVID+`",
			"personalInfo": {"fullName": "דנה לוי-כהן", "email": "dana@example.com"}
		}
	}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var updated handlers.SaveCVResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, saved.CVID, updated.CVID)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/cvs/"+saved.CVID, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var cv handlers.CVResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cv))
	assert.Equal(t, "דנה לוי-כהן", cv.PersonalInfo.FullName)
	assert.Equal(t, "modern", cv.TemplateID)
}
