package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saveCV(t *testing.T, router http.Handler, body string) SaveCVResponse {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/cvs", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response SaveCVResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.CVID)
	return response
}

func TestSaveCVEnvelopeFormat(t *testing.T) {
	router := setupTestService(t)

	response := saveCV(t, router, `{
		"cvData": {
			"personalInfo": {"fullName": "דנה לוי", "email": "dana@example.com"}
		},
		"templateId": "modern"
	}`)
	assert.Equal(t, "קורות החיים נשמרו בהצלחה", response.Message)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/cvs/"+response.CVID, nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var cv CVResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cv))
	assert.Equal(t, "דנה לוי", cv.PersonalInfo.FullName)
	assert.Equal(t, "modern", cv.TemplateID)
	assert.NotNil(t, cv.Experience)
}

func TestSaveCVBareDocumentFormat(t *testing.T) {
	router := setupTestService(t)

	response := saveCV(t, router, `{
		"personalInfo": {"fullName": "דנה לוי", "email": "dana@example.com"}
	}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/cvs/"+response.CVID, nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var cv CVResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cv))
	assert.Equal(t, "classic", cv.TemplateID)
}

func TestSaveCVValidation(t *testing.T) {
	router := setupTestService(t)

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "name without email",
			body:    `{"personalInfo": {"fullName": "דנה לוי"}}`,
			message: "אימייל נדרש כאשר יש שם מלא",
		},
		{
			name:    "email without name",
			body:    `{"personalInfo": {"email": "dana@example.com"}}`,
			message: "שם מלא נדרש כאשר יש אימייל",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/v1/cvs", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.message, response.Error)

			// Nothing was stored
			list := httptest.NewRecorder()
			router.ServeHTTP(list, httptest.NewRequest(http.MethodGet, "/v1/cvs", nil))
			var listResponse ListCVsResponse
			require.NoError(t, json.Unmarshal(list.Body.Bytes(), &listResponse))
			assert.Empty(t, listResponse.CVs)
		})
	}
}

func TestSaveCVMalformedBody(t *testing.T) {
	router := setupTestService(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/cvs", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCVNotFound(t *testing.T) {
	router := setupTestService(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/cvs/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "קורות חיים לא נמצאו", response.Error)
}

func TestListCVs(t *testing.T) {
	router := setupTestService(t)

	saveCV(t, router, `{"personalInfo": {"fullName": "דנה לוי", "email": "dana@example.com"}}`)
	saveCV(t, router, `{"personalInfo": {}}`)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/cvs", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var response ListCVsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.CVs, 2)
	assert.Equal(t, "קורות חיים ללא שם", response.CVs[0].Title)
	assert.Equal(t, "דנה לוי", response.CVs[1].Title)
}

func TestDeleteCV(t *testing.T) {
	router := setupTestService(t)

	response := saveCV(t, router, `{"personalInfo": {}}`)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/cvs/"+response.CVID, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/cvs/"+response.CVID, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/cvs/"+response.CVID, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
