package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/hebrew-cv/cv-api/internal/models"
	"github.com/hebrew-cv/cv-api/internal/observability"
	"github.com/hebrew-cv/cv-api/internal/services"
	"github.com/hebrew-cv/cv-api/internal/utils"
)

// saveCVEnvelope is the wrapped save payload. Clients may also send a bare
// CV document as the request body; see decodeSaveRequest.
type saveCVEnvelope struct {
	CVData     *models.CVData `json:"cvData"`
	TemplateID string         `json:"templateId"`
}

// CVResponse merges a stored document with its template selection
type CVResponse struct {
	models.CVData
	TemplateID string `json:"templateId"`
}

// ListCVsResponse is the list endpoint payload
type ListCVsResponse struct {
	CVs []models.CVSummary `json:"cvs"`
}

// decodeSaveRequest accepts both save payload formats: an envelope with
// cvData and templateId fields, or the CV document itself as the whole body.
func decodeSaveRequest(body []byte) (models.CVData, string, error) {
	var envelope saveCVEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return models.CVData{}, "", err
	}
	if envelope.CVData != nil {
		return *envelope.CVData, envelope.TemplateID, nil
	}

	var data models.CVData
	if err := json.Unmarshal(body, &data); err != nil {
		return models.CVData{}, "", err
	}
	return data, "", nil
}

// SaveCV godoc
// @Summary שמירת קורות חיים
// @Description שומר מסמך קורות חיים חדש או מעדכן מסמך קיים לפי המזהה שבגוף הבקשה.
// @Tags cvs
// @Accept json
// @Produce json
// @Param request body saveCVEnvelope true "מסמך קורות החיים ובחירת תבנית"
// @Success 200 {object} SaveCVResponse "קורות החיים נשמרו בהצלחה"
// @Failure 400 {object} ErrorResponse "גוף בקשה שגוי או שדות חסרים"
// @Failure 500 {object} ErrorResponse "שגיאה בשמירת קורות החיים"
// @Router /v1/cvs [post]
func SaveCV(c *gin.Context) {
	startTime := time.Now()
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "SaveCV")
	defer span.End()

	logger := observability.Logger()
	span.SetAttributes(
		attribute.String("operation", "save_cv"),
		attribute.String("service", "cv"),
	)

	body, err := c.GetRawData()
	if err != nil {
		logger.Error("failed to read request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "גוף הבקשה אינו תקין"})
		return
	}

	data, templateID, err := decodeSaveRequest(body)
	if err != nil {
		logger.Error("failed to decode save request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "גוף הבקשה אינו תקין"})
		return
	}

	ctx, validationSpan := utils.TraceInputValidation(ctx, "personal_info", "personalInfo")
	if result := data.Validate(); !result.IsValid {
		message := result.First()
		utils.RecordErrorInSpan(validationSpan, errors.New(message), map[string]interface{}{
			"validation.field": result.Errors[0].Field,
		})
		validationSpan.End()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
		return
	}
	validationSpan.End()

	if services.CVServiceInstance == nil {
		logger.Error("CV service not initialized")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "שגיאה בשמירת קורות החיים"})
		return
	}

	record, err := services.CVServiceInstance.Save(ctx, data, templateID)
	if err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"operation": "save_cv"})
		logger.Error("failed to save CV", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "שגיאה בשמירת קורות החיים"})
		return
	}

	_, responseSpan := utils.TraceResponseSerialization(ctx, "success")
	c.JSON(http.StatusOK, SaveCVResponse{
		CVID:    record.ID,
		Message: "קורות החיים נשמרו בהצלחה",
	})
	responseSpan.End()

	logger.Debug("SaveCV completed",
		zap.String("cvId", record.ID),
		zap.String("templateId", record.TemplateID),
		zap.Duration("total_duration", time.Since(startTime)))
}

// GetCV godoc
// @Summary שליפת קורות חיים לפי מזהה
// @Description מחזיר את מסמך קורות החיים יחד עם התבנית שנבחרה עבורו.
// @Tags cvs
// @Produce json
// @Param cvId path string true "מזהה קורות החיים"
// @Success 200 {object} CVResponse "המסמך נמצא"
// @Failure 400 {object} ErrorResponse "מזהה קורות חיים נדרש"
// @Failure 404 {object} ErrorResponse "קורות חיים לא נמצאו"
// @Failure 500 {object} ErrorResponse "שגיאה בטעינת קורות החיים"
// @Router /v1/cvs/{cvId} [get]
func GetCV(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GetCV")
	defer span.End()

	cvID := c.Param("cvId")
	logger := observability.Logger().With(zap.String("cvId", cvID))
	span.SetAttributes(
		attribute.String("cv.id", cvID),
		attribute.String("operation", "get_cv"),
	)

	if cvID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "מזהה קורות חיים נדרש"})
		return
	}

	if services.CVServiceInstance == nil {
		logger.Error("CV service not initialized")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "שגיאה בטעינת קורות החיים"})
		return
	}

	record, err := services.CVServiceInstance.Get(ctx, cvID)
	if err != nil {
		if errors.Is(err, models.ErrCVNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "קורות חיים לא נמצאו"})
			return
		}
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"cv.id": cvID})
		logger.Error("failed to get CV", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "שגיאה בטעינת קורות החיים"})
		return
	}

	_, responseSpan := utils.TraceResponseSerialization(ctx, "success")
	c.JSON(http.StatusOK, CVResponse{
		CVData:     record.Data,
		TemplateID: record.TemplateID,
	})
	responseSpan.End()
}

// ListCVs godoc
// @Summary רשימת כל קורות החיים
// @Description מחזיר את כל המסמכים השמורים, ממוינים לפי תאריך עדכון מהחדש לישן.
// @Tags cvs
// @Produce json
// @Success 200 {object} ListCVsResponse "רשימת קורות החיים"
// @Failure 500 {object} ErrorResponse "שגיאה בטעינת רשימת קורות החיים"
// @Router /v1/cvs [get]
func ListCVs(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "ListCVs")
	defer span.End()

	logger := observability.Logger()
	span.SetAttributes(attribute.String("operation", "list_cvs"))

	if services.CVServiceInstance == nil {
		logger.Error("CV service not initialized")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "שגיאה בטעינת רשימת קורות החיים"})
		return
	}

	summaries, err := services.CVServiceInstance.List(ctx)
	if err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"operation": "list_cvs"})
		logger.Error("failed to list CVs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "שגיאה בטעינת רשימת קורות החיים"})
		return
	}

	_, responseSpan := utils.TraceResponseSerialization(ctx, "success")
	c.JSON(http.StatusOK, ListCVsResponse{CVs: summaries})
	responseSpan.End()
}

// DeleteCV godoc
// @Summary מחיקת קורות חיים
// @Description מוחק מסמך קורות חיים שמור לפי מזהה.
// @Tags cvs
// @Produce json
// @Param cvId path string true "מזהה קורות החיים"
// @Success 200 {object} DeleteCVResponse "קורות החיים נמחקו בהצלחה"
// @Failure 400 {object} ErrorResponse "מזהה קורות חיים נדרש"
// @Failure 404 {object} ErrorResponse "קורות חיים לא נמצאו"
// @Failure 500 {object} ErrorResponse "שגיאה במחיקת קורות החיים"
// @Router /v1/cvs/{cvId} [delete]
func DeleteCV(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "DeleteCV")
	defer span.End()

	cvID := c.Param("cvId")
	logger := observability.Logger().With(zap.String("cvId", cvID))
	span.SetAttributes(
		attribute.String("cv.id", cvID),
		attribute.String("operation", "delete_cv"),
	)

	if cvID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "מזהה קורות חיים נדרש"})
		return
	}

	if services.CVServiceInstance == nil {
		logger.Error("CV service not initialized")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "שגיאה במחיקת קורות החיים"})
		return
	}

	if err := services.CVServiceInstance.Delete(ctx, cvID); err != nil {
		if errors.Is(err, models.ErrCVNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "קורות חיים לא נמצאו"})
			return
		}
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"cv.id": cvID})
		logger.Error("failed to delete CV", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "שגיאה במחיקת קורות החיים"})
		return
	}

	logger.Info("CV deleted")
	c.JSON(http.StatusOK, DeleteCVResponse{Message: "קורות החיים נמחקו בהצלחה"})
}
