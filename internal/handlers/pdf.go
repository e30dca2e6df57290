package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/hebrew-cv/cv-api/internal/observability"
	"github.com/hebrew-cv/cv-api/internal/services"
	"github.com/hebrew-cv/cv-api/internal/utils"
)

// GeneratePDF godoc
// @Summary יצירת PDF מקורות חיים
// @Description מרנדר את המסמך במצב ייצוא, ממיר אותו ל-PDF דרך שירות ההמרה
// @Description החיצוני ומחזיר את הקובץ להורדה.
// @Tags pdf
// @Produce application/pdf
// @Param cvId path string true "מזהה קורות החיים"
// @Success 200 {file} binary "קובץ ה-PDF"
// @Failure 400 {object} ErrorResponse "מזהה קורות חיים נדרש"
// @Failure 500 {object} ErrorResponse "API key חסר או שגיאה כללית ביצירת PDF"
// @Failure 502 {object} ErrorResponse "שליפת העמוד המרונדר נכשלה"
// @Router /v1/cvs/{cvId}/pdf [post]
func GeneratePDF(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "GeneratePDF")
	defer span.End()

	cvID := c.Param("cvId")
	logger := observability.Logger().With(zap.String("cvId", cvID))
	span.SetAttributes(
		attribute.String("cv.id", cvID),
		attribute.String("operation", "generate_pdf"),
	)

	if cvID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "מזהה קורות חיים נדרש"})
		return
	}

	if services.PDFServiceInstance == nil {
		logger.Error("PDF service not initialized")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "שגיאה כללית ביצירת PDF"})
		return
	}

	pdf, err := services.PDFServiceInstance.Generate(ctx, cvID)
	if err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"cv.id": cvID})

		if errors.Is(err, services.ErrMissingAPIKey) {
			logger.Error("PDF conversion API key is not configured")
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "API key חסר"})
			return
		}

		var fetchErr *services.FetchRenderError
		if errors.As(err, &fetchErr) {
			logger.Error("failed to fetch rendered CV",
				zap.String("url", fetchErr.URL),
				zap.Int("status", fetchErr.StatusCode))
			c.JSON(http.StatusBadGateway, ErrorResponse{
				Error:   "שליפת העמוד המרונדר נכשלה",
				Details: fetchErr.Error(),
			})
			return
		}

		var convErr *services.ConvertError
		if errors.As(err, &convErr) {
			logger.Error("conversion service rejected the document",
				zap.Int("status", convErr.StatusCode))
			c.JSON(convErr.StatusCode, ErrorResponse{
				Error:   "PDFShift API error",
				Details: convErr.Body,
			})
			return
		}

		logger.Error("failed to generate PDF", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "שגיאה כללית ביצירת PDF",
			Details: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "cv_"+cvID+".pdf"))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
