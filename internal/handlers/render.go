package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/hebrew-cv/cv-api/internal/models"
	"github.com/hebrew-cv/cv-api/internal/observability"
	"github.com/hebrew-cv/cv-api/internal/render"
	"github.com/hebrew-cv/cv-api/internal/services"
	"github.com/hebrew-cv/cv-api/internal/utils"
)

// RenderCV godoc
// @Summary רינדור קורות חיים כעמוד HTML
// @Description מרנדר מסמך שמור לעמוד HTML מלא בתבנית שנבחרה עבורו. כאשר הבקשה
// @Description נושאת את הכותרת X-Render-For-PDF מוסרים רכיבי הניווט של האתר.
// @Tags render
// @Produce html
// @Param cvId path string true "מזהה קורות החיים"
// @Param viewport query int false "רוחב החלון בפיקסלים לקביעת גדלי הטקסט"
// @Success 200 {string} string "עמוד HTML מלא"
// @Failure 404 {object} ErrorResponse "קורות חיים לא נמצאו"
// @Failure 500 {object} ErrorResponse "שגיאה ברינדור קורות החיים"
// @Router /resume/render/{cvId} [get]
func RenderCV(c *gin.Context) {
	ctx, span := otel.Tracer("").Start(c.Request.Context(), "RenderCV")
	defer span.End()

	cvID := c.Param("cvId")
	logger := observability.Logger().With(zap.String("cvId", cvID))

	exportMode := c.GetHeader(services.ExportHeader) == "true"
	tier := render.TierFromQuery(c.Query("viewport"))

	span.SetAttributes(
		attribute.String("cv.id", cvID),
		attribute.String("operation", "render_cv"),
		attribute.Bool("render.export_mode", exportMode),
		attribute.String("render.tier", string(tier)),
	)

	if services.CVServiceInstance == nil {
		logger.Error("CV service not initialized")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "שגיאה ברינדור קורות החיים"})
		return
	}

	record, err := services.CVServiceInstance.Get(ctx, cvID)
	if err != nil {
		if errors.Is(err, models.ErrCVNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "קורות חיים לא נמצאו"})
			return
		}
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"cv.id": cvID})
		logger.Error("failed to load CV for rendering", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "שגיאה ברינדור קורות החיים"})
		return
	}

	templateID := render.ResolveTemplateID(record.TemplateID)
	ctx, renderSpan := utils.TraceTemplateRender(ctx, templateID, exportMode)
	page, err := render.Page(record.Data, record.TemplateID, render.Options{
		Tier:       tier,
		ExportMode: exportMode,
	})
	if err != nil {
		utils.RecordErrorInSpan(renderSpan, err, map[string]interface{}{
			"template.id": templateID,
		})
		renderSpan.End()
		logger.Error("failed to render CV", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "שגיאה ברינדור קורות החיים"})
		return
	}
	renderSpan.End()

	observability.RenderedDocuments.WithLabelValues(templateID, strconv.FormatBool(exportMode)).Inc()

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}
