package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/hebrew-cv/cv-api/internal/observability"
	"github.com/hebrew-cv/cv-api/internal/utils"
	"github.com/hebrew-cv/cv-api/internal/utils/httpclient"
)

// PDFServiceInstance is the global PDF service, wired up in main
var PDFServiceInstance *PDFService

// ExportHeader marks a render request as destined for PDF conversion. The
// render endpoint strips page chrome when it sees this header.
const ExportHeader = "X-Render-For-PDF"

// ErrMissingAPIKey is returned when no conversion API key is configured.
// Checked before any network call so a misconfigured deployment fails fast.
var ErrMissingAPIKey = errors.New("PDF conversion API key is not configured")

// FetchRenderError reports a failure to fetch the rendered HTML page
type FetchRenderError struct {
	URL        string
	StatusCode int
}

func (e *FetchRenderError) Error() string {
	return fmt.Sprintf("failed to fetch rendered CV from %s: status %d", e.URL, e.StatusCode)
}

// ConvertError reports a rejection from the conversion service
type ConvertError struct {
	StatusCode int
	Body       string
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("PDF conversion service returned status %d", e.StatusCode)
}

// convertRequest is the payload sent to the PDFShift conversion endpoint
type convertRequest struct {
	Source  string `json:"source"`
	Sandbox bool   `json:"sandbox"`
	Format  string `json:"format"`
}

// PDFService turns stored CVs into PDF documents. It fetches the server-side
// rendered page in export mode and forwards the HTML to an external
// HTML-to-PDF conversion service.
type PDFService struct {
	pool       *httpclient.Pool
	renderBase string
	apiURL     string
	apiKey     string
	sandbox    bool
}

// NewPDFService creates a PDF service. renderBase is the public base URL of
// this API, used to build the render endpoint address.
func NewPDFService(pool *httpclient.Pool, renderBase, apiURL, apiKey string, sandbox bool) *PDFService {
	return &PDFService{
		pool:       pool,
		renderBase: renderBase,
		apiURL:     apiURL,
		apiKey:     apiKey,
		sandbox:    sandbox,
	}
}

// Generate converts the CV with the given id to a PDF. The two stages run
// strictly in order: the conversion service is never contacted when the
// render fetch fails.
func (s *PDFService) Generate(ctx context.Context, cvID string) ([]byte, error) {
	logger := observability.Logger()
	start := time.Now()

	if s.apiKey == "" {
		observability.PDFConversions.WithLabelValues("precheck", "error").Inc()
		return nil, ErrMissingAPIKey
	}

	html, err := s.fetchRenderedPage(ctx, cvID)
	if err != nil {
		observability.PDFConversions.WithLabelValues("fetch", "error").Inc()
		return nil, err
	}

	pdf, err := s.convert(ctx, html)
	if err != nil {
		observability.PDFConversions.WithLabelValues("convert", "error").Inc()
		return nil, err
	}

	observability.PDFConversions.WithLabelValues("convert", "success").Inc()
	observability.PDFConversionDuration.Observe(time.Since(start).Seconds())

	logger.Info("PDF generated",
		zap.String("cvId", cvID),
		zap.Int("pdfBytes", len(pdf)),
		zap.Duration("duration", time.Since(start)))

	return pdf, nil
}

// fetchRenderedPage requests the export-mode render of a stored CV
func (s *PDFService) fetchRenderedPage(ctx context.Context, cvID string) (string, error) {
	url := fmt.Sprintf("%s/resume/render/%s", s.renderBase, cvID)

	ctx, span := utils.TraceExternalService(ctx, "render", "fetch_page")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build render request: %w", err)
	}
	req.Header.Set(ExportHeader, "true")
	req.Header.Set("Cache-Control", "no-cache")

	client := s.pool.Get()
	defer s.pool.Put(client)

	resp, err := client.Do(req)
	if err != nil {
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"render.url": url})
		return "", fmt.Errorf("failed to fetch rendered CV: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := &FetchRenderError{URL: url, StatusCode: resp.StatusCode}
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"render.url": url})
		return "", err
	}

	html, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read rendered CV: %w", err)
	}
	return string(html), nil
}

// convert sends HTML to the conversion service and returns the PDF bytes
func (s *PDFService) convert(ctx context.Context, html string) ([]byte, error) {
	ctx, span := utils.TraceExternalService(ctx, "pdfshift", "convert")
	defer span.End()

	payload, err := json.Marshal(convertRequest{
		Source:  html,
		Sandbox: s.sandbox,
		Format:  "A4",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode conversion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build conversion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", s.apiKey)

	client := s.pool.Get()
	defer s.pool.Put(client)

	resp, err := client.Do(req)
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		return nil, fmt.Errorf("failed to reach conversion service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read conversion response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		convErr := &ConvertError{StatusCode: resp.StatusCode, Body: string(body)}
		utils.RecordErrorInSpan(span, convErr, map[string]interface{}{
			"pdfshift.status": resp.StatusCode,
		})
		return nil, convErr
	}

	return body, nil
}
