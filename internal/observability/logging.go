package observability

import (
	"strings"

	"github.com/hebrew-cv/cv-api/internal/logging"
	"go.uber.org/zap"
)

// Logger returns the global logger instance
func Logger() *zap.Logger {
	return logging.Logger
}

// MaskEmail masks an email address for logging
func MaskEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 1 {
		return "****"
	}
	return email[:1] + "****" + email[at:]
}
