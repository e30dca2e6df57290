// Package handlers contains the Gin HTTP handlers for the CV API.
package handlers

// ErrorResponse is the error payload returned by all endpoints. User-facing
// messages are in Hebrew; Details carries raw upstream output when relevant.
type ErrorResponse struct {
	Error   string `json:"error" example:"קורות חיים לא נמצאו"`
	Details string `json:"details,omitempty"`
}

// SaveCVResponse confirms a successful save
type SaveCVResponse struct {
	CVID    string `json:"cvId" example:"cv_1756723400000_a1b2c3d4e"`
	Message string `json:"message" example:"קורות החיים נשמרו בהצלחה"`
}

// DeleteCVResponse confirms a successful delete
type DeleteCVResponse struct {
	Message string `json:"message" example:"קורות החיים נמחקו בהצלחה"`
}
