package domain

import "errors"

var (
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrMemberNotFound  = errors.New("member not found")
)

// QR payload errors. All recoverable: the operator is told and scanning
// continues.
var (
	ErrUnrecognizedFormat = errors.New("unrecognized QR payload format")
	ErrInvalidMemberID    = errors.New("invalid member id in QR payload")
	ErrMeetingMismatch    = errors.New("QR payload targets a different meeting")
)

// Capture errors.
var (
	ErrNotImage    = errors.New("uploaded file is not an image")
	ErrNoCodeFound = errors.New("no QR code found in image")
)

// Orchestrator state errors.
var (
	ErrScanInFlight   = errors.New("a scan is already being submitted")
	ErrMeetingNotLive = errors.New("live check-in is not active for this meeting")
	ErrMeetingExpired = errors.New("live check-in window has expired")
)

var (
	ErrUnknownPattern  = errors.New("unknown recurrence pattern")
	ErrUnknownCategory = errors.New("unknown event category")
)

var ErrUnauthenticated = errors.New("operator is not authenticated")

var (
	ErrValidation = errors.New("validation error")
)
