package handler

// Generic HTTP error messages for client responses.
// Handlers and tests both reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidDay            = "Invalid day parameter"

	// Service error messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgInvalidItemError    = "Item cannot be stocked"
	ErrMsgInvalidQualityError = "Legendary items must have quality 80"
	ErrMsgInvalidStockError   = "Stock cannot be updated"
	ErrMsgDayNotFoundError    = "No report is recorded for that day"
)

// Log messages
const (
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgRequestDecoded    = "Request decoded"
	LogMsgRequestInvalid    = "Request failed validation"
	LogMsgMissingQueryParam = "Missing query parameter"
	LogMsgServiceError      = "Service call failed"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
)

// Success messages
const (
	MsgItemAdded = "Item added successfully"
)
