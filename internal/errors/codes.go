package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// Request error codes (REQUEST_*)
const (
	RequestMalformedBody    ErrorCode = "REQUEST_001"
	RequestRouteNotFound    ErrorCode = "REQUEST_002"
	RequestMethodNotAllowed ErrorCode = "REQUEST_003"
	RequestBodyTooLarge     ErrorCode = "REQUEST_004"
)

// Portfolio error codes (PORTFOLIO_*)
const (
	PortfolioInvalidAccount       ErrorCode = "PORTFOLIO_001"
	PortfolioDuplicateAccountID   ErrorCode = "PORTFOLIO_002"
	PortfolioTooManyAccounts      ErrorCode = "PORTFOLIO_003"
	PortfolioInvalidSortKey       ErrorCode = "PORTFOLIO_004"
	PortfolioInvalidSortDirection ErrorCode = "PORTFOLIO_005"
	PortfolioInvalidStrategy      ErrorCode = "PORTFOLIO_006"
)

// Transfer planner outcome codes (TRANSFER_*). These accompany a plan
// response rather than an error response.
const (
	TransferTargetNotFound ErrorCode = "TRANSFER_001"
	TransferNoRoom         ErrorCode = "TRANSFER_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_002"
	SystemUnexpectedError    ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",

	// Request errors
	RequestMalformedBody:    "Request body could not be parsed",
	RequestRouteNotFound:    "Resource not found",
	RequestMethodNotAllowed: "Method not allowed",
	RequestBodyTooLarge:     "Request body is too large",

	// Portfolio errors
	PortfolioInvalidAccount:       "One or more cards are invalid",
	PortfolioDuplicateAccountID:   "Card IDs must be unique within a snapshot",
	PortfolioTooManyAccounts:      "Snapshot contains too many cards",
	PortfolioInvalidSortKey:       "Unsupported sort key",
	PortfolioInvalidSortDirection: "Sort direction must be asc or desc",
	PortfolioInvalidStrategy:      "Payoff strategy must be avalanche or snowball",

	// Transfer planner outcomes
	TransferTargetNotFound: "Target 0% card not found",
	TransferNoRoom:         "No available room on the target card",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
