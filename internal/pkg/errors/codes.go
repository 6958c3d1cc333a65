package errors

import "net/http"

// Code represents an error code with HTTP status and message
type Code struct {
	Code    int    // Business error code
	Status  int    // HTTP status code
	Message string // Error message
}

// Error codes for different modules
const (
	// Success
	Success = 0

	// Common errors (1000-1999)
	ErrInternalServer  = 1000
	ErrInvalidParams   = 1001
	ErrNotFound        = 1002
	ErrUnauthorized    = 1003
	ErrForbidden       = 1004
	ErrConflict        = 1005
	ErrTooManyRequests = 1006
	ErrBadRequest      = 1007
	ErrServiceUnavail  = 1008

	// Credential errors (2000-2999)
	ErrCredentialNotFound     = 2000
	ErrCredentialInvalidInput = 2001

	// Content tool errors (3000-3999)
	ErrToolNotFound         = 3000
	ErrToolInvalidInput     = 3001
	ErrToolInvalidDetection = 3002
	ErrToolRenderFailed     = 3003

	// Export errors (4000-4999)
	ErrExportDisabled     = 4000
	ErrExportInvalidInput = 4001
	ErrExportFailed       = 4002

	// Generation errors (6000-6999)，与补全适配器的错误分类一一对应
	ErrGenMissingCredential   = 6000
	ErrGenInvalidCredential   = 6001
	ErrGenInsufficientBalance = 6002
	ErrGenRateLimited         = 6003
	ErrGenRemote              = 6004
	ErrGenEmptyResponse       = 6005
	ErrGenNetwork             = 6006
)

// codeMap maps error codes to their details
var codeMap = map[int]Code{
	Success: {Success, http.StatusOK, "Success"},

	// Common errors
	ErrInternalServer:  {ErrInternalServer, http.StatusInternalServerError, "Internal server error"},
	ErrInvalidParams:   {ErrInvalidParams, http.StatusBadRequest, "Invalid parameters"},
	ErrNotFound:        {ErrNotFound, http.StatusNotFound, "Resource not found"},
	ErrUnauthorized:    {ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
	ErrForbidden:       {ErrForbidden, http.StatusForbidden, "Forbidden"},
	ErrConflict:        {ErrConflict, http.StatusConflict, "Resource conflict"},
	ErrTooManyRequests: {ErrTooManyRequests, http.StatusTooManyRequests, "Too many requests"},
	ErrBadRequest:      {ErrBadRequest, http.StatusBadRequest, "Bad request"},
	ErrServiceUnavail:  {ErrServiceUnavail, http.StatusServiceUnavailable, "Service unavailable"},

	// Credential errors
	ErrCredentialNotFound:     {ErrCredentialNotFound, http.StatusNotFound, "API key not configured"},
	ErrCredentialInvalidInput: {ErrCredentialInvalidInput, http.StatusBadRequest, "Invalid API key input"},

	// Content tool errors
	ErrToolNotFound:         {ErrToolNotFound, http.StatusNotFound, "Tool not found"},
	ErrToolInvalidInput:     {ErrToolInvalidInput, http.StatusBadRequest, "Invalid tool input"},
	ErrToolInvalidDetection: {ErrToolInvalidDetection, http.StatusBadGateway, "Invalid response format"},
	ErrToolRenderFailed:     {ErrToolRenderFailed, http.StatusInternalServerError, "Failed to render output"},

	// Export errors
	ErrExportDisabled:     {ErrExportDisabled, http.StatusNotFound, "Export storage is not configured"},
	ErrExportInvalidInput: {ErrExportInvalidInput, http.StatusBadRequest, "Invalid export input"},
	ErrExportFailed:       {ErrExportFailed, http.StatusInternalServerError, "Export failed"},

	// Generation errors
	ErrGenMissingCredential:   {ErrGenMissingCredential, http.StatusBadRequest, "API key is required"},
	ErrGenInvalidCredential:   {ErrGenInvalidCredential, http.StatusUnauthorized, "Invalid API key"},
	ErrGenInsufficientBalance: {ErrGenInsufficientBalance, http.StatusPaymentRequired, "Insufficient credits"},
	ErrGenRateLimited:         {ErrGenRateLimited, http.StatusTooManyRequests, "Rate limit exceeded"},
	ErrGenRemote:              {ErrGenRemote, http.StatusBadGateway, "Remote service error"},
	ErrGenEmptyResponse:       {ErrGenEmptyResponse, http.StatusBadGateway, "No response generated"},
	ErrGenNetwork:             {ErrGenNetwork, http.StatusServiceUnavailable, "Failed to reach generation service"},
}

// GetCode returns the Code for a given error code
func GetCode(code int) Code {
	if c, ok := codeMap[code]; ok {
		return c
	}
	return codeMap[ErrInternalServer]
}

// GetHTTPStatus returns HTTP status for a given error code
func GetHTTPStatus(code int) int {
	return GetCode(code).Status
}

// GetMessage returns the message for a given error code
func GetMessage(code int) string {
	return GetCode(code).Message
}
