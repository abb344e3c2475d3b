package response

// APIResponseCode is the application-level code carried in every response envelope.
type APIResponseCode int

const (
	APIResponseCodeOK                 APIResponseCode = 0
	APIResponseCodeBadRequest         APIResponseCode = 40000
	APIResponseCodeInvalidTransition  APIResponseCode = 40001
	APIResponseCodeNotFound           APIResponseCode = 40004
	APIResponseCodeConflict           APIResponseCode = 40009
	APIResponseCodeUnauthorized       APIResponseCode = 40100
	APIResponseCodeForbidden          APIResponseCode = 40300
	APIResponseCodeTooManyRequests    APIResponseCode = 42900
	APIResponseCodeError              APIResponseCode = 50000
	APIResponseCodeMembershipOverflow APIResponseCode = 50001
)

var codeToMsg = map[APIResponseCode]string{
	APIResponseCodeOK:                 "ok",
	APIResponseCodeBadRequest:         "bad request",
	APIResponseCodeInvalidTransition:  "invalid transition",
	APIResponseCodeNotFound:           "not found",
	APIResponseCodeConflict:           "concurrency conflict",
	APIResponseCodeUnauthorized:       "unauthorized",
	APIResponseCodeForbidden:          "forbidden",
	APIResponseCodeTooManyRequests:    "too many requests",
	APIResponseCodeError:              "unexpected error",
	APIResponseCodeMembershipOverflow: "membership number overflow",
}

// APIResponse is the generic response envelope used by HTTP APIs.
// Use OKT / ErrorT helpers to construct instances.
type APIResponse[T any] struct {
	Code    APIResponseCode `json:"code"`
	Message string          `json:"message"`
	Data    T               `json:"data"`
}

// OKT returns a successful response with data.
func OKT[T any](data T) *APIResponse[T] {
	return &APIResponse[T]{Code: APIResponseCodeOK, Message: codeToMsg[APIResponseCodeOK], Data: data}
}

// ErrorT returns an error response with message and optional data.
func ErrorT[T any](code APIResponseCode, data T) *APIResponse[T] {
	return &APIResponse[T]{Code: code, Message: codeToMsg[code], Data: data}
}
