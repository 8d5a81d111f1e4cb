package response

const (
	DateFormat = "2006-01-02"

	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	ValidationErrorCode      = 400
	UnauthorizedErrorCode    = 401
	TooManyRequestsErrorCode = 429
	InternalServerErrorCode  = 500
)
