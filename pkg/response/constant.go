package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500

	DateFormat     = "2006-01-02"
	TimestampFormat = "2006-01-02T15:04:05.000000Z07:00"
)
