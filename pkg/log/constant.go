package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"
	ModeDebug       = "debug"

	EncodingJSON    = "json"
	EncodingConsole = "console"

	// RequestIDKey is the log field carrying the request ID.
	RequestIDKey = "request_id"
)
