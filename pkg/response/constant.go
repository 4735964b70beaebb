package response

const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusHealthy = "healthy"

	DefaultErrorMessage = "Something went wrong"
	TooManyRequestsMsg  = "Too many requests, please slow down"
)
