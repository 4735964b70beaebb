package response

// Resp is the standard JSON envelope. Success payloads embed it and add their own fields.
type Resp struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}
