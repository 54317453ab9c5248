package response

// ErrorResp is the JSON body written for every failed request.
type ErrorResp struct {
	Detail string `json:"detail"`
}

// MessageResp is the JSON body of informational endpoints.
type MessageResp struct {
	Message string `json:"message"`
}
