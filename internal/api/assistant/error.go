package assistant

import "AssistantGolang/pkg/response"

var (
	ErrEmptyCommand  = response.NewError(400, "please provide a command")
	ErrUserNotFound  = response.NewError(404, "user not found")
	ErrQuotaExceeded = response.NewError(429, "assistant is experiencing high demand")
	ErrUnexpected    = response.NewError(500, "unexpected error while dispatching command")
	ErrInvalidImage  = response.NewError(400, "invalid assistant image")
	ErrUploadFailed  = response.NewError(500, "failed to upload assistant image")
)
