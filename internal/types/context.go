package types

import "context"

type ContextKey string

const (
	CtxUserID    ContextKey = "ctx_user_id"
	CtxRequestID ContextKey = "ctx_request_id"

	// DefaultUserID is used for postings not attributable to a logged-in
	// operator, e.g. scheduled imports.
	DefaultUserID = "system"
)

func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(CtxUserID).(string); ok && id != "" {
		return id
	}
	return DefaultUserID
}

func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(CtxRequestID).(string); ok {
		return id
	}
	return ""
}
