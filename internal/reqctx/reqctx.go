// internal/reqctx/reqctx.go
package reqctx

import "context"

type key int

const (
	keyRequestID key = iota
	keySubject
	keyRole
)

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

func GetRequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyRequestID).(string)
	return v, ok
}

// WithSubject stores the authenticated admin's token subject.
func WithSubject(ctx context.Context, sub string) context.Context {
	return context.WithValue(ctx, keySubject, sub)
}

func GetSubject(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keySubject).(string)
	return v, ok
}

func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, keyRole, role)
}

func GetRole(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyRole).(string)
	return v, ok
}
