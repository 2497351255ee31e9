package httpx

import "context"

type ctxKey string

const (
	// CtxKeySubject holds the verified token subject (user ID string).
	CtxKeySubject ctxKey = "subject"
)

// SubjectFromContext returns the verified token subject, if any.
func SubjectFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(CtxKeySubject).(string)
	return v, ok && v != ""
}
