package llm

import "context"

// Purpose labels ride the context so the event-logging decorator can
// record what a call was for without widening the Provider interface.

type ctxKey int

const purposeKey ctxKey = iota

// WithPurpose tags ctx with a purpose label such as "roadmap",
// "lesson" or "chat".
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom returns the purpose label on ctx, "unknown" when absent.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
