package middleware

import "context"

type ctxKey struct{}

// skipGuardsKey ставится админам, чтобы пропускать проверки ролей.
var skipGuardsKey ctxKey

func WithSkipGuards(ctx context.Context) context.Context {
	return context.WithValue(ctx, skipGuardsKey, true)
}

func SkipGuards(ctx context.Context) bool {
	b, _ := ctx.Value(skipGuardsKey).(bool)
	return b
}
