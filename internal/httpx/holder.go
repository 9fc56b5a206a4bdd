package httpx

import "context"

type holderKey struct{}

// userHolder lets inner middleware report the authenticated user back to the
// access log, which only sees the outer request.
type userHolder struct {
	userID string
}

func contextWithHolder(ctx context.Context, h *userHolder) context.Context {
	return context.WithValue(ctx, holderKey{}, h)
}

func recordUser(ctx context.Context, userID string) {
	if h, ok := ctx.Value(holderKey{}).(*userHolder); ok {
		h.userID = userID
	}
}
