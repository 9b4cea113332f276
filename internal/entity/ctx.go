package entity

import (
	"context"
)

type ctxKey int

const (
	ctxKeyUser ctxKey = iota
)

func CtxWithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, ctxKeyUser, user)
}

// UserFromCtx returns user from context or ErrUnauthenticated if user is not found.
func UserFromCtx(ctx context.Context) (User, error) {
	user, ok := ctx.Value(ctxKeyUser).(User)
	if !ok {
		return user, ErrUnauthenticated
	}

	return user, nil
}
