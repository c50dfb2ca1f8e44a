package testutil

import (
	"context"

	"github.com/Iscgrou/repbill/internal/types"
)

func SetupContext() context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, types.CtxUserID, types.DefaultUserID)
	return ctx
}
