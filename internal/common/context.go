// Description: This file contains the context package which is used to set and retrieve data from the context.
package common

import (
	"context"

	"github.com/collectorlists/collectorsrv/pkg/types"
)

// ctxUserIdKeyType represents the key type for the authenticated user ID in the context.
type ctxUserIdKeyType string

const ctxUserIdKey ctxUserIdKeyType = "CollectorUserId"

// SetUserIdInContext sets the authenticated user ID in the provided context.
func SetUserIdInContext(ctx context.Context, userId types.UserId) context.Context {
	return context.WithValue(ctx, ctxUserIdKey, userId)
}

// UserIdFromContext retrieves the authenticated user ID from the provided context.
// Returns the nil UserId if no user is set.
func UserIdFromContext(ctx context.Context) types.UserId {
	if userId, ok := ctx.Value(ctxUserIdKey).(types.UserId); ok {
		return userId
	}
	return types.UserId{}
}
