package api_context

import "context"

type ctxKey string

const (
	AuthClientIDKey ctxKey = "authClientID"
	AuthRolesKey    ctxKey = "authRoles"
)

func AuthClientIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(AuthClientIDKey).(string)
	return id, ok
}

func AuthRolesFromContext(ctx context.Context) ([]string, bool) {
	roles, ok := ctx.Value(AuthRolesKey).([]string)
	return roles, ok
}
