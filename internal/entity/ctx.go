package entity

import "context"

type (
	CtxKeyIP           struct{}
	CtxKeyUser         struct{}
	CtxKeyOrganization struct{}
)

func UserFromContext(ctx context.Context) (User, error) {
	user, ok := ctx.Value(CtxKeyUser{}).(User)
	if !ok {
		return User{}, ErrUnauthorized
	}

	return user, nil
}

func SetUserToContext(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, CtxKeyUser{}, user)
}

func SetIPToContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, CtxKeyIP{}, ip)
}

func IPFromContext(ctx context.Context) string {
	ip, _ := ctx.Value(CtxKeyIP{}).(string)
	return ip
}

// SetOrganizationToContext scopes a request that carries no user, such as a
// call from the automation bridge.
func SetOrganizationToContext(ctx context.Context, orgID string) context.Context {
	return context.WithValue(ctx, CtxKeyOrganization{}, orgID)
}

// OrganizationFromContext prefers the organization of the signed-in user.
func OrganizationFromContext(ctx context.Context) (string, error) {
	if user, ok := ctx.Value(CtxKeyUser{}).(User); ok {
		return user.OrganizationID, nil
	}

	if orgID, ok := ctx.Value(CtxKeyOrganization{}).(string); ok && orgID != "" {
		return orgID, nil
	}

	return "", ErrUnauthorized
}
