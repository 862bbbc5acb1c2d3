package access

import "context"

// AnonymousID marks an identity with no resolved user.
const AnonymousID int64 = 0

// Identity is a resolved caller and the claims it provides. Immutable after
// construction.
type Identity struct {
	id       int64
	provides NeedSet
}

// NewIdentity builds an identity for the given user id carrying the given
// needs.
func NewIdentity(id int64, needs ...Need) Identity {
	return Identity{id: id, provides: NewNeedSet(needs...)}
}

// Anonymous returns the identity of an unauthenticated caller: no id, no
// claims.
func Anonymous() Identity {
	return Identity{id: AnonymousID, provides: NewNeedSet()}
}

// ID returns the resolved user id, or AnonymousID.
func (i Identity) ID() int64 {
	return i.id
}

// Authenticated reports whether the identity has a resolved user.
func (i Identity) Authenticated() bool {
	return i.id != AnonymousID
}

// Provides returns the claim set. Callers must not mutate it.
func (i Identity) Provides() NeedSet {
	return i.provides
}

type identityContextKey struct{}

// ContextWithIdentity stores the identity in the context.
func ContextWithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, identity)
}

// IdentityFromContext extracts the identity, defaulting to Anonymous.
func IdentityFromContext(ctx context.Context) Identity {
	if identity, ok := ctx.Value(identityContextKey{}).(Identity); ok {
		return identity
	}
	return Anonymous()
}
