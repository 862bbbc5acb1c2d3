package access

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taskdock/taskdock/internal/shared"
)

type staticGenerator struct {
	needs []Need
}

func (g staticGenerator) Needs(any) []Need {
	return g.needs
}

func TestAllowsORSemantics(t *testing.T) {
	policy := NewPolicy(map[string][]Generator{
		"publish": {
			staticGenerator{needs: []Need{RoleNeed("editor")}},
			staticGenerator{needs: []Need{RoleNeed("admin")}},
		},
	})

	holder := NewIdentity(7, RoleNeed("admin"))
	allowed, err := policy.Allows("publish", holder, nil)
	require.NoError(t, err)
	require.True(t, allowed, "one matching need out of the union must grant")

	outsider := NewIdentity(8, RoleNeed("viewer"))
	allowed, err = policy.Allows("publish", outsider, nil)
	require.NoError(t, err)
	require.False(t, allowed)
}

func TestAllowsOpenAction(t *testing.T) {
	policy := NewPolicy(map[string][]Generator{
		"search": {},
	})

	allowed, err := policy.Allows("search", Anonymous(), nil)
	require.NoError(t, err)
	require.True(t, allowed, "empty required set means no restriction")
}

func TestAllowsUnknownAction(t *testing.T) {
	policy := NewPolicy(map[string][]Generator{})

	_, err := policy.Allows("destroy", NewIdentity(1), nil)
	require.ErrorIs(t, err, ErrUnknownAction)
}

func TestValidate(t *testing.T) {
	policy := NewPolicy(map[string][]Generator{
		"create": {AuthenticatedUser{}},
		"search": {},
	})

	require.NoError(t, policy.Validate("create", "search"))
	require.ErrorIs(t, policy.Validate("create", "delete"), ErrUnknownAction)
}

func TestRequire(t *testing.T) {
	policy := NewPolicy(map[string][]Generator{
		"create": {AuthenticatedUser{}},
	})

	user := NewIdentity(3, UserNeed(3), RoleNeed("authenticated_user"))
	require.NoError(t, policy.Require("create", user, nil))

	err := policy.Require("create", Anonymous(), nil)
	require.ErrorIs(t, err, shared.ErrPermissionDenied)
	require.False(t, errors.Is(err, shared.ErrNotFound))
}

func TestGeneratorsEvaluatedPerCall(t *testing.T) {
	// The required-needs set depends on the target, so it is recomputed on
	// every call instead of cached.
	policy := NewPolicy(map[string][]Generator{
		"touch": {GeneratorFunc(func(target any) []Need {
			owner, _ := target.(int64)
			return []Need{UserNeed(owner)}
		})},
	})

	caller := NewIdentity(5, UserNeed(5))

	allowed, err := policy.Allows("touch", caller, int64(5))
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = policy.Allows("touch", caller, int64(6))
	require.NoError(t, err)
	require.False(t, allowed)
}

func TestNeedEquality(t *testing.T) {
	require.Equal(t, UserNeed(5), UserNeed(5))
	require.NotEqual(t, UserNeed(5), UserNeed(6))
	require.NotEqual(t, UserNeed(5), RoleNeed("5"))

	set := NewNeedSet(UserNeed(5), UserNeed(5), RoleNeed("admin"))
	require.Len(t, set, 2, "need sets hold no duplicates")
	require.True(t, set.Intersects(NewNeedSet(RoleNeed("admin"))))
	require.False(t, set.Intersects(NewNeedSet(RoleNeed("viewer"))))
	require.False(t, set.Intersects(NewNeedSet()))
}
