// Package access implements identity claims and declarative permission
// policies: each action maps to generators that yield the needs satisfying
// it, and an identity is granted when its claims intersect that set.
package access

import "fmt"

// NeedKind discriminates claim tokens.
type NeedKind string

const (
	// NeedKindUser matches a specific user id.
	NeedKindUser NeedKind = "user"
	// NeedKindRole matches a named role.
	NeedKindRole NeedKind = "role"
)

// Need is a claim token compared by (kind, value) equality.
type Need struct {
	Kind  NeedKind
	Value string
}

// UserNeed returns the "is this specific user" claim.
func UserNeed(userID int64) Need {
	return Need{Kind: NeedKindUser, Value: fmt.Sprintf("%d", userID)}
}

// RoleNeed returns the "has this named role" claim.
func RoleNeed(role string) Need {
	return Need{Kind: NeedKindRole, Value: role}
}

// NeedSet is a duplicate-free collection of needs.
type NeedSet map[Need]struct{}

// NewNeedSet builds a set from the given needs.
func NewNeedSet(needs ...Need) NeedSet {
	set := make(NeedSet, len(needs))
	for _, n := range needs {
		set[n] = struct{}{}
	}
	return set
}

// Add inserts a need into the set.
func (s NeedSet) Add(n Need) {
	s[n] = struct{}{}
}

// Contains reports membership.
func (s NeedSet) Contains(n Need) bool {
	_, ok := s[n]
	return ok
}

// Intersects reports whether the two sets share at least one need.
func (s NeedSet) Intersects(other NeedSet) bool {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for n := range small {
		if large.Contains(n) {
			return true
		}
	}
	return false
}
