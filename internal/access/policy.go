package access

import (
	"errors"
	"fmt"

	"github.com/taskdock/taskdock/internal/shared"
)

// ErrUnknownAction indicates an action name with no registered generators.
// This is a configuration error, not a deny: policies are wired at startup
// and validated against the actions the service dispatches.
var ErrUnknownAction = errors.New("access: unknown action")

// Generator yields the needs that satisfy an action, optionally derived from
// the target resource. Implementations must be pure.
type Generator interface {
	Needs(target any) []Need
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(target any) []Need

// Needs invokes the function.
func (f GeneratorFunc) Needs(target any) []Need {
	return f(target)
}

// AuthenticatedUser grants any caller holding the authenticated role.
type AuthenticatedUser struct{}

// Needs ignores the target.
func (AuthenticatedUser) Needs(any) []Need {
	return []Need{RoleNeed("authenticated_user")}
}

// Policy maps action names to ordered generator lists. Read-only after
// construction; safe for concurrent use.
type Policy struct {
	actions map[string][]Generator
}

// NewPolicy builds a policy from the given action table. An action registered
// with an empty generator list is open: it grants every identity.
func NewPolicy(actions map[string][]Generator) *Policy {
	table := make(map[string][]Generator, len(actions))
	for action, generators := range actions {
		table[action] = append([]Generator(nil), generators...)
	}
	return &Policy{actions: table}
}

// Validate checks that every required action has an entry in the table. Call
// it at wiring time so a missing action fails startup instead of a request.
func (p *Policy) Validate(required ...string) error {
	for _, action := range required {
		if _, ok := p.actions[action]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownAction, action)
		}
	}
	return nil
}

// Allows reports whether the identity's claims intersect the needs required
// for the action. Generators are evaluated fresh per call with the given
// target; their results are unioned, and an empty union means the action is
// unrestricted.
func (p *Policy) Allows(action string, identity Identity, target any) (bool, error) {
	generators, ok := p.actions[action]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	required := NewNeedSet()
	for _, g := range generators {
		for _, need := range g.Needs(target) {
			required.Add(need)
		}
	}
	if len(required) == 0 {
		return true, nil
	}
	return identity.Provides().Intersects(required), nil
}

// Require returns shared.ErrPermissionDenied when Allows would be false.
func (p *Policy) Require(action string, identity Identity, target any) error {
	allowed, err := p.Allows(action, identity, target)
	if err != nil {
		return err
	}
	if !allowed {
		return fmt.Errorf("%w: action %q", shared.ErrPermissionDenied, action)
	}
	return nil
}
