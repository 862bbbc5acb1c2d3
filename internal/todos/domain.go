// Package todos implements the todo collection: domain model, storage ports,
// the service orchestrating authorization and persistence, and the HTTP
// transport adapter.
package todos

import "github.com/taskdock/taskdock/internal/access"

// Item is a stored todo entry. The id is caller-assigned and unique; the
// owner is fixed at creation and never changes.
type Item struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Priority int    `json:"priority"`
	OwnerID  int64  `json:"owner_id"`
}

// Action names dispatched by the service. The policy table must cover all of
// them; Policy.Validate is called at wiring time.
const (
	ActionCreate = "create"
	ActionRead   = "read"
	ActionSearch = "search"
)

// Owner grants the user who owns the target item.
type Owner struct{}

// Needs yields the owner's user need, or nothing when no item is in scope.
func (Owner) Needs(target any) []access.Need {
	item, ok := target.(Item)
	if !ok {
		return nil
	}
	return []access.Need{access.UserNeed(item.OwnerID)}
}

// DefaultPolicy mirrors the shipped permission table: creating requires an
// authenticated user, reading requires ownership, searching is open.
func DefaultPolicy() *access.Policy {
	return access.NewPolicy(map[string][]access.Generator{
		ActionCreate: {access.AuthenticatedUser{}},
		ActionRead:   {Owner{}},
		ActionSearch: {},
	})
}
