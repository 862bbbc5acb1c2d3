package todos

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/taskdock/taskdock/internal/access"
	"github.com/taskdock/taskdock/internal/links"
	"github.com/taskdock/taskdock/internal/shared"
)

const defaultPriority = 3

// CreateInput is the untrusted create payload. Pointers distinguish missing
// fields from zero values; priority defaults when absent.
type CreateInput struct {
	ID       *int64  `json:"id" validate:"required"`
	Title    *string `json:"title" validate:"required"`
	Priority *int    `json:"priority"`
}

// Service is the sole entry point transport adapters call. It validates
// input, enforces the permission policy, delegates to the store, and wraps
// results for representation. Failures propagate unmapped; the transport
// layer owns status codes.
type Service struct {
	store       Store
	policy      *access.Policy
	audit       shared.Recorder
	validate    *validator.Validate
	itemLinks   *links.Template
	searchLinks *links.Template
}

// NewService wires the service. The policy table is validated against the
// actions the service dispatches so a missing entry fails at startup.
func NewService(store Store, policy *access.Policy, audit shared.Recorder, itemLinks, searchLinks *links.Template) (*Service, error) {
	if err := policy.Validate(ActionCreate, ActionRead, ActionSearch); err != nil {
		return nil, err
	}
	validate := validator.New()
	// Report field errors under the wire names clients sent, not Go names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Service{
		store:       store,
		policy:      policy,
		audit:       audit,
		validate:    validate,
		itemLinks:   itemLinks,
		searchLinks: searchLinks,
	}, nil
}

// Create validates the input, authorizes the caller, stores a new item owned
// by the caller, and returns the wrapped result.
func (s *Service) Create(ctx context.Context, identity access.Identity, input CreateInput) (*ItemResult, error) {
	if err := s.validate.Struct(input); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			fields := make(shared.FieldErrors, len(verrs))
			for _, fieldErr := range verrs {
				fields[fieldErr.Field()] = fmt.Sprintf("failed %q constraint", fieldErr.Tag())
			}
			return nil, fields
		}
		return nil, fmt.Errorf("%w: %v", shared.ErrValidation, err)
	}

	if err := s.policy.Require(ActionCreate, identity, nil); err != nil {
		return nil, err
	}

	priority := defaultPriority
	if input.Priority != nil {
		priority = *input.Priority
	}
	item := Item{
		ID:       *input.ID,
		Title:    *input.Title,
		Priority: priority,
		OwnerID:  identity.ID(),
	}
	if err := s.store.Add(ctx, item); err != nil {
		return nil, err
	}
	s.record(ctx, identity, "todos:create", item.ID, map[string]any{"title": item.Title})

	return NewItemResult(item, identity, s.itemLinks), nil
}

// Read fetches the item first and authorizes after, so the policy can use
// item attributes such as ownership. A non-owner reading an existing item
// gets permission denied, not not-found.
func (s *Service) Read(ctx context.Context, identity access.Identity, id int64) (*ItemResult, error) {
	item, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.Require(ActionRead, identity, item); err != nil {
		return nil, err
	}
	s.record(ctx, identity, "todos:read", item.ID, nil)
	return NewItemResult(item, identity, s.itemLinks), nil
}

// Search enumerates the caller's own items and wraps them with pagination.
func (s *Service) Search(ctx context.Context, identity access.Identity, params ListParams) (*ListResult, error) {
	if err := s.policy.Require(ActionSearch, identity, nil); err != nil {
		return nil, err
	}
	items, err := s.store.All(ctx, identity.ID())
	if err != nil {
		return nil, err
	}
	s.record(ctx, identity, "todos:search", 0, map[string]any{"page": params.Page, "size": params.Size})
	return NewListResult(items, identity, params, s.searchLinks, s.itemLinks), nil
}

func (s *Service) record(ctx context.Context, identity access.Identity, action string, entityID int64, meta map[string]any) {
	if s.audit == nil {
		return
	}
	_ = s.audit.Record(ctx, shared.AuditLog{
		ActorID:  identity.ID(),
		Action:   action,
		Entity:   "todo",
		EntityID: fmt.Sprintf("%d", entityID),
		Meta:     meta,
	})
}
