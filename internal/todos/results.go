package todos

import (
	"strconv"

	"github.com/taskdock/taskdock/internal/access"
	"github.com/taskdock/taskdock/internal/links"
	"github.com/taskdock/taskdock/internal/shared"
)

// ItemResult wraps one stored item together with the identity it is being
// rendered for. The service never returns raw items to the transport layer.
type ItemResult struct {
	item     Item
	identity access.Identity
	links    *links.Template
}

// NewItemResult builds the per-request item view.
func NewItemResult(item Item, identity access.Identity, tpl *links.Template) *ItemResult {
	return &ItemResult{item: item, identity: identity, links: tpl}
}

// Item returns the wrapped item.
func (r *ItemResult) Item() Item {
	return r.item
}

// ToRepresentation produces the serialization-ready mapping. is_owner is
// recomputed on every call because identity varies per request.
func (r *ItemResult) ToRepresentation() (map[string]any, error) {
	linkMap, err := r.links.Expand(r.item, links.Vars{})
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"id":       r.item.ID,
		"title":    r.item.Title,
		"priority": r.item.Priority,
		"is_owner": r.identity.ID() == r.item.OwnerID,
		"links":    linkMap,
	}, nil
}

// ListParams carries the caller's pagination arguments.
type ListParams struct {
	Page int
	Size int
}

// ListResult wraps a collection plus pagination into the enveloped list view.
type ListResult struct {
	items     []Item
	identity  access.Identity
	params    ListParams
	listLinks *links.Template
	itemLinks *links.Template
}

// NewListResult builds the per-request list view.
func NewListResult(items []Item, identity access.Identity, params ListParams, listLinks, itemLinks *links.Template) *ListResult {
	return &ListResult{
		items:     items,
		identity:  identity,
		params:    params,
		listLinks: listLinks,
		itemLinks: itemLinks,
	}
}

// ToRepresentation computes the pagination window, renders the visible slice
// in store enumeration order, and expands the list navigation links.
func (r *ListResult) ToRepresentation() (map[string]any, error) {
	total := len(r.items)
	window, err := shared.NewPagination(r.params.Size, r.params.Page, total)
	if err != nil {
		return nil, err
	}

	hits := make([]map[string]any, 0, window.ToIdx()-window.FromIdx())
	for _, item := range r.items[window.FromIdx():window.ToIdx()] {
		rep, err := NewItemResult(item, r.identity, r.itemLinks).ToRepresentation()
		if err != nil {
			return nil, err
		}
		hits = append(hits, rep)
	}

	args := links.Pairs{
		{Key: "page", Value: strconv.Itoa(r.params.Page)},
		{Key: "size", Value: strconv.Itoa(r.params.Size)},
	}
	linkMap, err := r.listLinks.Expand(window, links.Vars{"args": args})
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"hits": map[string]any{
			"hits":  hits,
			"total": total,
		},
		"links": linkMap,
	}, nil
}
