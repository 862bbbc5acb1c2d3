package todos

import (
	"strconv"

	"github.com/taskdock/taskdock/internal/links"
	"github.com/taskdock/taskdock/internal/shared"
)

// ItemLinks builds the link templates injected into item representations.
// apiBase is the site API root, expanded unescaped via `{+api}`.
func ItemLinks(apiBase string) *links.Template {
	return links.NewTemplate(links.Vars{"api": apiBase}).
		Add("self", links.MustLink("{+api}/todos/{id}",
			links.WithVars(func(ctx any, vars links.Vars) {
				if item, ok := ctx.(Item); ok {
					vars.Set("id", item.ID)
				}
			}),
		))
}

// SearchLinks builds the prev/self/next templates for list representations.
// prev and next are guarded by the pagination window and omitted when the
// adjacent page does not exist.
func SearchLinks(apiBase string) *links.Template {
	return links.NewTemplate(links.Vars{"api": apiBase}).
		Add("prev", links.MustLink("{+api}/todos{?args*}",
			links.When(func(ctx any) bool {
				window, ok := ctx.(shared.Pagination)
				return ok && window.HasPrev()
			}),
			links.WithVars(func(ctx any, vars links.Vars) {
				if window, ok := ctx.(shared.Pagination); ok {
					vars.SetPair("args", "page", strconv.Itoa(window.PrevPage().Page))
				}
			}),
		)).
		Add("self", links.MustLink("{+api}/todos{?args*}")).
		Add("next", links.MustLink("{+api}/todos{?args*}",
			links.When(func(ctx any) bool {
				window, ok := ctx.(shared.Pagination)
				return ok && window.HasNext()
			}),
			links.WithVars(func(ctx any, vars links.Vars) {
				if window, ok := ctx.(shared.Pagination); ok {
					vars.SetPair("args", "page", strconv.Itoa(window.NextPage().Page))
				}
			}),
		))
}
