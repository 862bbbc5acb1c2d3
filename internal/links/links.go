// Package links expands named RFC 6570 URI templates into navigation links.
// Templates are constructed once at configuration time and reused across
// requests; expansion is pure and never mutates the context it is given.
package links

import (
	"fmt"
	"strconv"

	"github.com/yosida95/uritemplate/v3"
)

// Pair is one key/value entry of an exploded query expansion.
type Pair struct {
	Key   string
	Value string
}

// Pairs is an ordered key/value list, expanded by `{?name*}` style
// expressions as a query string.
type Pairs []Pair

// With returns a copy of the list with key set to value. An existing key
// keeps its position; a new key is appended.
func (p Pairs) With(key, value string) Pairs {
	out := make(Pairs, len(p))
	copy(out, p)
	for i := range out {
		if out[i].Key == key {
			out[i].Value = value
			return out
		}
	}
	return append(out, Pair{Key: key, Value: value})
}

// Vars is the variable bag consumed by expansion. Supported value types are
// string, int, int64, []string and Pairs.
type Vars map[string]any

// Set stores a variable.
func (v Vars) Set(name string, value any) {
	v[name] = value
}

// SetPair upserts one key of the Pairs stored under name.
func (v Vars) SetPair(name, key, value string) {
	pairs, _ := v[name].(Pairs)
	v[name] = pairs.With(key, value)
}

func (v Vars) clone() Vars {
	out := make(Vars, len(v))
	for name, value := range v {
		if pairs, ok := value.(Pairs); ok {
			copied := make(Pairs, len(pairs))
			copy(copied, pairs)
			out[name] = copied
			continue
		}
		out[name] = value
	}
	return out
}

func (v Vars) values() (uritemplate.Values, error) {
	values := uritemplate.Values{}
	for name, value := range v {
		switch t := value.(type) {
		case string:
			values.Set(name, uritemplate.String(t))
		case int:
			values.Set(name, uritemplate.String(strconv.Itoa(t)))
		case int64:
			values.Set(name, uritemplate.String(strconv.FormatInt(t, 10)))
		case []string:
			values.Set(name, uritemplate.List(t...))
		case Pairs:
			kv := make([]string, 0, len(t)*2)
			for _, p := range t {
				kv = append(kv, p.Key, p.Value)
			}
			values.Set(name, uritemplate.KV(kv...))
		default:
			return nil, fmt.Errorf("links: unsupported var type %T for %q", value, name)
		}
	}
	return values, nil
}

// Link is a single URI template with an optional guard and variable binder.
type Link struct {
	template *uritemplate.Template
	when     func(ctx any) bool
	vars     func(ctx any, vars Vars)
}

// LinkOption configures a Link.
type LinkOption func(*Link)

// When guards the link: expansion skips it when the predicate is false.
func When(pred func(ctx any) bool) LinkOption {
	return func(l *Link) { l.when = pred }
}

// WithVars binds context-derived variables into the fresh bag built for each
// expansion.
func WithVars(bind func(ctx any, vars Vars)) LinkOption {
	return func(l *Link) { l.vars = bind }
}

// NewLink parses the RFC 6570 pattern. Reserved expansion (`{+var}`) and
// exploded query expansion (`{?args*}`) follow the RFC.
func NewLink(pattern string, opts ...LinkOption) (Link, error) {
	tmpl, err := uritemplate.New(pattern)
	if err != nil {
		return Link{}, fmt.Errorf("links: parse %q: %w", pattern, err)
	}
	link := Link{template: tmpl}
	for _, opt := range opts {
		opt(&link)
	}
	return link, nil
}

// MustLink is NewLink for configuration-time literals.
func MustLink(pattern string, opts ...LinkOption) Link {
	link, err := NewLink(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return link
}

type entry struct {
	name string
	link Link
}

// Template is an ordered set of named links sharing base variables (e.g. the
// API root URL).
type Template struct {
	entries []entry
	base    Vars
}

// NewTemplate builds an empty template with the given base variables.
func NewTemplate(base Vars) *Template {
	return &Template{base: base.clone()}
}

// Add registers a named link, preserving insertion order.
func (t *Template) Add(name string, link Link) *Template {
	t.entries = append(t.entries, entry{name: name, link: link})
	return t
}

// Expand produces name→URI for every link whose guard passes. Each link gets
// a fresh variable bag seeded with the base and extra vars, so repeated
// expansion of the same context yields identical output.
//
// Links are evaluated in the order Add registered them. The returned map has
// no order of its own; callers that need a stable ordering (e.g. when
// serializing) must impose the registration order themselves.
func (t *Template) Expand(ctx any, extra Vars) (map[string]string, error) {
	out := make(map[string]string, len(t.entries))
	for _, e := range t.entries {
		if e.link.when != nil && !e.link.when(ctx) {
			continue
		}
		bag := t.base.clone()
		for name, value := range extra.clone() {
			bag[name] = value
		}
		if e.link.vars != nil {
			e.link.vars(ctx, bag)
		}
		values, err := bag.values()
		if err != nil {
			return nil, err
		}
		uri, err := e.link.template.Expand(values)
		if err != nil {
			return nil, fmt.Errorf("links: expand %q: %w", e.name, err)
		}
		out[e.name] = uri
	}
	return out, nil
}
