package links

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type page struct {
	Number  int
	HasPrev bool
}

func TestExpandReservedExpansion(t *testing.T) {
	tpl := NewTemplate(Vars{"api": "http://127.0.0.1:8080"}).
		Add("self", MustLink("{+api}/todos/{id}", WithVars(func(ctx any, vars Vars) {
			vars.Set("id", ctx.(int64))
		})))

	out, err := tpl.Expand(int64(42), Vars{})
	require.NoError(t, err)
	require.Equal(t, map[string]string{"self": "http://127.0.0.1:8080/todos/42"}, out)
}

func TestExpandQueryExplosion(t *testing.T) {
	tpl := NewTemplate(Vars{"api": "http://localhost"}).
		Add("self", MustLink("{+api}/todos{?args*}"))

	out, err := tpl.Expand(nil, Vars{"args": Pairs{
		{Key: "page", Value: "2"},
		{Key: "size", Value: "10"},
	}})
	require.NoError(t, err)
	require.Equal(t, "http://localhost/todos?page=2&size=10", out["self"])
}

func TestExpandGuardSuppression(t *testing.T) {
	tpl := NewTemplate(Vars{"api": "http://localhost"}).
		Add("prev", MustLink("{+api}/todos{?args*}",
			When(func(ctx any) bool { return ctx.(page).HasPrev }),
			WithVars(func(ctx any, vars Vars) {
				vars.SetPair("args", "page", "1")
			}),
		)).
		Add("self", MustLink("{+api}/todos{?args*}"))

	out, err := tpl.Expand(page{Number: 1, HasPrev: false}, Vars{"args": Pairs{{Key: "page", Value: "1"}}})
	require.NoError(t, err)
	require.NotContains(t, out, "prev", "guarded link must be omitted entirely")
	require.Contains(t, out, "self")

	out, err = tpl.Expand(page{Number: 2, HasPrev: true}, Vars{"args": Pairs{{Key: "page", Value: "2"}}})
	require.NoError(t, err)
	require.Equal(t, "http://localhost/todos?page=1", out["prev"])
	require.Equal(t, "http://localhost/todos?page=2", out["self"])
}

func TestExpandIsIdempotent(t *testing.T) {
	tpl := NewTemplate(Vars{"api": "http://localhost"}).
		Add("self", MustLink("{+api}/todos{?args*}", WithVars(func(ctx any, vars Vars) {
			vars.SetPair("args", "page", "3")
		})))

	extra := Vars{"args": Pairs{{Key: "page", Value: "1"}, {Key: "size", Value: "10"}}}

	first, err := tpl.Expand(nil, extra)
	require.NoError(t, err)
	second, err := tpl.Expand(nil, extra)
	require.NoError(t, err)
	require.Equal(t, first, second)

	// The caller's extra vars were cloned, not mutated by the binder.
	require.Equal(t, Pairs{{Key: "page", Value: "1"}, {Key: "size", Value: "10"}}, extra["args"])
	require.Equal(t, "http://localhost/todos?page=3&size=10", first["self"])
}

func TestPairsWith(t *testing.T) {
	base := Pairs{{Key: "page", Value: "1"}, {Key: "size", Value: "10"}}

	updated := base.With("page", "2")
	require.Equal(t, Pairs{{Key: "page", Value: "2"}, {Key: "size", Value: "10"}}, updated)
	require.Equal(t, Pairs{{Key: "page", Value: "1"}, {Key: "size", Value: "10"}}, base, "With must not mutate the receiver")

	appended := base.With("sort", "title")
	require.Equal(t, "sort", appended[2].Key)
}

func TestExpandEvaluatesInRegistrationOrder(t *testing.T) {
	var seen []string
	record := func(name string) LinkOption {
		return WithVars(func(ctx any, vars Vars) {
			seen = append(seen, name)
		})
	}
	tpl := NewTemplate(Vars{"api": "http://localhost"}).
		Add("prev", MustLink("{+api}/todos", record("prev"))).
		Add("self", MustLink("{+api}/todos", record("self"))).
		Add("next", MustLink("{+api}/todos", record("next")))

	out, err := tpl.Expand(nil, Vars{})
	require.NoError(t, err)
	require.Len(t, out, 3)
	require.Equal(t, []string{"prev", "self", "next"}, seen)
}

func TestExpandUnsupportedVarType(t *testing.T) {
	tpl := NewTemplate(Vars{}).
		Add("self", MustLink("{id}"))

	_, err := tpl.Expand(nil, Vars{"id": 3.14})
	require.Error(t, err)
}
