package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirectives(t *testing.T) {
	t.Parallel()

	md, err := ParseDirectives([]string{"inject"}, []string{
		"// CoffeeMaker brews coffee.",
		"//inject:singleton",
		"//inject:named primary",
		`//inject:qualifier name=db scope="request scope"`,
		"//go:generate echo ignored",
		"//other:thing ignored",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"inject:named", "inject:qualifier", "inject:singleton"}, md.Names())
	assert.True(t, md.HasAnnotation("inject:singleton"))
	assert.False(t, md.HasAnnotation("go:generate"))

	named, ok := md.StringValue("inject:named")
	assert.True(t, ok)
	assert.Equal(t, "primary", named)

	scope, ok := md.Value("inject:qualifier", "scope")
	assert.True(t, ok)
	assert.Equal(t, "request scope", scope)

	name, ok := md.Value("inject:qualifier", "name")
	assert.True(t, ok)
	assert.Equal(t, "db", name)

	_, ok = md.StringValue("inject:singleton")
	assert.False(t, ok)
}

func TestParseDirectives_Repeated(t *testing.T) {
	t.Parallel()

	md, err := ParseDirectives([]string{"inject"}, []string{
		"//inject:requires a",
		"//inject:requires b",
	})
	require.NoError(t, err)

	values, ok := md.Values("inject:requires")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, values[ValueMember])
}

func TestParseDirectives_Empty(t *testing.T) {
	t.Parallel()

	md, err := ParseDirectives([]string{"inject"}, nil)
	require.NoError(t, err)
	assert.True(t, md.IsEmpty())
	assert.Equal(t, 0, md.Len())
	assert.Empty(t, md.Names())
}

func TestParseDirectives_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
	}{
		{name: "missing name", line: "//inject:"},
		{name: "unterminated quote", line: `//inject:named "primary`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseDirectives([]string{"inject"}, []string{tt.line})
			assert.Error(t, err)
		})
	}
}

func TestParseStructTag(t *testing.T) {
	t.Parallel()

	md, err := ParseStructTag(`json:"beans,omitempty" inject:"named=grinder"`)
	require.NoError(t, err)

	assert.Equal(t, []string{"inject", "json"}, md.Names())
	v, ok := md.StringValue("json")
	assert.True(t, ok)
	assert.Equal(t, "beans,omitempty", v)

	_, err = ParseStructTag(`json:beans`)
	assert.Error(t, err)

	md, err = ParseStructTag("")
	require.NoError(t, err)
	assert.True(t, md.IsEmpty())
}

func TestBuilder_BuildIsSnapshot(t *testing.T) {
	t.Parallel()

	b := NewBuilder().Set("a", ValueMember, "1")
	first := b.Build()
	b.Set("a", ValueMember, "2").Add("b")

	values, _ := first.Values("a")
	assert.Equal(t, []string{"1"}, values[ValueMember])
	assert.False(t, first.HasAnnotation("b"))

	values[ValueMember][0] = "mutated"
	v, _ := first.StringValue("a")
	assert.Equal(t, "1", v)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	a := NewBuilder().Set("x", "k", "1").Build()
	b := NewBuilder().Set("x", "k", "2").Add("y").Build()

	md := Merge(a, b, Empty)
	values, ok := md.Values("x")
	require.True(t, ok)
	assert.Equal(t, []string{"1", "2"}, values["k"])
	assert.True(t, md.HasAnnotation("y"))
}
