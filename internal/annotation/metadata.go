package annotation

import (
	"slices"
	"sort"
)

// ValueMember is the member a bare directive argument is stored under.
const ValueMember = "value"

// Values holds the members of one annotation.
type Values map[string][]string

// Metadata is the annotation capability map of a declaration. The zero value
// is empty and ready to use.
type Metadata struct {
	entries map[string]Values
}

// Empty is metadata without annotations.
var Empty = Metadata{}

// HasAnnotation reports whether the annotation is declared.
func (m Metadata) HasAnnotation(name string) bool {
	_, ok := m.entries[name]
	return ok
}

// Names returns the declared annotation names in sorted order.
func (m Metadata) Names() []string {
	names := make([]string, 0, len(m.entries))
	for name := range m.entries {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Values returns a copy of the members of the named annotation.
func (m Metadata) Values(name string) (Values, bool) {
	v, ok := m.entries[name]
	if !ok {
		return nil, false
	}

	out := make(Values, len(v))
	for member, vals := range v {
		out[member] = slices.Clone(vals)
	}

	return out, true
}

// Value returns the first value of a member of the named annotation.
func (m Metadata) Value(name, member string) (string, bool) {
	vals := m.entries[name][member]
	if len(vals) == 0 {
		return "", false
	}

	return vals[0], true
}

// StringValue returns the "value" member of the named annotation.
func (m Metadata) StringValue(name string) (string, bool) {
	return m.Value(name, ValueMember)
}

// Len returns the number of declared annotations.
func (m Metadata) Len() int {
	return len(m.entries)
}

// IsEmpty reports whether no annotation is declared.
func (m Metadata) IsEmpty() bool {
	return len(m.entries) == 0
}

// Builder assembles Metadata. It is not safe for concurrent use.
type Builder struct {
	entries map[string]Values
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{entries: make(map[string]Values)}
}

// Add declares an annotation without members. Declaring it again is a no-op.
func (b *Builder) Add(name string) *Builder {
	if _, ok := b.entries[name]; !ok {
		b.entries[name] = Values{}
	}

	return b
}

// Set appends values to a member of the named annotation, declaring the
// annotation when needed.
func (b *Builder) Set(name, member string, values ...string) *Builder {
	b.Add(name)
	b.entries[name][member] = append(b.entries[name][member], values...)

	return b
}

// Build returns the metadata built so far. The builder may keep being used;
// later changes do not affect metadata already built.
func (b *Builder) Build() Metadata {
	if len(b.entries) == 0 {
		return Empty
	}

	entries := make(map[string]Values, len(b.entries))
	for name, v := range b.entries {
		cp := make(Values, len(v))
		for member, vals := range v {
			cp[member] = slices.Clone(vals)
		}
		entries[name] = cp
	}

	return Metadata{entries: entries}
}
