package classpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inject-visitor/internal/host"
)

func loadCoffee(t *testing.T) *Classpath {
	t.Helper()

	cp, err := LoadFiles("testdata/coffee.yaml")
	require.NoError(t, err)

	return cp
}

func mustType(t *testing.T, cp *Classpath, ref string) host.Type {
	t.Helper()

	typ, err := cp.TypeOf(ref)
	require.NoError(t, err)

	return typ
}

func TestLoadFiles(t *testing.T) {
	t.Parallel()

	cp := loadCoffee(t)

	names := cp.Names()
	assert.Contains(t, names, "coffee.ElectricHeater")
	assert.Contains(t, names, "coffee.ElectricHeater.Thermostat")
	assert.Contains(t, names, "coffee.ElectricHeater.Thermostat.Sensor")
	assert.Contains(t, names, ObjectName)

	_, err := LoadFiles("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestTypeDeclaration(t *testing.T) {
	t.Parallel()

	cp := loadCoffee(t)

	decl, ok, err := cp.TypeDeclaration("coffee.ElectricHeater.Thermostat")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Thermostat", decl.SimpleName())
	assert.Equal(t, host.DeclarationKindClass, decl.Kind())

	outer, ok := decl.Enclosing()
	require.True(t, ok)
	assert.Equal(t, "coffee.ElectricHeater", outer.QualifiedName())

	pkg, ok := outer.Enclosing()
	require.True(t, ok)
	assert.Equal(t, host.DeclarationKindPackage, pkg.Kind())
	assert.Equal(t, "coffee", pkg.QualifiedName())

	_, ok, err = cp.TypeDeclaration("coffee.Missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMembers(t *testing.T) {
	t.Parallel()

	cp := loadCoffee(t)

	decl, _, err := cp.TypeDeclaration("coffee.ElectricHeater")
	require.NoError(t, err)

	members := decl.Members()
	require.Len(t, members, 5)

	watts, ok := members[0].(host.VariableDeclaration)
	require.True(t, ok)
	assert.Equal(t, "coffee.ElectricHeater.watts", watts.QualifiedName())
	assert.Equal(t, host.TypeKindPrimitive, watts.VariableType().Kind())

	ctor, ok := members[2].(host.ExecutableDeclaration)
	require.True(t, ok)
	assert.Equal(t, host.DeclarationKindConstructor, ctor.Kind())
	assert.Equal(t, host.TypeKindNone, ctor.ReturnType().Kind())
	require.Len(t, ctor.Parameters(), 1)
	assert.Equal(t, "coffee.Pump", ctor.Parameters()[0].VariableType().String())

	md, err := cp.AnnotationMetadata(members[1])
	require.NoError(t, err)
	assert.True(t, md.HasAnnotation("javax.inject.Inject"))

	md, err = cp.AnnotationMetadata(decl)
	require.NoError(t, err)
	v, ok := md.StringValue("javax.inject.Named")
	assert.True(t, ok)
	assert.Equal(t, "electric", v)
}

func TestErasure(t *testing.T) {
	t.Parallel()

	cp := loadCoffee(t)

	tests := []struct {
		in   string
		want string
	}{
		{in: "coffee.Box<java.lang.String>", want: "coffee.Box"},
		{in: "coffee.Box", want: "coffee.Box"},
		{in: "coffee.Pair<java.lang.String, coffee.Box<java.lang.String>>[]", want: "coffee.Pair[]"},
		{in: "int", want: "int"},
		{in: "void", want: "void"},
	}

	for _, tt := range tests {
		erased, err := cp.Erasure(mustType(t, cp, tt.in))
		require.NoError(t, err)
		assert.Equal(t, tt.want, erased.String(), tt.in)
	}

	box, _, err := cp.TypeDeclaration("coffee.Box")
	require.NoError(t, err)
	items := box.Members()[0].(host.VariableDeclaration).VariableType()
	assert.Equal(t, "T[]", items.String())

	erased, err := cp.Erasure(items)
	require.NoError(t, err)
	assert.Equal(t, "java.lang.Comparable[]", erased.String())
}

func TestIsAssignable(t *testing.T) {
	t.Parallel()

	cp := loadCoffee(t)

	tests := []struct {
		from string
		to   string
		want bool
	}{
		{from: "coffee.ElectricHeater", to: "coffee.ElectricHeater", want: true},
		{from: "coffee.ElectricHeater", to: "coffee.Appliance", want: true},
		{from: "coffee.ElectricHeater", to: "coffee.Heater", want: true},
		{from: "coffee.ElectricHeater", to: ObjectName, want: true},
		{from: "coffee.ElectricHeater", to: "coffee.Pump", want: false},
		{from: "coffee.Appliance", to: "coffee.ElectricHeater", want: false},
		{from: "coffee.LabelBox", to: "coffee.Box<java.lang.String>", want: true},
		{from: "coffee.LabelBox", to: "coffee.Box<java.lang.Integer>", want: false},
		{from: "coffee.LabelBox", to: "coffee.Box", want: true},
		{from: "coffee.LabelBox", to: "coffee.Supplier<java.lang.String>", want: true},
		{from: "coffee.LabelBox", to: "coffee.Supplier<? extends java.lang.Object>", want: true},
		{from: "coffee.LabelBox", to: "coffee.Supplier<? super java.lang.String>", want: true},
		{from: "coffee.LabelBox", to: "coffee.Supplier<? extends java.lang.Integer>", want: false},
		{from: "coffee.Box", to: "coffee.Supplier<java.lang.Integer>", want: true},
		{from: "coffee.ElectricHeater[]", to: "coffee.Heater[]", want: true},
		{from: "int[]", to: "long[]", want: false},
		{from: "int", to: "int", want: true},
		{from: "void", to: "void", want: false},
		{from: "coffee.Unknown", to: "coffee.Unknown", want: true},
		{from: "coffee.Unknown", to: "coffee.Heater", want: false},
	}

	for _, tt := range tests {
		got, err := cp.IsAssignable(mustType(t, cp, tt.from), mustType(t, cp, tt.to))
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s -> %s", tt.from, tt.to)
	}
}

func TestIsAssignable_Cycle(t *testing.T) {
	t.Parallel()

	cp, err := Parse([]byte(`
classes:
  - name: A
    superclass: B
  - name: B
    superclass: A
  - name: C
`))
	require.NoError(t, err)

	_, err = cp.IsAssignable(mustType(t, cp, "A"), mustType(t, cp, "C"))
	assert.ErrorIs(t, err, host.ErrInconsistent)
}

func TestIsAssignable_ForeignHandle(t *testing.T) {
	t.Parallel()

	a := loadCoffee(t)
	b := loadCoffee(t)

	_, err := a.IsAssignable(mustType(t, a, "coffee.Appliance"), mustType(t, b, "coffee.Appliance"))
	assert.ErrorIs(t, err, host.ErrInconsistent)

	_, err = a.Erasure(mustType(t, b, "coffee.Appliance"))
	assert.ErrorIs(t, err, host.ErrInconsistent)
}

func TestTypeArguments(t *testing.T) {
	t.Parallel()

	cp := loadCoffee(t)

	args, err := cp.TypeArguments(mustType(t, cp, "coffee.Pair<java.lang.String, java.lang.String>"))
	require.NoError(t, err)
	require.Len(t, args, 2)
	assert.Equal(t, "java.lang.String", args[0].String())
	assert.Equal(t, "java.lang.String", args[1].String())

	args, err = cp.TypeArguments(mustType(t, cp, "coffee.Pair"))
	require.NoError(t, err)
	assert.Empty(t, args)
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{name: "duplicate", yaml: "classes: [{name: a.A}, {name: a.A}]"},
		{name: "bad kind", yaml: "classes: [{name: a.A, kind: struct}]"},
		{name: "bad name", yaml: "classes: [{name: a..A}]"},
		{name: "bad supertype", yaml: "classes: [{name: a.A, superclass: 'B<'}]"},
		{name: "void field", yaml: "classes: [{name: a.A, fields: [{name: f, type: void}]}]"},
		{name: "missing field type", yaml: "classes: [{name: a.A, fields: [{name: f}]}]"},
		{name: "dotted nested", yaml: "classes: [{name: a.A, classes: [{name: b.B}]}]"},
		{name: "not yaml", yaml: "classes: {"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}
