package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeclarationKind_IsClassLike(t *testing.T) {
	t.Parallel()

	classLike := []DeclarationKind{
		DeclarationKindClass,
		DeclarationKindInterface,
		DeclarationKindEnum,
		DeclarationKindAnnotation,
		DeclarationKindRecord,
	}
	for _, k := range classLike {
		assert.True(t, k.IsClassLike(), k.String())
	}

	notClassLike := []DeclarationKind{
		DeclarationKindOther,
		DeclarationKindPackage,
		DeclarationKindField,
		DeclarationKindMethod,
		DeclarationKindFunction,
		DeclarationKindTypeParameter,
	}
	for _, k := range notClassLike {
		assert.False(t, k.IsClassLike(), k.String())
	}
}

func TestDeclarationKind_IsInterface(t *testing.T) {
	t.Parallel()

	assert.True(t, DeclarationKindInterface.IsInterface())
	assert.True(t, DeclarationKindAnnotation.IsInterface())
	assert.False(t, DeclarationKindClass.IsInterface())
}

func TestDeclarationKind_IsExecutable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind DeclarationKind
		want bool
	}{
		{DeclarationKindMethod, true},
		{DeclarationKindConstructor, true},
		{DeclarationKindFunction, true},
		{DeclarationKindField, false},
		{DeclarationKindParameter, false},
		{DeclarationKindClass, false},
		{DeclarationKindOther, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.IsExecutable(), tt.kind.String())
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "TypeKindNone", TypeKindNone.String())
	assert.Equal(t, "TypeKindDeclared", TypeKindDeclared.String())
	assert.Equal(t, "DeclarationKindClass", DeclarationKindClass.String())
	assert.Equal(t, "DeclarationKindTypeParameter", DeclarationKindTypeParameter.String())
	assert.Equal(t, "TypeKind(42)", TypeKind(42).String())
}
