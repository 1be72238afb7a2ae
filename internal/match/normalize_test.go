package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeIdent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"UserID", []string{"user", "id"}},
		{"XMLParser", []string{"xml", "parser"}},
		{"getHTTPResponse", []string{"get", "http", "response"}},
		{"electric_heater", []string{"electric", "heater"}},
		{"Outer$Inner", []string{"outer", "inner"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, TokenizeIdent(tt.in))
		})
	}
}

func TestNormalizeIdent(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"UserService", "user_service", "userService", "USER_SERVICE"} {
		assert.Equal(t, "userservice", NormalizeIdent(s), s)
	}
}

func TestSimpleName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Inner", SimpleName("example.com/app.Outer.Inner"))
	assert.Equal(t, "coffee", SimpleName("inject-visitor/examples/coffee"))
	assert.Equal(t, "error", SimpleName("error"))
}
