package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseScopes(t *testing.T) {
	var cases = []struct {
		raw      string
		expected ScopeSet
	}{
		{"openid", ScopeSet{"openid"}},
		{"openid profile", ScopeSet{"openid", "profile"}},
		{"  openid   profile  ", ScopeSet{"openid", "profile"}},
		{"openid profile openid", ScopeSet{"openid", "profile"}},
		{"", nil},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, ParseScopes(c.raw), "raw: %q", c.raw)
	}
}

func TestScopeSet_String(t *testing.T) {
	assert.Equal(t, "openid profile", ScopeSet{"openid", "profile"}.String())
	assert.Equal(t, "", ScopeSet{}.String())
}

func TestScopeSet_SubsetOf(t *testing.T) {
	assert.True(t, ScopeSet{"openid"}.SubsetOf(ScopeSet{"openid", "profile"}))
	assert.True(t, ScopeSet{}.SubsetOf(ScopeSet{"openid"}))
	assert.False(t, ScopeSet{"openid", "email"}.SubsetOf(ScopeSet{"openid"}))
}

func TestScopeSet_Equal(t *testing.T) {
	assert.True(t, ScopeSet{"openid", "profile"}.Equal(ScopeSet{"profile", "openid"}))
	assert.False(t, ScopeSet{"openid"}.Equal(ScopeSet{"openid", "profile"}))
}

func TestScopeSet_Intersect(t *testing.T) {
	// The result keeps the receiver's order.
	got := ScopeSet{"openid", "api1", "api2"}.Intersect(ScopeSet{"api2", "openid"})
	assert.Equal(t, ScopeSet{"openid", "api2"}, got)
}

func TestScopeSet_Minus(t *testing.T) {
	got := ScopeSet{"openid", "api1", "api2"}.Minus(ScopeSet{"api1"})
	assert.Equal(t, ScopeSet{"openid", "api2"}, got)
}

func TestScopes_Contains(t *testing.T) {
	scopes := Scopes{
		ScopeOpenID,
		NewDynamicScope("payment", func(requested string) bool {
			return requested == "payment" || len(requested) > 8 && requested[:8] == "payment:"
		}),
	}

	assert.True(t, scopes.Contains("openid"))
	assert.True(t, scopes.Contains("payment:123"))
	assert.False(t, scopes.Contains("profile"))
}
