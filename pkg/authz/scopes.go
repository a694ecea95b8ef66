package authz

import (
	"slices"
	"strings"
)

var (
	ScopeOpenID        = NewScope("openid")
	ScopeProfile       = NewScope("profile")
	ScopeEmail         = NewScope("email")
	ScopeAddress       = NewScope("address")
	ScopeOfflineAccess = NewScope("offline_access")
)

// Scope is a scope known to the server. Matches decides whether a requested
// scope name is an instance of this scope, which allows parameterized scopes
// such as "payment:*".
type Scope struct {
	ID      string
	Matches ScopeMatchingFunc
}

type ScopeMatchingFunc func(requestedScope string) bool

// NewScope creates a scope whose matching logic is plain string comparison.
func NewScope(id string) Scope {
	return Scope{
		ID: id,
		Matches: func(requestedScope string) bool {
			return id == requestedScope
		},
	}
}

// NewDynamicScope creates a scope with custom matching logic.
//
//	paymentScope := NewDynamicScope("payment", func(requested string) bool {
//		return strings.HasPrefix(requested, "payment:")
//	})
func NewDynamicScope(id string, matchingFunc ScopeMatchingFunc) Scope {
	return Scope{
		ID:      id,
		Matches: matchingFunc,
	}
}

func (s Scope) String() string {
	return s.ID
}

// Scopes is the set of scopes registered with the server.
type Scopes []Scope

func (scopes Scopes) Contains(requestedScope string) bool {
	for _, s := range scopes {
		if s.Matches(requestedScope) {
			return true
		}
	}

	return false
}

func (scopes Scopes) IDs() []string {
	ids := make([]string, 0, len(scopes))
	for _, s := range scopes {
		ids = append(ids, s.ID)
	}
	return ids
}

// ScopeSet is an ordered, deduplicated collection of scope names.
// Comparisons are order independent; the order only matters when the set is
// serialized at the response encoding boundary, where it must be
// deterministic.
type ScopeSet []string

// ParseScopes splits a space-delimited scope string into a set, dropping
// duplicates while keeping the first occurrence's position.
func ParseScopes(raw string) ScopeSet {
	var set ScopeSet
	for _, name := range strings.Fields(raw) {
		if !slices.Contains(set, name) {
			set = append(set, name)
		}
	}
	return set
}

// String serializes the set space joined in its canonical order.
func (set ScopeSet) String() string {
	return strings.Join(set, " ")
}

func (set ScopeSet) Contains(name string) bool {
	return slices.Contains(set, name)
}

func (set ScopeSet) ContainsOpenID() bool {
	return set.Contains(ScopeOpenID.ID)
}

// SubsetOf reports whether every name in the set appears in other.
func (set ScopeSet) SubsetOf(other ScopeSet) bool {
	for _, name := range set {
		if !other.Contains(name) {
			return false
		}
	}
	return true
}

// Equal compares the two sets ignoring order.
func (set ScopeSet) Equal(other ScopeSet) bool {
	return len(set) == len(other) && set.SubsetOf(other)
}

// Intersect keeps the names also present in other, preserving the
// receiver's order.
func (set ScopeSet) Intersect(other ScopeSet) ScopeSet {
	var result ScopeSet
	for _, name := range set {
		if other.Contains(name) {
			result = append(result, name)
		}
	}
	return result
}

// Minus removes the names present in other, preserving the receiver's order.
func (set ScopeSet) Minus(other ScopeSet) ScopeSet {
	var result ScopeSet
	for _, name := range set {
		if !other.Contains(name) {
			result = append(result, name)
		}
	}
	return result
}
