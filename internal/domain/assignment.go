package domain

import (
	"sort"
	"strings"
)

// Assignment maps variable names to one outcome each.
type Assignment map[string]string

// Consistent reports whether no variable shared by a and other takes different values.
func (a Assignment) Consistent(other Assignment) bool {
	for name, value := range other {
		if v, ok := a[name]; ok && v != value {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of a.
func (a Assignment) Clone() Assignment {
	c := make(Assignment, len(a))
	for k, v := range a {
		c[k] = v
	}
	return c
}

// With returns a copy of a with name bound to value.
func (a Assignment) With(name, value string) Assignment {
	c := make(Assignment, len(a)+1)
	for k, v := range a {
		c[k] = v
	}
	c[name] = value
	return c
}

// Has reports whether name is bound in a.
func (a Assignment) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// Covers reports whether every name is bound in a.
func (a Assignment) Covers(names []string) bool {
	for _, name := range names {
		if _, ok := a[name]; !ok {
			return false
		}
	}
	return true
}

// String renders the assignment sorted by name, e.g. "A=T,B=F".
func (a Assignment) String() string {
	names := make([]string, 0, len(a))
	for k := range a {
		names = append(names, k)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, k := range names {
		parts[i] = k + "=" + a[k]
	}
	return strings.Join(parts, ",")
}
