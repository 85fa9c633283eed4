// Package placeholder maps string keys to substitutable replacement values
// and composes lookup sources with deterministic priority. Resolution is a
// pure lookup for snapshot-backed resolvers; dynamic resolvers memoize
// successful results for their lifetime.
package placeholder

import "richtext/text"

// Replacement is the substitutable payload a resolver returns for a matched
// key: either an already-built component or a raw text value the consuming
// front end decides how to treat.
type Replacement struct {
	component text.Component
	text      string
	raw       bool
}

// ComponentReplacement wraps a built component.
func ComponentReplacement(c text.Component) Replacement {
	return Replacement{component: c}
}

// TextReplacement wraps a raw text value.
func TextReplacement(s string) Replacement {
	return Replacement{text: s, raw: true}
}

// Component returns the component payload, if that is what the replacement
// holds.
func (r Replacement) Component() (text.Component, bool) {
	if r.raw {
		return nil, false
	}
	return r.component, r.component != nil
}

// Text returns the raw text payload, if that is what the replacement holds.
func (r Replacement) Text() (string, bool) {
	if !r.raw {
		return "", false
	}
	return r.text, true
}

func (r Replacement) Equal(other Replacement) bool {
	if r.raw != other.raw {
		return false
	}
	if r.raw {
		return r.text == other.text
	}
	if r.component == nil || other.component == nil {
		return r.component == nil && other.component == nil
	}
	return r.component.Equal(other.component)
}

// Placeholder pairs a key with its replacement.
type Placeholder struct {
	key         string
	replacement Replacement
}

// New builds a placeholder from a key and replacement.
func New(key string, replacement Replacement) Placeholder {
	return Placeholder{key: key, replacement: replacement}
}

func (p Placeholder) Key() string              { return p.key }
func (p Placeholder) Replacement() Replacement { return p.replacement }
