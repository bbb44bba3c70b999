// Package curie holds namespace prefix bindings for an OFN document and
// expands CURIEs (compact IRIs of the form prefix:local) against them.
package curie

import (
	"fmt"

	"github.com/kortschak/horned/iri"
)

// Span identifies a region of input source text, for error reporting.
type Span struct {
	Start, End int
}

// UndefinedPrefix is returned by Expand when a CURIE names a prefix that
// has not been registered with the Map.
type UndefinedPrefix struct {
	Name string
	Span Span
}

func (e *UndefinedPrefix) Error() string {
	return fmt.Sprintf("undefined prefix %q at %d:%d", e.Name, e.Span.Start, e.Span.End)
}

// MissingDefault is returned by Expand when a CURIE uses the empty
// (default) prefix but no default namespace has been set.
type MissingDefault struct {
	Span Span
}

func (e *MissingDefault) Error() string {
	return fmt.Sprintf("no default prefix set at %d:%d", e.Span.Start, e.Span.End)
}

// binding is one prefix-name/IRI association. It is kept alongside the
// lookup map so that enumeration (Prefixes) preserves declaration order.
type binding struct {
	name string
	iri  iri.IRI
}

// Map is an ordered association from prefix name (the empty string denotes
// the default namespace) to an absolute IRI.
type Map struct {
	order   []binding
	byName  map[string]iri.IRI
	hasName map[string]bool
}

// NewMap returns an empty, ready to use Map.
func NewMap() *Map {
	return &Map{
		byName:  make(map[string]iri.IRI),
		hasName: make(map[string]bool),
	}
}

// SetDefault assigns the default (empty-prefix) namespace.
func (m *Map) SetDefault(namespace iri.IRI) {
	m.set("", namespace)
}

// AddPrefix registers name as bound to namespace. The grammar guarantees
// name is a syntactically valid prefix in conforming input; this method
// does not re-validate it.
func (m *Map) AddPrefix(name string, namespace iri.IRI) {
	m.set(name, namespace)
}

func (m *Map) set(name string, namespace iri.IRI) {
	if !m.hasName[name] {
		m.order = append(m.order, binding{name: name, iri: namespace})
	} else {
		for i := range m.order {
			if m.order[i].name == name {
				m.order[i].iri = namespace
				break
			}
		}
	}
	m.byName[name] = namespace
	m.hasName[name] = true
}

// HasDefault reports whether a default namespace has been set.
func (m *Map) HasDefault() bool {
	return m.hasName[""]
}

// Expand resolves a CURIE into an absolute IRI by concatenating the bound
// namespace and the local part. The local part is never percent-decoded.
// span is attached to any returned error for source reporting.
func (m *Map) Expand(prefix, local string, span Span) (iri.IRI, error) {
	if prefix == "" && !m.hasName[""] {
		return "", &MissingDefault{Span: span}
	}
	ns, ok := m.byName[prefix]
	if !ok {
		return "", &UndefinedPrefix{Name: prefix, Span: span}
	}
	return iri.IRI(string(ns) + local), nil
}

// Prefixes returns the registered bindings in declaration order.
func (m *Map) Prefixes() []struct {
	Name string
	IRI  iri.IRI
} {
	out := make([]struct {
		Name string
		IRI  iri.IRI
	}, len(m.order))
	for i, b := range m.order {
		out[i].Name = b.name
		out[i].IRI = b.iri
	}
	return out
}
