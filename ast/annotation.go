package ast

import (
	"fmt"

	"github.com/kortschak/horned/iri"
)

// IRI is an absolute IRI used directly as an annotation value or subject,
// as distinct from an IRI identifying a declared Entity. It is a defined
// type over iri.IRI purely so it can carry the isAnnotationValue and
// isAnnotationSubject markers; the underlying text is unchanged by the
// conversion.
type IRI iri.IRI

func (i IRI) String() string        { return string(i) }
func (IRI) isAnnotationValue()      {}
func (IRI) isAnnotationSubject()    {}

// AnnotationValue is one of IRI, Literal, or AnonymousIndividual.
type AnnotationValue interface {
	isAnnotationValue()
}

// AnnotationSubject is one of IRI or AnonymousIndividual.
type AnnotationSubject interface {
	isAnnotationSubject()
}

// Annotation pairs an annotation property with a value. OFN permits
// annotations on annotations; the lowering engine reads and discards
// that nesting wherever it appears. The annotations in the outer
// annotations position of an axiom are kept, as a flat AnnotationSet on
// AnnotatedComponent. Annotation itself therefore carries no nested
// annotation set.
type Annotation struct {
	Property AnnotationProperty
	Value    AnnotationValue
}

// key returns a structural identity for a, used to de-duplicate an
// AnnotationSet by value rather than by pointer identity.
func (a Annotation) key() string {
	return fmt.Sprintf("%s\x00%#v", a.Property.Name, a.Value)
}

// AnnotationSet is an ordered, duplicate-suppressing collection of
// Annotation values. Iteration order is insertion order.
type AnnotationSet struct {
	items []Annotation
	seen  map[string]bool
}

// NewAnnotationSet returns an AnnotationSet containing anns, in order,
// with duplicates suppressed.
func NewAnnotationSet(anns ...Annotation) AnnotationSet {
	var s AnnotationSet
	for _, a := range anns {
		s.Add(a)
	}
	return s
}

// Add inserts a if it is not already present, and reports whether it was
// newly added.
func (s *AnnotationSet) Add(a Annotation) bool {
	if s.seen == nil {
		s.seen = make(map[string]bool)
	}
	k := a.key()
	if s.seen[k] {
		return false
	}
	s.seen[k] = true
	s.items = append(s.items, a)
	return true
}

// Merge adds every annotation in other that is not already present.
func (s *AnnotationSet) Merge(other AnnotationSet) {
	for _, a := range other.items {
		s.Add(a)
	}
}

// Len reports the number of distinct annotations in the set.
func (s AnnotationSet) Len() int { return len(s.items) }

// Slice returns the annotations in insertion order. The caller must not
// mutate the returned slice.
func (s AnnotationSet) Slice() []Annotation { return s.items }

// Equal reports whether s and other contain the same annotations,
// ignoring order.
func (s AnnotationSet) Equal(other AnnotationSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, a := range s.items {
		if !other.seen[a.key()] {
			return false
		}
	}
	return true
}
