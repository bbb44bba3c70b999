// Package ontology is the axiom-indexed ontology container and its query
// layer: logical equality of axioms (ignoring annotations), merge-on-
// insert, and declaration-kind lookup.
package ontology

import (
	"iter"
	"reflect"

	"github.com/kortschak/horned/ast"
)

// Ontology is an unordered multiset of ast.AnnotatedComponent, indexed by
// ast.AxiomKind, plus the three header components (OntologyID, Import,
// OntologyAnnotation) stored through the same indexing mechanism. It is
// built up during lowering (package lower) and then handed to the caller
// as a *Ontology; once returned it is immutable unless the caller re-exposes a
// mutating API via Insert/Take.
//
// Components are stored in insertion order within each kind; Iter
// returns a deterministic kind-ordered sequence.
type Ontology struct {
	byKind    map[ast.AxiomKind][]ast.AnnotatedComponent
	kindOrder []ast.AxiomKind
}

// New returns an empty, ready to use Ontology.
func New() *Ontology {
	return &Ontology{byKind: make(map[ast.AxiomKind][]ast.AnnotatedComponent)}
}

// Insert appends ac to the ontology. An OntologyID replaces any previously
// inserted one, since an ontology has at most one.
func (o *Ontology) Insert(ac ast.AnnotatedComponent) {
	k := ac.Kind()
	if _, ok := o.byKind[k]; !ok {
		o.kindOrder = append(o.kindOrder, k)
	}
	if k == ast.OntologyIDKind {
		o.byKind[k] = []ast.AnnotatedComponent{ac}
		return
	}
	o.byKind[k] = append(o.byKind[k], ac)
}

// Take removes and returns an exact (annotation-equal) match for ac, if
// one is present.
func (o *Ontology) Take(ac ast.AnnotatedComponent) (ast.AnnotatedComponent, bool) {
	k := ac.Kind()
	bucket := o.byKind[k]
	for i, cand := range bucket {
		if reflect.DeepEqual(cand.Component, ac.Component) && cand.Ann.Equal(ac.Ann) {
			o.byKind[k] = append(bucket[:i:i], bucket[i+1:]...)
			return cand, true
		}
	}
	return ast.AnnotatedComponent{}, false
}

// AnnotatedAxiom returns all components of the given kind, in insertion
// order.
func (o *Ontology) AnnotatedAxiom(kind ast.AxiomKind) iter.Seq[ast.AnnotatedComponent] {
	return func(yield func(ast.AnnotatedComponent) bool) {
		for _, ac := range o.byKind[kind] {
			if !yield(ac) {
				return
			}
		}
	}
}

// Iter returns every component in the ontology, in kind-insertion order
// and then component-insertion order within each kind.
func (o *Ontology) Iter() iter.Seq[ast.AnnotatedComponent] {
	return func(yield func(ast.AnnotatedComponent) bool) {
		for _, k := range o.kindOrder {
			for _, ac := range o.byKind[k] {
				if !yield(ac) {
					return
				}
			}
		}
	}
}

// ID returns the ontology's OntologyID header, the zero value if none was
// ever inserted.
func (o *Ontology) ID() ast.OntologyID {
	for _, ac := range o.byKind[ast.OntologyIDKind] {
		return ac.Component.(ast.OntologyID)
	}
	return ast.OntologyID{}
}

// Imports returns the ontology's Import header components, in insertion
// order.
func (o *Ontology) Imports() []ast.Import {
	var out []ast.Import
	for _, ac := range o.byKind[ast.ImportKind] {
		out = append(out, ac.Component.(ast.Import))
	}
	return out
}

// OntologyAnnotations returns the ontology-level annotations attached to
// the header, in insertion order.
func (o *Ontology) OntologyAnnotations() []ast.OntologyAnnotation {
	var out []ast.OntologyAnnotation
	for _, ac := range o.byKind[ast.OntologyAnnotationKind] {
		out = append(out, ac.Component.(ast.OntologyAnnotation))
	}
	return out
}

// Equal reports whether o and other contain the same components with the
// same annotation sets and the same header. Order within a kind does not
// matter.
func (o *Ontology) Equal(other *Ontology) bool {
	kinds := make(map[ast.AxiomKind]bool)
	for k := range o.byKind {
		kinds[k] = true
	}
	for k := range other.byKind {
		kinds[k] = true
	}
	for k := range kinds {
		if !sameMultiset(o.byKind[k], other.byKind[k]) {
			return false
		}
	}
	return true
}

func sameMultiset(a, b []ast.AnnotatedComponent) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, x := range a {
		found := false
		for j, y := range b {
			if used[j] {
				continue
			}
			if reflect.DeepEqual(x.Component, y.Component) && x.Ann.Equal(y.Ann) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
