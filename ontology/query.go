package ontology

import (
	"reflect"

	"github.com/kortschak/horned/ast"
	"github.com/kortschak/horned/iri"
)

// FindLogicallyEqualAxiom locates any component in o whose kind equals
// a.Kind() and whose Component payload equals a.Component, ignoring
// annotations. Since ast.Component values never carry the annotations
// attached to them in source (AnnotatedComponent.Ann does), logical
// equality is exactly Go value equality of the Component field. The first
// match in insertion order wins.
func FindLogicallyEqualAxiom(o *Ontology, a ast.AnnotatedComponent) (ast.AnnotatedComponent, bool) {
	for _, cand := range o.byKind[a.Kind()] {
		if reflect.DeepEqual(cand.Component, a.Component) {
			return cand, true
		}
	}
	return ast.AnnotatedComponent{}, false
}

// UpdateLogicallyEqualAxiom inserts a into o. If a logically-equal
// component is already present, it is removed first and its annotations
// are merged into a.Ann before insertion, so at most one component per
// (kind, logical payload) remains afterward, carrying the union of every
// annotation set seen for it.
func UpdateLogicallyEqualAxiom(o *Ontology, a ast.AnnotatedComponent) {
	if existing, ok := FindLogicallyEqualAxiom(o, a); ok {
		taken, _ := o.Take(existing)
		a.Ann.Merge(taken.Ann)
	}
	o.Insert(a)
}

// declaration pairs a Declare* axiom kind with the Component it expects
// for a given IRI and the NamedEntityKind it asserts.
type declaration struct {
	kind AxiomDeclareKind
	wrap func(iri.IRI) ast.Component
	ek   ast.NamedEntityKind
}

// AxiomDeclareKind is a type alias for ast.AxiomKind, used only in this
// file, purely for readability of the declarationOrder table below.
type AxiomDeclareKind = ast.AxiomKind

// declarationOrder is the fixed search order for FindDeclarationKind: if
// a single IRI is declared under multiple kinds, the first of this order
// wins. Declarations are not deduplicated.
var declarationOrder = []declaration{
	{ast.DeclareClassKind, func(i iri.IRI) ast.Component { return ast.DeclareClass{Class: ast.Class{Name: i}} }, ast.ClassEntity},
	{ast.DeclareObjectPropertyKind, func(i iri.IRI) ast.Component {
		return ast.DeclareObjectProperty{ObjectProperty: ast.ObjectProperty{Name: i}}
	}, ast.ObjectPropertyEntity},
	{ast.DeclareAnnotationPropertyKind, func(i iri.IRI) ast.Component {
		return ast.DeclareAnnotationProperty{AnnotationProperty: ast.AnnotationProperty{Name: i}}
	}, ast.AnnotationPropertyEntity},
	{ast.DeclareDataPropertyKind, func(i iri.IRI) ast.Component {
		return ast.DeclareDataProperty{DataProperty: ast.DataProperty{Name: i}}
	}, ast.DataPropertyEntity},
	{ast.DeclareNamedIndividualKind, func(i iri.IRI) ast.Component {
		return ast.DeclareNamedIndividual{NamedIndividual: ast.NamedIndividual{Name: i}}
	}, ast.NamedIndividualEntity},
	{ast.DeclareDatatypeKind, func(i iri.IRI) ast.Component { return ast.DeclareDatatype{Datatype: ast.Datatype{Name: i}} }, ast.DatatypeEntity},
}

// FindDeclarationKind tries each of the six Declare* axioms in the fixed
// order {Class, ObjectProperty, AnnotationProperty, DataProperty,
// NamedIndividual, Datatype} and returns the first kind whose declaration
// is present in o. If none is present, it consults the built-in
// vocabulary table (vocab.go).
func FindDeclarationKind(o *Ontology, id iri.IRI) (ast.NamedEntityKind, bool) {
	for _, d := range declarationOrder {
		want := d.wrap(id)
		for _, cand := range o.byKind[d.kind] {
			if reflect.DeepEqual(cand.Component, want) {
				return d.ek, true
			}
		}
	}
	return BuiltIn(id)
}

// IsAnnotationProperty reports whether id is declared (explicitly or
// built-in) as an annotation property.
func IsAnnotationProperty(o *Ontology, id iri.IRI) bool {
	k, ok := FindDeclarationKind(o, id)
	return ok && k == ast.AnnotationPropertyEntity
}
