package ontology

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/diff"
	"github.com/pkg/diff/write"

	"github.com/kortschak/horned/ast"
	"github.com/kortschak/horned/iri"
)

func classIRI(s string) iri.IRI { return iri.IRI(s) }

// dumpIter renders an ontology's Iter order as text, one component per
// line, so a mismatch can be reported as a readable diff rather than a
// %#v dump of nested interfaces.
func dumpIter(o *Ontology) string {
	var sb strings.Builder
	for ac := range o.Iter() {
		fmt.Fprintf(&sb, "%s %#v %#v\n", ac.Kind(), ac.Component, ac.Ann.Slice())
	}
	return sb.String()
}

// failDiff reports a test failure with a colored unified diff between
// got and want.
func failDiff(t *testing.T, msg, got, want string) {
	t.Helper()
	var buf bytes.Buffer
	if err := diff.Text("got", "want", got, want, &buf, write.TerminalColor()); err != nil {
		t.Fatalf("diff.Text: %v", err)
	}
	t.Errorf("%s:\n%s", msg, &buf)
}

func TestInsertAndIterOrder(t *testing.T) {
	o := New()
	decl := ast.AnnotatedComponent{Component: ast.DeclareClass{Class: ast.Class{Name: classIRI("http://example.org/A")}}}
	sub := ast.AnnotatedComponent{Component: ast.SubClassOf{
		Super: ast.Class{Name: classIRI("http://example.org/B")},
		Sub:   ast.Class{Name: classIRI("http://example.org/A")},
	}}
	o.Insert(sub)
	o.Insert(decl)

	var kinds []ast.AxiomKind
	for ac := range o.Iter() {
		kinds = append(kinds, ac.Kind())
	}
	if len(kinds) != 2 || kinds[0] != ast.SubClassOfKind || kinds[1] != ast.DeclareClassKind {
		t.Fatalf("Iter order = %v, want [SubClassOf, DeclareClass] (kind-insertion order)", kinds)
	}
}

func TestAnnotationMergeOnUpdate(t *testing.T) {
	o := New()
	ap := ast.AnnotationProperty{Name: classIRI("http://example.org/comment")}
	base := ast.SubClassOf{
		Super: ast.Class{Name: classIRI("http://example.org/B")},
		Sub:   ast.Class{Name: classIRI("http://example.org/A")},
	}
	first := ast.AnnotatedComponent{
		Component: base,
		Ann:       ast.NewAnnotationSet(ast.Annotation{Property: ap, Value: ast.SimpleLiteral{Value: "first"}}),
	}
	second := ast.AnnotatedComponent{
		Component: base,
		Ann:       ast.NewAnnotationSet(ast.Annotation{Property: ap, Value: ast.SimpleLiteral{Value: "second"}}),
	}

	UpdateLogicallyEqualAxiom(o, first)
	UpdateLogicallyEqualAxiom(o, second)

	var axioms []ast.AnnotatedComponent
	for ac := range o.AnnotatedAxiom(ast.SubClassOfKind) {
		axioms = append(axioms, ac)
	}
	if len(axioms) != 1 {
		t.Fatalf("got %d SubClassOf axioms, want 1 (merged)", len(axioms))
	}
	if axioms[0].Ann.Len() != 2 {
		t.Fatalf("merged annotation set has %d entries, want 2", axioms[0].Ann.Len())
	}
}

func TestLogicalEqualityIgnoresAnnotations(t *testing.T) {
	ap := ast.AnnotationProperty{Name: classIRI("http://example.org/comment")}
	base := ast.DeclareClass{Class: ast.Class{Name: classIRI("http://example.org/A")}}
	a := ast.AnnotatedComponent{
		Component: base,
		Ann:       ast.NewAnnotationSet(ast.Annotation{Property: ap, Value: ast.SimpleLiteral{Value: "x"}}),
	}
	b := ast.AnnotatedComponent{Component: base}

	o := New()
	o.Insert(a)
	if _, ok := FindLogicallyEqualAxiom(o, b); !ok {
		t.Fatal("FindLogicallyEqualAxiom: expected match despite differing annotations")
	}
}

func TestOntologyEqualIgnoresOrder(t *testing.T) {
	a1 := ast.AnnotatedComponent{Component: ast.DeclareClass{Class: ast.Class{Name: classIRI("http://example.org/A")}}}
	a2 := ast.AnnotatedComponent{Component: ast.DeclareClass{Class: ast.Class{Name: classIRI("http://example.org/B")}}}

	o1, o2 := New(), New()
	o1.Insert(a1)
	o1.Insert(a2)
	o2.Insert(a2)
	o2.Insert(a1)

	if !o1.Equal(o2) {
		failDiff(t, "ontologies with the same components in different order should be equal", dumpIter(o1), dumpIter(o2))
	}

	o2.Insert(ast.AnnotatedComponent{Component: ast.DeclareClass{Class: ast.Class{Name: classIRI("http://example.org/C")}}})
	if o1.Equal(o2) {
		t.Fatal("Equal: ontologies with different component counts should not be equal")
	}
}

func TestFindDeclarationKindFixedOrderAndBuiltIn(t *testing.T) {
	o := New()
	id := classIRI("http://example.org/A")
	o.Insert(ast.AnnotatedComponent{Component: ast.DeclareClass{Class: ast.Class{Name: id}}})
	o.Insert(ast.AnnotatedComponent{Component: ast.DeclareObjectProperty{ObjectProperty: ast.ObjectProperty{Name: id}}})

	k, ok := FindDeclarationKind(o, id)
	if !ok || k != ast.ClassEntity {
		t.Fatalf("FindDeclarationKind = (%v, %v), want (Class, true) since Class precedes ObjectProperty", k, ok)
	}

	k, ok = FindDeclarationKind(o, classIRI("http://www.w3.org/2002/07/owl#Thing"))
	if !ok || k != ast.ClassEntity {
		t.Fatalf("FindDeclarationKind(owl:Thing) = (%v, %v), want (Class, true) via built-in fallback", k, ok)
	}

	_, ok = FindDeclarationKind(o, classIRI("http://example.org/undeclared"))
	if ok {
		t.Fatal("FindDeclarationKind: expected no match for an undeclared, non-built-in IRI")
	}
}

func TestIsAnnotationProperty(t *testing.T) {
	o := New()
	id := classIRI("http://example.org/label")
	o.Insert(ast.AnnotatedComponent{Component: ast.DeclareAnnotationProperty{AnnotationProperty: ast.AnnotationProperty{Name: id}}})

	if !IsAnnotationProperty(o, id) {
		t.Fatal("IsAnnotationProperty: expected true for a declared annotation property")
	}
	if IsAnnotationProperty(o, classIRI("http://example.org/other")) {
		t.Fatal("IsAnnotationProperty: expected false for an undeclared IRI")
	}
}

func TestOntologyIDReplacesOnReinsert(t *testing.T) {
	o := New()
	first := ast.IRI("http://example.org/v1")
	second := ast.IRI("http://example.org/v2")
	o.Insert(ast.AnnotatedComponent{Component: ast.OntologyID{IRI: &first}})
	o.Insert(ast.AnnotatedComponent{Component: ast.OntologyID{IRI: &second}})

	id := o.ID()
	if id.IRI == nil || *id.IRI != second {
		t.Fatalf("ID() = %v, want the most recently inserted OntologyID", id)
	}
}

func TestTakeRequiresAnnotationEquality(t *testing.T) {
	ap := ast.AnnotationProperty{Name: classIRI("http://example.org/comment")}
	base := ast.DeclareClass{Class: ast.Class{Name: classIRI("http://example.org/A")}}
	annotated := ast.AnnotatedComponent{
		Component: base,
		Ann:       ast.NewAnnotationSet(ast.Annotation{Property: ap, Value: ast.SimpleLiteral{Value: "x"}}),
	}

	o := New()
	o.Insert(annotated)

	// A logically-equal component with different annotations is not an
	// exact match.
	if _, ok := o.Take(ast.AnnotatedComponent{Component: base}); ok {
		t.Fatal("Take removed a component whose annotations differ")
	}

	got, ok := o.Take(annotated)
	if !ok {
		t.Fatal("Take failed to remove an exact match")
	}
	if !got.Ann.Equal(annotated.Ann) {
		t.Fatalf("Take returned %#v, want the inserted component", got)
	}
	if _, ok := o.Take(annotated); ok {
		t.Fatal("Take removed the same component twice")
	}
}
