package lower

import (
	"testing"

	"github.com/kortschak/horned/ast"
	"github.com/kortschak/horned/parsetree"
)

func irINode(text string) *parsetree.Node {
	return parsetree.R(parsetree.RuleIRI, parsetree.Tok(parsetree.RuleFullIRI, text))
}

func classNode(text string) *parsetree.Node {
	return parsetree.R(parsetree.RuleClass, irINode(text))
}

func classExprNode(text string) *parsetree.Node {
	return parsetree.R(parsetree.RuleClassExpression, classNode(text))
}

func emptyAnnotations() *parsetree.Node {
	return parsetree.R(parsetree.RuleAnnotations)
}

// minimalDocument builds an OntologyDocument with no prefixes, an
// anonymous ontology, and the given axiom/header nodes appended directly
// to the Ontology node's children.
func minimalDocument(ontologyChildren ...*parsetree.Node) *parsetree.Node {
	return parsetree.R(parsetree.RuleOntologyDocument,
		parsetree.R(parsetree.RuleOntology, ontologyChildren...),
	)
}

func TestDocumentSubClassOfOperandSwap(t *testing.T) {
	// SubClassOf(A, B) in surface syntax means A is the subclass of B;
	// the AST stores (Super: B, Sub: A).
	axiom := parsetree.R(parsetree.RuleAxiom,
		parsetree.R(parsetree.RuleSubClassOf,
			emptyAnnotations(),
			classExprNode("http://example.org/A"),
			classExprNode("http://example.org/B"),
		),
	)
	doc := minimalDocument(axiom)

	ont, _, err := Document(doc)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}

	var found bool
	for ac := range ont.AnnotatedAxiom(ast.SubClassOfKind) {
		sc := ac.Component.(ast.SubClassOf)
		super := sc.Super.(ast.Class).Name
		sub := sc.Sub.(ast.Class).Name
		if super != "http://example.org/B" || sub != "http://example.org/A" {
			t.Fatalf("SubClassOf = {Super: %s, Sub: %s}, want {Super: B, Sub: A}", super, sub)
		}
		found = true
	}
	if !found {
		t.Fatal("no SubClassOf axiom found")
	}
}

func TestDocumentObjectCardinalityDefaultsToOwlThing(t *testing.T) {
	axiom := parsetree.R(parsetree.RuleAxiom,
		parsetree.R(parsetree.RuleSubClassOf,
			emptyAnnotations(),
			classExprNode("http://example.org/A"),
			parsetree.R(parsetree.RuleClassExpression,
				parsetree.R(parsetree.RuleObjectMinCardinality,
					parsetree.Tok(parsetree.RuleNonNegativeInteger, "2"),
					parsetree.R(parsetree.RuleObjectPropertyExpression,
						parsetree.R(parsetree.RuleObjectProperty, irINode("http://example.org/p")),
					),
				),
			),
		),
	)
	doc := minimalDocument(axiom)

	ont, _, err := Document(doc)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	for ac := range ont.AnnotatedAxiom(ast.SubClassOfKind) {
		sc := ac.Component.(ast.SubClassOf)
		card := sc.Super.(ast.ObjectMinCardinality)
		cls, ok := card.CE.(ast.Class)
		if !ok || cls.Name != "http://www.w3.org/2002/07/owl#Thing" {
			t.Fatalf("omitted filler = %#v, want owl:Thing", card.CE)
		}
	}
}

func TestDocumentDataCardinalityDefaultsToRDFSLiteral(t *testing.T) {
	axiom := parsetree.R(parsetree.RuleAxiom,
		parsetree.R(parsetree.RuleSubClassOf,
			emptyAnnotations(),
			classExprNode("http://example.org/A"),
			parsetree.R(parsetree.RuleClassExpression,
				parsetree.R(parsetree.RuleDataMinCardinality,
					parsetree.Tok(parsetree.RuleNonNegativeInteger, "1"),
					parsetree.R(parsetree.RuleDataProperty, irINode("http://example.org/dp")),
				),
			),
		),
	)
	doc := minimalDocument(axiom)

	ont, _, err := Document(doc)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	for ac := range ont.AnnotatedAxiom(ast.SubClassOfKind) {
		sc := ac.Component.(ast.SubClassOf)
		card := sc.Super.(ast.DataMinCardinality)
		dt, ok := card.DR.(ast.Datatype)
		if !ok || dt.Name != "http://www.w3.org/2000/01/rdf-schema#Literal" {
			t.Fatalf("omitted filler = %#v, want rdfs:Literal", card.DR)
		}
	}
}

func TestDocumentDataSomeValuesFromChainUnsupported(t *testing.T) {
	axiom := parsetree.R(parsetree.RuleAxiom,
		parsetree.R(parsetree.RuleSubClassOf,
			emptyAnnotations(),
			classExprNode("http://example.org/A"),
			parsetree.R(parsetree.RuleClassExpression,
				parsetree.R(parsetree.RuleDataSomeValuesFrom,
					parsetree.R(parsetree.RuleDataProperty, irINode("http://example.org/dp1")),
					parsetree.R(parsetree.RuleDataProperty, irINode("http://example.org/dp2")),
				),
			),
		),
	)
	doc := minimalDocument(axiom)

	_, _, err := Document(doc)
	lowerErr, ok := err.(*Error)
	if !ok || lowerErr.Kind != UnsupportedConstructKind {
		t.Fatalf("err = %v, want UnsupportedConstruct", err)
	}
}

func TestDocumentSWRLRuleAndDGAxiomSkipped(t *testing.T) {
	axiom := parsetree.R(parsetree.RuleAxiom,
		parsetree.R(parsetree.RuleSubClassOf,
			emptyAnnotations(),
			classExprNode("http://example.org/A"),
			classExprNode("http://example.org/B"),
		),
	)
	swrl := &parsetree.Node{Rule: parsetree.RuleSWRLRule}
	dg := &parsetree.Node{Rule: parsetree.RuleDGAxiom}
	doc := minimalDocument(swrl, axiom, dg)

	ont, _, err := Document(doc)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	n := 0
	for range ont.Iter() {
		n++
	}
	// the anonymous OntologyID header plus the one SubClassOf axiom.
	if n != 2 {
		t.Fatalf("got %d components, want 2 (OntologyID + SubClassOf)", n)
	}
}

func TestDocumentUndefinedPrefix(t *testing.T) {
	axiom := parsetree.R(parsetree.RuleAxiom,
		parsetree.R(parsetree.RuleSubClassOf,
			emptyAnnotations(),
			parsetree.R(parsetree.RuleClassExpression,
				parsetree.R(parsetree.RuleClass,
					parsetree.R(parsetree.RuleIRI,
						parsetree.Tok(parsetree.RuleAbbreviatedIRI, "ex:A"),
					),
				),
			),
			classExprNode("http://example.org/B"),
		),
	)
	doc := minimalDocument(axiom)

	_, _, err := Document(doc)
	lowerErr, ok := err.(*Error)
	if !ok || lowerErr.Kind != UndefinedPrefixKind {
		t.Fatalf("err = %v, want UndefinedPrefix", err)
	}
}

func TestDocumentHasKeyPartitionsByRule(t *testing.T) {
	axiom := parsetree.R(parsetree.RuleAxiom,
		parsetree.R(parsetree.RuleHasKey,
			emptyAnnotations(),
			classExprNode("http://example.org/A"),
			parsetree.R(parsetree.RuleObjectPropertyExpression,
				parsetree.R(parsetree.RuleObjectProperty, irINode("http://example.org/p")),
			),
			parsetree.R(parsetree.RuleDataProperty, irINode("http://example.org/dp")),
		),
	)
	doc := minimalDocument(axiom)

	ont, _, err := Document(doc)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	for ac := range ont.AnnotatedAxiom(ast.HasKeyKind) {
		hk := ac.Component.(ast.HasKey)
		if len(hk.ObjectProperties) != 1 || len(hk.DataProperties) != 1 {
			t.Fatalf("HasKey = %#v, want 1 object property and 1 data property", hk)
		}
	}
}

func prefixDecl(name, ns string) *parsetree.Node {
	return parsetree.R(parsetree.RulePrefixDeclaration,
		parsetree.Tok(parsetree.RulePrefixName, name),
		parsetree.Tok(parsetree.RuleFullIRI, ns),
	)
}

func opeNode(text string) *parsetree.Node {
	return parsetree.R(parsetree.RuleObjectPropertyExpression,
		parsetree.R(parsetree.RuleObjectProperty, irINode(text)),
	)
}

func TestDocumentPrefixDeclarations(t *testing.T) {
	doc := parsetree.R(parsetree.RuleOntologyDocument,
		prefixDecl("", "http://default.com/"),
		prefixDecl("ex", "http://example.com/"),
		parsetree.R(parsetree.RuleOntology),
	)

	ont, prefixes, err := Document(doc)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	n := 0
	for ac := range ont.Iter() {
		if ac.Kind() != ast.OntologyIDKind {
			t.Errorf("unexpected component %v in empty ontology", ac.Kind())
		}
		n++
	}
	if n != 1 {
		t.Fatalf("got %d components, want just the anonymous OntologyID header", n)
	}

	got := prefixes.Prefixes()
	if len(got) != 2 {
		t.Fatalf("got %d prefixes, want 2", len(got))
	}
	if got[0].Name != "" || got[0].IRI != "http://default.com/" {
		t.Errorf("default binding = {%q, %s}, want {\"\", http://default.com/}", got[0].Name, got[0].IRI)
	}
	if got[1].Name != "ex" || got[1].IRI != "http://example.com/" {
		t.Errorf("ex binding = {%q, %s}, want {\"ex\", http://example.com/}", got[1].Name, got[1].IRI)
	}
}

func TestDocumentDeclarationViaCURIE(t *testing.T) {
	axiom := parsetree.R(parsetree.RuleAxiom,
		parsetree.R(parsetree.RuleDeclaration,
			emptyAnnotations(),
			parsetree.R(parsetree.RuleClassDeclaration,
				parsetree.R(parsetree.RuleClass,
					parsetree.R(parsetree.RuleIRI,
						parsetree.Tok(parsetree.RuleAbbreviatedIRI, "owl:Thing"),
					),
				),
			),
		),
	)
	doc := parsetree.R(parsetree.RuleOntologyDocument,
		prefixDecl("owl", "http://www.w3.org/2002/07/owl#"),
		parsetree.R(parsetree.RuleOntology, axiom),
	)

	ont, _, err := Document(doc)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	var decls []ast.AnnotatedComponent
	for ac := range ont.AnnotatedAxiom(ast.DeclareClassKind) {
		decls = append(decls, ac)
	}
	if len(decls) != 1 {
		t.Fatalf("got %d class declarations, want 1", len(decls))
	}
	want := ast.DeclareClass{Class: ast.Class{Name: "http://www.w3.org/2002/07/owl#Thing"}}
	if decls[0].Component != want {
		t.Errorf("declaration = %#v, want %#v", decls[0].Component, want)
	}
	if decls[0].Ann.Len() != 0 {
		t.Errorf("declaration carries %d annotations, want none", decls[0].Ann.Len())
	}
}

func TestDocumentMissingDefaultPrefix(t *testing.T) {
	axiom := parsetree.R(parsetree.RuleAxiom,
		parsetree.R(parsetree.RuleSubClassOf,
			emptyAnnotations(),
			parsetree.R(parsetree.RuleClassExpression,
				parsetree.R(parsetree.RuleClass,
					parsetree.R(parsetree.RuleIRI,
						parsetree.Tok(parsetree.RuleAbbreviatedIRI, ":A"),
					),
				),
			),
			classExprNode("http://example.org/B"),
		),
	)
	doc := minimalDocument(axiom)

	_, _, err := Document(doc)
	lowerErr, ok := err.(*Error)
	if !ok || lowerErr.Kind != MissingDefaultKind {
		t.Fatalf("err = %v, want MissingDefault", err)
	}
}

func TestDocumentInvalidFacet(t *testing.T) {
	lit := parsetree.R(parsetree.RuleLiteral,
		parsetree.R(parsetree.RuleStringLiteralNoLanguage,
			parsetree.Tok(parsetree.RuleQuotedString, `"5"`),
		),
	)
	axiom := parsetree.R(parsetree.RuleAxiom,
		parsetree.R(parsetree.RuleDataPropertyRange,
			emptyAnnotations(),
			parsetree.R(parsetree.RuleDataProperty, irINode("http://example.org/dp")),
			parsetree.R(parsetree.RuleDataRange,
				parsetree.R(parsetree.RuleDatatypeRestriction,
					parsetree.R(parsetree.RuleDatatype, irINode("http://www.w3.org/2001/XMLSchema#string")),
					parsetree.R(parsetree.RuleFacetRestriction,
						parsetree.R(parsetree.RuleConstrainingFacet, irINode("http://example.org/notAFacet")),
						lit,
					),
				),
			),
		),
	)
	doc := minimalDocument(axiom)

	_, _, err := Document(doc)
	lowerErr, ok := err.(*Error)
	if !ok || lowerErr.Kind != InvalidFacetKind {
		t.Fatalf("err = %v, want InvalidFacet", err)
	}
}

func TestDocumentAxiomAnnotationsKeptNestedDiscarded(t *testing.T) {
	inner := parsetree.R(parsetree.RuleAnnotation,
		emptyAnnotations(),
		parsetree.R(parsetree.RuleAnnotationProperty, irINode("http://example.org/seeAlso")),
		parsetree.R(parsetree.RuleAnnotationValue, irINode("http://example.org/elsewhere")),
	)
	outer := parsetree.R(parsetree.RuleAnnotation,
		parsetree.R(parsetree.RuleAnnotations, inner),
		parsetree.R(parsetree.RuleAnnotationProperty, irINode("http://example.org/comment")),
		parsetree.R(parsetree.RuleAnnotationValue,
			parsetree.R(parsetree.RuleLiteral,
				parsetree.R(parsetree.RuleStringLiteralNoLanguage,
					parsetree.Tok(parsetree.RuleQuotedString, `"note"`),
				),
			),
		),
	)
	axiom := parsetree.R(parsetree.RuleAxiom,
		parsetree.R(parsetree.RuleSubClassOf,
			parsetree.R(parsetree.RuleAnnotations, outer),
			classExprNode("http://example.org/A"),
			classExprNode("http://example.org/B"),
		),
	)
	doc := minimalDocument(axiom)

	ont, _, err := Document(doc)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	for ac := range ont.AnnotatedAxiom(ast.SubClassOfKind) {
		anns := ac.Ann.Slice()
		if len(anns) != 1 {
			t.Fatalf("axiom carries %d annotations, want 1 (nesting discarded)", len(anns))
		}
		want := ast.Annotation{
			Property: ast.AnnotationProperty{Name: "http://example.org/comment"},
			Value:    ast.SimpleLiteral{Value: "note"},
		}
		if anns[0] != want {
			t.Errorf("annotation = %#v, want %#v", anns[0], want)
		}
	}
}

func TestDocumentSubObjectPropertyChain(t *testing.T) {
	axiom := parsetree.R(parsetree.RuleAxiom,
		parsetree.R(parsetree.RuleSubObjectPropertyOf,
			emptyAnnotations(),
			parsetree.R(parsetree.RuleSubObjectPropertyExpression,
				parsetree.R(parsetree.RulePropertyExpressionChain,
					opeNode("http://example.org/p"),
					opeNode("http://example.org/q"),
				),
			),
			opeNode("http://example.org/r"),
		),
	)
	doc := minimalDocument(axiom)

	ont, _, err := Document(doc)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	for ac := range ont.AnnotatedAxiom(ast.SubObjectPropertyOfKind) {
		sop := ac.Component.(ast.SubObjectPropertyOf)
		chain, ok := sop.Sub.(ast.PropertyExpressionChain)
		if !ok {
			t.Fatalf("Sub = %#v, want a PropertyExpressionChain", sop.Sub)
		}
		if len(chain.Chain) != 2 {
			t.Fatalf("chain length = %d, want 2", len(chain.Chain))
		}
		if sop.Super != (ast.ObjectProperty{Name: "http://example.org/r"}) {
			t.Errorf("Super = %#v, want ObjectProperty(r)", sop.Super)
		}
	}
}

func TestDocumentHeader(t *testing.T) {
	annotation := parsetree.R(parsetree.RuleAnnotation,
		emptyAnnotations(),
		parsetree.R(parsetree.RuleAnnotationProperty, irINode("http://example.org/label")),
		parsetree.R(parsetree.RuleAnnotationValue,
			parsetree.R(parsetree.RuleLiteral,
				parsetree.R(parsetree.RuleStringLiteralNoLanguage,
					parsetree.Tok(parsetree.RuleQuotedString, `"an ontology"`),
				),
			),
		),
	)
	doc := parsetree.R(parsetree.RuleOntologyDocument,
		parsetree.R(parsetree.RuleOntology,
			parsetree.R(parsetree.RuleOntologyIRI, irINode("http://example.org/ont")),
			parsetree.R(parsetree.RuleVersionIRI, irINode("http://example.org/ont/1.0")),
			parsetree.R(parsetree.RuleImport, irINode("http://example.org/other")),
			annotation,
		),
	)

	ont, _, err := Document(doc)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	id := ont.ID()
	if id.IRI == nil || *id.IRI != "http://example.org/ont" {
		t.Errorf("ontology IRI = %v, want http://example.org/ont", id.IRI)
	}
	if id.VersionIRI == nil || *id.VersionIRI != "http://example.org/ont/1.0" {
		t.Errorf("version IRI = %v, want http://example.org/ont/1.0", id.VersionIRI)
	}
	imports := ont.Imports()
	if len(imports) != 1 || imports[0].IRI != "http://example.org/other" {
		t.Errorf("imports = %v, want [http://example.org/other]", imports)
	}
	anns := ont.OntologyAnnotations()
	if len(anns) != 1 {
		t.Fatalf("got %d ontology annotations, want 1", len(anns))
	}
	if anns[0].Annotation.Value != (ast.SimpleLiteral{Value: "an ontology"}) {
		t.Errorf("ontology annotation value = %#v, want SimpleLiteral(an ontology)", anns[0].Annotation.Value)
	}
}
