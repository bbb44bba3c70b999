// Package parsetree defines the shape of a parsed OWL 2 Functional-Style
// Syntax document as the lowering engine (package lower) expects to
// consume it: a tree of Node values tagged with the grammar production
// that produced them. Package parsetree does not parse OFN text itself;
// the grammar and lexer are an external collaborator, expected to hand
// over an already tokenized and shaped tree.
package parsetree

// Rule names a grammar production of the OFN Functional-Style Syntax, one
// entry per production the lowering engine dispatches on. The set is
// closed: a Rule value found somewhere the lowering engine has no case
// for it is an internal inconsistency, reported as a parse error rather
// than silently skipped.
type Rule int

const (
	RuleOntologyDocument Rule = iota
	RulePrefixDeclaration
	RuleOntology
	RuleOntologyIRI
	RuleVersionIRI
	RuleImport

	RuleIRI
	RuleFullIRI
	RuleAbbreviatedIRI
	RulePrefixName

	RuleDeclaration
	RuleClassDeclaration
	RuleDatatypeDeclaration
	RuleObjectPropertyDeclaration
	RuleDataPropertyDeclaration
	RuleAnnotationPropertyDeclaration
	RuleNamedIndividualDeclaration

	RuleClass
	RuleDatatype
	RuleObjectProperty
	RuleDataProperty
	RuleAnnotationProperty
	RuleNamedIndividual
	RuleAnonymousIndividual
	RuleIndividual

	RuleObjectPropertyExpression
	RuleInverseObjectProperty
	RuleSubObjectPropertyExpression
	RulePropertyExpressionChain

	RuleClassExpression
	RuleObjectIntersectionOf
	RuleObjectUnionOf
	RuleObjectComplementOf
	RuleObjectOneOf
	RuleObjectSomeValuesFrom
	RuleObjectAllValuesFrom
	RuleObjectHasValue
	RuleObjectHasSelf
	RuleObjectMinCardinality
	RuleObjectMaxCardinality
	RuleObjectExactCardinality
	RuleDataSomeValuesFrom
	RuleDataAllValuesFrom
	RuleDataHasValue
	RuleDataMinCardinality
	RuleDataMaxCardinality
	RuleDataExactCardinality

	RuleDataRange
	RuleDataIntersectionOf
	RuleDataUnionOf
	RuleDataComplementOf
	RuleDataOneOf
	RuleDatatypeRestriction
	RuleFacetRestriction
	RuleConstrainingFacet

	RuleLiteral
	RuleTypedLiteral
	RuleStringLiteralNoLanguage
	RuleStringLiteralWithLanguage
	RuleQuotedString
	RuleLangTag
	RuleNonNegativeInteger

	RuleAnnotation
	RuleAnnotations
	RuleAnnotationSubject
	RuleAnnotationValue

	RuleAxiom
	RuleSubClassOf
	RuleEquivalentClasses
	RuleDisjointClasses
	RuleDisjointUnion

	RuleSubObjectPropertyOf
	RuleEquivalentObjectProperties
	RuleDisjointObjectProperties
	RuleObjectPropertyDomain
	RuleObjectPropertyRange
	RuleInverseObjectProperties
	RuleFunctionalObjectProperty
	RuleInverseFunctionalObjectProperty
	RuleReflexiveObjectProperty
	RuleIrreflexiveObjectProperty
	RuleSymmetricObjectProperty
	RuleAsymmetricObjectProperty
	RuleTransitiveObjectProperty

	RuleSubDataPropertyOf
	RuleEquivalentDataProperties
	RuleDisjointDataProperties
	RuleDataPropertyDomain
	RuleDataPropertyRange
	RuleFunctionalDataProperty

	RuleDatatypeDefinition
	RuleHasKey

	RuleSameIndividual
	RuleDifferentIndividuals
	RuleClassAssertion
	RuleObjectPropertyAssertion
	RuleNegativeObjectPropertyAssertion
	RuleDataPropertyAssertion
	RuleNegativeDataPropertyAssertion

	RuleAnnotationAssertion
	RuleSubAnnotationPropertyOf
	RuleAnnotationPropertyDomain
	RuleAnnotationPropertyRange

	RuleDGAxiom
	RuleSWRLRule
)

var ruleNames = [...]string{
	"OntologyDocument", "PrefixDeclaration", "Ontology", "OntologyIRI", "VersionIRI", "Import",
	"IRI", "FullIRI", "AbbreviatedIRI", "PrefixName",
	"Declaration", "ClassDeclaration", "DatatypeDeclaration", "ObjectPropertyDeclaration",
	"DataPropertyDeclaration", "AnnotationPropertyDeclaration", "NamedIndividualDeclaration",
	"Class", "Datatype", "ObjectProperty", "DataProperty", "AnnotationProperty",
	"NamedIndividual", "AnonymousIndividual", "Individual",
	"ObjectPropertyExpression", "InverseObjectProperty", "SubObjectPropertyExpression",
	"PropertyExpressionChain",
	"ClassExpression", "ObjectIntersectionOf", "ObjectUnionOf", "ObjectComplementOf",
	"ObjectOneOf", "ObjectSomeValuesFrom", "ObjectAllValuesFrom", "ObjectHasValue",
	"ObjectHasSelf", "ObjectMinCardinality", "ObjectMaxCardinality", "ObjectExactCardinality",
	"DataSomeValuesFrom", "DataAllValuesFrom", "DataHasValue", "DataMinCardinality",
	"DataMaxCardinality", "DataExactCardinality",
	"DataRange", "DataIntersectionOf", "DataUnionOf", "DataComplementOf", "DataOneOf",
	"DatatypeRestriction", "FacetRestriction", "ConstrainingFacet",
	"Literal", "TypedLiteral", "StringLiteralNoLanguage", "StringLiteralWithLanguage",
	"QuotedString", "LangTag", "NonNegativeInteger",
	"Annotation", "Annotations", "AnnotationSubject", "AnnotationValue",
	"Axiom", "SubClassOf", "EquivalentClasses", "DisjointClasses", "DisjointUnion",
	"SubObjectPropertyOf", "EquivalentObjectProperties", "DisjointObjectProperties",
	"ObjectPropertyDomain", "ObjectPropertyRange", "InverseObjectProperties",
	"FunctionalObjectProperty", "InverseFunctionalObjectProperty", "ReflexiveObjectProperty",
	"IrreflexiveObjectProperty", "SymmetricObjectProperty", "AsymmetricObjectProperty",
	"TransitiveObjectProperty",
	"SubDataPropertyOf", "EquivalentDataProperties", "DisjointDataProperties",
	"DataPropertyDomain", "DataPropertyRange", "FunctionalDataProperty",
	"DatatypeDefinition", "HasKey",
	"SameIndividual", "DifferentIndividuals", "ClassAssertion", "ObjectPropertyAssertion",
	"NegativeObjectPropertyAssertion", "DataPropertyAssertion", "NegativeDataPropertyAssertion",
	"AnnotationAssertion", "SubAnnotationPropertyOf", "AnnotationPropertyDomain",
	"AnnotationPropertyRange",
	"DGAxiom", "SWRLRule",
}

func (r Rule) String() string {
	if r < 0 || int(r) >= len(ruleNames) {
		return "Rule(?)"
	}
	return ruleNames[r]
}

// Span records the byte offsets of a Node in the original source text, for
// attaching to lower.Error values.
type Span struct {
	Start, End int
}

// Node is one production instance in a parsed OFN document. Text carries
// the matched source text for leaf/token rules (IRIs, quoted strings,
// integers); Children carries the sub-productions for composite rules.
// The grammar never requires both on one node, but nothing here forbids
// it.
type Node struct {
	Rule     Rule
	Children []*Node
	Text     string
	Span     Span
}

// Child returns the i'th child of n, or nil if n has fewer than i+1
// children. It exists so lower's per-rule functions can index children
// without a repeated bounds check at every call site.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}
