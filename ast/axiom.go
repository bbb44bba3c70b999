package ast

// AxiomKind coarsely tags every Component so the indexed ontology
// (package ontology) can group components without a type switch at every
// call site.
type AxiomKind int

const (
	DeclareClassKind AxiomKind = iota
	DeclareDatatypeKind
	DeclareObjectPropertyKind
	DeclareDataPropertyKind
	DeclareAnnotationPropertyKind
	DeclareNamedIndividualKind

	SubClassOfKind
	EquivalentClassesKind
	DisjointClassesKind
	DisjointUnionKind

	SubObjectPropertyOfKind
	EquivalentObjectPropertiesKind
	DisjointObjectPropertiesKind
	ObjectPropertyDomainKind
	ObjectPropertyRangeKind
	InverseObjectPropertiesKind
	FunctionalObjectPropertyKind
	InverseFunctionalObjectPropertyKind
	ReflexiveObjectPropertyKind
	IrreflexiveObjectPropertyKind
	SymmetricObjectPropertyKind
	AsymmetricObjectPropertyKind
	TransitiveObjectPropertyKind

	SubDataPropertyOfKind
	EquivalentDataPropertiesKind
	DisjointDataPropertiesKind
	DataPropertyDomainKind
	DataPropertyRangeKind
	FunctionalDataPropertyKind

	DatatypeDefinitionKind
	HasKeyKind

	SameIndividualKind
	DifferentIndividualsKind
	ClassAssertionKind
	ObjectPropertyAssertionKind
	NegativeObjectPropertyAssertionKind
	DataPropertyAssertionKind
	NegativeDataPropertyAssertionKind

	AnnotationAssertionKind
	SubAnnotationPropertyOfKind
	AnnotationPropertyDomainKind
	AnnotationPropertyRangeKind

	OntologyIDKind
	ImportKind
	OntologyAnnotationKind
)

var axiomKindNames = [...]string{
	"DeclareClass", "DeclareDatatype", "DeclareObjectProperty", "DeclareDataProperty",
	"DeclareAnnotationProperty", "DeclareNamedIndividual",
	"SubClassOf", "EquivalentClasses", "DisjointClasses", "DisjointUnion",
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
	"OntologyID", "Import", "OntologyAnnotation",
}

func (k AxiomKind) String() string {
	if k < 0 || int(k) >= len(axiomKindNames) {
		return "AxiomKind(?)"
	}
	return axiomKindNames[k]
}

// Component is any top-level item of an ontology: a declaration, an
// axiom, an import, or an ontology-level annotation. Component values
// never carry the annotations attached to them in source, that being
// AnnotatedComponent's job, so two Components of the same Kind are
// logically equal precisely when they are equal as Go values
// (reflect.DeepEqual), with no separate annotation-stripping step
// required.
type Component interface {
	Kind() AxiomKind
}

// Declarations.
type DeclareClass struct{ Class Class }
type DeclareDatatype struct{ Datatype Datatype }
type DeclareObjectProperty struct{ ObjectProperty ObjectProperty }
type DeclareDataProperty struct{ DataProperty DataProperty }
type DeclareAnnotationProperty struct{ AnnotationProperty AnnotationProperty }
type DeclareNamedIndividual struct{ NamedIndividual NamedIndividual }

func (DeclareClass) Kind() AxiomKind              { return DeclareClassKind }
func (DeclareDatatype) Kind() AxiomKind           { return DeclareDatatypeKind }
func (DeclareObjectProperty) Kind() AxiomKind     { return DeclareObjectPropertyKind }
func (DeclareDataProperty) Kind() AxiomKind       { return DeclareDataPropertyKind }
func (DeclareAnnotationProperty) Kind() AxiomKind { return DeclareAnnotationPropertyKind }
func (DeclareNamedIndividual) Kind() AxiomKind    { return DeclareNamedIndividualKind }

// Class axioms.

// SubClassOf stores (Super, Sub) even though OFN surface syntax writes
// SubClassOf(sub, sup); the lowering engine swaps the operands on the
// way in.
type SubClassOf struct {
	Super ClassExpression
	Sub   ClassExpression
}
type EquivalentClasses struct{ Classes []ClassExpression }
type DisjointClasses struct{ Classes []ClassExpression }
type DisjointUnion struct {
	Class     Class
	Disjoint  []ClassExpression
}

func (SubClassOf) Kind() AxiomKind         { return SubClassOfKind }
func (EquivalentClasses) Kind() AxiomKind  { return EquivalentClassesKind }
func (DisjointClasses) Kind() AxiomKind    { return DisjointClassesKind }
func (DisjointUnion) Kind() AxiomKind      { return DisjointUnionKind }

// Object property axioms.
type SubObjectPropertyOf struct {
	Super ObjectPropertyExpression
	Sub   SubObjectPropertyExpression
}
type EquivalentObjectProperties struct{ Properties []ObjectPropertyExpression }
type DisjointObjectProperties struct{ Properties []ObjectPropertyExpression }
type ObjectPropertyDomain struct {
	OPE ObjectPropertyExpression
	CE  ClassExpression
}
type ObjectPropertyRange struct {
	OPE ObjectPropertyExpression
	CE  ClassExpression
}
type InverseObjectProperties struct{ First, Second ObjectPropertyExpression }
type FunctionalObjectProperty struct{ OPE ObjectPropertyExpression }
type InverseFunctionalObjectProperty struct{ OPE ObjectPropertyExpression }
type ReflexiveObjectProperty struct{ OPE ObjectPropertyExpression }
type IrreflexiveObjectProperty struct{ OPE ObjectPropertyExpression }
type SymmetricObjectProperty struct{ OPE ObjectPropertyExpression }
type AsymmetricObjectProperty struct{ OPE ObjectPropertyExpression }
type TransitiveObjectProperty struct{ OPE ObjectPropertyExpression }

func (SubObjectPropertyOf) Kind() AxiomKind             { return SubObjectPropertyOfKind }
func (EquivalentObjectProperties) Kind() AxiomKind      { return EquivalentObjectPropertiesKind }
func (DisjointObjectProperties) Kind() AxiomKind        { return DisjointObjectPropertiesKind }
func (ObjectPropertyDomain) Kind() AxiomKind            { return ObjectPropertyDomainKind }
func (ObjectPropertyRange) Kind() AxiomKind             { return ObjectPropertyRangeKind }
func (InverseObjectProperties) Kind() AxiomKind         { return InverseObjectPropertiesKind }
func (FunctionalObjectProperty) Kind() AxiomKind        { return FunctionalObjectPropertyKind }
func (InverseFunctionalObjectProperty) Kind() AxiomKind { return InverseFunctionalObjectPropertyKind }
func (ReflexiveObjectProperty) Kind() AxiomKind         { return ReflexiveObjectPropertyKind }
func (IrreflexiveObjectProperty) Kind() AxiomKind       { return IrreflexiveObjectPropertyKind }
func (SymmetricObjectProperty) Kind() AxiomKind         { return SymmetricObjectPropertyKind }
func (AsymmetricObjectProperty) Kind() AxiomKind        { return AsymmetricObjectPropertyKind }
func (TransitiveObjectProperty) Kind() AxiomKind        { return TransitiveObjectPropertyKind }

// Data property axioms.
type SubDataPropertyOf struct{ Super, Sub DataProperty }
type EquivalentDataProperties struct{ Properties []DataProperty }
type DisjointDataProperties struct{ Properties []DataProperty }
type DataPropertyDomain struct {
	DP DataProperty
	CE ClassExpression
}
type DataPropertyRange struct {
	DP DataProperty
	DR DataRange
}
type FunctionalDataProperty struct{ DP DataProperty }

func (SubDataPropertyOf) Kind() AxiomKind        { return SubDataPropertyOfKind }
func (EquivalentDataProperties) Kind() AxiomKind { return EquivalentDataPropertiesKind }
func (DisjointDataProperties) Kind() AxiomKind   { return DisjointDataPropertiesKind }
func (DataPropertyDomain) Kind() AxiomKind       { return DataPropertyDomainKind }
func (DataPropertyRange) Kind() AxiomKind        { return DataPropertyRangeKind }
func (FunctionalDataProperty) Kind() AxiomKind   { return FunctionalDataPropertyKind }

// DatatypeDefinition equates Datatype with Range.
type DatatypeDefinition struct {
	Datatype Datatype
	Range    DataRange
}

func (DatatypeDefinition) Kind() AxiomKind { return DatatypeDefinitionKind }

// HasKey partitions its property expressions into an object-property
// side and a data-property side. Both may be empty but not
// simultaneously in well-formed input; neither this type nor the
// lowering engine checks that.
type HasKey struct {
	CE               ClassExpression
	ObjectProperties []ObjectPropertyExpression
	DataProperties   []DataProperty
}

func (HasKey) Kind() AxiomKind { return HasKeyKind }

// Assertions.
type SameIndividual struct{ Individuals []Individual }
type DifferentIndividuals struct{ Individuals []Individual }
type ClassAssertion struct {
	CE         ClassExpression
	Individual Individual
}
type ObjectPropertyAssertion struct {
	OPE            ObjectPropertyExpression
	Source, Target Individual
}
type NegativeObjectPropertyAssertion struct {
	OPE            ObjectPropertyExpression
	Source, Target Individual
}
type DataPropertyAssertion struct {
	DP     DataProperty
	Source Individual
	Target Literal
}
type NegativeDataPropertyAssertion struct {
	DP     DataProperty
	Source Individual
	Target Literal
}

func (SameIndividual) Kind() AxiomKind                  { return SameIndividualKind }
func (DifferentIndividuals) Kind() AxiomKind            { return DifferentIndividualsKind }
func (ClassAssertion) Kind() AxiomKind                  { return ClassAssertionKind }
func (ObjectPropertyAssertion) Kind() AxiomKind         { return ObjectPropertyAssertionKind }
func (NegativeObjectPropertyAssertion) Kind() AxiomKind { return NegativeObjectPropertyAssertionKind }
func (DataPropertyAssertion) Kind() AxiomKind           { return DataPropertyAssertionKind }
func (NegativeDataPropertyAssertion) Kind() AxiomKind   { return NegativeDataPropertyAssertionKind }

// Annotation axioms.
type AnnotationAssertion struct {
	Subject  AnnotationSubject
	Property AnnotationProperty
	Value    AnnotationValue
}
type SubAnnotationPropertyOf struct{ Super, Sub AnnotationProperty }
type AnnotationPropertyDomain struct {
	Property AnnotationProperty
	IRI      IRI
}
type AnnotationPropertyRange struct {
	Property AnnotationProperty
	IRI      IRI
}

func (AnnotationAssertion) Kind() AxiomKind      { return AnnotationAssertionKind }
func (SubAnnotationPropertyOf) Kind() AxiomKind  { return SubAnnotationPropertyOfKind }
func (AnnotationPropertyDomain) Kind() AxiomKind { return AnnotationPropertyDomainKind }
func (AnnotationPropertyRange) Kind() AxiomKind  { return AnnotationPropertyRangeKind }

// Ontology header components.

// OntologyID names an ontology and, optionally, its version. Both fields
// are nil when the ontology is anonymous.
type OntologyID struct {
	IRI        *IRI
	VersionIRI *IRI
}
type Import struct{ IRI IRI }
type OntologyAnnotation struct{ Annotation Annotation }

func (OntologyID) Kind() AxiomKind         { return OntologyIDKind }
func (Import) Kind() AxiomKind             { return ImportKind }
func (OntologyAnnotation) Kind() AxiomKind { return OntologyAnnotationKind }

// AnnotatedComponent pairs a Component with the set of annotations
// attached to it in source.
type AnnotatedComponent struct {
	Component Component
	Ann       AnnotationSet
}

// Kind returns the AxiomKind of the wrapped Component.
func (ac AnnotatedComponent) Kind() AxiomKind { return ac.Component.Kind() }
