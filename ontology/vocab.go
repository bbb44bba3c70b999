package ontology

import (
	"github.com/kortschak/horned/ast"
	"github.com/kortschak/horned/iri"
)

const (
	owlNS  = "http://www.w3.org/2002/07/owl#"
	rdfsNS = "http://www.w3.org/2000/01/rdf-schema#"
	xsdNS  = "http://www.w3.org/2001/XMLSchema#"
	rdfNS  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
)

// builtIn is the closed table of OWL 2 vocabulary entities that are
// always considered declared, consulted by FindDeclarationKind when no
// explicit Declare* axiom is present for an IRI.
var builtIn = map[iri.IRI]ast.NamedEntityKind{
	owlNS + "Thing":                ast.ClassEntity,
	owlNS + "Nothing":              ast.ClassEntity,
	owlNS + "topObjectProperty":    ast.ObjectPropertyEntity,
	owlNS + "bottomObjectProperty": ast.ObjectPropertyEntity,
	owlNS + "topDataProperty":      ast.DataPropertyEntity,
	owlNS + "bottomDataProperty":   ast.DataPropertyEntity,

	rdfsNS + "Literal": ast.DatatypeEntity,
	rdfNS + "PlainLiteral": ast.DatatypeEntity,
	rdfNS + "langString":   ast.DatatypeEntity,

	xsdNS + "string":             ast.DatatypeEntity,
	xsdNS + "boolean":            ast.DatatypeEntity,
	xsdNS + "decimal":            ast.DatatypeEntity,
	xsdNS + "integer":            ast.DatatypeEntity,
	xsdNS + "nonNegativeInteger": ast.DatatypeEntity,
	xsdNS + "double":             ast.DatatypeEntity,
	xsdNS + "float":              ast.DatatypeEntity,
	xsdNS + "dateTime":           ast.DatatypeEntity,
	xsdNS + "hexBinary":          ast.DatatypeEntity,
	xsdNS + "base64Binary":       ast.DatatypeEntity,
	xsdNS + "anyURI":             ast.DatatypeEntity,
}

// BuiltIn reports the NamedEntityKind of id if it names a built-in OWL 2
// or XSD vocabulary term.
func BuiltIn(id iri.IRI) (ast.NamedEntityKind, bool) {
	k, ok := builtIn[id]
	return k, ok
}
