package ast

import "github.com/kortschak/horned/iri"

// Literal is one of SimpleLiteral, LanguageLiteral, or DatatypeLiteral.
type Literal interface {
	isLiteral()
	isAnnotationValue()
}

// SimpleLiteral is a plain string literal with no language tag or
// datatype.
type SimpleLiteral struct {
	Value string
}

func (SimpleLiteral) isLiteral()         {}
func (SimpleLiteral) isAnnotationValue() {}

// LanguageLiteral is a string literal tagged with a BCP-47 language tag.
// Lang never carries the leading '@' the surface syntax uses.
type LanguageLiteral struct {
	Value string
	Lang  string
}

func (LanguageLiteral) isLiteral()         {}
func (LanguageLiteral) isAnnotationValue() {}

// DatatypeLiteral is a lexical form tagged with a datatype IRI.
type DatatypeLiteral struct {
	Value    string
	Datatype iri.IRI
}

func (DatatypeLiteral) isLiteral()         {}
func (DatatypeLiteral) isAnnotationValue() {}
