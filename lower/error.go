// Package lower turns a parsetree.Node rooted at RuleOntologyDocument
// into an *ontology.Ontology and its curie.Map. Every rule the grammar
// can produce is handled explicitly; a rule found where no case accepts
// it is an internal inconsistency reported as a parse error, never a
// silent skip.
package lower

import (
	"fmt"

	"github.com/kortschak/horned/parsetree"
)

// ErrorKind classifies what went wrong while lowering a parse tree.
type ErrorKind int

const (
	// ParseErrorKind covers a node whose Rule does not belong where it
	// was found: a from-pair mismatch the parser itself should have
	// prevented, surfaced defensively.
	ParseErrorKind ErrorKind = iota
	UndefinedPrefixKind
	MissingDefaultKind
	InvalidFacetKind
	UnsupportedConstructKind
)

func (k ErrorKind) String() string {
	switch k {
	case ParseErrorKind:
		return "parse error"
	case UndefinedPrefixKind:
		return "undefined prefix"
	case MissingDefaultKind:
		return "missing default prefix"
	case InvalidFacetKind:
		return "invalid facet"
	case UnsupportedConstructKind:
		return "unsupported construct"
	default:
		return "lower error"
	}
}

// Error is returned by every lowering function that can fail. It always
// carries the span of the offending node so a caller can point back at
// source text.
type Error struct {
	Kind ErrorKind
	Span parsetree.Span
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s at %d:%d", e.Kind, e.Span.Start, e.Span.End)
	}
	return fmt.Sprintf("%s at %d:%d: %s", e.Kind, e.Span.Start, e.Span.End, e.Msg)
}

func errUnsupported(n *parsetree.Node, msg string) error {
	return &Error{Kind: UnsupportedConstructKind, Span: n.Span, Msg: msg}
}

func errUnexpectedRule(n *parsetree.Node, want string) error {
	got := "<nil>"
	if n != nil {
		got = n.Rule.String()
	}
	return &Error{Kind: ParseErrorKind, Span: spanOf(n), Msg: fmt.Sprintf("expected %s, got %s", want, got)}
}

func spanOf(n *parsetree.Node) parsetree.Span {
	if n == nil {
		return parsetree.Span{}
	}
	return n.Span
}
