package lower

import (
	"strconv"
	"strings"

	"github.com/kortschak/horned/ast"
	"github.com/kortschak/horned/curie"
	"github.com/kortschak/horned/iri"
	"github.com/kortschak/horned/parsetree"
)

// Context carries the state shared by every lowering function for a
// single document: the IRI interning store and the active prefix map.
// It has no exported fields; Document builds one for each call.
type Context struct {
	store    *iri.Store
	prefixes *curie.Map
}

func newContext(prefixes *curie.Map) *Context {
	return &Context{store: iri.NewStore(), prefixes: prefixes}
}

// lowerIRI dispatches on the RuleIRI node's single child: RuleFullIRI or
// RuleAbbreviatedIRI.
func (c *Context) lowerIRI(n *parsetree.Node) (iri.IRI, error) {
	if n == nil || n.Rule != parsetree.RuleIRI {
		return "", errUnexpectedRule(n, "IRI")
	}
	inner := n.Child(0)
	switch inner.Rule {
	case parsetree.RuleFullIRI:
		return c.store.IRI(inner.Text), nil
	case parsetree.RuleAbbreviatedIRI:
		return c.lowerAbbreviatedIRI(inner)
	default:
		return "", errUnexpectedRule(inner, "FullIRI or AbbreviatedIRI")
	}
}

// lowerAbbreviatedIRI expects n.Text to carry the CURIE token
// "prefix:local" (or ":local" for the default prefix), split here on the
// first colon and resolved through the active prefix map.
func (c *Context) lowerAbbreviatedIRI(n *parsetree.Node) (iri.IRI, error) {
	prefix, local := splitCurie(n.Text)
	span := curie.Span{Start: n.Span.Start, End: n.Span.End}
	expanded, err := c.prefixes.Expand(prefix, local, span)
	if err != nil {
		switch e := err.(type) {
		case *curie.UndefinedPrefix:
			return "", &Error{Kind: UndefinedPrefixKind, Span: n.Span, Msg: e.Name}
		case *curie.MissingDefault:
			return "", &Error{Kind: MissingDefaultKind, Span: n.Span}
		default:
			return "", err
		}
	}
	return c.store.IRI(string(expanded)), nil
}

func splitCurie(text string) (prefix, local string) {
	i := strings.IndexByte(text, ':')
	if i < 0 {
		return "", text
	}
	return text[:i], text[i+1:]
}

// lowerQuotedString strips the surrounding quote characters the grammar
// leaves in place and unescapes \\ and \". No other escape sequence is
// processed; anything else after a backslash is preserved verbatim.
func lowerQuotedString(n *parsetree.Node) (string, error) {
	if n == nil || n.Rule != parsetree.RuleQuotedString {
		return "", errUnexpectedRule(n, "QuotedString")
	}
	s := n.Text
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if strings.Contains(s, `\\`) || strings.Contains(s, `\"`) {
		s = strings.ReplaceAll(s, `\\`, `\`)
		s = strings.ReplaceAll(s, `\"`, `"`)
	}
	return s, nil
}

// lowerNonNegativeInteger parses a RuleNonNegativeInteger leaf's matched
// digits as a uint32, for cardinality restrictions.
func lowerNonNegativeInteger(n *parsetree.Node) (uint32, error) {
	if n == nil || n.Rule != parsetree.RuleNonNegativeInteger {
		return 0, errUnexpectedRule(n, "NonNegativeInteger")
	}
	v, err := strconv.ParseUint(n.Text, 10, 32)
	if err != nil {
		return 0, &Error{Kind: ParseErrorKind, Span: n.Span, Msg: err.Error()}
	}
	return uint32(v), nil
}

// owlThing and rdfsLiteral are the materialized fillers for omitted
// cardinality operands.
func (c *Context) owlThing() ast.ClassExpression {
	return ast.Class{Name: c.store.IRI("http://www.w3.org/2002/07/owl#Thing")}
}

func (c *Context) rdfsLiteral() ast.DataRange {
	return ast.Datatype{Name: c.store.IRI("http://www.w3.org/2000/01/rdf-schema#Literal")}
}
