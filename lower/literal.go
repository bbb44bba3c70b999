package lower

import (
	"strings"

	"github.com/kortschak/horned/ast"
	"github.com/kortschak/horned/parsetree"
)

// lowerLiteral dispatches RuleLiteral to one of its three concrete
// shapes. The grammar nests Literal inside Literal in some positions; a
// RuleLiteral wrapping another RuleLiteral is followed transparently.
func (c *Context) lowerLiteral(n *parsetree.Node) (ast.Literal, error) {
	if n == nil || n.Rule != parsetree.RuleLiteral {
		return nil, errUnexpectedRule(n, "Literal")
	}
	inner := n.Child(0)
	switch inner.Rule {
	case parsetree.RuleLiteral:
		return c.lowerLiteral(inner)
	case parsetree.RuleTypedLiteral:
		return c.lowerTypedLiteral(inner)
	case parsetree.RuleStringLiteralWithLanguage:
		return lowerStringLiteralWithLanguage(inner)
	case parsetree.RuleStringLiteralNoLanguage:
		return lowerStringLiteralNoLanguage(inner)
	default:
		return nil, errUnexpectedRule(inner, "TypedLiteral, StringLiteralWithLanguage, or StringLiteralNoLanguage")
	}
}

func (c *Context) lowerTypedLiteral(n *parsetree.Node) (ast.DatatypeLiteral, error) {
	value, err := lowerQuotedString(n.Child(0))
	if err != nil {
		return ast.DatatypeLiteral{}, err
	}
	dt, err := c.lowerDatatype(n.Child(1))
	if err != nil {
		return ast.DatatypeLiteral{}, err
	}
	return ast.DatatypeLiteral{Value: value, Datatype: dt.Name}, nil
}

func lowerStringLiteralWithLanguage(n *parsetree.Node) (ast.LanguageLiteral, error) {
	value, err := lowerQuotedString(n.Child(0))
	if err != nil {
		return ast.LanguageLiteral{}, err
	}
	tag := n.Child(1)
	if tag == nil {
		return ast.LanguageLiteral{}, errUnexpectedRule(n, "language tag")
	}
	lang := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(tag.Text), "@"))
	return ast.LanguageLiteral{Value: value, Lang: lang}, nil
}

func lowerStringLiteralNoLanguage(n *parsetree.Node) (ast.SimpleLiteral, error) {
	value, err := lowerQuotedString(n.Child(0))
	if err != nil {
		return ast.SimpleLiteral{}, err
	}
	return ast.SimpleLiteral{Value: value}, nil
}
