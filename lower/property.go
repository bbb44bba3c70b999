package lower

import (
	"github.com/kortschak/horned/ast"
	"github.com/kortschak/horned/parsetree"
)

func (c *Context) lowerObjectPropertyExpression(n *parsetree.Node) (ast.ObjectPropertyExpression, error) {
	if n == nil || n.Rule != parsetree.RuleObjectPropertyExpression {
		return nil, errUnexpectedRule(n, "ObjectPropertyExpression")
	}
	inner := n.Child(0)
	switch inner.Rule {
	case parsetree.RuleObjectProperty:
		return c.lowerObjectProperty(inner)
	case parsetree.RuleInverseObjectProperty:
		op, err := c.lowerObjectProperty(inner.Child(0))
		if err != nil {
			return nil, err
		}
		return ast.InverseObjectProperty{ObjectProperty: op}, nil
	default:
		return nil, errUnexpectedRule(inner, "ObjectProperty or InverseObjectProperty")
	}
}

// lowerSubObjectPropertyExpression lowers the sub-side of a
// SubObjectPropertyOf axiom: either a single ObjectPropertyExpression or
// a PropertyExpressionChain of two or more.
func (c *Context) lowerSubObjectPropertyExpression(n *parsetree.Node) (ast.SubObjectPropertyExpression, error) {
	if n == nil || n.Rule != parsetree.RuleSubObjectPropertyExpression {
		return nil, errUnexpectedRule(n, "SubObjectPropertyExpression")
	}
	inner := n.Child(0)
	switch inner.Rule {
	case parsetree.RuleObjectPropertyExpression:
		ope, err := c.lowerObjectPropertyExpression(inner)
		if err != nil {
			return nil, err
		}
		return ope.(ast.SubObjectPropertyExpression), nil
	case parsetree.RulePropertyExpressionChain:
		chain := make([]ast.ObjectPropertyExpression, 0, len(inner.Children))
		for _, child := range inner.Children {
			ope, err := c.lowerObjectPropertyExpression(child)
			if err != nil {
				return nil, err
			}
			chain = append(chain, ope)
		}
		return ast.PropertyExpressionChain{Chain: chain}, nil
	default:
		return nil, errUnexpectedRule(inner, "ObjectPropertyExpression or PropertyExpressionChain")
	}
}
