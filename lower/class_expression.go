package lower

import (
	"github.com/kortschak/horned/ast"
	"github.com/kortschak/horned/parsetree"
)

// lowerClassExpression dispatches RuleClassExpression to one of its
// eighteen concrete shapes.
func (c *Context) lowerClassExpression(n *parsetree.Node) (ast.ClassExpression, error) {
	if n == nil || n.Rule != parsetree.RuleClassExpression {
		return nil, errUnexpectedRule(n, "ClassExpression")
	}
	inner := n.Child(0)
	switch inner.Rule {
	case parsetree.RuleClass:
		return c.lowerClass(inner)
	case parsetree.RuleObjectIntersectionOf:
		return c.lowerClassExpressionList(inner, func(ops []ast.ClassExpression) ast.ClassExpression {
			return ast.ObjectIntersectionOf{Operands: ops}
		})
	case parsetree.RuleObjectUnionOf:
		return c.lowerClassExpressionList(inner, func(ops []ast.ClassExpression) ast.ClassExpression {
			return ast.ObjectUnionOf{Operands: ops}
		})
	case parsetree.RuleObjectComplementOf:
		operand, err := c.lowerClassExpression(inner.Child(0))
		if err != nil {
			return nil, err
		}
		return ast.ObjectComplementOf{Operand: operand}, nil
	case parsetree.RuleObjectOneOf:
		individuals := make([]ast.Individual, 0, len(inner.Children))
		for _, child := range inner.Children {
			ind, err := c.lowerIndividual(child)
			if err != nil {
				return nil, err
			}
			individuals = append(individuals, ind)
		}
		return ast.ObjectOneOf{Individuals: individuals}, nil
	case parsetree.RuleObjectSomeValuesFrom:
		ope, ce, err := c.lowerOPEAndCE(inner)
		if err != nil {
			return nil, err
		}
		return ast.ObjectSomeValuesFrom{OPE: ope, CE: ce}, nil
	case parsetree.RuleObjectAllValuesFrom:
		ope, ce, err := c.lowerOPEAndCE(inner)
		if err != nil {
			return nil, err
		}
		return ast.ObjectAllValuesFrom{OPE: ope, CE: ce}, nil
	case parsetree.RuleObjectHasValue:
		ope, err := c.lowerObjectPropertyExpression(inner.Child(0))
		if err != nil {
			return nil, err
		}
		ind, err := c.lowerIndividual(inner.Child(1))
		if err != nil {
			return nil, err
		}
		return ast.ObjectHasValue{OPE: ope, Individual: ind}, nil
	case parsetree.RuleObjectHasSelf:
		ope, err := c.lowerObjectPropertyExpression(inner.Child(0))
		if err != nil {
			return nil, err
		}
		return ast.ObjectHasSelf{OPE: ope}, nil
	case parsetree.RuleObjectMinCardinality:
		return c.lowerObjectCardinality(inner, func(n uint32, ope ast.ObjectPropertyExpression, ce ast.ClassExpression) ast.ClassExpression {
			return ast.ObjectMinCardinality{N: n, OPE: ope, CE: ce}
		})
	case parsetree.RuleObjectMaxCardinality:
		return c.lowerObjectCardinality(inner, func(n uint32, ope ast.ObjectPropertyExpression, ce ast.ClassExpression) ast.ClassExpression {
			return ast.ObjectMaxCardinality{N: n, OPE: ope, CE: ce}
		})
	case parsetree.RuleObjectExactCardinality:
		return c.lowerObjectCardinality(inner, func(n uint32, ope ast.ObjectPropertyExpression, ce ast.ClassExpression) ast.ClassExpression {
			return ast.ObjectExactCardinality{N: n, OPE: ope, CE: ce}
		})
	case parsetree.RuleDataSomeValuesFrom:
		return c.lowerDataValuesFrom(inner, func(dp ast.DataProperty, dr ast.DataRange) ast.ClassExpression {
			return ast.DataSomeValuesFrom{DP: dp, DR: dr}
		})
	case parsetree.RuleDataAllValuesFrom:
		return c.lowerDataValuesFrom(inner, func(dp ast.DataProperty, dr ast.DataRange) ast.ClassExpression {
			return ast.DataAllValuesFrom{DP: dp, DR: dr}
		})
	case parsetree.RuleDataHasValue:
		dp, err := c.lowerDataProperty(inner.Child(0))
		if err != nil {
			return nil, err
		}
		l, err := c.lowerLiteral(inner.Child(1))
		if err != nil {
			return nil, err
		}
		return ast.DataHasValue{DP: dp, L: l}, nil
	case parsetree.RuleDataMinCardinality:
		return c.lowerDataCardinality(inner, func(n uint32, dp ast.DataProperty, dr ast.DataRange) ast.ClassExpression {
			return ast.DataMinCardinality{N: n, DP: dp, DR: dr}
		})
	case parsetree.RuleDataMaxCardinality:
		return c.lowerDataCardinality(inner, func(n uint32, dp ast.DataProperty, dr ast.DataRange) ast.ClassExpression {
			return ast.DataMaxCardinality{N: n, DP: dp, DR: dr}
		})
	case parsetree.RuleDataExactCardinality:
		return c.lowerDataCardinality(inner, func(n uint32, dp ast.DataProperty, dr ast.DataRange) ast.ClassExpression {
			return ast.DataExactCardinality{N: n, DP: dp, DR: dr}
		})
	default:
		return nil, errUnexpectedRule(inner, "a ClassExpression variant")
	}
}

func (c *Context) lowerClassExpressionList(n *parsetree.Node, build func([]ast.ClassExpression) ast.ClassExpression) (ast.ClassExpression, error) {
	ops := make([]ast.ClassExpression, 0, len(n.Children))
	for _, child := range n.Children {
		ce, err := c.lowerClassExpression(child)
		if err != nil {
			return nil, err
		}
		ops = append(ops, ce)
	}
	return build(ops), nil
}

func (c *Context) lowerOPEAndCE(n *parsetree.Node) (ast.ObjectPropertyExpression, ast.ClassExpression, error) {
	ope, err := c.lowerObjectPropertyExpression(n.Child(0))
	if err != nil {
		return nil, nil, err
	}
	ce, err := c.lowerClassExpression(n.Child(1))
	if err != nil {
		return nil, nil, err
	}
	return ope, ce, nil
}

// lowerObjectCardinality lowers {Min,Max,Exact}Cardinality for object
// properties: cardinality, property expression, and an optional filler
// class expression defaulting to owl:Thing when omitted.
func (c *Context) lowerObjectCardinality(n *parsetree.Node, build func(uint32, ast.ObjectPropertyExpression, ast.ClassExpression) ast.ClassExpression) (ast.ClassExpression, error) {
	num, err := lowerNonNegativeInteger(n.Child(0))
	if err != nil {
		return nil, err
	}
	ope, err := c.lowerObjectPropertyExpression(n.Child(1))
	if err != nil {
		return nil, err
	}
	var ce ast.ClassExpression
	if filler := n.Child(2); filler != nil {
		ce, err = c.lowerClassExpression(filler)
		if err != nil {
			return nil, err
		}
	} else {
		ce = c.owlThing()
	}
	return build(num, ope, ce), nil
}

// lowerDataCardinality is the data-property analogue of
// lowerObjectCardinality, defaulting the omitted filler to
// rdfs:Literal.
func (c *Context) lowerDataCardinality(n *parsetree.Node, build func(uint32, ast.DataProperty, ast.DataRange) ast.ClassExpression) (ast.ClassExpression, error) {
	num, err := lowerNonNegativeInteger(n.Child(0))
	if err != nil {
		return nil, err
	}
	dp, err := c.lowerDataProperty(n.Child(1))
	if err != nil {
		return nil, err
	}
	var dr ast.DataRange
	if filler := n.Child(2); filler != nil {
		dr, err = c.lowerDataRange(filler)
		if err != nil {
			return nil, err
		}
	} else {
		dr = c.rdfsLiteral()
	}
	return build(num, dp, dr), nil
}

// lowerDataValuesFrom lowers DataSomeValuesFrom/DataAllValuesFrom. The
// grammar also admits a data-property chain (two or more DataProperty
// children before the DataRange); the AST has no variant for that shape,
// so a chain is reported as UnsupportedConstruct rather than silently
// dropped or guessed at.
func (c *Context) lowerDataValuesFrom(n *parsetree.Node, build func(ast.DataProperty, ast.DataRange) ast.ClassExpression) (ast.ClassExpression, error) {
	dp, err := c.lowerDataProperty(n.Child(0))
	if err != nil {
		return nil, err
	}
	next := n.Child(1)
	if next != nil && next.Rule == parsetree.RuleDataProperty {
		return nil, errUnsupported(next, "data property chaining in DataSomeValuesFrom/DataAllValuesFrom is not supported")
	}
	dr, err := c.lowerDataRange(next)
	if err != nil {
		return nil, err
	}
	return build(dp, dr), nil
}
