package lower

import (
	"github.com/kortschak/horned/ast"
	"github.com/kortschak/horned/parsetree"
)

var facetIRIs = [...]string{
	"http://www.w3.org/2001/XMLSchema#minInclusive",
	"http://www.w3.org/2001/XMLSchema#maxInclusive",
	"http://www.w3.org/2001/XMLSchema#minExclusive",
	"http://www.w3.org/2001/XMLSchema#maxExclusive",
	"http://www.w3.org/2001/XMLSchema#length",
	"http://www.w3.org/2001/XMLSchema#minLength",
	"http://www.w3.org/2001/XMLSchema#maxLength",
	"http://www.w3.org/2001/XMLSchema#pattern",
	"http://www.w3.org/1999/02/22-rdf-syntax-ns#langRange",
	"http://www.w3.org/2001/XMLSchema#totalDigits",
	"http://www.w3.org/2001/XMLSchema#fractionDigits",
}

func (c *Context) lowerDataRange(n *parsetree.Node) (ast.DataRange, error) {
	if n == nil || n.Rule != parsetree.RuleDataRange {
		return nil, errUnexpectedRule(n, "DataRange")
	}
	inner := n.Child(0)
	switch inner.Rule {
	case parsetree.RuleDatatype:
		return c.lowerDatatype(inner)
	case parsetree.RuleDataIntersectionOf:
		return c.lowerDataRangeList(inner, func(ops []ast.DataRange) ast.DataRange {
			return ast.DataIntersectionOf{Operands: ops}
		})
	case parsetree.RuleDataUnionOf:
		return c.lowerDataRangeList(inner, func(ops []ast.DataRange) ast.DataRange {
			return ast.DataUnionOf{Operands: ops}
		})
	case parsetree.RuleDataComplementOf:
		operand, err := c.lowerDataRange(inner.Child(0))
		if err != nil {
			return nil, err
		}
		return ast.DataComplementOf{Operand: operand}, nil
	case parsetree.RuleDataOneOf:
		lits := make([]ast.Literal, 0, len(inner.Children))
		for _, child := range inner.Children {
			l, err := c.lowerLiteral(child)
			if err != nil {
				return nil, err
			}
			lits = append(lits, l)
		}
		return ast.DataOneOf{Literals: lits}, nil
	case parsetree.RuleDatatypeRestriction:
		base, err := c.lowerDatatype(inner.Child(0))
		if err != nil {
			return nil, err
		}
		restrictions := make([]ast.FacetRestriction, 0, len(inner.Children)-1)
		for _, child := range inner.Children[1:] {
			fr, err := c.lowerFacetRestriction(child)
			if err != nil {
				return nil, err
			}
			restrictions = append(restrictions, fr)
		}
		return ast.DatatypeRestriction{Base: base, Restrictions: restrictions}, nil
	default:
		return nil, errUnexpectedRule(inner, "a DataRange variant")
	}
}

func (c *Context) lowerDataRangeList(n *parsetree.Node, build func([]ast.DataRange) ast.DataRange) (ast.DataRange, error) {
	ops := make([]ast.DataRange, 0, len(n.Children))
	for _, child := range n.Children {
		dr, err := c.lowerDataRange(child)
		if err != nil {
			return nil, err
		}
		ops = append(ops, dr)
	}
	return build(ops), nil
}

func (c *Context) lowerFacetRestriction(n *parsetree.Node) (ast.FacetRestriction, error) {
	if n == nil || n.Rule != parsetree.RuleFacetRestriction {
		return ast.FacetRestriction{}, errUnexpectedRule(n, "FacetRestriction")
	}
	f, err := c.lowerFacet(n.Child(0))
	if err != nil {
		return ast.FacetRestriction{}, err
	}
	l, err := c.lowerLiteral(n.Child(1))
	if err != nil {
		return ast.FacetRestriction{}, err
	}
	return ast.FacetRestriction{Facet: f, Literal: l}, nil
}

// lowerFacet resolves a ConstrainingFacet IRI against the closed set of
// OWL 2 constraining facets, reporting InvalidFacet for anything else.
func (c *Context) lowerFacet(n *parsetree.Node) (ast.Facet, error) {
	if n == nil || n.Rule != parsetree.RuleConstrainingFacet {
		return 0, errUnexpectedRule(n, "ConstrainingFacet")
	}
	id, err := c.lowerIRI(n.Child(0))
	if err != nil {
		return 0, err
	}
	for i, want := range facetIRIs {
		if string(id) == want {
			return ast.Facet(i), nil
		}
	}
	return 0, &Error{Kind: InvalidFacetKind, Span: n.Span, Msg: string(id)}
}
