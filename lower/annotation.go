package lower

import (
	"github.com/kortschak/horned/ast"
	"github.com/kortschak/horned/parsetree"
)

// lowerAnnotations lowers a RuleAnnotations block - the first child of
// every Axiom and Declaration node - into an AnnotationSet. An empty
// block lowers to an empty set.
func (c *Context) lowerAnnotations(n *parsetree.Node) (ast.AnnotationSet, error) {
	if n == nil || n.Rule != parsetree.RuleAnnotations {
		return ast.AnnotationSet{}, errUnexpectedRule(n, "Annotations")
	}
	var anns []ast.Annotation
	for _, child := range n.Children {
		a, err := c.lowerAnnotation(child)
		if err != nil {
			return ast.AnnotationSet{}, err
		}
		anns = append(anns, a)
	}
	return ast.NewAnnotationSet(anns...), nil
}

// lowerAnnotation lowers a bare Annotation node. Annotations may
// themselves carry a nested Annotations block in the grammar; that
// nested block is parsed and then discarded. Only the Annotations block
// in the outer position of an axiom survives into the AST.
func (c *Context) lowerAnnotation(n *parsetree.Node) (ast.Annotation, error) {
	if n == nil || n.Rule != parsetree.RuleAnnotation {
		return ast.Annotation{}, errUnexpectedRule(n, "Annotation")
	}
	if _, err := c.lowerAnnotations(n.Child(0)); err != nil {
		return ast.Annotation{}, err
	}
	prop, err := c.lowerAnnotationProperty(n.Child(1))
	if err != nil {
		return ast.Annotation{}, err
	}
	val, err := c.lowerAnnotationValue(n.Child(2))
	if err != nil {
		return ast.Annotation{}, err
	}
	return ast.Annotation{Property: prop, Value: val}, nil
}

func (c *Context) lowerAnnotationSubject(n *parsetree.Node) (ast.AnnotationSubject, error) {
	if n == nil || n.Rule != parsetree.RuleAnnotationSubject {
		return nil, errUnexpectedRule(n, "AnnotationSubject")
	}
	inner := n.Child(0)
	switch inner.Rule {
	case parsetree.RuleIRI:
		id, err := c.lowerIRI(inner)
		if err != nil {
			return nil, err
		}
		return ast.IRI(id), nil
	case parsetree.RuleAnonymousIndividual:
		return lowerAnonymousIndividual(inner)
	default:
		return nil, errUnexpectedRule(inner, "IRI or AnonymousIndividual")
	}
}

func (c *Context) lowerAnnotationValue(n *parsetree.Node) (ast.AnnotationValue, error) {
	if n == nil || n.Rule != parsetree.RuleAnnotationValue {
		return nil, errUnexpectedRule(n, "AnnotationValue")
	}
	inner := n.Child(0)
	switch inner.Rule {
	case parsetree.RuleIRI:
		id, err := c.lowerIRI(inner)
		if err != nil {
			return nil, err
		}
		return ast.IRI(id), nil
	case parsetree.RuleLiteral:
		return c.lowerLiteral(inner)
	case parsetree.RuleAnonymousIndividual:
		return lowerAnonymousIndividual(inner)
	default:
		return nil, errUnexpectedRule(inner, "IRI, Literal, or AnonymousIndividual")
	}
}
