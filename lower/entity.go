package lower

import (
	"github.com/kortschak/horned/ast"
	"github.com/kortschak/horned/parsetree"
)

func (c *Context) lowerClass(n *parsetree.Node) (ast.Class, error) {
	if n == nil || n.Rule != parsetree.RuleClass {
		return ast.Class{}, errUnexpectedRule(n, "Class")
	}
	id, err := c.lowerIRI(n.Child(0))
	if err != nil {
		return ast.Class{}, err
	}
	return ast.Class{Name: id}, nil
}

func (c *Context) lowerDatatype(n *parsetree.Node) (ast.Datatype, error) {
	if n == nil || n.Rule != parsetree.RuleDatatype {
		return ast.Datatype{}, errUnexpectedRule(n, "Datatype")
	}
	id, err := c.lowerIRI(n.Child(0))
	if err != nil {
		return ast.Datatype{}, err
	}
	return ast.Datatype{Name: id}, nil
}

func (c *Context) lowerObjectProperty(n *parsetree.Node) (ast.ObjectProperty, error) {
	if n == nil || n.Rule != parsetree.RuleObjectProperty {
		return ast.ObjectProperty{}, errUnexpectedRule(n, "ObjectProperty")
	}
	id, err := c.lowerIRI(n.Child(0))
	if err != nil {
		return ast.ObjectProperty{}, err
	}
	return ast.ObjectProperty{Name: id}, nil
}

func (c *Context) lowerDataProperty(n *parsetree.Node) (ast.DataProperty, error) {
	if n == nil || n.Rule != parsetree.RuleDataProperty {
		return ast.DataProperty{}, errUnexpectedRule(n, "DataProperty")
	}
	id, err := c.lowerIRI(n.Child(0))
	if err != nil {
		return ast.DataProperty{}, err
	}
	return ast.DataProperty{Name: id}, nil
}

func (c *Context) lowerAnnotationProperty(n *parsetree.Node) (ast.AnnotationProperty, error) {
	if n == nil || n.Rule != parsetree.RuleAnnotationProperty {
		return ast.AnnotationProperty{}, errUnexpectedRule(n, "AnnotationProperty")
	}
	id, err := c.lowerIRI(n.Child(0))
	if err != nil {
		return ast.AnnotationProperty{}, err
	}
	return ast.AnnotationProperty{Name: id}, nil
}

func (c *Context) lowerNamedIndividual(n *parsetree.Node) (ast.NamedIndividual, error) {
	if n == nil || n.Rule != parsetree.RuleNamedIndividual {
		return ast.NamedIndividual{}, errUnexpectedRule(n, "NamedIndividual")
	}
	id, err := c.lowerIRI(n.Child(0))
	if err != nil {
		return ast.NamedIndividual{}, err
	}
	return ast.NamedIndividual{Name: id}, nil
}

// lowerAnonymousIndividual takes the blank-node label verbatim. Node IDs
// are opaque; they are never expanded or interned as IRIs.
func lowerAnonymousIndividual(n *parsetree.Node) (ast.AnonymousIndividual, error) {
	if n == nil || n.Rule != parsetree.RuleAnonymousIndividual {
		return ast.AnonymousIndividual{}, errUnexpectedRule(n, "AnonymousIndividual")
	}
	return ast.AnonymousIndividual{NodeID: n.Text}, nil
}

func (c *Context) lowerIndividual(n *parsetree.Node) (ast.Individual, error) {
	if n == nil || n.Rule != parsetree.RuleIndividual {
		return nil, errUnexpectedRule(n, "Individual")
	}
	inner := n.Child(0)
	switch inner.Rule {
	case parsetree.RuleNamedIndividual:
		return c.lowerNamedIndividual(inner)
	case parsetree.RuleAnonymousIndividual:
		return lowerAnonymousIndividual(inner)
	default:
		return nil, errUnexpectedRule(inner, "NamedIndividual or AnonymousIndividual")
	}
}
