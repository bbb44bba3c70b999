package lower

import (
	"github.com/kortschak/horned/ast"
	"github.com/kortschak/horned/parsetree"
)

// lowerAxiom lowers a RuleAxiom node to an ast.AnnotatedComponent. It
// dispatches on the single child of Axiom, which is either a
// RuleDeclaration or one of the concrete axiom rules. Every axiom rule
// (and Declaration) starts with a RuleAnnotations child, so the
// annotation set is lowered once up front.
func (c *Context) lowerAxiom(n *parsetree.Node) (ast.AnnotatedComponent, error) {
	if n == nil || n.Rule != parsetree.RuleAxiom {
		return ast.AnnotatedComponent{}, errUnexpectedRule(n, "Axiom")
	}
	inner := n.Child(0)
	if inner.Rule == parsetree.RuleDeclaration {
		return c.lowerDeclaration(inner)
	}

	ann, err := c.lowerAnnotations(inner.Child(0))
	if err != nil {
		return ast.AnnotatedComponent{}, err
	}

	var component ast.Component
	switch inner.Rule {
	case parsetree.RuleSubClassOf:
		// OFN surface syntax writes SubClassOf(sub, sup); the AST stores
		// (Super, Sub).
		sub, err := c.lowerClassExpression(inner.Child(1))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		sup, err := c.lowerClassExpression(inner.Child(2))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.SubClassOf{Super: sup, Sub: sub}

	case parsetree.RuleEquivalentClasses:
		ces, err := c.lowerClassExpressionSlice(inner.Children[1:])
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.EquivalentClasses{Classes: ces}

	case parsetree.RuleDisjointClasses:
		ces, err := c.lowerClassExpressionSlice(inner.Children[1:])
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.DisjointClasses{Classes: ces}

	case parsetree.RuleDisjointUnion:
		cls, err := c.lowerClass(inner.Child(1))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		ces, err := c.lowerClassExpressionSlice(inner.Children[2:])
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.DisjointUnion{Class: cls, Disjoint: ces}

	case parsetree.RuleSubObjectPropertyOf:
		sub, err := c.lowerSubObjectPropertyExpression(inner.Child(1))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		sup, err := c.lowerObjectPropertyExpression(inner.Child(2))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.SubObjectPropertyOf{Super: sup, Sub: sub}

	case parsetree.RuleEquivalentObjectProperties:
		ops, err := c.lowerObjectPropertyExpressionSlice(inner.Children[1:])
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.EquivalentObjectProperties{Properties: ops}

	case parsetree.RuleDisjointObjectProperties:
		ops, err := c.lowerObjectPropertyExpressionSlice(inner.Children[1:])
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.DisjointObjectProperties{Properties: ops}

	case parsetree.RuleObjectPropertyDomain:
		ope, ce, err := c.lowerOPEClassPair(inner)
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.ObjectPropertyDomain{OPE: ope, CE: ce}

	case parsetree.RuleObjectPropertyRange:
		ope, ce, err := c.lowerOPEClassPair(inner)
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.ObjectPropertyRange{OPE: ope, CE: ce}

	case parsetree.RuleInverseObjectProperties:
		r1, err := c.lowerObjectProperty(inner.Child(1))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		r2, err := c.lowerObjectProperty(inner.Child(2))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.InverseObjectProperties{First: r1, Second: r2}

	case parsetree.RuleFunctionalObjectProperty:
		ope, err := c.lowerObjectPropertyExpression(inner.Child(1))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.FunctionalObjectProperty{OPE: ope}

	case parsetree.RuleInverseFunctionalObjectProperty:
		ope, err := c.lowerObjectPropertyExpression(inner.Child(1))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.InverseFunctionalObjectProperty{OPE: ope}

	case parsetree.RuleReflexiveObjectProperty:
		ope, err := c.lowerObjectPropertyExpression(inner.Child(1))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.ReflexiveObjectProperty{OPE: ope}

	case parsetree.RuleIrreflexiveObjectProperty:
		ope, err := c.lowerObjectPropertyExpression(inner.Child(1))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.IrreflexiveObjectProperty{OPE: ope}

	case parsetree.RuleSymmetricObjectProperty:
		ope, err := c.lowerObjectPropertyExpression(inner.Child(1))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.SymmetricObjectProperty{OPE: ope}

	case parsetree.RuleAsymmetricObjectProperty:
		ope, err := c.lowerObjectPropertyExpression(inner.Child(1))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.AsymmetricObjectProperty{OPE: ope}

	case parsetree.RuleTransitiveObjectProperty:
		ope, err := c.lowerObjectPropertyExpression(inner.Child(1))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.TransitiveObjectProperty{OPE: ope}

	case parsetree.RuleSubDataPropertyOf:
		sub, err := c.lowerDataProperty(inner.Child(1))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		sup, err := c.lowerDataProperty(inner.Child(2))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.SubDataPropertyOf{Super: sup, Sub: sub}

	case parsetree.RuleEquivalentDataProperties:
		dps, err := c.lowerDataPropertySlice(inner.Children[1:])
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.EquivalentDataProperties{Properties: dps}

	case parsetree.RuleDisjointDataProperties:
		dps, err := c.lowerDataPropertySlice(inner.Children[1:])
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.DisjointDataProperties{Properties: dps}

	case parsetree.RuleDataPropertyDomain:
		dp, err := c.lowerDataProperty(inner.Child(1))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		ce, err := c.lowerClassExpression(inner.Child(2))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.DataPropertyDomain{DP: dp, CE: ce}

	case parsetree.RuleDataPropertyRange:
		dp, err := c.lowerDataProperty(inner.Child(1))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		dr, err := c.lowerDataRange(inner.Child(2))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.DataPropertyRange{DP: dp, DR: dr}

	case parsetree.RuleFunctionalDataProperty:
		dp, err := c.lowerDataProperty(inner.Child(1))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.FunctionalDataProperty{DP: dp}

	case parsetree.RuleDatatypeDefinition:
		dt, err := c.lowerDatatype(inner.Child(1))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		dr, err := c.lowerDataRange(inner.Child(2))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.DatatypeDefinition{Datatype: dt, Range: dr}

	case parsetree.RuleHasKey:
		ce, err := c.lowerClassExpression(inner.Child(1))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		var opes []ast.ObjectPropertyExpression
		var dps []ast.DataProperty
		for _, child := range inner.Children[2:] {
			switch child.Rule {
			case parsetree.RuleObjectPropertyExpression:
				ope, err := c.lowerObjectPropertyExpression(child)
				if err != nil {
					return ast.AnnotatedComponent{}, err
				}
				opes = append(opes, ope)
			case parsetree.RuleDataProperty:
				dp, err := c.lowerDataProperty(child)
				if err != nil {
					return ast.AnnotatedComponent{}, err
				}
				dps = append(dps, dp)
			default:
				return ast.AnnotatedComponent{}, errUnexpectedRule(child, "ObjectPropertyExpression or DataProperty")
			}
		}
		component = ast.HasKey{CE: ce, ObjectProperties: opes, DataProperties: dps}

	case parsetree.RuleSameIndividual:
		inds, err := c.lowerIndividualSlice(inner.Children[1:])
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.SameIndividual{Individuals: inds}

	case parsetree.RuleDifferentIndividuals:
		inds, err := c.lowerIndividualSlice(inner.Children[1:])
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.DifferentIndividuals{Individuals: inds}

	case parsetree.RuleClassAssertion:
		ce, err := c.lowerClassExpression(inner.Child(1))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		ind, err := c.lowerIndividual(inner.Child(2))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.ClassAssertion{CE: ce, Individual: ind}

	case parsetree.RuleObjectPropertyAssertion:
		ope, from, to, err := c.lowerOPEIndividualPair(inner)
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.ObjectPropertyAssertion{OPE: ope, Source: from, Target: to}

	case parsetree.RuleNegativeObjectPropertyAssertion:
		ope, from, to, err := c.lowerOPEIndividualPair(inner)
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.NegativeObjectPropertyAssertion{OPE: ope, Source: from, Target: to}

	case parsetree.RuleDataPropertyAssertion:
		dp, from, to, err := c.lowerDPIndividualLiteral(inner)
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.DataPropertyAssertion{DP: dp, Source: from, Target: to}

	case parsetree.RuleNegativeDataPropertyAssertion:
		dp, from, to, err := c.lowerDPIndividualLiteral(inner)
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.NegativeDataPropertyAssertion{DP: dp, Source: from, Target: to}

	case parsetree.RuleAnnotationAssertion:
		ap, err := c.lowerAnnotationProperty(inner.Child(1))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		subject, err := c.lowerAnnotationSubject(inner.Child(2))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		value, err := c.lowerAnnotationValue(inner.Child(3))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.AnnotationAssertion{Subject: subject, Property: ap, Value: value}

	case parsetree.RuleSubAnnotationPropertyOf:
		sub, err := c.lowerAnnotationProperty(inner.Child(1))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		sup, err := c.lowerAnnotationProperty(inner.Child(2))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.SubAnnotationPropertyOf{Super: sup, Sub: sub}

	case parsetree.RuleAnnotationPropertyDomain:
		ap, id, err := c.lowerAnnotationPropertyIRIPair(inner)
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.AnnotationPropertyDomain{Property: ap, IRI: id}

	case parsetree.RuleAnnotationPropertyRange:
		ap, id, err := c.lowerAnnotationPropertyIRIPair(inner)
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.AnnotationPropertyRange{Property: ap, IRI: id}

	default:
		return ast.AnnotatedComponent{}, errUnexpectedRule(inner, "a known Axiom variant")
	}

	return ast.AnnotatedComponent{Component: component, Ann: ann}, nil
}

func (c *Context) lowerClassExpressionSlice(nodes []*parsetree.Node) ([]ast.ClassExpression, error) {
	out := make([]ast.ClassExpression, 0, len(nodes))
	for _, n := range nodes {
		ce, err := c.lowerClassExpression(n)
		if err != nil {
			return nil, err
		}
		out = append(out, ce)
	}
	return out, nil
}

func (c *Context) lowerObjectPropertyExpressionSlice(nodes []*parsetree.Node) ([]ast.ObjectPropertyExpression, error) {
	out := make([]ast.ObjectPropertyExpression, 0, len(nodes))
	for _, n := range nodes {
		ope, err := c.lowerObjectPropertyExpression(n)
		if err != nil {
			return nil, err
		}
		out = append(out, ope)
	}
	return out, nil
}

func (c *Context) lowerDataPropertySlice(nodes []*parsetree.Node) ([]ast.DataProperty, error) {
	out := make([]ast.DataProperty, 0, len(nodes))
	for _, n := range nodes {
		dp, err := c.lowerDataProperty(n)
		if err != nil {
			return nil, err
		}
		out = append(out, dp)
	}
	return out, nil
}

func (c *Context) lowerIndividualSlice(nodes []*parsetree.Node) ([]ast.Individual, error) {
	out := make([]ast.Individual, 0, len(nodes))
	for _, n := range nodes {
		ind, err := c.lowerIndividual(n)
		if err != nil {
			return nil, err
		}
		out = append(out, ind)
	}
	return out, nil
}

func (c *Context) lowerOPEClassPair(inner *parsetree.Node) (ast.ObjectPropertyExpression, ast.ClassExpression, error) {
	ope, err := c.lowerObjectPropertyExpression(inner.Child(1))
	if err != nil {
		return nil, nil, err
	}
	ce, err := c.lowerClassExpression(inner.Child(2))
	if err != nil {
		return nil, nil, err
	}
	return ope, ce, nil
}

func (c *Context) lowerOPEIndividualPair(inner *parsetree.Node) (ast.ObjectPropertyExpression, ast.Individual, ast.Individual, error) {
	ope, err := c.lowerObjectPropertyExpression(inner.Child(1))
	if err != nil {
		return nil, nil, nil, err
	}
	from, err := c.lowerIndividual(inner.Child(2))
	if err != nil {
		return nil, nil, nil, err
	}
	to, err := c.lowerIndividual(inner.Child(3))
	if err != nil {
		return nil, nil, nil, err
	}
	return ope, from, to, nil
}

func (c *Context) lowerDPIndividualLiteral(inner *parsetree.Node) (ast.DataProperty, ast.Individual, ast.Literal, error) {
	dp, err := c.lowerDataProperty(inner.Child(1))
	if err != nil {
		return ast.DataProperty{}, nil, nil, err
	}
	from, err := c.lowerIndividual(inner.Child(2))
	if err != nil {
		return ast.DataProperty{}, nil, nil, err
	}
	to, err := c.lowerLiteral(inner.Child(3))
	if err != nil {
		return ast.DataProperty{}, nil, nil, err
	}
	return dp, from, to, nil
}

func (c *Context) lowerAnnotationPropertyIRIPair(inner *parsetree.Node) (ast.AnnotationProperty, ast.IRI, error) {
	ap, err := c.lowerAnnotationProperty(inner.Child(1))
	if err != nil {
		return ast.AnnotationProperty{}, ast.IRI(""), err
	}
	id, err := c.lowerIRI(inner.Child(2))
	if err != nil {
		return ast.AnnotationProperty{}, ast.IRI(""), err
	}
	return ap, ast.IRI(id), nil
}

// lowerDeclaration lowers a RuleDeclaration node: an Annotations block
// followed by one of the six Declare*Declaration shapes.
func (c *Context) lowerDeclaration(n *parsetree.Node) (ast.AnnotatedComponent, error) {
	ann, err := c.lowerAnnotations(n.Child(0))
	if err != nil {
		return ast.AnnotatedComponent{}, err
	}
	decl := n.Child(1)
	var component ast.Component
	switch decl.Rule {
	case parsetree.RuleClassDeclaration:
		cls, err := c.lowerClass(decl.Child(0))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.DeclareClass{Class: cls}
	case parsetree.RuleDatatypeDeclaration:
		dt, err := c.lowerDatatype(decl.Child(0))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.DeclareDatatype{Datatype: dt}
	case parsetree.RuleObjectPropertyDeclaration:
		op, err := c.lowerObjectProperty(decl.Child(0))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.DeclareObjectProperty{ObjectProperty: op}
	case parsetree.RuleDataPropertyDeclaration:
		dp, err := c.lowerDataProperty(decl.Child(0))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.DeclareDataProperty{DataProperty: dp}
	case parsetree.RuleAnnotationPropertyDeclaration:
		ap, err := c.lowerAnnotationProperty(decl.Child(0))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.DeclareAnnotationProperty{AnnotationProperty: ap}
	case parsetree.RuleNamedIndividualDeclaration:
		ni, err := c.lowerNamedIndividual(decl.Child(0))
		if err != nil {
			return ast.AnnotatedComponent{}, err
		}
		component = ast.DeclareNamedIndividual{NamedIndividual: ni}
	default:
		return ast.AnnotatedComponent{}, errUnexpectedRule(decl, "a Declare*Declaration variant")
	}
	return ast.AnnotatedComponent{Component: component, Ann: ann}, nil
}
