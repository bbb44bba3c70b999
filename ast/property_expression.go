package ast

// ObjectPropertyExpression is either a plain ObjectProperty or its
// InverseObjectProperty.
type ObjectPropertyExpression interface {
	isObjectPropertyExpression()
}

// InverseObjectProperty is the inverse of an object property.
type InverseObjectProperty struct {
	ObjectProperty ObjectProperty
}

func (InverseObjectProperty) isObjectPropertyExpression()    {}
func (InverseObjectProperty) isSubObjectPropertyExpression() {}

// SubObjectPropertyExpression is either a single ObjectPropertyExpression
// or a PropertyExpressionChain of two or more.
type SubObjectPropertyExpression interface {
	isSubObjectPropertyExpression()
}

// PropertyExpressionChain is a sub-property chain as used by
// SubObjectPropertyOf. Well-formed ontologies never produce a chain of
// fewer than two expressions; neither this type nor the lowering engine
// checks the length.
type PropertyExpressionChain struct {
	Chain []ObjectPropertyExpression
}

func (PropertyExpressionChain) isSubObjectPropertyExpression() {}
