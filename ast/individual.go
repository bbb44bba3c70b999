package ast

// Individual is either a NamedIndividual or an AnonymousIndividual.
type Individual interface {
	isIndividual()
}

// AnonymousIndividual carries an opaque node identifier, taken verbatim
// from the parse tree's node-ID token.
type AnonymousIndividual struct {
	NodeID string
}

func (AnonymousIndividual) isIndividual()        {}
func (AnonymousIndividual) isAnnotationValue()   {}
func (AnonymousIndividual) isAnnotationSubject() {}
