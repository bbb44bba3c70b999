package lower

import (
	"github.com/kortschak/horned/ast"
	"github.com/kortschak/horned/curie"
	"github.com/kortschak/horned/iri"
	"github.com/kortschak/horned/ontology"
	"github.com/kortschak/horned/parsetree"
)

// Document lowers a full RuleOntologyDocument tree into an ontology and
// the prefix map used to parse it. The prefix map is returned alongside
// the ontology because prefix declarations are document-scoped syntax,
// useful to a caller re-serializing CURIEs, not ontology content.
func Document(root *parsetree.Node) (*ontology.Ontology, *curie.Map, error) {
	if root == nil || root.Rule != parsetree.RuleOntologyDocument {
		return nil, nil, errUnexpectedRule(root, "OntologyDocument")
	}

	prefixes := curie.NewMap()
	children := root.Children
	i := 0
	for i < len(children) && children[i].Rule == parsetree.RulePrefixDeclaration {
		if err := lowerPrefixDeclaration(children[i], prefixes); err != nil {
			return nil, nil, err
		}
		i++
	}
	if i >= len(children) || children[i].Rule != parsetree.RuleOntology {
		return nil, nil, errUnexpectedRule(root.Child(i), "Ontology")
	}

	ctx := newContext(prefixes)
	ont, err := ctx.lowerOntology(children[i])
	if err != nil {
		return nil, nil, err
	}
	return ont, prefixes, nil
}

// lowerPrefixDeclaration handles both named ("PREFIX(p:=<...>)") and
// default ("PREFIX(:=<...>)") forms. A PrefixDeclaration node with an
// empty-text name child sets the default prefix.
func lowerPrefixDeclaration(n *parsetree.Node, prefixes *curie.Map) error {
	name := n.Child(0)
	full := n.Child(1)
	if full == nil || full.Rule != parsetree.RuleFullIRI {
		return errUnexpectedRule(full, "FullIRI")
	}
	ns := iri.IRI(full.Text)
	if name == nil || name.Text == "" {
		prefixes.SetDefault(ns)
		return nil
	}
	prefixes.AddPrefix(name.Text, ns)
	return nil
}

// lowerOntology lowers a RuleOntology node: an optional OntologyIRI
// (optionally followed by a VersionIRI), then zero or more Import nodes,
// then zero or more OntologyAnnotation-position Annotation nodes, then
// zero or more Axiom/SWRLRule/DGAxiom nodes. SWRL rules and DG axioms
// are recognized and skipped; they are not lowered to any Component.
func (c *Context) lowerOntology(n *parsetree.Node) (*ontology.Ontology, error) {
	ont := ontology.New()
	children := n.Children
	i := 0

	var id ast.OntologyID
	if i < len(children) && children[i].Rule == parsetree.RuleOntologyIRI {
		iriNode := children[i].Child(0)
		oid, err := c.lowerIRI(iriNode)
		if err != nil {
			return nil, err
		}
		astIRI := ast.IRI(oid)
		id.IRI = &astIRI
		i++
		if i < len(children) && children[i].Rule == parsetree.RuleVersionIRI {
			vNode := children[i].Child(0)
			vid, err := c.lowerIRI(vNode)
			if err != nil {
				return nil, err
			}
			astV := ast.IRI(vid)
			id.VersionIRI = &astV
			i++
		}
	}
	ont.Insert(ast.AnnotatedComponent{Component: id})

	for i < len(children) && children[i].Rule == parsetree.RuleImport {
		imp, err := c.lowerImport(children[i])
		if err != nil {
			return nil, err
		}
		ont.Insert(ast.AnnotatedComponent{Component: imp})
		i++
	}

	for i < len(children) && children[i].Rule == parsetree.RuleAnnotation {
		a, err := c.lowerAnnotation(children[i])
		if err != nil {
			return nil, err
		}
		ont.Insert(ast.AnnotatedComponent{Component: ast.OntologyAnnotation{Annotation: a}})
		i++
	}

	for ; i < len(children); i++ {
		item := children[i]
		switch item.Rule {
		case parsetree.RuleSWRLRule, parsetree.RuleDGAxiom:
			continue
		case parsetree.RuleAxiom:
			ac, err := c.lowerAxiom(item)
			if err != nil {
				return nil, err
			}
			ont.Insert(ac)
		default:
			return nil, errUnexpectedRule(item, "Axiom, SWRLRule, or DGAxiom")
		}
	}

	return ont, nil
}

func (c *Context) lowerImport(n *parsetree.Node) (ast.Import, error) {
	id, err := c.lowerIRI(n.Child(0))
	if err != nil {
		return ast.Import{}, err
	}
	return ast.Import{IRI: ast.IRI(id)}, nil
}
