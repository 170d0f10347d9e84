// Package proof implements the knowledge-graph nodes the solver's rules
// attach to: Consequence (one rule firing, citing its premises) and
// Deduction (one conclusion, with every alternative Consequence that has
// ever been found to prove it).
package proof

import "github.com/kpitt/sudoku-prover/internal/knowledge"

// Premise is one fact a Consequence cites as justification: either a ground
// clue or an intermediate fact directly (a FactPremise), or a reference to
// the Deduction that established some other fact (a DeductionPremise). A
// Consequence can mix both kinds of premise in the same firing.
type Premise interface {
	isPremise()
}

// FactPremise cites a Knowledge fact directly — used for IsValue ground
// clues, which have no Deduction of their own to point at.
type FactPremise struct {
	Fact knowledge.Fact
}

func (FactPremise) isPremise() {}

// DeductionPremise cites another Deduction's conclusion as a premise. Two
// DeductionPremises are compared by the identity of the Deduction they
// point at, not by its contents, matching tracker.py's decision to give
// Deduction nominal rather than structural equality (a Deduction can cite
// other Deductions, and structural equality over that graph would recurse
// forever on any cycle the acyclic-path search hasn't pruned yet).
type DeductionPremise struct {
	Ded *Deduction
}

func (DeductionPremise) isPremise() {}

// Consequence is one way a rule has found to justify a conclusion: the
// rule's tag, the ordered premises it cited, and optional human-readable
// detail (e.g. which geometry an X-wing used).
type Consequence struct {
	Rule     string
	Premises []Premise
	Details  string
}

// Equal reports whether c and other cite the same rule, premises (in the
// same order), and details. FactPremises compare by value; DeductionPremises
// compare by pointer identity.
func (c Consequence) Equal(other Consequence) bool {
	if c.Rule != other.Rule || c.Details != other.Details {
		return false
	}
	if len(c.Premises) != len(other.Premises) {
		return false
	}
	for i, p := range c.Premises {
		if !premiseEqual(p, other.Premises[i]) {
			return false
		}
	}
	return true
}

func premiseEqual(a, b Premise) bool {
	switch av := a.(type) {
	case FactPremise:
		bv, ok := b.(FactPremise)
		return ok && av.Fact == bv.Fact
	case DeductionPremise:
		bv, ok := b.(DeductionPremise)
		return ok && av.Ded == bv.Ded
	default:
		return false
	}
}

// Deduction is one node of the proof graph: a single conclusion, and every
// distinct Consequence found so far that proves it. Deduction has nominal
// identity — two Deductions with an identical Conclusion and Alternatives
// are still different nodes unless they are the same pointer, because
// DeductionPremise equality above is defined over pointer identity, and
// because a Deduction may be extended with new Alternatives after other
// Deductions have already taken a DeductionPremise reference to it.
type Deduction struct {
	Conclusion   knowledge.Fact
	Alternatives []Consequence
}

// NewDeduction creates a Deduction for conclusion with no proof yet
// attached. Callers add proofs via AddReason.
func NewDeduction(conclusion knowledge.Fact) *Deduction {
	return &Deduction{Conclusion: conclusion}
}

// AddReason appends c to d's alternatives unless an equal Consequence is
// already present, mirroring tracker.py's add_reason dedup-append. It
// reports whether c was newly added.
func (d *Deduction) AddReason(c Consequence) bool {
	for _, existing := range d.Alternatives {
		if existing.Equal(c) {
			return false
		}
	}
	d.Alternatives = append(d.Alternatives, c)
	return true
}

// Store is the shared registry mapping a conclusion Fact to the single
// Deduction node that proves it, so that every rule firing which reaches
// the same conclusion through a different argument attaches another
// Consequence to one shared node rather than creating a duplicate.
type Store struct {
	nodes map[knowledge.Fact]*Deduction
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{nodes: make(map[knowledge.Fact]*Deduction)}
}

// Get returns the Deduction already recorded for fact, if any.
func (s *Store) Get(fact knowledge.Fact) (*Deduction, bool) {
	d, ok := s.nodes[fact]
	return d, ok
}

// MakeDeduction returns the Deduction for fact, creating it if this is the
// first time fact has been reached, and attaches reason as one of its
// proofs (a no-op if an equal Consequence is already attached). This is
// the single entry point rules and state views use to post new knowledge,
// matching spec.md's make_deduction contract.
func (s *Store) MakeDeduction(fact knowledge.Fact, reason Consequence) *Deduction {
	d, ok := s.nodes[fact]
	if !ok {
		d = NewDeduction(fact)
		s.nodes[fact] = d
	}
	d.AddReason(reason)
	return d
}

// Len returns the number of distinct conclusions recorded so far.
func (s *Store) Len() int {
	return len(s.nodes)
}

// Nodes returns every Deduction recorded so far, in no particular order.
func (s *Store) Nodes() []*Deduction {
	out := make([]*Deduction, 0, len(s.nodes))
	for _, d := range s.nodes {
		out = append(out, d)
	}
	return out
}
