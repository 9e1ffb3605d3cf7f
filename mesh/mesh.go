package mesh

import (
	"fmt"

	"github.com/notargets/gridglue/block"
	"github.com/notargets/gridglue/nmf"
	"github.com/notargets/gridglue/numbering"
	"github.com/notargets/gridglue/topology"
)

// Phase is one stage of a Conversion's pipeline. Stages run strictly in
// order; calling a stage out of turn is a programmer error, not a
// recoverable one, so it panics rather than returning an error.
type Phase int

const (
	PhaseParsed Phase = iota
	PhaseResolved
	PhaseNumbered
	PhaseAssembled
)

func (p Phase) String() string {
	switch p {
	case PhaseParsed:
		return "Parsed"
	case PhaseResolved:
		return "Resolved"
	case PhaseNumbered:
		return "Numbered"
	case PhaseAssembled:
		return "Assembled"
	default:
		return "Unknown"
	}
}

// Conversion drives one NMF model through resolve, number and assemble,
// holding the intermediate result of each stage as it completes.
type Conversion struct {
	phase Phase

	Model  *nmf.Model
	Blocks *block.Set

	Resolver  *topology.Resolver
	Numbering *numbering.Numbering
	Mesh      *Mesh
}

// NewConversion builds the block arena from a parsed NMF model and
// starts the pipeline at PhaseParsed.
func NewConversion(m *nmf.Model) *Conversion {
	specs := make([]block.Spec, len(m.Blocks))
	for i, bd := range m.Blocks {
		specs[i] = block.Spec{ID: bd.ID, NI: bd.NI, NJ: bd.NJ, NK: bd.NK}
	}
	return &Conversion{
		phase:  PhaseParsed,
		Model:  m,
		Blocks: block.NewSet(specs),
	}
}

func (c *Conversion) requirePhase(want Phase) {
	if c.phase != want {
		panic(fmt.Sprintf("mesh: Conversion is at phase %s, expected %s", c.phase, want))
	}
}

// Resolve pairs ONE_TO_ONE interfaces and induces edge/corner equivalence
// classes, advancing the conversion to PhaseResolved.
func (c *Conversion) Resolve() error {
	c.requirePhase(PhaseParsed)
	r, err := topology.Resolve(c.Blocks, c.Model)
	if err != nil {
		return err
	}
	c.Resolver = r
	c.phase = PhaseResolved
	return nil
}

// Number assigns dense global node, cell and face ids, advancing the
// conversion to PhaseNumbered.
func (c *Conversion) Number() {
	c.requirePhase(PhaseResolved)
	c.Numbering = numbering.Number(c.Blocks, c.Resolver)
	c.phase = PhaseNumbered
}

// Assemble builds the final Node/Face/Cell records using coords for
// vertex positions, advancing the conversion to PhaseAssembled.
func (c *Conversion) Assemble(coords CoordinateSupplier) error {
	c.requirePhase(PhaseNumbered)
	mesh, err := Assemble(c.Blocks, c.Resolver, c.Numbering, coords)
	if err != nil {
		return err
	}
	c.Mesh = mesh
	c.phase = PhaseAssembled
	return nil
}

// Phase reports the conversion's current pipeline stage.
func (c *Conversion) Phase() Phase { return c.phase }
