package stats

import (
	"errors"
	"fmt"
)

var (
	ErrUnresolved     = errors.New("P(A) and P(B) could not be resolved from the given probabilities")
	ErrUnknownEventOp = errors.New("unknown event operation")
	ErrNotFinite      = errors.New("result is not a finite number")
)

type EventOp string

const (
	NotA    EventOp = "pa_not"
	NotB    EventOp = "pb_not"
	And     EventOp = "inter"
	Or      EventOp = "union"
	Xor     EventOp = "xor"
	Neither EventOp = "neither"
)

func (o EventOp) Label() string {
	switch o {
	case NotA:
		return "P(A')"
	case NotB:
		return "P(B')"
	case And:
		return "P(AnB)"
	case Or:
		return "P(AuB)"
	case Xor:
		return "P(AxB)"
	case Neither:
		return "P((AuB)')"
	default:
		return ""
	}
}

func (o EventOp) Valid() bool {
	return o.Label() != ""
}

// EventInput holds the probabilities known about two events A and B,
// a nil field is unknown.
type EventInput struct {
	PA    *float64
	PB    *float64
	PANot *float64
	PBNot *float64
	Inter *float64
}

func (i EventInput) String() string {
	return fmt.Sprintf(
		"EventInput(pa=%s, pb=%s, pa_not=%s, pb_not=%s, inter=%s)",
		fmtProb(i.PA),
		fmtProb(i.PB),
		fmtProb(i.PANot),
		fmtProb(i.PBNot),
		fmtProb(i.Inter),
	)
}

type Outcome struct {
	Label  string
	Result float64
}

// Normalize derives P(A) and P(B) from the other inputs. Complements
// are applied first, then P(A∩B) is divided by whichever of P(A) and
// P(B) is known. The inputs are taken to be consistent with each
// other, nothing is cross checked.
func Normalize(in EventInput) EventInput {
	out := in

	if out.PA == nil && out.PANot != nil {
		out.PA = prob(1 - *out.PANot)
	}
	if out.PB == nil && out.PBNot != nil {
		out.PB = prob(1 - *out.PBNot)
	}

	if out.PA != nil && out.Inter != nil && out.PB == nil && *out.PA != 0 {
		out.PB = prob(*out.Inter / *out.PA)
	}
	if out.PB != nil && out.Inter != nil && out.PA == nil && *out.PB != 0 {
		out.PA = prob(*out.Inter / *out.PB)
	}

	return out
}

// Solve computes op over the normalized input. The intersection used
// by inter, union, xor and neither is always P(A)·P(B), i.e. A and B
// are assumed independent even when an explicit P(A∩B) was given.
func Solve(op EventOp, in EventInput) (*Outcome, error) {
	if !op.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEventOp, op)
	}

	in = Normalize(in)
	if in.PA == nil || in.PB == nil {
		return nil, ErrUnresolved
	}

	pa, pb := *in.PA, *in.PB
	union := pa + pb - pa*pb

	var result float64
	switch op {
	case NotA:
		result = 1 - pa
	case NotB:
		result = 1 - pb
	case And:
		result = pa * pb
	case Or:
		result = union
	case Xor:
		result = union - pa*pb
	case Neither:
		result = 1 - union
	}

	if !Finite(result) {
		return nil, fmt.Errorf("%w: %s = %g", ErrNotFinite, op.Label(), result)
	}

	return &Outcome{Label: op.Label(), Result: result}, nil
}

func prob(p float64) *float64 {
	return &p
}

func fmtProb(p *float64) string {
	if p == nil {
		return "?"
	}
	return fmt.Sprintf("%g", *p)
}
