package mosaic

import "fmt"

// Reason records which rule chose a brick's colour.
type Reason int

const (
	// ReasonMonochrome: the whole image has one colour.
	ReasonMonochrome Reason = iota
	// ReasonSolidBrick: the brick has one colour.
	ReasonSolidBrick
	// ReasonMajority: the brick's most frequent colour.
	ReasonMajority
	// ReasonSignal: the signal colour overrode the brick's majority.
	ReasonSignal
)

func (r Reason) String() string {
	switch r {
	case ReasonMonochrome:
		return "monochrome"
	case ReasonSolidBrick:
		return "solid"
	case ReasonMajority:
		return "majority"
	case ReasonSignal:
		return "signal"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// Decision is the colour picked for one brick and the rule that picked it.
type Decision struct {
	Color  Color
	Reason Reason
}

// signalDivisor: the signal colour takes over a brick once its count reaches
// maxCount/signalDivisor (integer division) of the brick's majority count.
const signalDivisor = 3

// Resolver picks one representative colour per brick. It holds the image-wide
// table and signal colour, both read-only, so one Resolver serves every brick.
type Resolver struct {
	global *FrequencyTable
	least  Color
	stride int
}

// NewResolver returns a Resolver for an image whose sampled table is global
// and whose signal colour is least. Bricks are sampled with stride.
func NewResolver(global *FrequencyTable, least Color, stride int) *Resolver {
	return &Resolver{global: global, least: least, stride: stride}
}

// Resolve returns the representative colour of a brick's pixels.
func (r *Resolver) Resolve(brick []Color) Color {
	return r.Decide(brick).Color
}

// Decide picks the brick's colour:
//
//  1. A single-colour image yields that colour for every brick.
//  2. A single-colour brick yields that colour.
//  3. Otherwise let lst be the signal colour's count in the brick and
//     maxCount the count of the brick's most frequent colour. If
//     lst < maxCount/3 the most frequent colour wins, else the signal colour.
//
// An empty brick falls through to rule 3 with maxCount 0 and takes the
// signal colour.
func (r *Resolver) Decide(brick []Color) Decision {
	if sole, ok := r.global.Sole(); ok {
		return Decision{Color: sole, Reason: ReasonMonochrome}
	}

	local := Sample(brick, r.stride)
	if sole, ok := local.Sole(); ok {
		return Decision{Color: sole, Reason: ReasonSolidBrick}
	}

	lst := local.Count(r.least)
	maxColor, maxCount := local.argmax(nil)
	if lst < maxCount/signalDivisor {
		return Decision{Color: maxColor, Reason: ReasonMajority}
	}
	return Decision{Color: r.least, Reason: ReasonSignal}
}
