package planet

import (
	"errors"
	"fmt"
)

// ErrUnsupportedGasInteraction is returned when two different gases meet in
// one cell. Only a single gas kind exists today, so no mixing rule is defined.
var ErrUnsupportedGasInteraction = errors.New("planet: unsupported gas interaction")

// InteractionError reports a liquid pair missing from the interaction table.
type InteractionError struct {
	Existing Liquid
	Incoming Liquid
}

func (e *InteractionError) Error() string {
	return fmt.Sprintf("planet: no interaction defined between %s and incoming %s", e.Existing, e.Incoming)
}

// Outcome is what a cell holds after two liquids meet. Vapor is liquid depth
// turned into water vapour and added to the cell's gas layer.
type Outcome struct {
	Liquid Liquid
	Depth  float64
	Vapor  float64
}

type interactionRule uint8

const (
	ruleSimpleReplace interactionRule = iota + 1
	ruleVaporize
)

type liquidPair struct {
	existing, incoming Liquid
}

var interactions = map[liquidPair]interactionRule{
	{LiquidSaltWater, LiquidFreshWater}:   ruleSimpleReplace,
	{LiquidFreshWater, LiquidSaltWater}:   ruleSimpleReplace,
	{LiquidMoltenRock, LiquidMoltenMetal}: ruleSimpleReplace,
	{LiquidMoltenMetal, LiquidMoltenRock}: ruleSimpleReplace,

	{LiquidSaltWater, LiquidMoltenRock}:   ruleVaporize,
	{LiquidSaltWater, LiquidMoltenMetal}:  ruleVaporize,
	{LiquidFreshWater, LiquidMoltenRock}:  ruleVaporize,
	{LiquidFreshWater, LiquidMoltenMetal}: ruleVaporize,
	{LiquidMoltenRock, LiquidSaltWater}:   ruleVaporize,
	{LiquidMoltenRock, LiquidFreshWater}:  ruleVaporize,
	{LiquidMoltenMetal, LiquidSaltWater}:  ruleVaporize,
	{LiquidMoltenMetal, LiquidFreshWater}: ruleVaporize,
}

// Resolve decides what happens when incoming liquid is poured onto a cell
// already holding existing liquid of a different kind. coin breaks exact
// depth ties in same-family mixes. Pairs outside the table return an
// *InteractionError.
func Resolve(existing Liquid, existingDepth float64, incoming Liquid, incomingDepth float64, coin func() bool) (Outcome, error) {
	switch interactions[liquidPair{existing, incoming}] {
	case ruleSimpleReplace:
		return SimpleReplace(existing, existingDepth, incoming, incomingDepth, coin), nil
	case ruleVaporize:
		if existing.IsWater() {
			return Vaporize(existing, existingDepth, incomingDepth), nil
		}
		return Vaporize(incoming, incomingDepth, existingDepth), nil
	default:
		return Outcome{}, &InteractionError{Existing: existing, Incoming: incoming}
	}
}

// SimpleReplace mixes two liquids of one family. The deeper operand names the
// result and the depths add up.
func SimpleReplace(a Liquid, depthA float64, b Liquid, depthB float64, coin func() bool) Outcome {
	kind := a
	switch {
	case depthB > depthA:
		kind = b
	case depthA == depthB && coin != nil && !coin():
		kind = b
	}
	return Outcome{Liquid: kind, Depth: depthA + depthB}
}

// Vaporize boils the molten depth off as steam and leaves the water behind.
func Vaporize(water Liquid, waterDepth, moltenDepth float64) Outcome {
	return Outcome{Liquid: water, Depth: waterDepth, Vapor: moltenDepth}
}

// fatal is the panic payload used inside the update pass so Update can tell
// table errors apart from genuine runtime faults.
type fatal struct{ err error }

func raise(err error) {
	panic(fatal{err: err})
}
