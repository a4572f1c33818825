// Package layout negotiates sizes between parents and children and places
// children according to a small, closed set of strategies.
package layout

import (
	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/geom"
	"github.com/hubastard/canopy/engine/memory"
	"github.com/hubastard/canopy/engine/paint"
)

// Env is what a strategy may touch while placing children. ID is the widget
// that owns the layout; stateful strategies key their memory on it.
type Env struct {
	ID      string
	Input   *core.Input
	Memory  *memory.Memory
	Painter *paint.Painter
}

// Kind selects the placement strategy.
type Kind uint8

const (
	// KindStack stacks children top to bottom and grows to fit them.
	KindStack Kind = iota
	// KindFloating places children where they were last left and lets the
	// user move and resize them.
	KindFloating
)

func (k Kind) String() string {
	switch k {
	case KindStack:
		return "stack"
	case KindFloating:
		return "floating"
	default:
		return "unknown"
	}
}

// Layout is a value; copying it copies the placement cursor.
type Layout struct {
	kind Kind
	info Info
	loc  geom.LclPt
	size geom.LclSz
}

func NewStack(info Info) Layout    { return Layout{kind: KindStack, info: info} }
func NewFloating(info Info) Layout { return Layout{kind: KindFloating, info: info} }

func (l *Layout) Kind() Kind { return l.kind }
func (l *Layout) Info() Info { return l.info }

// ChildInfo offers the next child a place and a resolved hint.
func (l *Layout) ChildInfo(env Env, hint Hint, childID string) Info {
	switch l.kind {
	case KindFloating:
		return l.floatChildInfo(env, hint, childID)
	default:
		return ComputeChildInfo(l.info, l.loc, geom.LZ(1), hint)
	}
}

// PlaceLayer commits a child's final layer, given in this layout's space.
func (l *Layout) PlaceLayer(env Env, placed geom.LclLayer, childID string) {
	switch l.kind {
	case KindFloating:
		l.floatPlace(env, placed, childID)
	default:
		l.loc.Y += placed.R.H
		l.size.W = max(l.size.W, placed.R.W)
		l.size.H += placed.R.H
		grown := l.size
		if l.info.Hint.Min != nil {
			grown = l.info.Hint.Min.Max(grown)
		}
		l.info.Hint.Min = &grown
	}
}

// ComputeLayer is this layout's own layer in its parent's space.
func (l *Layout) ComputeLayer() geom.PrtLayer {
	return NaturalLayerInParent(l.info)
}

// Child lays out one nested layout. build receives the child's info and
// returns the finished nested layout; its natural layer is then placed here.
// If build fails nothing is placed.
func (l *Layout) Child(env Env, hint Hint, childID string, build func(Info) (Layout, error)) (geom.LclLayer, error) {
	info := l.ChildInfo(env, hint, childID)
	nested, err := build(info)
	if err != nil {
		return geom.LclLayer{}, err
	}
	placed := geom.CoerceLayer[geom.Local](nested.ComputeLayer())
	l.PlaceLayer(env, placed, childID)
	return placed, nil
}

// ChildLayer reserves space for a leaf with no layout of its own.
func (l *Layout) ChildLayer(env Env, hint Hint) geom.LclLayer {
	info := l.ChildInfo(env, hint, "")
	placed := geom.CoerceLayer[geom.Local](NaturalLayerInParent(info))
	l.PlaceLayer(env, placed, "")
	return placed
}
