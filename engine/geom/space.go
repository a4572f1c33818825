// Package geom holds the coordinate model shared by layout, painting and input.
//
// Every point, size, rect and z-order carries a phantom space tag. Values in
// different spaces cannot be mixed by accident: moving between spaces goes
// through a Tf, and relabelling without any numeric change goes through one of
// the Coerce functions.
package geom

// Number is the set of scalar types geometry can be built on.
type Number interface {
	~int | ~int32 | ~int64 | ~uint32 | ~float32 | ~float64
}

// Space tags. They are never instantiated.
type (
	// Global is logical screen space.
	Global struct{}
	// Parent is the local space of a widget's parent.
	Parent struct{}
	// Local is a widget's own space.
	Local struct{}
	// Texture is atlas pixel space.
	Texture struct{}
	// Any is used where the space is irrelevant (scroll deltas, paths).
	Any struct{}
)

// Space constrains the tag parameter of geometric types.
type Space interface {
	Global | Parent | Local | Texture | Any
}

// MaxZ sits above anything a widget tree produces. The layout overlay uses it.
const MaxZ = 100000000
