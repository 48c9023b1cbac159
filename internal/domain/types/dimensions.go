package types

// Dimension is one side of a rectangle as entered by the user.
type Dimension int32

// Area is the product of two dimensions.
type Area int32

// Rectangle pairs the two dimensions read in a single invocation.
type Rectangle struct {
	Width  Dimension
	Height Dimension
}
