package domain

import (
	interfaces "rectarea/internal/domain/interfaces"
	types "rectarea/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Dimension = types.Dimension
	Area      = types.Area
	Rectangle = types.Rectangle
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	AreaService     = interfaces.AreaService
	DimensionReader = interfaces.DimensionReader
)
