// SPDX-License-Identifier: MIT
// Package render: functional styling configuration.
//
// Defaults live here as constants (single source of truth). Option
// constructors validate eagerly and panic on nonsensical values; invalid
// styling is programmer error, unlike malformed input data which always
// surfaces as error returns.

package render

// Styling defaults.
const (
	// DefaultWidth is the canvas width in SVG user units.
	DefaultWidth = 960.0

	// DefaultHeight is the canvas height in SVG user units.
	DefaultHeight = 480.0

	// DefaultPad is the inner padding between canvas edge and content.
	DefaultPad = 24.0

	// DefaultLandColor fills basemap polygons.
	DefaultLandColor = "#d9d2c5"

	// DefaultOceanColor fills the canvas behind the basemap.
	DefaultOceanColor = "#ffffff"

	// DefaultEdgeColor strokes co-authorship edges.
	DefaultEdgeColor = "#1f4e79"

	// DefaultNodeColor fills locality nodes.
	DefaultNodeColor = "#c0392b"

	// DefaultNodeRadius is the locality marker radius.
	DefaultNodeRadius = 3.5

	// DefaultMinEdgeWidth / DefaultMaxEdgeWidth bound the stroke width
	// interpolation across the observed weight range.
	DefaultMinEdgeWidth = 0.6
	DefaultMaxEdgeWidth = 4.0

	// DefaultMinEdgeOpacity / DefaultMaxEdgeOpacity bound the stroke
	// opacity interpolation across the observed weight range.
	DefaultMinEdgeOpacity = 0.25
	DefaultMaxEdgeOpacity = 0.9
)

// Panic messages for option misuse.
const (
	panicCanvasInvalid  = "render: canvas dimensions must be positive"
	panicPadInvalid     = "render: padding must be non-negative"
	panicRadiusInvalid  = "render: node radius must be positive"
	panicRangeInvalid   = "render: min must be positive and not exceed max"
	panicOpacityInvalid = "render: opacity bounds must lie in (0, 1] with min <= max"
	panicColorInvalid   = "render: color must be non-empty"
)

// Style holds the resolved rendering configuration. Fields are unexported;
// construction goes through options so defaults stay in one place.
type Style struct {
	width, height float64
	pad           float64
	landColor     string
	oceanColor    string
	edgeColor     string
	nodeColor     string
	nodeRadius    float64
	minEdgeWidth  float64
	maxEdgeWidth  float64
	minEdgeOp     float64
	maxEdgeOp     float64
}

// StyleOption mutates a Style during construction.
type StyleOption func(*Style)

// NewStyle resolves defaults and applies opts in order.
func NewStyle(opts ...StyleOption) Style {
	s := Style{
		width: DefaultWidth, height: DefaultHeight, pad: DefaultPad,
		landColor: DefaultLandColor, oceanColor: DefaultOceanColor,
		edgeColor: DefaultEdgeColor, nodeColor: DefaultNodeColor,
		nodeRadius:   DefaultNodeRadius,
		minEdgeWidth: DefaultMinEdgeWidth, maxEdgeWidth: DefaultMaxEdgeWidth,
		minEdgeOp: DefaultMinEdgeOpacity, maxEdgeOp: DefaultMaxEdgeOpacity,
	}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// WithCanvas sets the canvas size in SVG user units.
// Panics on non-positive dimensions.
func WithCanvas(width, height float64) StyleOption {
	if width <= 0 || height <= 0 {
		panic(panicCanvasInvalid)
	}

	return func(s *Style) { s.width = width; s.height = height }
}

// WithPad sets the inner padding. Panics on negative padding.
func WithPad(pad float64) StyleOption {
	if pad < 0 {
		panic(panicPadInvalid)
	}

	return func(s *Style) { s.pad = pad }
}

// WithLandColor sets the basemap polygon fill. Panics on empty color.
func WithLandColor(c string) StyleOption {
	if c == "" {
		panic(panicColorInvalid)
	}

	return func(s *Style) { s.landColor = c }
}

// WithOceanColor sets the canvas background fill. Panics on empty color.
func WithOceanColor(c string) StyleOption {
	if c == "" {
		panic(panicColorInvalid)
	}

	return func(s *Style) { s.oceanColor = c }
}

// WithEdgeColor sets the edge stroke color. Panics on empty color.
func WithEdgeColor(c string) StyleOption {
	if c == "" {
		panic(panicColorInvalid)
	}

	return func(s *Style) { s.edgeColor = c }
}

// WithNodeColor sets the locality marker fill. Panics on empty color.
func WithNodeColor(c string) StyleOption {
	if c == "" {
		panic(panicColorInvalid)
	}

	return func(s *Style) { s.nodeColor = c }
}

// WithNodeRadius sets the locality marker radius. Panics on non-positive r.
func WithNodeRadius(r float64) StyleOption {
	if r <= 0 {
		panic(panicRadiusInvalid)
	}

	return func(s *Style) { s.nodeRadius = r }
}

// WithEdgeWidthRange bounds the stroke-width interpolation.
// Panics unless 0 < min <= max.
func WithEdgeWidthRange(min, max float64) StyleOption {
	if min <= 0 || min > max {
		panic(panicRangeInvalid)
	}

	return func(s *Style) { s.minEdgeWidth = min; s.maxEdgeWidth = max }
}

// WithEdgeOpacityRange bounds the stroke-opacity interpolation.
// Panics unless 0 < min <= max <= 1.
func WithEdgeOpacityRange(min, max float64) StyleOption {
	if min <= 0 || min > max || max > 1 {
		panic(panicOpacityInvalid)
	}

	return func(s *Style) { s.minEdgeOp = min; s.maxEdgeOp = max }
}
