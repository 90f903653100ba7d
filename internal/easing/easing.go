package easing

// Curve selects one of the fixed interpolation curves used for zoom
// animation. The set is closed: rendering code switches exhaustively
// over it instead of dispatching through an interface.
type Curve string

const (
	Linear    Curve = "linear"
	EaseIn    Curve = "ease_in"
	EaseOut   Curve = "ease_out"
	EaseInOut Curve = "ease_in_out"
)

// Default is the curve applied when a configuration carries an
// unknown or empty curve name.
const Default = EaseInOut

// Valid reports whether c names one of the supported curves.
func (c Curve) Valid() bool {
	switch c {
	case Linear, EaseIn, EaseOut, EaseInOut:
		return true
	}
	return false
}

// Eval maps normalized progress x in [0,1] through the curve.
// Inputs outside [0,1] are clamped first, so phase-boundary rounding
// can never push the animation past its endpoints.
func Eval(c Curve, x float64) float64 {
	if x < 0 {
		x = 0
	} else if x > 1 {
		x = 1
	}

	switch c {
	case Linear:
		return x
	case EaseIn:
		return x * x
	case EaseOut:
		return 1 - (1-x)*(1-x)
	case EaseInOut:
		return x * x * (3 - 2*x) // smoothstep
	default:
		return x * x * (3 - 2*x)
	}
}

// Lerp performs linear interpolation between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
