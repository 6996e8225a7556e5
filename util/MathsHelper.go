package util

import (
	"math"
	"math/bits"
)

// Fixed single precision literals. Stored test vectors depend on these exact
// values so they must not be replaced with computed ones.
const (
	E       float32 = 2.718282
	Log10E  float32 = 0.4342945
	Log2E   float32 = 1.442695
	Pi      float32 = 3.141593
	PiOver2 float32 = 1.570796
	PiOver4 float32 = 0.7853982
	TwoPi   float32 = 6.283185
)

const (
	radToDeg float32 = 57.29578
	degToRad float32 = 0.01745329

	// float32(2*math.Pi) widened to float64, and float32(math.Pi)
	wrapTwoPi         = 6.2831854820251465
	wrapPi    float32 = 3.14159274
)

// Barycentric returns the coordinate of a point given in barycentric
// coordinates (a1, a2) relative to the triangle v1, v2, v3.
func Barycentric(v1 float32, v2 float32, v3 float32, a1 float32, a2 float32) float32 {
	return (v1 + (a1 * (v2 - v1))) + (a2 * (v3 - v1))
}

// CatmullRom evaluates the Catmull-Rom spline through v1..v4 at t. The curve
// passes through v2 at t=0 and v3 at t=1.
func CatmullRom(v1 float32, v2 float32, v3 float32, v4 float32, t float32) float32 {
	t2 := t * t
	t3 := t * t2
	return 0.5 * ((((2 * v2) + ((-v1 + v3) * t)) +
		(((((2 * v1) - (5 * v2)) + (4 * v3)) - v4) * t2)) +
		((((-v1 + (3 * v2)) - (3 * v3)) + v4) * t3))
}

// Clamp checks max before min, so with an inverted range the result is
// always one of the bounds.
func Clamp(v float32, min float32, max float32) float32 {
	if v > max {
		return max
	}
	if v < min {
		return min
	}
	return v
}

func Clamp01(v float32) float32 {
	return Clamp(v, 0, 1)
}

func Distance(v1 float32, v2 float32) float32 {
	return float32(math.Abs(float64(v1 - v2)))
}

// Hermite evaluates the cubic Hermite spline between positions v1 and v2 with
// tangents t1 and t2.
func Hermite(v1 float32, t1 float32, v2 float32, t2 float32, amount float32) float32 {
	s2 := amount * amount
	s3 := amount * s2
	h1 := ((2 * s3) - (3 * s2)) + 1
	h2 := (-2 * s3) + (3 * s2)
	h3 := (s3 - (2 * s2)) + amount
	h4 := s3 - s2
	return (((v1 * h1) + (v2 * h2)) + (t1 * h3)) + (t2 * h4)
}

// Lerp does not clamp amount.
func Lerp(v1 float32, v2 float32, amount float32) float32 {
	return v1 + ((v2 - v1) * amount)
}

// Max and Min follow the builtin semantics: NaN in either position gives NaN
// and +0 is considered larger than -0.
func Max(v1 float32, v2 float32) float32 {
	return max(v1, v2)
}

func Min(v1 float32, v2 float32) float32 {
	return min(v1, v2)
}

func Max4(a float32, b float32, c float32, d float32) float32 {
	return Max(a, Max(b, Max(c, d)))
}

func Min4(a float32, b float32, c float32, d float32) float32 {
	return Min(a, Min(b, Min(c, d)))
}

func Median(a float32, b float32, c float32) float32 {
	return Max(Min(a, b), Min(Max(a, b), c))
}

// Mod is floored modulus, the result takes the sign of d.
func Mod(n float32, d float32) float32 {
	return n - float32(math.Floor(float64(n/d)))*d
}

func SmoothStep(v1 float32, v2 float32, amount float32) float32 {
	amount = Clamp(amount, 0, 1)
	return Lerp(v1, v2, (amount*amount)*(3-(2*amount)))
}

// InterpolateCubic interpolates from a to b using preA and postB as handles.
func InterpolateCubic(preA float32, a float32, b float32, postB float32, t float32) float32 {
	return a + 0.5*t*(b-preA+t*(2*preA-5*a+4*b-postB+t*(3*(a-b)+postB-preA)))
}

func ToDegrees(radians float32) float32 {
	return radians * radToDeg
}

func ToRadians(degrees float32) float32 {
	return degrees * degToRad
}

// WrapAngle reduces angle to (-pi, pi]. The remainder uses a round to nearest
// quotient, so it can land exactly on -pi which is then moved to pi.
func WrapAngle(angle float32) float32 {
	angle = float32(math.Remainder(float64(angle), wrapTwoPi))
	if angle <= -wrapPi {
		angle += float32(wrapTwoPi)
	}
	return angle
}

// NextPowerOfTwo returns the next power of two strictly larger than n. Anything
// below 1 gives 1.
func NextPowerOfTwo(n int) int {
	if n < 1 {
		return 1
	}
	return 1 << bits.Len(uint(n))
}

// NextMultipleOf returns the smallest multiple of of that is >= value. A zero
// of returns value unchanged.
func NextMultipleOf(value int, of int) int {
	if of == 0 {
		return value
	}
	if of < 0 {
		of = -of
	}
	r := value % of
	if r == 0 {
		return value
	}
	if value < 0 {
		return value - r
	}
	return value - r + of
}
