package vectors

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kpfaulkner/gfxmaths/util"
)

// relative tolerance for '~' vectors
const approxPercentage = 0.00001

type scalarOp struct {
	arity int
	fn    func(a []float32) float32
}

var scalarOps = map[string]scalarOp{
	"e":       {0, func(a []float32) float32 { return util.E }},
	"log10e":  {0, func(a []float32) float32 { return util.Log10E }},
	"log2e":   {0, func(a []float32) float32 { return util.Log2E }},
	"pi":      {0, func(a []float32) float32 { return util.Pi }},
	"piover2": {0, func(a []float32) float32 { return util.PiOver2 }},
	"piover4": {0, func(a []float32) float32 { return util.PiOver4 }},
	"twopi":   {0, func(a []float32) float32 { return util.TwoPi }},

	"barycentric":      {5, func(a []float32) float32 { return util.Barycentric(a[0], a[1], a[2], a[3], a[4]) }},
	"catmullrom":       {5, func(a []float32) float32 { return util.CatmullRom(a[0], a[1], a[2], a[3], a[4]) }},
	"clamp":            {3, func(a []float32) float32 { return util.Clamp(a[0], a[1], a[2]) }},
	"clamp01":          {1, func(a []float32) float32 { return util.Clamp01(a[0]) }},
	"distance":         {2, func(a []float32) float32 { return util.Distance(a[0], a[1]) }},
	"hermite":          {5, func(a []float32) float32 { return util.Hermite(a[0], a[1], a[2], a[3], a[4]) }},
	"interpolatecubic": {5, func(a []float32) float32 { return util.InterpolateCubic(a[0], a[1], a[2], a[3], a[4]) }},
	"lerp":             {3, func(a []float32) float32 { return util.Lerp(a[0], a[1], a[2]) }},
	"max":              {2, func(a []float32) float32 { return util.Max(a[0], a[1]) }},
	"min":              {2, func(a []float32) float32 { return util.Min(a[0], a[1]) }},
	"max4":             {4, func(a []float32) float32 { return util.Max4(a[0], a[1], a[2], a[3]) }},
	"min4":             {4, func(a []float32) float32 { return util.Min4(a[0], a[1], a[2], a[3]) }},
	"median":           {3, func(a []float32) float32 { return util.Median(a[0], a[1], a[2]) }},
	"mod":              {2, func(a []float32) float32 { return util.Mod(a[0], a[1]) }},
	"smoothstep":       {3, func(a []float32) float32 { return util.SmoothStep(a[0], a[1], a[2]) }},
	"todegrees":        {1, func(a []float32) float32 { return util.ToDegrees(a[0]) }},
	"toradians":        {1, func(a []float32) float32 { return util.ToRadians(a[0]) }},
	"wrapangle":        {1, func(a []float32) float32 { return util.WrapAngle(a[0]) }},
}

type pointOp struct {
	points int
	fn     func(p []util.IntPoint) string
}

var pointOps = map[string]pointOp{
	"point.string": {1, func(p []util.IntPoint) string { return p[0].String() }},
	"point.hash":   {1, func(p []util.IntPoint) string { return strconv.FormatUint(uint64(p[0].HashCode()), 10) }},
	"point.equals": {2, func(p []util.IntPoint) string { return strconv.FormatBool(p[0].Equals(p[1])) }},
}

// Result is the outcome of checking one vector.
type Result struct {
	Vector Vector
	Got    string
	Pass   bool
}

// Evaluate runs the vector's operation and returns its result formatted the
// way expected values are written.
func (v Vector) Evaluate() (string, error) {
	if op, ok := scalarOps[v.Op]; ok {
		f, err := v.evalScalar(op)
		if err != nil {
			return "", err
		}
		return FormatFloat32(f), nil
	}
	if op, ok := pointOps[v.Op]; ok {
		return v.evalPoint(op)
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownOperation, v.Op)
}

// Check evaluates the vector and compares it against the expected value.
// Scalars compare bitwise for '=' (any NaN matches any NaN) and within a
// relative tolerance for '~'.
func (v Vector) Check() (Result, error) {
	if op, ok := scalarOps[v.Op]; ok {
		got, err := v.evalScalar(op)
		if err != nil {
			return Result{}, err
		}
		want, err := ParseFloat32(v.Expected)
		if err != nil {
			return Result{}, fmt.Errorf("expected value: %w", err)
		}
		return Result{Vector: v, Got: FormatFloat32(got), Pass: matchScalar(got, want, v.Compare)}, nil
	}

	if op, ok := pointOps[v.Op]; ok {
		if v.Compare != Exact {
			return Result{}, ErrApproximatePoint
		}
		got, err := v.evalPoint(op)
		if err != nil {
			return Result{}, err
		}
		return Result{Vector: v, Got: got, Pass: got == v.Expected}, nil
	}

	return Result{}, fmt.Errorf("%w: %s", ErrUnknownOperation, v.Op)
}

func (v Vector) evalScalar(op scalarOp) (float32, error) {
	if len(v.Args) != op.arity {
		return 0, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, v.Op, op.arity, len(v.Args))
	}
	args := make([]float32, len(v.Args))
	for i, s := range v.Args {
		f, err := ParseFloat32(s)
		if err != nil {
			return 0, fmt.Errorf("argument %d: %w", i+1, err)
		}
		args[i] = f
	}
	return op.fn(args), nil
}

func (v Vector) evalPoint(op pointOp) (string, error) {
	if len(v.Args) != op.points*2 {
		return "", fmt.Errorf("%w: %s takes %d, got %d", ErrArity, v.Op, op.points*2, len(v.Args))
	}
	points := make([]util.IntPoint, op.points)
	for i := range points {
		x, err := strconv.ParseInt(v.Args[2*i], 10, 32)
		if err != nil {
			return "", fmt.Errorf("argument %d: %w", 2*i+1, err)
		}
		y, err := strconv.ParseInt(v.Args[2*i+1], 10, 32)
		if err != nil {
			return "", fmt.Errorf("argument %d: %w", 2*i+2, err)
		}
		points[i] = util.NewIntPoint(int32(x), int32(y))
	}
	return op.fn(points), nil
}

func matchScalar(got float32, want float32, c Comparison) bool {
	gotNaN, wantNaN := got != got, want != want
	if gotNaN || wantNaN {
		return gotNaN && wantNaN
	}
	if c == Approximate {
		if math.IsInf(float64(got), 0) || math.IsInf(float64(want), 0) {
			return got == want
		}
		return util.CloseToPercent(got, want, approxPercentage)
	}
	return math.Float32bits(got) == math.Float32bits(want)
}

// ParseFloat32 accepts decimal literals, NaN, +Inf, -Inf and raw IEEE bit
// patterns written as 0x followed by up to 8 hex digits.
func ParseFloat32(s string) (float32, error) {
	if len(s) > 2 && (strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")) {
		b, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return 0, err
		}
		return math.Float32frombits(uint32(b)), nil
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, err
	}
	return float32(f), nil
}

func FormatFloat32(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
