package backend

import "math"

// Point is a position in chart or screen space.
type Point struct {
	X, Y float64
}

// Cubic is one cubic Bézier piece ending at To.
type Cubic struct {
	C1, C2, To Point
}

// CurvePath is a smooth open curve starting at Start.
type CurvePath struct {
	Start  Point
	Curves []Cubic
}

// End returns the last point on the path.
func (p CurvePath) End() Point {
	if len(p.Curves) == 0 {
		return p.Start
	}
	return p.Curves[len(p.Curves)-1].To
}

// ChartSegment is a run of consecutive same-band points drawn as one curve.
// StartIndex and EndIndex are inclusive indices into the series; consecutive segments
// share their boundary index.
type ChartSegment struct {
	Path       CurvePath
	Color      string
	Band       Band
	StartIndex int
	EndIndex   int
}

// catmullRomAlpha selects the centripetal parameterization.
const catmullRomAlpha = 0.5

// BuildSegments splits series into maximal same-band runs and smooths each run. Each
// run also claims the first point of the following run so adjacent segments meet.
func BuildSegments(series []ParsedPoint, xs TimeScale, ys LevelScale, bands BandPolicy) []ChartSegment {
	if len(series) < 2 {
		return nil
	}
	var segments []ChartSegment
	start := 0
	band := bands.Classify(series[0].Level)
	for i := 1; i < len(series); i++ {
		b := bands.Classify(series[i].Level)
		last := i == len(series)-1
		if b == band && !last {
			continue
		}
		// series[i] closes the current run: either it starts a new band or it is the
		// final point.
		segments = append(segments, ChartSegment{
			Path:       catmullRom(project(series[start:i+1], xs, ys)),
			Color:      bands.Colors[band],
			Band:       band,
			StartIndex: start,
			EndIndex:   i,
		})
		start, band = i, b
	}
	return segments
}

func project(series []ParsedPoint, xs TimeScale, ys LevelScale) []Point {
	pts := make([]Point, 0, len(series))
	for _, p := range series {
		if !p.Valid {
			continue
		}
		pts = append(pts, Point{X: xs.X(p.Date), Y: ys.Y(p.Level)})
	}
	return pts
}

// catmullRom fits a centripetal Catmull-Rom spline through pts and returns it as
// Bézier pieces. Endpoints are treated as doubled so the curve starts and ends on the
// first and last points.
func catmullRom(pts []Point) CurvePath {
	if len(pts) == 0 {
		return CurvePath{}
	}
	path := CurvePath{Start: pts[0]}
	if len(pts) == 1 {
		return path
	}
	if len(pts) == 2 {
		path.Curves = []Cubic{{C1: pts[0], C2: pts[1], To: pts[1]}}
		return path
	}
	path.Curves = make([]Cubic, 0, len(pts)-1)
	for i := 0; i < len(pts)-1; i++ {
		p0 := pts[max(i-1, 0)]
		p1 := pts[i]
		p2 := pts[i+1]
		p3 := pts[min(i+2, len(pts)-1)]
		path.Curves = append(path.Curves, catmullRomPiece(p0, p1, p2, p3))
	}
	return path
}

const catmullRomEpsilon = 1e-12

func catmullRomPiece(p0, p1, p2, p3 Point) Cubic {
	l01, l01sq := knot(p0, p1)
	l12, l12sq := knot(p1, p2)
	l23, l23sq := knot(p2, p3)

	c1, c2 := p1, p2
	if l01 > catmullRomEpsilon {
		a := 2*l01sq + 3*l01*l12 + l12sq
		n := 3 * l01 * (l01 + l12)
		c1 = Point{
			X: (p1.X*a - p0.X*l12sq + p2.X*l01sq) / n,
			Y: (p1.Y*a - p0.Y*l12sq + p2.Y*l01sq) / n,
		}
	}
	if l23 > catmullRomEpsilon {
		b := 2*l23sq + 3*l23*l12 + l12sq
		m := 3 * l23 * (l23 + l12)
		c2 = Point{
			X: (p2.X*b + p1.X*l23sq - p3.X*l12sq) / m,
			Y: (p2.Y*b + p1.Y*l23sq - p3.Y*l12sq) / m,
		}
	}
	return Cubic{C1: c1, C2: c2, To: p2}
}

// knot returns |ab|^alpha and |ab|^(2*alpha).
func knot(a, b Point) (float64, float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	sq := math.Pow(dx*dx+dy*dy, catmullRomAlpha)
	return math.Sqrt(sq), sq
}
