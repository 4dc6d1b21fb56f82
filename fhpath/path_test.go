package fhpath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func randTransform(rd *rand.Rand) Transform {
	return NewTransform(
		rd.Float64()*4-2, rd.Float64()*4-2,
		rd.Float64()*4-2, rd.Float64()*4-2,
		rd.Float64()*200-100, rd.Float64()*200-100,
	)
}

func TestInverse(t *testing.T) {
	rd := rand.New(rand.NewSource(1))
	for range [200]int{} {
		tr := randTransform(rd)
		if math.Abs(tr.Det()) < 0.1 {
			continue
		}
		inv, ok := tr.Inv()
		if !ok {
			t.Fatalf("%v should be invertible", tr)
		}
		x, y := rd.Float64()*1000, rd.Float64()*1000
		x2, y2 := inv.Apply(tr.Apply(x, y))
		if math.Abs(x2-x) > 1e-9*math.Max(1, math.Abs(x)) || math.Abs(y2-y) > 1e-9*math.Max(1, math.Abs(y)) {
			t.Fatalf("%v: expected (%g, %g), got (%g, %g)", tr, x, y, x2, y2)
		}
		if !tr.Mul(inv).IsIdentity() {
			t.Fatalf("%v times its inverse is not the identity", tr)
		}
	}

	if _, ok := Scale(0, 1).Inv(); ok {
		t.Fatal("singular transform should not be invertible")
	}
}

func TestMul(t *testing.T) {
	tr := Scale(2, 3).Mul(Translate(10, 20))
	x, y := tr.Apply(1, 1)
	if x != 12 || y != 23 {
		t.Fatalf("unexpected (%g, %g)", x, y)
	}
}

func TestArcEndpoint(t *testing.T) {
	rd := rand.New(rand.NewSource(2))
	for range [500]int{} {
		tr := randTransform(rd)
		if math.Abs(tr.Det()) < 1e-3 {
			continue
		}
		arc := ArcTo{
			RX: rd.Float64() * 50, RY: rd.Float64() * 50,
			Rotation: rd.Float64() * 2 * math.Pi,
			LargeArc: rd.Intn(2) == 0, Sweep: rd.Intn(2) == 0,
			X: rd.Float64() * 100, Y: rd.Float64() * 100,
		}
		got := tr.ApplyToArc(arc)
		ex, ey := tr.Apply(arc.X, arc.Y)
		if got.X != ex || got.Y != ey {
			t.Fatalf("endpoint: expected (%g, %g), got (%g, %g)", ex, ey, got.X, got.Y)
		}
		if got.Sweep != (arc.Sweep != (tr.Det() < 0)) {
			t.Fatalf("wrong sweep flag for det %g", tr.Det())
		}
		// the area of the ellipse scales with the determinant
		if exp := arc.RX * arc.RY * math.Abs(tr.Det()); math.Abs(got.RX*got.RY-exp) > 1e-6*math.Max(1, exp) {
			t.Fatalf("area: expected %g, got %g", exp, got.RX*got.RY)
		}
	}
}

func TestArcKnownTransforms(t *testing.T) {
	arc := ArcTo{RX: 10, RY: 5, X: 20, Y: 0, Sweep: true}

	got := Scale(2, 1).ApplyToArc(arc)
	if diff := cmp.Diff(ArcTo{RX: 20, RY: 5, X: 40, Y: 0, Sweep: true}, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatal(diff)
	}

	got = Scale(1, -1).ApplyToArc(arc)
	if got.Sweep {
		t.Fatal("a reflection should flip the sweep flag")
	}

	// a quarter turn swaps the axes
	rot := NewTransform(0, 1, -1, 0, 0, 0)
	got = rot.ApplyToArc(arc)
	if math.Abs(got.RX-10) > 1e-9 || math.Abs(got.RY-5) > 1e-9 || math.Abs(got.Rotation-math.Pi/2) > 1e-9 {
		t.Fatalf("unexpected rotated arc %v", got)
	}
}

func TestArcDegenerate(t *testing.T) {
	for _, tc := range []struct {
		arc ArcTo
		tr  Transform
	}{
		{ArcTo{RX: 0, RY: 0, X: 1, Y: 1}, Scale(2, 2)},
		{ArcTo{RX: 5, RY: 0, X: 1, Y: 1}, Scale(2, 3)},
		{ArcTo{RX: 0, RY: 5, X: 1, Y: 1}, Scale(2, 3)},
		{ArcTo{RX: 5, RY: 3, X: 1, Y: 1}, Scale(0, 0)},
		{ArcTo{RX: 5, RY: 3, X: 1, Y: 1}, Scale(1, 0)},
		{ArcTo{RX: 5, RY: 3, Rotation: math.Pi / 2, X: 1, Y: 1}, NewTransform(1, 1, 1, 1, 0, 0)},
	} {
		got := tc.tr.ApplyToArc(tc.arc)
		for _, v := range []float64{got.RX, got.RY, got.Rotation, got.X, got.Y} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("%v by %v gives %v", tc.arc, tc.tr, got)
			}
		}
	}

	got := Scale(2, 3).ApplyToArc(ArcTo{RX: 5, RY: 0})
	if got.RX != 10 || got.RY != 0 {
		t.Fatalf("segment arc should be scaled: %v", got)
	}
	got = Scale(1, 0).ApplyToArc(ArcTo{RX: 5, RY: 3})
	if got.RX != 5 || got.RY != 0 || got.Rotation != 0 {
		t.Fatalf("flattened arc should keep the major axis: %v", got)
	}
}

func TestCubicBoundingBox(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.CubicTo(0, 10, 10, 10, 10, 0)

	exp := EmptyBox()
	for i := 0; i <= 100; i++ {
		s := float64(i) / 100
		x := 3*(1-s)*s*s*10 + s*s*s*10
		y := 3*(1-s)*(1-s)*s*10 + 3*(1-s)*s*s*10
		exp.Add(x, y)
	}
	got := p.BoundingBox()
	if diff := cmp.Diff(exp, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Fatal(diff)
	}
	if got.YMax != 7.5 {
		t.Fatalf("expected exact sample at t=0.5, got %g", got.YMax)
	}
}

func TestQuadBoundingBox(t *testing.T) {
	var p Path
	p.MoveTo(0, 0)
	p.QuadTo(10, 0, 0, 0)
	box := p.BoundingBox()
	if box.XMax != 5 {
		t.Fatalf("expected xmax = 5, got %g", box.XMax)
	}
	if box.YMin != 0 || box.YMax != 0 {
		t.Fatalf("unexpected vertical extent %v", box)
	}
}

func TestArcBoundingBox(t *testing.T) {
	// half circle from (0,0) to (20,0), centered in (10, 0),
	// with increasing angles
	var p Path
	p.MoveTo(0, 0)
	p.ArcTo(10, 10, 0, false, true, 20, 0)
	box := p.BoundingBox()
	if diff := cmp.Diff(Box{0, -10, 20, 0}, box, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatal(diff)
	}

	// the other half
	p = Path{}
	p.MoveTo(0, 0)
	p.ArcTo(10, 10, 0, false, false, 20, 0)
	box = p.BoundingBox()
	if diff := cmp.Diff(Box{0, 0, 20, 10}, box, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatal(diff)
	}

	// large arc with too small radii: scaled up to a half circle
	p = Path{}
	p.MoveTo(0, 0)
	p.ArcTo(1, 1, 0, true, true, 20, 0)
	box = p.BoundingBox()
	if math.Abs(box.YMin+10) > 1e-9 {
		t.Fatalf("unexpected box %v", box)
	}
}

func TestAngleInSpan(t *testing.T) {
	for _, tc := range []struct {
		t, start, delta float64
		exp             bool
	}{
		{0.5, 0, 1, true},
		{1.5, 0, 1, false},
		{-0.5, 0, -1, true},
		{0.5, 0, -1, false},
		{0.1, 6, 1, true}, // wraps through 2π
		{3, 6, 1, false},
		{1, 0, 7, true},
	} {
		if got := angleInSpan(tc.t, tc.start, tc.delta); got != tc.exp {
			t.Errorf("angleInSpan(%g, %g, %g): expected %v", tc.t, tc.start, tc.delta, tc.exp)
		}
	}
}

func TestPathHelpers(t *testing.T) {
	var p Path
	if !p.Empty() {
		t.Fatal("zero path should be empty")
	}
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	p.Closed = true

	q := p.Clone()
	q.Transform(Translate(1, 1))
	if p.String() != "M1,2 L3,4 Z" {
		t.Fatalf("clone should not share elements: %s", p)
	}
	if q.String() != "M2,3 L4,5 Z" {
		t.Fatalf("unexpected transformed path %s", q)
	}

	p.Append(q)
	if len(p.Elements) != 4 || !p.Closed {
		t.Fatalf("unexpected appended path %s", p)
	}
	if box := p.BoundingBox(); box != (Box{1, 2, 4, 5}) {
		t.Fatalf("unexpected box %v", box)
	}
	if r := p.BoundingBox().Rect(); r.LLx != 1 || r.URy != 5 {
		t.Fatalf("unexpected rect %v", r)
	}
}

func TestArcToCubics(t *testing.T) {
	half := ArcTo{RX: 10, RY: 10, Sweep: true, X: 20, Y: 0}
	cubics := half.ToCubics(0, 0)
	if len(cubics) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(cubics))
	}
	approx := cmpopts.EquateApprox(0, 1e-9)
	if got := [2]float64{cubics[0].X, cubics[0].Y}; !cmp.Equal(got, [2]float64{10, -10}, approx) {
		t.Errorf("unexpected middle point %v", got)
	}
	if got := [2]float64{cubics[1].X, cubics[1].Y}; got != [2]float64{20, 0} {
		t.Errorf("unexpected end point %v", got)
	}

	if cubics := (ArcTo{RX: 10, RY: 10, X: 5, Y: 5}).ToCubics(5, 5); cubics != nil {
		t.Errorf("expected no segment, got %v", cubics)
	}
	flat := ArcTo{RX: 0, RY: 10, X: 5, Y: 0}.ToCubics(0, 0)
	if len(flat) != 1 || flat[0].X != 5 {
		t.Errorf("expected a straight segment, got %v", flat)
	}
}

func TestArcToCubicsCloseEndpoints(t *testing.T) {
	for _, arc := range []ArcTo{
		{RX: 1e3, RY: 1e3, X: 1000, Y: 1e-13},
		{RX: 1e3, RY: 1e3, Sweep: true, X: 1000, Y: 1e-13},
		{RX: 1e6, RY: 1e6, LargeArc: true, X: 1000 + 1e-10, Y: 0},
		{RX: 1e3, RY: 1e3, X: math.NaN(), Y: 0},
	} {
		cubics := arc.ToCubics(1000, 0)
		if len(cubics) == 0 {
			t.Fatalf("%v: expected at least one segment", arc)
		}
		last := cubics[len(cubics)-1]
		if !cmp.Equal([2]float64{last.X, last.Y}, [2]float64{arc.X, arc.Y}, cmpopts.EquateNaNs()) {
			t.Errorf("%v: unexpected end point (%g, %g)", arc, last.X, last.Y)
		}
	}
}
