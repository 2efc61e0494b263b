package plot

import "math"

// marginFraction pads the data limits on each side of an axis.
const marginFraction = 0.05

// StepPoints converts (x, y) into a polyline that holds y[i] on the
// interval (x[i-1], x[i]]. The output has 2*len(x)-1 points.
func StepPoints(x, y []float64) (sx, sy []float64) {
	n := min(len(x), len(y))
	if n == 0 {
		return nil, nil
	}

	sx = make([]float64, 0, 2*n-1)
	sy = make([]float64, 0, 2*n-1)
	sx = append(sx, x[0])
	sy = append(sy, y[0])
	for i := 1; i < n; i++ {
		sx = append(sx, x[i-1], x[i])
		sy = append(sy, y[i], y[i])
	}

	return sx, sy
}

// limits returns the min and max over all values, ignoring NaN.
// ok is false when no finite value was seen.
func limits(series ...[]float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, v := range s {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
			ok = true
		}
	}

	return lo, hi, ok
}

// padded widens [lo, hi] by marginFraction on both sides. A degenerate
// interval is widened by one unit each way.
func padded(lo, hi float64) (float64, float64) {
	span := hi - lo
	if span == 0 {
		return lo - 1, hi + 1
	}

	return lo - span*marginFraction, hi + span*marginFraction
}

// edgeToward returns the point where a ray from the centre of a box with
// half-width hw and half-height hh, heading to (tx, ty), leaves the box.
func edgeToward(cx, cy, hw, hh, tx, ty float64) (float64, float64) {
	dx, dy := tx-cx, ty-cy
	if dx == 0 && dy == 0 {
		return cx, cy
	}

	t := math.Inf(1)
	if dx != 0 {
		t = math.Min(t, hw/math.Abs(dx))
	}
	if dy != 0 {
		t = math.Min(t, hh/math.Abs(dy))
	}
	if t > 1 {
		// Target lies inside the box.
		return tx, ty
	}

	return cx + t*dx, cy + t*dy
}

// arrowHead returns the two barb end points for an arrow ending at (x1, y1)
// coming from (x0, y0).
func arrowHead(x0, y0, x1, y1, size, spread float64) (ax, ay, bx, by float64) {
	angle := math.Atan2(y1-y0, x1-x0)
	ax = x1 - size*math.Cos(angle-spread)
	ay = y1 - size*math.Sin(angle-spread)
	bx = x1 - size*math.Cos(angle+spread)
	by = y1 - size*math.Sin(angle+spread)
	return ax, ay, bx, by
}
