package layout

import "math"

// LeafPlacement is the absolute pixel rectangle computed for one leaf.
type LeafPlacement struct {
	ID    string
	Panel PanelKind
	X     int
	Y     int
	W     int
	H     int
}

// SplitterPlacement is the rectangle and drag bounds for one splitter
// handle. MinRatio and MaxRatio are the clamp bounds the interactive drag
// handler must respect, expressed as fractions of the divisible track.
type SplitterPlacement struct {
	ID            string
	Axis          SplitAxis
	X             int
	Y             int
	W             int
	H             int
	Ratio         float64
	MinRatio      float64
	MaxRatio      float64
	TrackStartPx  int
	TrackLengthPx int
}

// Metrics is the flattened output of a geometry solve: everything the
// renderer needs to draw panels and splitters.
type Metrics struct {
	Leaves    []LeafPlacement
	Splitters []SplitterPlacement
}

type rect struct {
	x, y, w, h int
}

// Solve divides the viewport rectangle across the tree, producing absolute
// pixel rectangles for every drawable leaf and every splitter. It holds no
// state and must be re-run on every viewport or tree change.
func Solve(root *Node, viewportW, viewportH, splitterPx int) Metrics {
	var m Metrics
	solveNode(root, rect{0, 0, viewportW, viewportH}, splitterPx, &m)
	return m
}

func solveNode(n *Node, r rect, splitterPx int, m *Metrics) {
	if n.IsEmpty() {
		return
	}

	if n.Kind == NodeLeaf {
		if n.Panel == PanelNone || r.w <= 0 || r.h <= 0 {
			return
		}
		m.Leaves = append(m.Leaves, LeafPlacement{
			ID: n.ID, Panel: n.Panel,
			X: r.x, Y: r.y, W: r.w, H: r.h,
		})
		return
	}

	dimension := r.h
	if n.Axis == AxisVertical {
		dimension = r.w
	}
	total := dimension - splitterPx

	minFirstW, minFirstH := propagatedMinSize(n.First, splitterPx)
	minSecondW, minSecondH := propagatedMinSize(n.Second, splitterPx)
	minFirst, minSecond := minFirstH, minSecondH
	if n.Axis == AxisVertical {
		minFirst, minSecond = minFirstW, minSecondW
	}
	effMinFirst := max(n.MinFirstPx, minFirst)
	effMinSecond := max(n.MinSecondPx, minSecond)

	var firstPx int
	ratio := 0.5
	minRatioBound, maxRatioBound := 0.5, 0.5
	if total > 0 {
		lo := min(effMinFirst, total)
		hi := total - effMinSecond
		firstPx = int(math.Round(n.Ratio * float64(total)))
		firstPx = max(firstPx, lo)
		// When the two minimums cannot both fit, the second child's
		// minimum wins, mirroring the clamp order.
		if firstPx > hi {
			firstPx = max(hi, 0)
		}
		ratio = float64(firstPx) / float64(total)
		minRatioBound = float64(lo) / float64(total)
		maxRatioBound = float64(max(hi, lo)) / float64(total)
	}

	firstRect, splitterRect, secondRect := divide(r, n.Axis, firstPx, splitterPx, total)

	m.Splitters = append(m.Splitters, SplitterPlacement{
		ID:            n.ID,
		Axis:          n.Axis,
		X:             splitterRect.x,
		Y:             splitterRect.y,
		W:             splitterRect.w,
		H:             splitterRect.h,
		Ratio:         ratio,
		MinRatio:      minRatioBound,
		MaxRatio:      maxRatioBound,
		TrackStartPx:  trackStart(r, n.Axis),
		TrackLengthPx: max(total, 0),
	})

	solveNode(n.First, firstRect, splitterPx, m)
	solveNode(n.Second, secondRect, splitterPx, m)
}

func divide(r rect, axis SplitAxis, firstPx, splitterPx, total int) (first, splitter, second rect) {
	secondPx := max(total-firstPx, 0)
	if total <= 0 {
		firstPx, secondPx = 0, 0
	}
	if axis == AxisVertical {
		first = rect{r.x, r.y, firstPx, r.h}
		splitter = rect{r.x + firstPx, r.y, splitterPx, r.h}
		second = rect{r.x + firstPx + splitterPx, r.y, secondPx, r.h}
		return first, splitter, second
	}
	first = rect{r.x, r.y, r.w, firstPx}
	splitter = rect{r.x, r.y + firstPx, r.w, splitterPx}
	second = rect{r.x, r.y + firstPx + splitterPx, r.w, secondPx}
	return first, splitter, second
}

func trackStart(r rect, axis SplitAxis) int {
	if axis == AxisVertical {
		return r.x
	}
	return r.y
}

// propagatedMinSize computes the bottom-up minimum footprint of a subtree:
// a leaf's is its panel's registry minimum; a split sums along its own axis
// (plus splitter thickness) and takes the max across it, with each child's
// contribution floored by the split's declared minimums.
func propagatedMinSize(n *Node, splitterPx int) (w, h int) {
	if n.IsEmpty() {
		return 0, 0
	}
	if n.Kind == NodeLeaf {
		return n.Panel.MinSizePx()
	}

	firstW, firstH := propagatedMinSize(n.First, splitterPx)
	secondW, secondH := propagatedMinSize(n.Second, splitterPx)
	if n.Axis == AxisVertical {
		w = max(firstW, n.MinFirstPx) + max(secondW, n.MinSecondPx) + splitterPx
		h = max(firstH, secondH)
		return w, h
	}
	w = max(firstW, secondW)
	h = max(firstH, n.MinFirstPx) + max(secondH, n.MinSecondPx) + splitterPx
	return w, h
}
