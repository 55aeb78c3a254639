package ui

// Rect is a panel rectangle in terminal cells.
type Rect struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// Right returns the column just past the right edge.
func (r Rect) Right() int { return r.Left + r.Width }

// Bottom returns the row just past the bottom edge.
func (r Rect) Bottom() int { return r.Top + r.Height }

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right() && y >= r.Top && y < r.Bottom()
}

// GestureKind identifies the active pointer gesture on the panel.
type GestureKind int

const (
	GestureNone GestureKind = iota
	GestureDrag
	GestureResize
)

// ResizeEdges records which directions an active resize grows toward.
// A corner affordance sets two of them, an edge affordance sets one.
type ResizeEdges struct {
	Left   bool
	Right  bool
	Top    bool
	Bottom bool
}

// Panel tracks the floating window's rectangle and the drag/resize gesture
// currently acting on it. The drag handle is the header row; the resize
// affordances are the eight border segments (four corners, four edges).
// All coordinates are terminal cells.
type Panel struct {
	rect      Rect
	viewportW int
	viewportH int
	minimized bool
	placed    bool

	gesture   GestureKind
	edges     ResizeEdges
	startX    int
	startY    int
	startRect Rect
}

// NewPanel returns a panel with the default size. It is positioned on the
// first SetViewport call, anchored to the bottom-right corner.
func NewPanel() *Panel {
	return &Panel{
		rect: Rect{Width: DefaultPanelWidth, Height: DefaultPanelHeight},
	}
}

// SetViewport records the terminal dimensions and re-clamps the panel so it
// stays fully visible. The first call anchors an unplaced panel to the
// bottom-right corner, leaving a small gutter of backdrop.
func (p *Panel) SetViewport(width, height int) {
	p.viewportW = width
	p.viewportH = height
	if !p.placed {
		p.rect.Left = width - p.rect.Width - 2
		p.rect.Top = height - p.rect.Height - 1
		p.placed = true
	}
	p.normalize()
}

// SetRect restores persisted geometry, clamping it to the size bounds and
// the current viewport.
func (p *Panel) SetRect(r Rect) {
	p.rect = r
	p.placed = true
	p.normalize()
}

// Rect returns the panel's full rectangle, regardless of minimized state.
func (p *Panel) Rect() Rect {
	return p.rect
}

// EffectiveRect returns the rectangle the panel currently occupies on
// screen: the launcher bubble's when minimized, the full rectangle otherwise.
func (p *Panel) EffectiveRect() Rect {
	w, h := p.effectiveSize()
	return Rect{Left: p.rect.Left, Top: p.rect.Top, Width: w, Height: h}
}

// Minimized reports whether the panel is collapsed to the launcher bubble.
func (p *Panel) Minimized() bool {
	return p.minimized
}

// SetMinimized collapses or restores the panel. Restoring re-clamps the full
// rectangle, which may have drifted while dragged at launcher size.
func (p *Panel) SetMinimized(minimized bool) {
	p.minimized = minimized
	p.normalize()
}

// Gesture returns the kind of the active gesture, if any.
func (p *Panel) Gesture() GestureKind {
	return p.gesture
}

// InGesture reports whether a drag or resize is in progress.
func (p *Panel) InGesture() bool {
	return p.gesture != GestureNone
}

// Contains reports whether the point lies inside the panel's effective
// rectangle.
func (p *Panel) Contains(x, y int) bool {
	return p.EffectiveRect().Contains(x, y)
}

// regionAt classifies a point against the gesture affordances. Points on the
// border ring resize, the header row drags, anything else starts nothing.
// The whole launcher surface drags when minimized.
func (p *Panel) regionAt(x, y int) (GestureKind, ResizeEdges) {
	r := p.EffectiveRect()
	if !r.Contains(x, y) {
		return GestureNone, ResizeEdges{}
	}
	if p.minimized {
		return GestureDrag, ResizeEdges{}
	}

	rx := x - r.Left
	ry := y - r.Top
	var e ResizeEdges
	if rx == 0 {
		e.Left = true
	}
	if rx == r.Width-1 {
		e.Right = true
	}
	if ry == 0 {
		e.Top = true
	}
	if ry == r.Height-1 {
		e.Bottom = true
	}
	if e.Left || e.Right || e.Top || e.Bottom {
		return GestureResize, e
	}
	if ry == 1 {
		return GestureDrag, ResizeEdges{}
	}
	return GestureNone, ResizeEdges{}
}

// StartGesture begins a drag or resize if the point hits the drag handle or
// a resize affordance. It reports whether a gesture began; any other target
// leaves the panel untouched. Starting while a gesture is already active is
// refused so gestures stay mutually exclusive.
func (p *Panel) StartGesture(x, y int) bool {
	if p.gesture != GestureNone {
		return false
	}
	kind, edges := p.regionAt(x, y)
	if kind == GestureNone {
		return false
	}
	p.gesture = kind
	p.edges = edges
	p.startX = x
	p.startY = y
	p.startRect = p.rect
	return true
}

// UpdateGesture applies the pointer's offset from the gesture start to the
// panel rectangle. Calls without an active gesture are ignored.
func (p *Panel) UpdateGesture(x, y int) {
	if p.gesture == GestureNone {
		return
	}
	dx := x - p.startX
	dy := y - p.startY

	switch p.gesture {
	case GestureDrag:
		w, h := p.effectiveSize()
		p.rect.Left = clamp(p.startRect.Left+dx, 0, max(0, p.viewportW-w))
		p.rect.Top = clamp(p.startRect.Top+dy, 0, max(0, p.viewportH-h))

	case GestureResize:
		r := p.startRect
		if p.edges.Right {
			w := clamp(r.Width+dx, MinPanelWidth, MaxPanelWidth)
			w = min(w, p.viewportW-r.Left)
			p.rect.Width = w
		}
		if p.edges.Left {
			// The right edge stays fixed: clamping is absorbed by Left.
			right := r.Left + r.Width
			w := clamp(r.Width-dx, MinPanelWidth, MaxPanelWidth)
			w = min(w, right)
			p.rect.Width = w
			p.rect.Left = right - w
		}
		if p.edges.Bottom {
			h := clamp(r.Height+dy, MinPanelHeight, MaxPanelHeight)
			h = min(h, p.viewportH-r.Top)
			p.rect.Height = h
		}
		if p.edges.Top {
			// The bottom edge stays fixed: clamping is absorbed by Top.
			bottom := r.Top + r.Height
			h := clamp(r.Height-dy, MinPanelHeight, MaxPanelHeight)
			h = min(h, bottom)
			p.rect.Height = h
			p.rect.Top = bottom - h
		}
	}
}

// EndGesture finishes the active gesture. Releasing a drag while minimized
// restores the panel; the return value reports whether that happened.
func (p *Panel) EndGesture() bool {
	if p.gesture == GestureNone {
		return false
	}
	wasDrag := p.gesture == GestureDrag
	p.gesture = GestureNone
	p.edges = ResizeEdges{}

	if wasDrag && p.minimized {
		p.minimized = false
		p.normalize()
		return true
	}
	return false
}

// effectiveSize returns the on-screen dimensions: launcher size when
// minimized, the full rectangle otherwise.
func (p *Panel) effectiveSize() (int, int) {
	if p.minimized {
		return LauncherWidth, LauncherHeight
	}
	return p.rect.Width, p.rect.Height
}

// normalize clamps size to the panel bounds and position to the viewport.
// The viewport wins over the size minimums on very small terminals.
func (p *Panel) normalize() {
	if p.viewportW == 0 || p.viewportH == 0 {
		return
	}
	p.rect.Width = clamp(p.rect.Width, MinPanelWidth, MaxPanelWidth)
	p.rect.Height = clamp(p.rect.Height, MinPanelHeight, MaxPanelHeight)
	p.rect.Width = min(p.rect.Width, p.viewportW)
	p.rect.Height = min(p.rect.Height, p.viewportH)

	w, h := p.effectiveSize()
	p.rect.Left = clamp(p.rect.Left, 0, max(0, p.viewportW-w))
	p.rect.Top = clamp(p.rect.Top, 0, max(0, p.viewportH-h))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
