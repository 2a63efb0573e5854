package logic

// Navigator handles selection and viewport management for the results list.
// The viewport reserves one line per scroll indicator, so the effective
// number of visible rows shrinks when content continues above or below.
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	totalItems     int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{viewportHeight: 1}
}

// Selected returns the current selected index
func (n *Navigator) Selected() int {
	return n.selectedIndex
}

// Offset returns the current viewport offset
func (n *Navigator) Offset() int {
	return n.viewportOffset
}

// SetViewportHeight resizes the visible area and keeps the selection on
// screen.
func (n *Navigator) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	n.viewportHeight = height
	n.ensureSelectedVisible()
}

// SetTotal updates the number of items and clamps the selection to the
// new bounds.
func (n *Navigator) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	n.totalItems = total
	if n.selectedIndex > total-1 {
		n.selectedIndex = total - 1
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}
	n.ensureSelectedVisible()
}

// MoveUp moves the selection one row up.
func (n *Navigator) MoveUp() {
	n.Select(n.selectedIndex - 1)
}

// MoveDown moves the selection one row down.
func (n *Navigator) MoveDown() {
	n.Select(n.selectedIndex + 1)
}

// PageUp moves the selection up by one viewport height.
func (n *Navigator) PageUp() {
	n.Select(n.selectedIndex - n.viewportHeight)
}

// PageDown moves the selection down by one viewport height.
func (n *Navigator) PageDown() {
	n.Select(n.selectedIndex + n.viewportHeight)
}

// JumpTop selects the first item.
func (n *Navigator) JumpTop() {
	n.Select(0)
}

// JumpBottom selects the last item.
func (n *Navigator) JumpBottom() {
	n.Select(n.totalItems - 1)
}

// Select sets the selected index, clamped to bounds, and scrolls it into
// view.
func (n *Navigator) Select(index int) {
	if index > n.totalItems-1 {
		index = n.totalItems - 1
	}
	if index < 0 {
		index = 0
	}
	n.selectedIndex = index
	n.ensureSelectedVisible()
}

// VisibleRange reports which items to draw and whether scroll indicators
// are needed above or below them.
func (n *Navigator) VisibleRange() (start, end int, showTop, showBottom bool) {
	showTop = n.viewportOffset > 0
	showBottom = n.viewportOffset+n.viewportHeight < n.totalItems

	// A top indicator eats a line, which can push the last item out of
	// view and force a bottom indicator too.
	if !showBottom && showTop {
		if n.totalItems-n.viewportOffset > n.viewportHeight-1 {
			showBottom = true
		}
	}

	effective := n.effectiveHeight(showTop, showBottom)
	end = n.viewportOffset + effective
	if end > n.totalItems {
		end = n.totalItems
	}
	return n.viewportOffset, end, showTop, showBottom
}

// ensureSelectedVisible adjusts the viewport to keep the selected item
// visible.
func (n *Navigator) ensureSelectedVisible() {
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}

	needsTop := n.viewportOffset > 0
	needsBottom := n.viewportOffset+n.viewportHeight < n.totalItems
	if !needsBottom && needsTop {
		if n.totalItems-n.viewportOffset > n.viewportHeight-1 {
			needsBottom = true
		}
	}

	effective := n.effectiveHeight(needsTop, needsBottom)

	if n.selectedIndex >= n.viewportOffset+effective {
		newOffset := n.selectedIndex - effective + 1
		if max := n.totalItems - effective; newOffset > max {
			newOffset = max
		}
		if newOffset < 0 {
			newOffset = 0
		}
		n.viewportOffset = newOffset
	}

	if max := n.totalItems - effective; n.viewportOffset > max {
		n.viewportOffset = max
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}

func (n *Navigator) effectiveHeight(top, bottom bool) int {
	h := n.viewportHeight
	if top {
		h--
	}
	if bottom {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}
