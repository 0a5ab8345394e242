package logic

// Navigator moves the results cursor and keeps it inside the viewport.
// Positions are counted in results, not terminal rows.
type Navigator struct {
	cursor   int
	offset   int
	pageSize int
	total    int
}

// NewNavigator creates a navigator over total results with pageSize visible
func NewNavigator(cursor, offset, pageSize, total int) *Navigator {
	n := &Navigator{cursor: cursor, offset: offset, pageSize: pageSize, total: total}
	n.clamp()
	return n
}

// Cursor returns the selected result index
func (n *Navigator) Cursor() int { return n.cursor }

// Offset returns the first visible result index
func (n *Navigator) Offset() int { return n.offset }

// Move applies a direction: "up", "down", "pageup", "pagedown", "home" or "end"
func (n *Navigator) Move(direction string) {
	switch direction {
	case "up":
		n.cursor--
	case "down":
		n.cursor++
	case "pageup":
		n.cursor -= n.page()
	case "pagedown":
		n.cursor += n.page()
	case "home":
		n.cursor = 0
	case "end":
		n.cursor = n.total - 1
	}
	n.clamp()
}

// Scroll moves the viewport by delta results and drags the cursor along
func (n *Navigator) Scroll(delta int) {
	n.offset += delta
	n.cursor += delta
	n.clamp()
}

func (n *Navigator) page() int {
	if n.pageSize < 1 {
		return 1
	}
	return n.pageSize
}

// clamp keeps cursor and offset in range and the cursor visible
func (n *Navigator) clamp() {
	if n.total <= 0 {
		n.cursor, n.offset = 0, 0
		return
	}
	if n.cursor < 0 {
		n.cursor = 0
	}
	if n.cursor >= n.total {
		n.cursor = n.total - 1
	}

	page := n.page()

	// If selected item is above viewport, scroll up
	if n.cursor < n.offset {
		n.offset = n.cursor
	}
	// If selected item is below viewport, scroll down
	if n.cursor >= n.offset+page {
		n.offset = n.cursor - page + 1
	}

	maxOffset := n.total - page
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.offset > maxOffset {
		n.offset = maxOffset
	}
	if n.offset < 0 {
		n.offset = 0
	}
}
