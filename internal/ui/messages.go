package ui

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}
