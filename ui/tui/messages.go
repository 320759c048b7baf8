package tui

// paneWriteMsg appends a line to the pane with the given title.
type paneWriteMsg struct {
	Title string
	Text  string
}

// paneClearMsg empties the pane with the given title.
type paneClearMsg struct {
	Title string
}
