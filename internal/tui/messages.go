package tui

// bodyEditedMsg carries a note body back from the external editor.
type bodyEditedMsg struct {
	Content string
}

// forwardRequestMsg asks the container to activate the forward control,
// e.g. when an input pane accepts its value on enter.
type forwardRequestMsg struct{}
