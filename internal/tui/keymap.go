package tui

// Key binding constants used in handleKey.
const (
	KeyCtrlC     = "ctrl+c"
	KeyEsc       = "esc"
	KeyTab       = "tab"
	KeyEnter     = "enter"
	KeyLeft      = "left"
	KeyRight     = "right"
	KeyPgUp      = "pgup"
	KeyPgDown    = "pgdown"
	KeyBackspace = "backspace"
	KeyClearLine = "ctrl+u"
	KeyExportPDF = "ctrl+e"
	KeySnapshot  = "ctrl+s"
	KeyCSL       = "ctrl+r"
)
