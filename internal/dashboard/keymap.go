package dashboard

// Key binding constants used in handleKey.
const (
	KeyQuit      = "q"
	KeyQuitUpper = "Q"
	KeyCtrlC     = "ctrl+c"
	KeyTab       = "tab"
	KeyShiftTab  = "shift+tab"
	KeyMain      = "1"
	KeyCost      = "2"
	KeyOverview  = "3"
	KeyLeft      = "left"
	KeyRight     = "right"
	KeyH         = "h"
	KeyL         = "l"
	KeyUp        = "up"
	KeyDown      = "down"
	KeyJ         = "j"
	KeyK         = "k"
)
