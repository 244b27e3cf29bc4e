package tcellinput

import (
	"github.com/gdamore/tcell/v2"

	"github.com/go-theft-auto/inputmap"
)

var namedKeys = map[tcell.Key]inputmap.Key{
	tcell.KeyEnter:      inputmap.KeyEnter,
	tcell.KeyEscape:     inputmap.KeyEscape,
	tcell.KeyTab:        inputmap.KeyTab,
	tcell.KeyBacktab:    inputmap.KeyTab,
	tcell.KeyBackspace:  inputmap.KeyBackspace,
	tcell.KeyBackspace2: inputmap.KeyBackspace,
	tcell.KeyLeft:       inputmap.KeyLeft,
	tcell.KeyRight:      inputmap.KeyRight,
	tcell.KeyUp:         inputmap.KeyUp,
	tcell.KeyDown:       inputmap.KeyDown,
	tcell.KeyPgUp:       inputmap.KeyPageUp,
	tcell.KeyPgDn:       inputmap.KeyPageDown,
	tcell.KeyHome:       inputmap.KeyHome,
	tcell.KeyEnd:        inputmap.KeyEnd,
	tcell.KeyInsert:     inputmap.KeyInsert,
	tcell.KeyDelete:     inputmap.KeyDelete,
	tcell.KeyF1:         inputmap.KeyF1,
	tcell.KeyF2:         inputmap.KeyF2,
	tcell.KeyF3:         inputmap.KeyF3,
	tcell.KeyF4:         inputmap.KeyF4,
	tcell.KeyF5:         inputmap.KeyF5,
	tcell.KeyF6:         inputmap.KeyF6,
	tcell.KeyF7:         inputmap.KeyF7,
	tcell.KeyF8:         inputmap.KeyF8,
	tcell.KeyF9:         inputmap.KeyF9,
	tcell.KeyF10:        inputmap.KeyF10,
	tcell.KeyF11:        inputmap.KeyF11,
	tcell.KeyF12:        inputmap.KeyF12,
}

var runeKeys = map[rune]inputmap.Key{
	' ':  inputmap.KeySpace,
	'-':  inputmap.KeyMinus,
	'=':  inputmap.KeyEqual,
	'[':  inputmap.KeyLeftBracket,
	']':  inputmap.KeyRightBracket,
	';':  inputmap.KeySemicolon,
	'\'': inputmap.KeyApostrophe,
	',':  inputmap.KeyComma,
	'.':  inputmap.KeyPeriod,
	'/':  inputmap.KeySlash,
	'\\': inputmap.KeyBackslash,
	'`':  inputmap.KeyGraveAccent,
}

// mapKey maps a tcell key. Letters are matched regardless of case and
// Ctrl+letter maps to the letter. Unmapped keys return KeyNone.
func mapKey(key tcell.Key, r rune) inputmap.Key {
	if k, ok := namedKeys[key]; ok {
		return k
	}
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		return inputmap.KeyA + inputmap.Key(key-tcell.KeyCtrlA)
	}
	if key != tcell.KeyRune {
		return inputmap.KeyNone
	}

	switch {
	case r >= 'a' && r <= 'z':
		return inputmap.KeyA + inputmap.Key(r-'a')
	case r >= 'A' && r <= 'Z':
		return inputmap.KeyA + inputmap.Key(r-'A')
	case r >= '0' && r <= '9':
		return inputmap.Key0 + inputmap.Key(r-'0')
	}
	return runeKeys[r]
}
