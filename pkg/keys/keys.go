// Package keys maps the key names used in configuration files to Linux
// input event codes.
//
// Names are the lowercase form of the kernel's KEY_* constants without the
// prefix: "a", "7", "leftctrl", "pageup". Configuration carries keys verbatim
// as names; resolution to a code happens when an event is emitted, so an
// unknown name surfaces at execution time, not at decode time.
package keys

import (
	"github.com/bendahl/uinput"

	"github.com/adewitt/gestic/pkg/errors"
)

// Key is a symbolic key name as written in a configuration file.
type Key string

func (k Key) String() string { return string(k) }

// Known reports whether the key name resolves to an event code.
func Known(k Key) bool {
	_, ok := table[k]
	return ok
}

// Code resolves a key name to its Linux input event code.
func Code(k Key) (int, error) {
	code, ok := table[k]
	if !ok {
		return 0, errors.Newf(errors.ErrKeyUnknown, "unknown key name %q", string(k))
	}
	return code, nil
}

var table = map[Key]int{
	"a": uinput.KeyA,
	"b": uinput.KeyB,
	"c": uinput.KeyC,
	"d": uinput.KeyD,
	"e": uinput.KeyE,
	"f": uinput.KeyF,
	"g": uinput.KeyG,
	"h": uinput.KeyH,
	"i": uinput.KeyI,
	"j": uinput.KeyJ,
	"k": uinput.KeyK,
	"l": uinput.KeyL,
	"m": uinput.KeyM,
	"n": uinput.KeyN,
	"o": uinput.KeyO,
	"p": uinput.KeyP,
	"q": uinput.KeyQ,
	"r": uinput.KeyR,
	"s": uinput.KeyS,
	"t": uinput.KeyT,
	"u": uinput.KeyU,
	"v": uinput.KeyV,
	"w": uinput.KeyW,
	"x": uinput.KeyX,
	"y": uinput.KeyY,
	"z": uinput.KeyZ,

	"1": uinput.Key1,
	"2": uinput.Key2,
	"3": uinput.Key3,
	"4": uinput.Key4,
	"5": uinput.Key5,
	"6": uinput.Key6,
	"7": uinput.Key7,
	"8": uinput.Key8,
	"9": uinput.Key9,
	"0": uinput.Key0,

	"esc":       uinput.KeyEsc,
	"enter":     uinput.KeyEnter,
	"space":     uinput.KeySpace,
	"tab":       uinput.KeyTab,
	"backspace": uinput.KeyBackspace,
	"delete":    uinput.KeyDelete,
	"insert":    uinput.KeyInsert,
	"home":      uinput.KeyHome,
	"end":       uinput.KeyEnd,
	"pageup":    uinput.KeyPageup,
	"pagedown":  uinput.KeyPagedown,
	"up":        uinput.KeyUp,
	"down":      uinput.KeyDown,
	"left":      uinput.KeyLeft,
	"right":     uinput.KeyRight,

	"minus":      uinput.KeyMinus,
	"equal":      uinput.KeyEqual,
	"leftbrace":  uinput.KeyLeftbrace,
	"rightbrace": uinput.KeyRightbrace,
	"semicolon":  uinput.KeySemicolon,
	"apostrophe": uinput.KeyApostrophe,
	"grave":      uinput.KeyGrave,
	"backslash":  uinput.KeyBackslash,
	"comma":      uinput.KeyComma,
	"dot":        uinput.KeyDot,
	"slash":      uinput.KeySlash,
	"capslock":   uinput.KeyCapslock,

	"leftctrl":   uinput.KeyLeftctrl,
	"leftshift":  uinput.KeyLeftshift,
	"leftalt":    uinput.KeyLeftalt,
	"leftmeta":   uinput.KeyLeftmeta,
	"rightctrl":  uinput.KeyRightctrl,
	"rightshift": uinput.KeyRightshift,
	"rightalt":   uinput.KeyRightalt,
	"rightmeta":  uinput.KeyRightmeta,

	"f1":  uinput.KeyF1,
	"f2":  uinput.KeyF2,
	"f3":  uinput.KeyF3,
	"f4":  uinput.KeyF4,
	"f5":  uinput.KeyF5,
	"f6":  uinput.KeyF6,
	"f7":  uinput.KeyF7,
	"f8":  uinput.KeyF8,
	"f9":  uinput.KeyF9,
	"f10": uinput.KeyF10,
	"f11": uinput.KeyF11,
	"f12": uinput.KeyF12,

	"mute":           uinput.KeyMute,
	"volumedown":     uinput.KeyVolumedown,
	"volumeup":       uinput.KeyVolumeup,
	"brightnessdown": uinput.KeyBrightnessdown,
	"brightnessup":   uinput.KeyBrightnessup,
	"playpause":      uinput.KeyPlaypause,
	"nextsong":       uinput.KeyNextsong,
	"previoussong":   uinput.KeyPrevioussong,
}
