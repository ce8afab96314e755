package input

import (
	"os"
	"time"

	"golang.org/x/term"
)

// readByte reads a single byte from stdin in raw mode.
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence after
// an initial ESC byte. It returns the arrow code if successful.
func tryReadArrowKey() string {
	b2, err := readByte()
	if err != nil {
		return ""
	}

	// CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return ""
	}
	b3, err := readByte()
	if err != nil {
		return ""
	}

	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return ""
}

// ReadKey reads one keypress from stdin in raw mode and returns it as a
// raw input event. A bare ESC (no sequence follows within the read)
// reports "escape"; Ctrl+C also maps to "escape" so raw mode always has
// an exit.
func ReadKey() (RawInput, error) {
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return RawInput{}, err
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	b1, err := readByte()
	if err != nil {
		return RawInput{}, err
	}

	code := ""
	switch {
	case b1 == 0x1b:
		code = tryReadArrowKey()
		if code == "" {
			code = "escape"
		}
	case b1 == 3: // Ctrl+C
		code = "escape"
	case b1 == '\n' || b1 == '\r':
		code = "enter"
	case b1 >= 'A' && b1 <= 'Z':
		code = string(b1 - 'A' + 'a')
	case b1 >= 32 && b1 < 127:
		code = string(b1)
	}

	return RawInput{
		Device:    DeviceTerminal,
		Code:      code,
		Timestamp: time.Now(),
	}, nil
}
