package input

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"
)

// keyCode names a raw byte sequence read from a terminal in raw mode.
// A whole escape sequence normally arrives in a single read.
func keyCode(buf []byte) string {
	if len(buf) == 0 {
		return ""
	}
	if buf[0] == 0x1b {
		if len(buf) == 1 {
			return "escape"
		}
		if len(buf) >= 3 && (buf[1] == '[' || buf[1] == 'O') {
			switch buf[2] {
			case 'A':
				return "arrow_up"
			case 'B':
				return "arrow_down"
			case 'C':
				return "arrow_right"
			case 'D':
				return "arrow_left"
			}
			if string(buf[2:]) == "19~" {
				return "f8"
			}
		}
		// Unknown escape sequence - discard it
		return ""
	}

	b := buf[0]
	switch {
	case b == 3:
		return "ctrl_c"
	case b == '\n' || b == '\r':
		return "enter"
	case b >= 32 && b < 127:
		return string(rune(b))
	}
	return ""
}

// ReadKey puts the terminal into raw mode, waits for one key press and
// returns it as a RawInput. Unrecognised keys yield an empty Code.
// Cancelling ctx restores the terminal and returns ctx.Err(); the pending
// stdin read is abandoned.
func ReadKey(ctx context.Context) (RawInput, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return RawInput{}, fmt.Errorf("set terminal to raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	type result struct {
		buf []byte
		err error
	}
	read := make(chan result, 1)
	go func() {
		buf := make([]byte, 8)
		n, err := os.Stdin.Read(buf)
		read <- result{buf[:n], err}
	}()

	select {
	case <-ctx.Done():
		return RawInput{}, ctx.Err()
	case res := <-read:
		if res.err != nil {
			return RawInput{}, fmt.Errorf("read stdin: %w", res.err)
		}
		return RawInput{
			Device:    DeviceTerminal,
			Code:      keyCode(res.buf),
			Timestamp: time.Now(),
		}, nil
	}
}
