// Package input turns raw terminal bytes into game commands.
package input

import (
	"bufio"
	"time"
)

// escapeWait is how long Poll waits for the rest of an escape sequence whose
// first bytes arrived on their own.
const escapeWait = 5 * time.Millisecond

// Command is an abstract player action.
type Command int

const (
	None Command = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	Pause
	Restart
	Quit
)

func (c Command) String() string {
	switch c {
	case None:
		return "none"
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveLeft:
		return "left"
	case MoveRight:
		return "right"
	case Pause:
		return "pause"
	case Restart:
		return "restart"
	case Quit:
		return "quit"
	}
	return "unknown"
}

// Stream delivers input bytes via a channel and buffers parsed commands.
// A Stream is owned by one goroutine; only the reader goroutine started by
// StartStream touches the channel from the other side.
type Stream struct {
	ch      chan byte
	pending []Command
	closed  bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Poll returns the next command, waiting at most timeout for one to arrive.
// ok is false when nothing arrived in time. A closed input yields Quit.
func (s *Stream) Poll(timeout time.Duration) (cmd Command, ok bool) {
	if cmd, ok := s.next(); ok {
		return cmd, true
	}
	if s.closed {
		return Quit, true
	}

	if timeout <= 0 {
		select {
		case b, open := <-s.ch:
			return s.receive(b, open)
		default:
			return None, false
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case b, open := <-s.ch:
			if cmd, ok := s.receive(b, open); ok {
				return cmd, true
			}
			// Bytes without a command (unknown keys) keep us waiting.
		case <-timer.C:
			return None, false
		}
	}
}

// receive handles the first byte of a burst: it drains whatever else is
// available, parses the lot and returns the first command.
func (s *Stream) receive(b byte, open bool) (Command, bool) {
	if !open {
		s.closed = true
		return Quit, true
	}
	buf := s.drain([]byte{b})
	s.pending = append(s.pending, Parse(buf)...)
	return s.next()
}

// drain appends all bytes available without blocking. If the burst ends in
// the middle of an escape sequence it gives the rest a moment to arrive.
func (s *Stream) drain(buf []byte) []byte {
	buf = s.drainNow(buf)
	for incompleteEscape(buf) && !s.closed {
		select {
		case b, open := <-s.ch:
			if !open {
				s.closed = true
				return buf
			}
			buf = s.drainNow(append(buf, b))
		case <-time.After(escapeWait):
			return buf
		}
	}
	return buf
}

func (s *Stream) drainNow(buf []byte) []byte {
	for {
		select {
		case b, open := <-s.ch:
			if !open {
				s.closed = true
				return buf
			}
			buf = append(buf, b)
		default:
			return buf
		}
	}
}

func (s *Stream) next() (Command, bool) {
	if len(s.pending) == 0 {
		return None, false
	}
	cmd := s.pending[0]
	s.pending = s.pending[1:]
	return cmd, true
}

// Parse converts a burst of terminal bytes to commands in order.
// Arrow keys arrive as CSI (ESC [ A) or SS3 (ESC O A) sequences; a lone ESC
// means the Escape key.
func Parse(buf []byte) []Command {
	var cmds []Command
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b != '\x1b' {
			if cmd := keyCommand(b); cmd != None {
				cmds = append(cmds, cmd)
			}
			continue
		}

		if i+1 >= len(buf) || (buf[i+1] != '[' && buf[i+1] != 'O') {
			cmds = append(cmds, Quit)
			continue
		}

		// Skip parameter and intermediate bytes up to the final byte, so
		// modified arrows like ESC [ 1 ; 5 A still count as arrows.
		j := i + 2
		if buf[i+1] == '[' {
			for j < len(buf) && buf[j] >= 0x20 && buf[j] <= 0x3f {
				j++
			}
		}
		if j >= len(buf) {
			break // truncated sequence
		}
		switch buf[j] {
		case 'A':
			cmds = append(cmds, MoveUp)
		case 'B':
			cmds = append(cmds, MoveDown)
		case 'C':
			cmds = append(cmds, MoveRight)
		case 'D':
			cmds = append(cmds, MoveLeft)
		}
		i = j
	}
	return cmds
}

// incompleteEscape reports whether buf ends with the start of an escape
// sequence that has not reached its final byte.
func incompleteEscape(buf []byte) bool {
	n := len(buf)
	if n == 0 {
		return false
	}
	if buf[n-1] == '\x1b' {
		return true
	}
	for i := n - 1; i >= 0 && i >= n-8; i-- {
		if buf[i] != '\x1b' {
			continue
		}
		if i+1 < n && (buf[i+1] == '[' || buf[i+1] == 'O') {
			for _, c := range buf[i+2:] {
				if c >= 0x40 && c <= 0x7e {
					return false
				}
			}
			return true
		}
		return false
	}
	return false
}

// keyCommand maps a single byte to a command.
func keyCommand(b byte) Command {
	switch b {
	case 'w', 'W', 'k', 'K':
		return MoveUp
	case 's', 'S', 'j', 'J':
		return MoveDown
	case 'a', 'A', 'h', 'H':
		return MoveLeft
	case 'd', 'D', 'l', 'L':
		return MoveRight
	case ' ', 'p', 'P':
		return Pause
	case 'r', 'R':
		return Restart
	case 'q', 'Q', '\x03': // Ctrl-C arrives as a byte in raw mode
		return Quit
	}
	return None
}

// RuneCommand maps a typed character to a command, for backends that decode
// keys themselves.
func RuneCommand(r rune) Command {
	if r < 0 || r > 0x7f {
		return None
	}
	return keyCommand(byte(r))
}
