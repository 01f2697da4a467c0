package main

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// errInputClosed means the player closed the input stream. The session
// cannot go on without commands.
var errInputClosed = errors.New("input closed")

// LineReader yields one line of player input per call.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// newLineReader picks raw terminal editing when stdin is a terminal and
// headless mode is off.
func newLineReader(s *GameState, in *os.File) LineReader {
	if !s.IsHeadless && term.IsTerminal(int(in.Fd())) {
		return &termReader{s: s, in: in}
	}
	return newHeadlessReader(s, in)
}

// headlessReader reads plain lines. It is created once so buffered data
// isn't lost between calls.
type headlessReader struct {
	s *GameState
	r *bufio.Reader
}

func newHeadlessReader(s *GameState, r io.Reader) *headlessReader {
	return &headlessReader{s: s, r: bufio.NewReader(r)}
}

func (h *headlessReader) ReadLine(prompt string) (string, error) {
	outPrint(h.s, prompt)
	line, err := h.r.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// termReader edits the line in raw mode with backspace and up/down
// history.
type termReader struct {
	s        *GameState
	in       *os.File
	fallback *headlessReader
}

func (t *termReader) ReadLine(prompt string) (string, error) {
	s := t.s
	fd := int(t.in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		// Fallback to simple readline
		if t.fallback == nil {
			t.fallback = newHeadlessReader(s, t.in)
		}
		return t.fallback.ReadLine(prompt)
	}
	defer func() { _ = term.Restore(fd, oldState) }()
	outPrint(s, prompt)

	var lineRunes []rune
	histIdx := s.HistoryCount
	buf := make([]byte, 4)

	for {
		n, err := t.in.Read(buf)
		if err != nil || n == 0 {
			outPrint(s, "\r\n")
			if err == nil {
				err = io.EOF
			}
			return "", err
		}
		b := buf[0]

		switch {
		case b == '\r' || b == '\n':
			outPrint(s, "\r\n")
			line := string(lineRunes)
			rememberLine(s, line)
			return line, nil

		case b == '\x03' || b == '\x04': // Ctrl-C / Ctrl-D
			outPrint(s, "\r\n")
			return "", errInputClosed

		case b == '\x7f' || b == '\x08': // Backspace / DEL
			if len(lineRunes) > 0 {
				lineRunes = lineRunes[:len(lineRunes)-1]
				outPrint(s, "\b \b")
			}

		case b == '\x1b': // ESC, arrow keys follow as "[A" / "[B"
			seq := buf[1:n]
			if len(seq) < 2 {
				rest := make([]byte, 2)
				m, _ := t.in.Read(rest)
				seq = append(seq, rest[:m]...)
			}
			if len(seq) < 2 || seq[0] != '[' {
				continue
			}
			switch seq[1] {
			case 'A':
				if histIdx > 0 && histIdx > s.HistoryCount-MaxHistory {
					histIdx--
					lineRunes = replaceLine(s, lineRunes, s.History[histIdx%MaxHistory])
				}
			case 'B':
				if histIdx < s.HistoryCount {
					histIdx++
					next := ""
					if histIdx < s.HistoryCount {
						next = s.History[histIdx%MaxHistory]
					}
					lineRunes = replaceLine(s, lineRunes, next)
				}
			}

		default:
			if b >= ' ' {
				r, _ := utf8.DecodeRune(buf[:n])
				if r != utf8.RuneError {
					lineRunes = append(lineRunes, r)
					outPrint(s, string(r))
				}
			}
		}
	}
}

// replaceLine erases the echoed line and echoes next in its place.
func replaceLine(s *GameState, current []rune, next string) []rune {
	for range current {
		outPrint(s, "\b \b")
	}
	outPrint(s, next)
	return []rune(next)
}

// rememberLine appends a non-empty line to the history ring unless it
// repeats the previous entry.
func rememberLine(s *GameState, line string) {
	if line == "" {
		return
	}
	if s.HistoryCount > 0 && s.History[(s.HistoryCount-1)%MaxHistory] == line {
		return
	}
	s.History[s.HistoryCount%MaxHistory] = line
	s.HistoryCount++
}
