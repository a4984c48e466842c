// Package prompt obtains secrets from the operator interactively.
//
// When the input source is a terminal, reads happen with character echo
// disabled and the terminal's original mode is restored unconditionally
// after each read. When it is not a terminal (or its mode cannot be
// saved), the package degrades to plain line reads without echo
// suppression; degraded input is still functional, never fatal.
//
// Both the primary and the confirmation entry come from the single
// input source the Reader was bound to at construction time.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dmitrijs2005/grubpass/internal/common"
	"github.com/dmitrijs2005/grubpass/internal/secbuf"
)

// Test seams for terminal interaction. In tests these are replaced with
// stubs to avoid touching a real terminal.
var (
	readPassword = term.ReadPassword
	getState     = term.GetState
	restoreState = term.Restore
	isTerminal   = term.IsTerminal
)

// Reader reads secrets from one fixed input source.
type Reader struct {
	fd  int
	tty bool
	in  *bufio.Reader
	out io.Writer
}

// New binds a Reader to the given input source. Prompts and the
// newlines emitted after hidden reads go to w, which should be the
// terminal or a diagnostic stream, never the data output stream.
func New(in io.Reader, w io.Writer) *Reader {
	r := &Reader{in: bufio.NewReader(in), out: w}
	if f, ok := in.(*os.File); ok && isTerminal(int(f.Fd())) {
		r.fd = int(f.Fd())
		r.tty = true
	}
	return r
}

// ReadSecret prints promptText and reads one secret entry. The line
// terminator is not part of the secret. The returned buffer is owned by
// the caller.
//
// End of input before any data was obtained fails with common.ErrInput.
func (r *Reader) ReadSecret(promptText string) (*secbuf.Buffer, error) {
	if _, err := fmt.Fprint(r.out, promptText); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInput, err)
	}
	if r.tty {
		return r.readNoEcho()
	}
	return r.readLine()
}

// readNoEcho reads with echo disabled. The saved terminal state is
// restored before the result is evaluated, on every path.
func (r *Reader) readNoEcho() (*secbuf.Buffer, error) {
	st, err := getState(r.fd)
	if err != nil {
		// Terminal mode cannot be saved, so echo cannot be managed
		// reliably. Degrade to the plain path for this and all
		// subsequent reads.
		r.tty = false
		return r.readLine()
	}
	defer restoreState(r.fd, st)

	pw, err := readPassword(r.fd)
	// Enter is not echoed while in no-echo mode.
	fmt.Fprintln(r.out)
	if err != nil {
		common.WipeByteArray(pw)
		return nil, fmt.Errorf("%w: %v", common.ErrInput, err)
	}
	return secbuf.Adopt(pw), nil
}

// readLine is the degraded path: a plain buffered line read with the
// terminal echoing as usual.
func (r *Reader) readLine() (*secbuf.Buffer, error) {
	line, err := r.in.ReadBytes('\n')
	if err != nil {
		// A final line without a terminator is still a valid entry.
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return secbuf.Adopt(trimEOL(line)), nil
		}
		common.WipeByteArray(line)
		return nil, fmt.Errorf("%w: %v", common.ErrInput, err)
	}
	return secbuf.Adopt(trimEOL(line)), nil
}

// trimEOL strips one trailing LF and, if present before it, one CR.
func trimEOL(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line[n-1] = 0
		line = line[:n-1]
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line[n-1] = 0
		line = line[:n-1]
	}
	return line
}

// ReadConfirmed reads the secret twice and enforces that both entries
// are byte-for-byte identical.
//
// On success only the primary buffer survives; the confirmation copy is
// destroyed before returning. On mismatch both buffers are destroyed
// and common.ErrMismatch is returned. On a failed read, every buffer
// obtained so far is destroyed before the error propagates.
func (r *Reader) ReadConfirmed(promptText, confirmText string) (*secbuf.Buffer, error) {
	primary, err := r.ReadSecret(promptText)
	if err != nil {
		return nil, err
	}

	confirmation, err := r.ReadSecret(confirmText)
	if err != nil {
		primary.Destroy()
		return nil, err
	}

	if !primary.Equal(confirmation) {
		primary.Destroy()
		confirmation.Destroy()
		return nil, common.ErrMismatch
	}

	confirmation.Destroy()
	return primary, nil
}
