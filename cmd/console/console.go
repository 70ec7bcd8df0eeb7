package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"console-draw/session"

	"github.com/sirupsen/logrus"
)

// lineReader yields one input line per call and io.EOF when input ends.
// *term.Terminal satisfies it directly.
type lineReader interface {
	ReadLine() (string, error)
}

type scannerReader struct {
	scanner *bufio.Scanner
}

func newScannerReader(r io.Reader) *scannerReader {
	return &scannerReader{scanner: bufio.NewScanner(r)}
}

func (s *scannerReader) ReadLine() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

type runOptions struct {
	// Prompt writes session.Prompt before each read. A terminal line
	// editor draws its own prompt.
	Prompt bool
	// Echo repeats each line read, for input that is not typed.
	Echo bool
}

// run feeds lines to s until a quit command or the end of input. Command
// errors are reported to out and do not stop the loop.
func run(s *session.Session, in lineReader, out io.Writer, opts runOptions) error {
	for {
		if opts.Prompt {
			fmt.Fprint(out, session.Prompt)
		}

		line, err := in.ReadLine()
		if errors.Is(err, io.EOF) {
			if opts.Prompt {
				fmt.Fprintln(out)
			}
			return nil
		}
		if err != nil {
			return err
		}

		if opts.Echo {
			fmt.Fprintln(out, line)
		}

		reply, err := s.Submit(line)
		if err != nil {
			logrus.WithField("line", line).WithError(err).Debug("Command failed")
			fmt.Fprintln(out, session.ErrorMessage(err))
			continue
		}
		if reply.Quit {
			return nil
		}
		fmt.Fprintf(out, "%s\n\n", reply.Output)
	}
}
