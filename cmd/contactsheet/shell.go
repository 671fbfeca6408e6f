package main

import (
	"bufio"
	"context"
	"io"
	"strings"
	"time"

	"golang.org/x/text/message"

	"github.com/gogpu/contactsheet"
)

// retryPause is how long the shell waits after a failed run before
// prompting again.
var retryPause = 2 * time.Second

// runFunc is the signature of contactsheet.Orchestrator.Run.
type runFunc func(ctx context.Context, root string) (contactsheet.Report, error)

// shell prompts for a root path until a run succeeds, the user types
// "exit", or input ends.
type shell struct {
	in    io.Reader
	out   io.Writer
	p     *message.Printer
	run   runFunc
	pause time.Duration
}

func (s *shell) loop(ctx context.Context) error {
	sc := bufio.NewScanner(s.in)
	for {
		s.p.Fprintf(s.out, msgPrompt)
		if !sc.Scan() {
			return sc.Err()
		}

		path := strings.TrimSpace(sc.Text())
		if strings.EqualFold(path, "exit") {
			return nil
		}
		if path == "" {
			continue
		}

		report, err := s.run(ctx, path)
		if err == nil {
			printDone(s.out, s.p, report)
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		s.printFailure(err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.pause):
		}
	}
}

func (s *shell) printFailure(err error) {
	s.p.Fprintf(s.out, msgFailed)
	kind, ok := contactsheet.KindOf(err)
	if !ok {
		return
	}
	if key, ok := kindMessages[kind]; ok {
		s.p.Fprintf(s.out, key, err)
	}
}

func printDone(w io.Writer, p *message.Printer, report contactsheet.Report) {
	p.Fprintf(w, msgDone, report.Elapsed.Seconds())
}
