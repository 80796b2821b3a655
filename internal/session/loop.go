package session

import (
	"bufio"
	"fmt"
	"io"
)

// Run reads statements from r until EOF or a quit word, writing
// confirmations to stdout and rejections to stderr. Rejected statements
// never stop the loop.
func Run(s *Session, r io.Reader, stdout, stderr io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		reply, err := s.Eval(scanner.Text())
		if err != nil {
			fmt.Fprintf(stderr, "pyre: %v\n", err)
			continue
		}
		switch reply.Kind {
		case ReplyQuit:
			return nil
		case ReplyApplied:
			for _, line := range reply.Lines {
				fmt.Fprintln(stdout, line)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("session: read input: %w", err)
	}
	return nil
}
