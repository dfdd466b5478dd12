package loader

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// tokenScanner yields whitespace-separated tokens and remembers their line.
type tokenScanner struct {
	sc   *bufio.Scanner
	line int
	toks []string
}

func newTokenScanner(r io.Reader) *tokenScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	return &tokenScanner{sc: sc}
}

// next returns the next token and its line. At end of input it returns io.EOF.
func (s *tokenScanner) next() (string, int, error) {
	for len(s.toks) == 0 {
		if !s.sc.Scan() {
			if err := s.sc.Err(); err != nil {
				return "", s.line, errors.Wrap(err, "loader: read input")
			}
			return "", s.line, io.EOF
		}
		s.line++
		s.toks = strings.Fields(s.sc.Text())
		for i, tok := range s.toks {
			if strings.HasPrefix(tok, "#") {
				s.toks = s.toks[:i]
				break
			}
		}
	}
	tok := s.toks[0]
	s.toks = s.toks[1:]

	return tok, s.line, nil
}

// word returns the next token, failing with a line-numbered error at end of input.
func (s *tokenScanner) word(what string) (string, int, error) {
	tok, line, err := s.next()
	if err == io.EOF {
		return "", line, errors.Wrapf(ErrSyntax, "line %d: unexpected end of input, want %s", line, what)
	}

	return tok, line, err
}

// integer reads the next token as a base-10 int64.
func (s *tokenScanner) integer(what string) (int64, int, error) {
	tok, line, err := s.word(what)
	if err != nil {
		return 0, line, err
	}
	n, perr := strconv.ParseInt(tok, 10, 64)
	if perr != nil {
		return 0, line, errors.Wrapf(ErrSyntax, "line %d: %s must be an integer, got %q", line, what, tok)
	}

	return n, line, nil
}

// count reads a non-negative integer that fits in an int.
func (s *tokenScanner) count(what string) (int, int, error) {
	n, line, err := s.integer(what)
	if err != nil {
		return 0, line, err
	}
	if n < 0 || n > int64(maxCount) {
		return 0, line, errors.Wrapf(ErrSyntax, "line %d: %s must be between 0 and %d, got %d", line, what, maxCount, n)
	}

	return int(n), line, nil
}

// optional returns the next token if any; ok is false at end of input.
func (s *tokenScanner) optional() (tok string, line int, ok bool, err error) {
	tok, line, err = s.next()
	if err == io.EOF {
		return "", line, false, nil
	}
	if err != nil {
		return "", line, false, err
	}

	return tok, line, true, nil
}

// end fails if any token remains.
func (s *tokenScanner) end() error {
	tok, line, err := s.next()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}

	return errors.Wrapf(ErrSyntax, "line %d: unexpected trailing token %q", line, tok)
}
