package sniff

import (
	"bufio"
	"io"

	"code.cloudfoundry.org/lager"
)

// MaxLineSize bounds a single scanned line. Minified or generated files can
// carry lines past bufio's default, which would abort the whole file.
const MaxLineSize = 1024 * 1024

type fileScanner struct {
	path         string
	bufioScanner *bufio.Scanner
	lineNumber   int
	err          error
}

func NewFileScanner(r io.Reader, path string) Scanner {
	bufioScanner := bufio.NewScanner(r)
	bufioScanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	return &fileScanner{
		path:         path,
		bufioScanner: bufioScanner,
	}
}

func (s *fileScanner) Scan(logger lager.Logger) bool {
	logger = logger.Session("file-scanner", lager.Data{"path": s.path})

	success := s.bufioScanner.Scan()

	if err := s.bufioScanner.Err(); err != nil {
		s.err = err
		logger.Error("bufio-error", err)
		return false
	}

	if success {
		s.lineNumber++
	}
	return success
}

func (s *fileScanner) Line(lager.Logger) *Line {
	// bufio reuses its buffer between Scan calls; handlers retain lines.
	content := append([]byte(nil), s.bufioScanner.Bytes()...)

	return &Line{
		Content:    content,
		LineNumber: s.lineNumber,
		Path:       s.path,
	}
}

func (s *fileScanner) Err() error {
	return s.err
}
