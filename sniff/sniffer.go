package sniff

import (
	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/leakhound/leakhound/sniff/matchers"
)

//go:generate counterfeiter . Scanner

// Scanner yields the lines of one input. Scan advances and reports whether a
// line is available; Err surfaces any read failure once Scan returns false.
type Scanner interface {
	Scan(lager.Logger) bool
	Line(lager.Logger) *Line
	Err() error
}

// ViolationHandlerFunc receives each matched line. Errors are collected and
// returned from Sniff without stopping the sweep.
type ViolationHandlerFunc func(lager.Logger, Violation) error

//go:generate counterfeiter . Sniffer

type Sniffer interface {
	Sniff(lager.Logger, Scanner, ViolationHandlerFunc) error
}

type sniffer struct {
	matcher          matchers.Matcher
	exclusionMatcher matchers.Matcher
}

func NewSniffer(matcher, exclusionMatcher matchers.Matcher) Sniffer {
	return &sniffer{
		matcher:          matcher,
		exclusionMatcher: exclusionMatcher,
	}
}

// NewDefaultSniffer sniffs for hard-coded credentials with the stock
// placeholder exclusions.
func NewDefaultSniffer() Sniffer {
	return NewSniffer(matchers.Credentials(), matchers.DefaultExclusion())
}

func (s *sniffer) Sniff(logger lager.Logger, scanner Scanner, handleViolation ViolationHandlerFunc) error {
	logger = logger.Session("sniff")
	logger.Debug("starting")

	var result error

	for scanner.Scan(logger) {
		line := scanner.Line(logger)

		if s.exclusionMatcher != nil {
			if match, _, _ := s.exclusionMatcher.Match(line.Content); match {
				continue
			}
		}

		if match, start, end := s.matcher.Match(line.Content); match {
			violation := Violation{
				Line:  *line,
				Start: start,
				End:   end,
			}

			err := handleViolation(logger, violation)
			if err != nil {
				logger.Error("failed", err)
				result = multierror.Append(result, err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		result = multierror.Append(result, err)
	}

	logger.Debug("done")
	return result
}
