package matchers

//go:generate counterfeiter . Matcher

// Matcher reports whether a line contains a suspect span and, when it does,
// the byte offsets of that span within the line.
type Matcher interface {
	Match(line []byte) (bool, int, int)
}
