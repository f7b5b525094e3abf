package matchers

import "bytes"

// Multi matches when any submatcher matches, reporting the first hit.
func Multi(matchers ...Matcher) Matcher {
	return &multi{
		matchers: matchers,
	}
}

type multi struct {
	matchers []Matcher
}

func (m *multi) Match(line []byte) (bool, int, int) {
	for _, matcher := range m.matchers {
		if found, start, end := matcher.Match(line); found {
			return true, start, end
		}
	}

	return false, 0, 0
}

// UpcasedMulti upcases the line once and hands it to every submatcher, so
// their patterns can be written in uppercase only.
func UpcasedMulti(matchers ...Matcher) Matcher {
	return &upcasedMulti{
		multi: multi{matchers: matchers},
	}
}

type upcasedMulti struct {
	multi
}

func (m *upcasedMulti) Match(line []byte) (bool, int, int) {
	return m.multi.Match(bytes.ToUpper(line))
}
