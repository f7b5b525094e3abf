package sniff

// Line is one line of a file in the working copy, identified by path
// relative to the repository root.
type Line struct {
	Path       string
	LineNumber int
	Content    []byte
}

// Violation is a matched span within a line.
type Violation struct {
	Line Line

	Start int
	End   int
}

func (v Violation) Credential() string {
	return string((v.Line.Content)[v.Start:v.End])
}
