package scanner

import "fmt"

// InvalidInputError reports a path that is not a Python source file.
// It is raised before any file access is attempted.
type InvalidInputError struct {
	Path string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s is not a Python file", e.Path)
}

// ParseError reports a file whose content is not syntactically valid
// Python. It is terminal for that file; there is no partial result.
type ParseError struct {
	Path string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s contains invalid Python syntax", e.Path)
}
