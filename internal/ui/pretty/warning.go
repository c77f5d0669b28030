package pretty

import (
	"fmt"

	"github.com/yaklabco/hongdown/pkg/hongdown"
)

// FormatWarning formats a formatter warning as "path:line: warning: message".
func (s *Styles) FormatWarning(path string, w hongdown.Warning) string {
	location := s.FilePath.Render(path) + s.Location.Render(fmt.Sprintf(":%d:", w.Line))
	return fmt.Sprintf("%s %s %s\n", location, s.Warning.Render("warning:"), s.Message.Render(w.Message))
}

// FormatFileError formats a file that could not be processed.
func (s *Styles) FormatFileError(path string, err error) string {
	return fmt.Sprintf("%s: %s\n", s.FilePath.Render(path), s.Error.Render(fmt.Sprintf("error: %v", err)))
}
