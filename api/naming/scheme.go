package naming

import "fmt"

// Scheme combines a pattern and an extension with a file identifier.
//
type Scheme struct {
	Pattern   string
	Extension string
}

func New(pattern, extension string) Scheme {
	return Scheme{
		Pattern:   pattern,
		Extension: extension,
	}
}

// FileName returns "{pattern}_{fileID}.{extension}". Nothing is validated, the
// same identifier always maps to the same name.
func (s Scheme) FileName(fileID string) string {
	return fmt.Sprintf("%s_%s.%s", s.Pattern, fileID, s.Extension)
}

func (s Scheme) String() string {
	return s.FileName("{fileId}")
}
