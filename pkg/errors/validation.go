package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateFilename validates an output file basename (without extension).
//
// The rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No path separators; the output directory is configured separately
//   - No hidden files and no ".." sequences
//   - Maximum length of 200 characters
func ValidateFilename(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "filename cannot be empty")
	}

	const maxFilenameLength = 200
	if len(name) > maxFilenameLength {
		return New(ErrCodeInvalidPath, "filename too long (max %d characters)", maxFilenameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "filename contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "filename cannot contain path separators")
	}

	if strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidPath, "filename cannot be a hidden file")
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidPath, "filename cannot contain path traversal sequences (..)")
	}

	return nil
}

// attrNameRegex matches Graphviz attribute identifiers.
var attrNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateAttrName validates a Graphviz attribute name supplied through
// configuration. Names are written unquoted into DOT, so anything other than
// a plain identifier is rejected.
func ValidateAttrName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidConfig, "attribute name cannot be empty")
	}
	if !attrNameRegex.MatchString(name) {
		return New(ErrCodeInvalidConfig, "invalid attribute name: %q", name)
	}
	return nil
}
