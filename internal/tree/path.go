package tree

import (
	"errors"
	"fmt"
	"strings"
)

// ParsePath parses a slash separated element path such as
// "MD_Metadata/identificationInfo/MD_DataIdentification".
func ParsePath(path string) ([]string, error) {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil, errors.New("empty path")
	}

	var segments []string

	for part := range strings.SplitSeq(path, "/") {
		if part == "" {
			return nil, fmt.Errorf("invalid path %q: empty segment", path)
		}

		if !isValidName(part) {
			return nil, fmt.Errorf("invalid path %q: invalid element name %q", path, part)
		}

		segments = append(segments, part)
	}

	return segments, nil
}

// isValidName checks a local XML element name (no prefix).
func isValidName(s string) bool {
	for i, r := range s {
		if i == 0 {
			// First character must be letter or underscore
			if !isLetter(r) && r != '_' {
				return false
			}
		} else {
			if !isLetter(r) && !isDigit(r) && r != '_' && r != '-' && r != '.' {
				return false
			}
		}
	}

	return s != ""
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
