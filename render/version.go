package render

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Masterminds/semver/v3"
)

// MinGLVersion is the oldest OpenGL version the shaders and Device calls
// are written against.
const MinGLVersion = "2.0"

var minGLConstraint = mustConstraint(">= " + MinGLVersion)

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(fmt.Sprintf("bad version constraint %q: %s", c, err))
	}
	return constraint
}

// ParseGLVersion extracts the version number from a GL_VERSION string such as
// "2.1 Mesa 23.0.4", "4.6.0 NVIDIA 535.54" or "OpenGL ES 3.2 build".
func ParseGLVersion(reported string) (*semver.Version, error) {
	for _, field := range strings.Fields(reported) {
		if !unicode.IsDigit(rune(field[0])) {
			continue
		}

		version, err := semver.NewVersion(field)
		if err != nil {
			return nil, fmt.Errorf("parsing GL version %q: %w", reported, err)
		}
		return version, nil
	}

	return nil, fmt.Errorf("no version number in GL version %q", reported)
}

// RequireVersion returns an error unless reported names OpenGL MinGLVersion
// or newer.
func RequireVersion(reported string) error {
	version, err := ParseGLVersion(reported)
	if err != nil {
		return err
	}

	if !minGLConstraint.Check(version) {
		return fmt.Errorf("OpenGL %s not available, driver reports %s",
			MinGLVersion, version.Original())
	}

	return nil
}
