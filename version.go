// Package slicestr provides fixed-capacity UTF-8 strings over caller-owned
// memory. The string type lives in the buffer package; this package carries
// the module version.
package slicestr

import (
	_ "embed"
	"regexp"
	"strconv"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?(?:\+([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?$`)

//go:embed VERSION
var embeddedVersion string

// SemVer is a parsed SemVer 2.0.0 version.
type SemVer struct {
	Major, Minor, Patch int
	Pre, Build          string
}

func (v SemVer) String() string {
	s := strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor) + "." + strconv.Itoa(v.Patch)
	if v.Pre != "" {
		s += "-" + v.Pre
	}
	if v.Build != "" {
		s += "+" + v.Build
	}
	return s
}

// Version returns the module version without the leading `v`.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the git tag form of Version.
func VersionTag() string {
	return "v" + Version()
}

// ParseSemver parses v, reporting false if it is not SemVer 2.0.0.
func ParseSemver(v string) (SemVer, bool) {
	m := semverRE.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return SemVer{}, false
	}
	var out SemVer
	var err error
	if out.Major, err = strconv.Atoi(m[1]); err != nil {
		return SemVer{}, false
	}
	if out.Minor, err = strconv.Atoi(m[2]); err != nil {
		return SemVer{}, false
	}
	if out.Patch, err = strconv.Atoi(m[3]); err != nil {
		return SemVer{}, false
	}
	out.Pre, out.Build = m[4], m[5]
	return out, true
}
