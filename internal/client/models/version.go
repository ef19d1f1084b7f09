package models

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	npm "github.com/aquasecurity/go-npm-version/pkg"
	pep440 "github.com/aquasecurity/go-pep440-version"
	"github.com/package-url/packageurl-go"
)

// PackageURL parses the dependency's purl as reported by the server.
func (d Dependency) PackageURL() (packageurl.PackageURL, error) {
	return packageurl.FromString(d.Purl)
}

// CompareVersions compares two version strings using an ecosystem-aware
// parser picked from the package manager: npm versions follow npm semantics,
// PyPI versions follow PEP 440, everything else is tried as semver. When a
// version cannot be parsed at all, plain lexical comparison is the fallback.
//
// Returns -1 if a < b, 0 if equal, 1 if a > b.
func CompareVersions(manager, a, b string) int {
	if cmp, ok := compareVersions(manager, a, b); ok {
		return cmp
	}
	return strings.Compare(a, b)
}

func compareVersions(manager, a, b string) (int, bool) {
	switch strings.ToLower(manager) {
	case "npm":
		va, errA := npm.NewVersion(cleanVersion(a))
		vb, errB := npm.NewVersion(cleanVersion(b))
		if errA != nil || errB != nil {
			return 0, false
		}
		switch {
		case va.LessThan(vb):
			return -1, true
		case va.GreaterThan(vb):
			return 1, true
		default:
			return 0, true
		}
	case "pypi", "pip":
		va, errA := pep440.Parse(cleanVersion(a))
		vb, errB := pep440.Parse(cleanVersion(b))
		if errA != nil || errB != nil {
			return 0, false
		}
		switch {
		case va.LessThan(vb):
			return -1, true
		case va.GreaterThan(vb):
			return 1, true
		default:
			return 0, true
		}
	default:
		va, errA := semver.NewVersion(cleanVersion(a))
		vb, errB := semver.NewVersion(cleanVersion(b))
		if errA != nil || errB != nil {
			return 0, false
		}
		return va.Compare(vb), true
	}
}

// cleanVersion strips decorations the parsers choke on ("v" prefixes and
// surrounding whitespace).
func cleanVersion(v string) string {
	return strings.TrimPrefix(strings.TrimSpace(v), "v")
}

// VersionInRange reports whether version falls inside [introduced, fixed)
// under the manager's version semantics. An empty or "0" introduced bound
// means "from the beginning"; an empty fixed bound means no fix has been
// released yet, so any version at or above introduced is in range.
func VersionInRange(manager, version, introduced, fixed string) bool {
	if version == "" {
		return false
	}
	if introduced != "" && introduced != "0" {
		cmp, ok := compareVersions(manager, version, introduced)
		if !ok {
			return false
		}
		if cmp < 0 {
			return false
		}
	}
	if fixed != "" {
		cmp, ok := compareVersions(manager, version, fixed)
		if !ok {
			return false
		}
		return cmp < 0
	}
	return true
}

// Affects reports whether the alert's affected range covers the dependency's
// installed version.
func (a SecurityAlert) Affects(d Dependency) bool {
	return VersionInRange(d.Manager, d.Version, a.Introduced, a.Fixed)
}
