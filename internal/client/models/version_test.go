package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name    string
		manager string
		a, b    string
		want    int
	}{
		{name: "npm release beats prerelease", manager: "npm", a: "1.0.0-beta.1", b: "1.0.0", want: -1},
		{name: "npm equal", manager: "npm", a: "4.17.21", b: "4.17.21", want: 0},
		{name: "pypi ordering", manager: "pypi", a: "1.0.0", b: "1.0.1", want: -1},
		{name: "pypi post release", manager: "pypi", a: "1.0.0.post1", b: "1.0.0", want: 1},
		{name: "semver default", manager: "cargo", a: "0.9.0", b: "0.10.0", want: -1},
		{name: "v prefix stripped", manager: "golang", a: "v1.2.3", b: "v1.2.4", want: -1},
		{name: "lexical fallback", manager: "apk", a: "abc", b: "abd", want: -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CompareVersions(tc.manager, tc.a, tc.b))
		})
	}
}

func TestVersionInRange(t *testing.T) {
	tests := []struct {
		name       string
		manager    string
		version    string
		introduced string
		fixed      string
		want       bool
	}{
		{name: "inside range", manager: "npm", version: "1.5.0", introduced: "1.0.0", fixed: "2.0.0", want: true},
		{name: "before introduced", manager: "npm", version: "0.9.0", introduced: "1.0.0", fixed: "2.0.0", want: false},
		{name: "at fixed boundary", manager: "npm", version: "2.0.0", introduced: "1.0.0", fixed: "2.0.0", want: false},
		{name: "no fix released", manager: "pypi", version: "3.0.0", introduced: "1.0.0", fixed: "", want: true},
		{name: "introduced zero means beginning", manager: "cargo", version: "0.0.1", introduced: "0", fixed: "0.2.0", want: true},
		{name: "empty version never matches", manager: "npm", version: "", introduced: "0", fixed: "", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := VersionInRange(tc.manager, tc.version, tc.introduced, tc.fixed)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSecurityAlert_Affects(t *testing.T) {
	dep := Dependency{ID: 7, Manager: "npm", Name: "lodash", Version: "4.17.15"}

	alert := SecurityAlert{ID: 1, Severity: SeverityHigh, Introduced: "0", Fixed: "4.17.19"}
	assert.True(t, alert.Affects(dep))

	patched := SecurityAlert{ID: 2, Severity: SeverityHigh, Introduced: "0", Fixed: "4.17.12"}
	assert.False(t, patched.Affects(dep))
}

func TestDependency_PackageURL(t *testing.T) {
	dep := Dependency{Purl: "pkg:npm/lodash@4.17.21"}
	purl, err := dep.PackageURL()
	require.NoError(t, err)
	assert.Equal(t, "npm", purl.Type)
	assert.Equal(t, "lodash", purl.Name)
	assert.Equal(t, "4.17.21", purl.Version)

	_, err = Dependency{Purl: "not-a-purl"}.PackageURL()
	require.Error(t, err)
}
