// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries immutable build-time metadata embedded into binaries.
//
// Values are typically injected by linker flags during CI/CD and printed on
// startup for diagnostics and release traceability. They are independent of
// the VERSION/BUILD_* environment values reported by the HTTP endpoints.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NotAvailable is reported for build metadata that was not injected.
const NotAvailable = "N/A"

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
// Empty values are replaced with [NotAvailable].
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

// BuildVersion returns the semantic version string of the build.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the source-control commit hash used for the build.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

func orNotAvailable(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
