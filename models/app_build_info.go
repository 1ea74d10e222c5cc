// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const notAvailable = "N/A"

// AppBuildInfo carries build-time metadata injected with linker flags.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Empty values are reported as
// "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return orNotAvailable(a.buildVersion) }

func (a AppBuildInfo) BuildDate() string { return orNotAvailable(a.buildDate) }

func (a AppBuildInfo) BuildCommit() string { return orNotAvailable(a.buildCommit) }

// String renders the build info on one line, as printed at startup and in
// the terminal UI footer.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("version %s (%s, commit %s)", a.BuildVersion(), a.BuildDate(), a.BuildCommit())
}

// VersionInfo is the body of GET /version on the API server.
type VersionInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// VersionInfo converts the build info into its JSON representation.
func (a AppBuildInfo) VersionInfo() VersionInfo {
	return VersionInfo{Version: a.BuildVersion(), Date: a.BuildDate(), Commit: a.BuildCommit()}
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
