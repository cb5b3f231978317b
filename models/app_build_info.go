// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// notAvailable stands in for build metadata the linker did not inject.
const notAvailable = "N/A"

// AppBuildInfo carries build-time metadata injected by linker flags. It is
// printed at startup and supplies the reported version when the
// configuration does not set one.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Empty values become "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// ResolveVersion returns configured unless it is empty or "N/A", in which
// case the build version is used.
func (a AppBuildInfo) ResolveVersion(configured string) string {
	if configured != "" && configured != notAvailable {
		return configured
	}
	return a.buildVersion
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
