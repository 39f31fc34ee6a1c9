// Package utils holds helpers shared by both executables: binary sniffing,
// logger construction and version lookup.
package utils

import "runtime/debug"

const (
	unknownVersion     = "unknown"
	develVersion       = "(devel)"
	revisionSettingKey = "vcs.revision"
	modifiedSettingKey = "vcs.modified"
	shortRevisionSize  = 12
	dirtySuffix        = "-dirty"
)

// GetApplicationVersion reports the module version from build info, falling back
// to the embedded VCS revision for development builds.
func GetApplicationVersion() string {
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if !buildInfoAvailable {
		return unknownVersion
	}
	if buildInfo.Main.Version != "" && buildInfo.Main.Version != develVersion {
		return buildInfo.Main.Version
	}

	var revision string
	var modified bool
	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case revisionSettingKey:
			revision = setting.Value
		case modifiedSettingKey:
			modified = setting.Value == "true"
		}
	}
	if revision == "" {
		return unknownVersion
	}
	if len(revision) > shortRevisionSize {
		revision = revision[:shortRevisionSize]
	}
	if modified {
		revision += dirtySuffix
	}
	return revision
}
