package handler

import (
	"net/http"
	"runtime"
	"runtime/debug"
)

const unknownVersion = "dev"

// BuildInfo names the running farm. The values come from configuration.
type BuildInfo struct {
	Service     string
	Version     string
	Environment string
}

// VersionInfo is the body of /version
type VersionInfo struct {
	Service      string `json:"service,omitempty"`
	Version      string `json:"version"`
	Environment  string `json:"environment,omitempty"`
	GoVersion    string `json:"go_version"`
	Revision     string `json:"revision,omitempty"`
	RevisionTime string `json:"revision_time,omitempty"`
	Modified     bool   `json:"modified,omitempty"`
}

// HandleVersion reports which farm build is serving requests
// @Summary Build information
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion(build BuildInfo) http.HandlerFunc {
	info := newVersionInfo(build, debug.ReadBuildInfo)

	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}

// newVersionInfo merges the configured names with the vcs stamp the go tool embeds.
// Test binaries carry no stamp, so the revision fields stay empty there.
func newVersionInfo(build BuildInfo, read func() (*debug.BuildInfo, bool)) VersionInfo {
	info := VersionInfo{
		Service:     build.Service,
		Version:     build.Version,
		Environment: build.Environment,
		GoVersion:   runtime.Version(),
	}
	if info.Version == "" {
		info.Version = unknownVersion
	}

	bi, ok := read()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.time":
			info.RevisionTime = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}
