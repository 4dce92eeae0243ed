package core

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// HostInfo is the subset of host details shown in the banner.
type HostInfo struct {
	Platform string
	Version  string
	Arch     string
	Hostname string
}

// GetHostInfo queries the running system. Missing fields fall back to the
// values the Go runtime knows about.
func GetHostInfo() HostInfo {
	info := HostInfo{
		Platform: runtime.GOOS,
		Arch:     runtime.GOARCH,
	}

	hi, err := host.Info()
	if err != nil || hi == nil {
		return info
	}

	if hi.Platform != "" {
		info.Platform = hi.Platform
	}
	info.Version = hi.PlatformVersion
	if hi.KernelArch != "" {
		info.Arch = hi.KernelArch
	}
	info.Hostname = hi.Hostname
	return info
}

// IsMacOS reports whether the tool runs on macOS, the only platform whose
// Finder integration and Library layout it knows.
func IsMacOS() bool {
	return runtime.GOOS == "darwin"
}

// HostString returns a human-readable platform string.
// Examples: "macOS 14.5 (arm64)", "ubuntu 24.04 (x86_64)"
func HostString(info HostInfo) string {
	name := info.Platform
	if strings.EqualFold(name, "darwin") {
		name = "macOS"
	}
	if info.Version != "" {
		name += " " + info.Version
	}
	return fmt.Sprintf("%s (%s)", name, info.Arch)
}
