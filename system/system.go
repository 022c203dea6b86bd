package system

import (
	"fmt"

	"github.com/shirou/gopsutil/host"
)

func GetHostSummary() string {
	info, err := host.Info()
	if err != nil {
		return "Could not get host info: " + err.Error()
	}

	return fmt.Sprintf("Host - %s: %s %s (%s, kernel %s)",
		info.Hostname, info.Platform, info.PlatformVersion, info.OS, info.KernelVersion)
}
