package platform

import "github.com/shirou/gopsutil/v3/host"

// HostProbe detects the operating system from live host information
// rather than the compile-time GOOS value.
type HostProbe struct{}

// OS implements Probe using gopsutil host information.
func (HostProbe) OS() (string, error) {
	info, err := host.Info()
	if err != nil {
		return "", err
	}
	return info.OS, nil
}
