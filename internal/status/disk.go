package status

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/disk"
)

// VolumeUsage describes the filesystem holding a path.
type VolumeUsage struct {
	Path        string  `json:"path"`
	Total       uint64  `json:"total"`
	Free        uint64  `json:"free"`
	Used        uint64  `json:"used"`
	UsedPercent float64 `json:"used_percent"`
}

// Volume reports usage of the volume that contains path.
func Volume(path string) (VolumeUsage, error) {
	u, err := disk.Usage(path)
	if err != nil {
		return VolumeUsage{}, fmt.Errorf("reading volume usage for %s: %w", path, err)
	}
	return VolumeUsage{
		Path:        path,
		Total:       u.Total,
		Free:        u.Free,
		Used:        u.Used,
		UsedPercent: u.UsedPercent,
	}, nil
}
