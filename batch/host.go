package batch

import (
	"errors"
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// HostInfo is the basic description of the machine a batch ran on.
type HostInfo struct {
	Platform string
	CPU      string
	RAMBytes uint64
}

// RAM formats RAMBytes in whole gigabytes.
func (h HostInfo) RAM() string {
	return fmt.Sprintf("%d GB", h.RAMBytes/1024/1024/1024)
}

// CollectHostInfo queries the operating system. Partial information is
// returned together with the joined errors of the failed queries.
func CollectHostInfo() (HostInfo, error) {
	var (
		info HostInfo
		errs []error
	)

	if hs, err := host.Info(); err != nil {
		errs = append(errs, fmt.Errorf("host: %w", err))
	} else {
		info.Platform = hs.Platform
	}

	if cs, err := cpu.Info(); err != nil {
		errs = append(errs, fmt.Errorf("cpu: %w", err))
	} else if len(cs) > 0 {
		info.CPU = cs[0].ModelName
	}

	if vm, err := mem.VirtualMemory(); err != nil {
		errs = append(errs, fmt.Errorf("mem: %w", err))
	} else {
		info.RAMBytes = vm.Total
	}

	return info, errors.Join(errs...)
}
