package sampler

import (
	"context"

	"github.com/prometheus/procfs"
	"github.com/prometheus/procfs/blockdevice"
	"github.com/shirou/gopsutil/v3/common"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"

	"github.com/Dicklesworthstone/sysview/internal/errors"
)

// hostSource reads the live counters of the machine mounted at procPath and
// sysPath. Both gopsutil and procfs read from the same mounts.
type hostSource struct {
	proc procfs.FS
	blk  blockdevice.FS
	// env carries the mount points to gopsutil's *WithContext calls.
	env context.Context
}

func newHostSource(procPath, sysPath string) (*hostSource, error) {
	proc, err := procfs.NewFS(procPath)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrSample,
			"Cannot open procfs at "+procPath,
			"Pass --proc with the procfs mount point")
	}
	blk, err := blockdevice.NewFS(procPath, sysPath)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrSample,
			"Cannot open block device stats",
			"Pass --proc and --sys with the procfs and sysfs mount points")
	}
	env := context.WithValue(context.Background(), common.EnvKey, common.EnvMap{
		common.HostProcEnvKey: procPath,
		common.HostSysEnvKey:  sysPath,
	})
	return &hostSource{proc: proc, blk: blk, env: env}, nil
}

func (h *hostSource) cpuTimes() (cpu.TimesStat, error) {
	times, err := cpu.TimesWithContext(h.env, false)
	if err != nil {
		return cpu.TimesStat{}, err
	}
	if len(times) == 0 {
		return cpu.TimesStat{}, errors.New(errors.ErrSample, "No aggregate CPU times reported", "")
	}
	return times[0], nil
}

func (h *hostSource) virtualMemory() (*mem.VirtualMemoryStat, error) {
	return mem.VirtualMemoryWithContext(h.env)
}

func (h *hostSource) swapMemory() (*mem.SwapMemoryStat, error) {
	return mem.SwapMemoryWithContext(h.env)
}

func (h *hostSource) meminfo() (procfs.Meminfo, error) { return h.proc.Meminfo() }

func (h *hostSource) diskstats() ([]blockdevice.Diskstats, error) { return h.blk.ProcDiskstats() }

func (h *hostSource) netCounters() ([]net.IOCountersStat, error) {
	return net.IOCountersWithContext(h.env, true)
}
