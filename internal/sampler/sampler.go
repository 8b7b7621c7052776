package sampler

import (
	"context"
	"strings"
	"time"

	"github.com/prometheus/procfs"
	"github.com/prometheus/procfs/blockdevice"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"

	"github.com/Dicklesworthstone/sysview/internal/logger"
	"github.com/Dicklesworthstone/sysview/internal/model"
)

const (
	sectorSize = 512
	// pgpgOverscale is gopsutil's extra factor on PgIn/PgOut.
	pgpgOverscale = 4
)

// Sampler periodically emits Snapshots built from gopsutil and procfs reads.
// Rates are deltas against the previous call, so the first snapshot reports
// zero for every rate.
type Sampler struct {
	Interval time.Duration

	src source
	log logger.Logger

	prevTime time.Time
	prevCPU  *cpu.TimesStat
	prevSwap *mem.SwapMemoryStat
	prevDisk map[string]blockdevice.Diskstats
	prevNet  map[string]net.IOCountersStat
}

// source is the set of counter reads a Sampler depends on.
type source interface {
	cpuTimes() (cpu.TimesStat, error)
	virtualMemory() (*mem.VirtualMemoryStat, error)
	swapMemory() (*mem.SwapMemoryStat, error)
	meminfo() (procfs.Meminfo, error)
	diskstats() ([]blockdevice.Diskstats, error)
	netCounters() ([]net.IOCountersStat, error)
}

// New returns a Sampler reading procfs and sysfs at the given mount points.
func New(interval time.Duration, procPath, sysPath string, log logger.Logger) (*Sampler, error) {
	src, err := newHostSource(procPath, sysPath)
	if err != nil {
		return nil, err
	}
	return newSampler(interval, src, log), nil
}

func newSampler(interval time.Duration, src source, log logger.Logger) *Sampler {
	if log == nil {
		log = logger.Noop()
	}
	return &Sampler{
		Interval: interval,
		src:      src,
		log:      log,
		prevDisk: make(map[string]blockdevice.Diskstats),
		prevNet:  make(map[string]net.IOCountersStat),
	}
}

// Stream returns a channel that will receive snapshots until ctx is done.
func (s *Sampler) Stream(ctx context.Context) <-chan model.Snapshot {
	ch := make(chan model.Snapshot)
	go func() {
		ticker := time.NewTicker(s.Interval)
		defer ticker.Stop()
		defer close(ch)
		for {
			select {
			case t := <-ticker.C:
				select {
				case ch <- s.Sample(t):
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}

// Sample reads every counter once and returns the resulting snapshot. A
// failed read leaves its domain zeroed and is logged.
func (s *Sampler) Sample(now time.Time) model.Snapshot {
	dt := s.Interval.Seconds()
	if !s.prevTime.IsZero() {
		if elapsed := now.Sub(s.prevTime).Seconds(); elapsed > 0 {
			dt = elapsed
		}
	}
	if dt <= 0 {
		dt = 1
	}
	s.prevTime = now

	snap := model.Zero()
	snap.Timestamp = now
	snap.System.CPU = s.cpu()
	snap.System.Mem = s.memory()
	snap.System.VM = s.vm(dt)
	snap.System.Disks = s.disks(dt)
	snap.Network.Interfaces = s.ifaces(dt)
	return snap
}

func (s *Sampler) cpu() model.CPUModel {
	cur, err := s.src.cpuTimes()
	if err != nil {
		s.warn("cpu times", err)
		return model.CPUModel{}
	}
	prev := s.prevCPU
	s.prevCPU = &cur
	if prev == nil {
		return model.CPUModel{}
	}
	total := cur.Total() - prev.Total()
	if total <= 0 {
		return model.CPUModel{}
	}
	share := func(c, p float64) float64 { return 100 * (c - p) / total }
	idle := share(cur.Idle, prev.Idle)
	iowait := share(cur.Iowait, prev.Iowait)
	return model.CPUModel{
		UsagePct:  100 - idle - iowait,
		UserPct:   share(cur.User+cur.Nice, prev.User+prev.Nice),
		SystemPct: share(cur.System, prev.System),
		IdlePct:   idle,
		IOWaitPct: iowait,
	}
}

func (s *Sampler) memory() model.MemoryModel {
	var m model.MemoryModel
	if vm, err := s.src.virtualMemory(); err != nil {
		s.warn("virtual memory", err)
	} else {
		m.Total = vm.Total
		m.Free = vm.Free
		m.Available = vm.Available
		m.Cached = vm.Cached
	}
	// gopsutil has no anon/file split; take it from meminfo when present.
	if mi, err := s.src.meminfo(); err != nil {
		s.log.Debug("meminfo unavailable: %v", err)
	} else {
		m.Anon = kib(mi.ActiveAnon) + kib(mi.InactiveAnon)
		m.File = kib(mi.ActiveFile) + kib(mi.InactiveFile)
	}
	return m
}

func (s *Sampler) vm(dt float64) model.VMModel {
	cur, err := s.src.swapMemory()
	if err != nil {
		s.warn("swap memory", err)
		return model.VMModel{}
	}
	prev := s.prevSwap
	s.prevSwap = cur
	if prev == nil {
		return model.VMModel{}
	}
	// gopsutil scales every vmstat counter by 4 KiB. That is right for the
	// pswp* page counts but pgpgin/pgpgout are already KiB.
	return model.VMModel{
		PgpginPerSec:  rate(cur.PgIn, prev.PgIn, dt) / pgpgOverscale,
		PgpgoutPerSec: rate(cur.PgOut, prev.PgOut, dt) / pgpgOverscale,
		PswpinPerSec:  rate(cur.Sin, prev.Sin, dt),
		PswpoutPerSec: rate(cur.Sout, prev.Sout, dt),
	}
}

func (s *Sampler) disks(dt float64) map[string]model.SingleDiskModel {
	out := make(map[string]model.SingleDiskModel)
	stats, err := s.src.diskstats()
	if err != nil {
		s.warn("diskstats", err)
		return out
	}
	next := make(map[string]blockdevice.Diskstats, len(stats))
	for _, st := range stats {
		name := st.DeviceName
		if strings.HasPrefix(name, "loop") || strings.HasPrefix(name, "ram") {
			continue
		}
		next[name] = st
		d := model.SingleDiskModel{Name: name, Major: st.MajorNumber, Minor: st.MinorNumber}
		if prev, ok := s.prevDisk[name]; ok {
			d.ReadBytesPerSec = rate(st.ReadSectors*sectorSize, prev.ReadSectors*sectorSize, dt)
			d.WriteBytesPerSec = rate(st.WriteSectors*sectorSize, prev.WriteSectors*sectorSize, dt)
		}
		out[name] = d
	}
	s.prevDisk = next
	return out
}

func (s *Sampler) ifaces(dt float64) map[string]model.SingleNetModel {
	out := make(map[string]model.SingleNetModel)
	counters, err := s.src.netCounters()
	if err != nil {
		s.warn("net counters", err)
		return out
	}
	next := make(map[string]net.IOCountersStat, len(counters))
	for _, c := range counters {
		next[c.Name] = c
		n := model.SingleNetModel{Name: c.Name}
		if prev, ok := s.prevNet[c.Name]; ok {
			n.RxBytesPerSec = rate(c.BytesRecv, prev.BytesRecv, dt)
			n.TxBytesPerSec = rate(c.BytesSent, prev.BytesSent, dt)
			n.RxPacketsPerSec = rate(c.PacketsRecv, prev.PacketsRecv, dt)
			n.TxPacketsPerSec = rate(c.PacketsSent, prev.PacketsSent, dt)
		}
		out[c.Name] = n
	}
	s.prevNet = next
	return out
}

func (s *Sampler) warn(what string, err error) {
	s.log.Warn("read %s: %v", what, err)
}

// rate is the per-second increase from prev to cur. Counter resets yield 0.
func rate(cur, prev uint64, dt float64) float64 {
	if cur < prev || dt <= 0 {
		return 0
	}
	return float64(cur-prev) / dt
}

func kib(v *uint64) uint64 {
	if v == nil {
		return 0
	}
	return *v * 1024
}
