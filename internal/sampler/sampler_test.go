package sampler

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/procfs"
	"github.com/prometheus/procfs/blockdevice"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dicklesworthstone/sysview/internal/logger"
)

type fakeSource struct {
	cpu   cpu.TimesStat
	vmem  mem.VirtualMemoryStat
	swap  mem.SwapMemoryStat
	mi    procfs.Meminfo
	disks []blockdevice.Diskstats
	nets  []net.IOCountersStat
	err   error
}

func (f *fakeSource) cpuTimes() (cpu.TimesStat, error) { return f.cpu, f.err }
func (f *fakeSource) virtualMemory() (*mem.VirtualMemoryStat, error) {
	v := f.vmem
	return &v, f.err
}
func (f *fakeSource) swapMemory() (*mem.SwapMemoryStat, error) {
	s := f.swap
	return &s, f.err
}
func (f *fakeSource) meminfo() (procfs.Meminfo, error)            { return f.mi, f.err }
func (f *fakeSource) diskstats() ([]blockdevice.Diskstats, error) { return f.disks, f.err }
func (f *fakeSource) netCounters() ([]net.IOCountersStat, error)  { return f.nets, f.err }

func u64(v uint64) *uint64 { return &v }

func disk(name string, major, minor uint32, readSectors, writeSectors uint64) blockdevice.Diskstats {
	return blockdevice.Diskstats{
		Info:    blockdevice.Info{MajorNumber: major, MinorNumber: minor, DeviceName: name},
		IOStats: blockdevice.IOStats{ReadSectors: readSectors, WriteSectors: writeSectors},
	}
}

func TestSample_FirstSnapshotHasZeroRates(t *testing.T) {
	src := &fakeSource{
		cpu:   cpu.TimesStat{User: 100, Idle: 100},
		vmem:  mem.VirtualMemoryStat{Total: 8 << 30, Free: 2 << 30, Available: 4 << 30, Cached: 1 << 30},
		swap:  mem.SwapMemoryStat{PgIn: 1000},
		disks: []blockdevice.Diskstats{disk("sda", 8, 0, 100, 100)},
		nets:  []net.IOCountersStat{{Name: "eth0", BytesRecv: 1000}},
	}
	s := newSampler(time.Second, src, nil)

	snap := s.Sample(time.Unix(100, 0))

	assert.Zero(t, snap.System.CPU)
	assert.Zero(t, snap.System.VM)
	assert.Equal(t, uint64(8<<30), snap.System.Mem.Total)
	require.Contains(t, snap.System.Disks, "sda")
	assert.Zero(t, snap.System.Disks["sda"].ReadBytesPerSec)
	require.Contains(t, snap.Network.Interfaces, "eth0")
	assert.Zero(t, snap.Network.Interfaces["eth0"].RxBytesPerSec)
}

func TestSample_Rates(t *testing.T) {
	src := &fakeSource{
		cpu:   cpu.TimesStat{User: 100, System: 50, Idle: 800, Iowait: 50},
		swap:  mem.SwapMemoryStat{PgIn: 0, PgOut: 0, Sin: 0, Sout: 0},
		disks: []blockdevice.Diskstats{disk("sda", 8, 0, 0, 0), disk("sda1", 8, 1, 0, 0)},
		nets:  []net.IOCountersStat{{Name: "eth0"}},
	}
	s := newSampler(time.Second, src, nil)
	s.Sample(time.Unix(100, 0))

	src.cpu = cpu.TimesStat{User: 130, Nice: 10, System: 70, Idle: 830, Iowait: 60}
	src.swap = mem.SwapMemoryStat{PgIn: 8192, PgOut: 4096, Sin: 2048, Sout: 0}
	src.disks = []blockdevice.Diskstats{disk("sda", 8, 0, 8, 16), disk("sda1", 8, 1, 8, 0)}
	src.nets = []net.IOCountersStat{{Name: "eth0", BytesRecv: 4000, BytesSent: 2000, PacketsRecv: 20, PacketsSent: 10}}
	snap := s.Sample(time.Unix(102, 0))

	// 100 jiffies elapsed: 40 user+nice, 20 system, 30 idle, 10 iowait.
	cpuModel := snap.System.CPU
	assert.InDelta(t, 60.0, cpuModel.UsagePct, 1e-9)
	assert.InDelta(t, 40.0, cpuModel.UserPct, 1e-9)
	assert.InDelta(t, 20.0, cpuModel.SystemPct, 1e-9)
	assert.InDelta(t, 30.0, cpuModel.IdlePct, 1e-9)
	assert.InDelta(t, 10.0, cpuModel.IOWaitPct, 1e-9)

	assert.Equal(t, 1024.0, snap.System.VM.PgpginPerSec)
	assert.Equal(t, 512.0, snap.System.VM.PgpgoutPerSec)
	assert.Equal(t, 1024.0, snap.System.VM.PswpinPerSec)

	sda := snap.System.Disks["sda"]
	assert.Equal(t, uint32(0), sda.Minor)
	assert.Equal(t, 8.0*512/2, sda.ReadBytesPerSec)
	assert.Equal(t, 16.0*512/2, sda.WriteBytesPerSec)
	assert.Equal(t, uint32(1), snap.System.Disks["sda1"].Minor)

	eth0 := snap.Network.Interfaces["eth0"]
	assert.Equal(t, 2000.0, eth0.RxBytesPerSec)
	assert.Equal(t, 1000.0, eth0.TxBytesPerSec)
	assert.Equal(t, 10.0, eth0.RxPacketsPerSec)
	assert.Equal(t, 5.0, eth0.TxPacketsPerSec)
}

// gopsutilSwap builds the SwapMemoryStat gopsutil reports for the given raw
// /proc/vmstat values: every counter multiplied by 4 KiB.
func gopsutilSwap(pgpginKiB, pgpgoutKiB, pswpin, pswpout uint64) mem.SwapMemoryStat {
	return mem.SwapMemoryStat{
		PgIn:  pgpginKiB * 4 * 1024,
		PgOut: pgpgoutKiB * 4 * 1024,
		Sin:   pswpin * 4 * 1024,
		Sout:  pswpout * 4 * 1024,
	}
}

func TestSample_VMRatesMatchVmstat(t *testing.T) {
	src := &fakeSource{swap: gopsutilSwap(1000, 500, 10, 20)}
	s := newSampler(time.Second, src, nil)
	s.Sample(time.Unix(100, 0))

	// One second later: +200 KiB paged in, +100 KiB paged out, +3 pages
	// swapped in, +1 page swapped out.
	src.swap = gopsutilSwap(1200, 600, 13, 21)
	vm := s.Sample(time.Unix(101, 0)).System.VM

	assert.Equal(t, 200.0*1024, vm.PgpginPerSec)
	assert.Equal(t, 100.0*1024, vm.PgpgoutPerSec)
	assert.Equal(t, 3.0*4096, vm.PswpinPerSec)
	assert.Equal(t, 1.0*4096, vm.PswpoutPerSec)
}

func TestSample_CounterResetYieldsZero(t *testing.T) {
	src := &fakeSource{nets: []net.IOCountersStat{{Name: "eth0", BytesRecv: 5000}}}
	s := newSampler(time.Second, src, nil)
	s.Sample(time.Unix(100, 0))

	src.nets = []net.IOCountersStat{{Name: "eth0", BytesRecv: 10}}
	snap := s.Sample(time.Unix(101, 0))

	assert.Zero(t, snap.Network.Interfaces["eth0"].RxBytesPerSec)
}

func TestSample_SkipsLoopAndRamDevices(t *testing.T) {
	src := &fakeSource{disks: []blockdevice.Diskstats{
		disk("loop0", 7, 0, 0, 0),
		disk("ram0", 1, 0, 0, 0),
		disk("nvme0n1", 259, 0, 0, 0),
	}}
	snap := newSampler(time.Second, src, nil).Sample(time.Unix(100, 0))

	assert.Len(t, snap.System.Disks, 1)
	assert.Contains(t, snap.System.Disks, "nvme0n1")
}

func TestSample_AnonAndFileFromMeminfo(t *testing.T) {
	src := &fakeSource{mi: procfs.Meminfo{
		ActiveAnon:   u64(100),
		InactiveAnon: u64(50),
		ActiveFile:   u64(200),
	}}
	snap := newSampler(time.Second, src, nil).Sample(time.Unix(100, 0))

	assert.Equal(t, uint64(150*1024), snap.System.Mem.Anon)
	assert.Equal(t, uint64(200*1024), snap.System.Mem.File)
}

func TestSample_ReadErrorsAreLogged(t *testing.T) {
	log := logger.NewBufferLogger()
	src := &fakeSource{err: fmt.Errorf("permission denied")}
	s := newSampler(time.Second, src, log)

	snap := s.Sample(time.Unix(100, 0))

	assert.Empty(t, snap.System.Disks)
	assert.NotNil(t, snap.System.Disks)
	assert.Empty(t, snap.Network.Interfaces)
	assert.True(t, log.HasLevel(logger.LevelWarn))
	assert.True(t, log.HasLevel(logger.LevelDebug))
}

func TestStream_StopsOnCancel(t *testing.T) {
	s := newSampler(10*time.Millisecond, &fakeSource{}, nil)
	ctx, cancel := context.WithCancel(context.Background())

	ch := s.Stream(ctx)
	select {
	case _, ok := <-ch:
		require.True(t, ok)
	case <-time.After(time.Second):
		t.Fatal("no snapshot received")
	}

	cancel()
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("stream not closed after cancel")
		}
	}
}

func TestRate(t *testing.T) {
	assert.Equal(t, 50.0, rate(150, 50, 2))
	assert.Zero(t, rate(10, 50, 1))
	assert.Zero(t, rate(50, 10, 0))
}
