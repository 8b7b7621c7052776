package model

import (
	"fmt"

	"github.com/Dicklesworthstone/sysview/internal/render"
)

// Queriable is implemented by every model type that can be rendered field by
// field. F is the closed set of field ids the model answers to; passing any
// other value is a programming error and panics.
type Queriable[F comparable] interface {
	DefaultConfig(field F) render.Config
	Format(field F, cfg render.Config) string
}

const defaultWidth = 10

var (
	cpuConfigs = map[CPUFieldID]render.Config{
		CPUUsagePct:  pct("Usage"),
		CPUUserPct:   pct("User"),
		CPUSystemPct: pct("System"),
		CPUIdlePct:   pct("Idle"),
		CPUIOWaitPct: pct("I/O Wait"),
	}
	memConfigs = map[MemFieldID]render.Config{
		MemTotal:     bytes("Total"),
		MemFree:      bytes("Free"),
		MemAvailable: bytes("Available"),
		MemAnon:      bytes("Anon"),
		MemFile:      bytes("File"),
		MemCached:    bytes("Cached"),
	}
	vmConfigs = map[VMFieldID]render.Config{
		VMPgpginPerSec:  byteRate("Page In"),
		VMPgpgoutPerSec: byteRate("Page Out"),
		VMPswpinPerSec:  byteRate("Swap In"),
		VMPswpoutPerSec: byteRate("Swap Out"),
	}
	diskConfigs = map[DiskFieldID]render.Config{
		DiskReadBytesPerSec:  byteRate("Read"),
		DiskWriteBytesPerSec: byteRate("Write"),
		DiskTotalBytesPerSec: byteRate("Total"),
		DiskMajor:            {Title: "Major", Width: 7, Format: render.FormatPlain},
		DiskMinor:            {Title: "Minor", Width: 7, Format: render.FormatPlain},
	}
	netConfigs = map[NetFieldID]render.Config{
		NetRxBytesPerSec:    byteRate("RX"),
		NetTxBytesPerSec:    byteRate("TX"),
		NetThroughputPerSec: byteRate("Throughput"),
		NetRxPacketsPerSec:  countRate("RX Pkts", " pkts/s"),
		NetTxPacketsPerSec:  countRate("TX Pkts", " pkts/s"),
	}
)

func pct(title string) render.Config {
	return render.Config{Title: title, Width: defaultWidth, Format: render.FormatPercent}
}

func bytes(title string) render.Config {
	return render.Config{Title: title, Width: defaultWidth, Format: render.FormatBytes}
}

func byteRate(title string) render.Config {
	return render.Config{Title: title, Width: defaultWidth + 2, Format: render.FormatByteRate}
}

func countRate(title, suffix string) render.Config {
	return render.Config{Title: title, Width: defaultWidth + 4, Format: render.FormatCountRate, Suffix: suffix}
}

func lookup[F comparable](table map[F]render.Config, kind string, field F) render.Config {
	cfg, ok := table[field]
	if !ok {
		panic(fmt.Sprintf("model: no %s field %v", kind, field))
	}
	return cfg
}

func (CPUModel) DefaultConfig(f CPUFieldID) render.Config { return lookup(cpuConfigs, "cpu", f) }

func (m CPUModel) Format(f CPUFieldID, cfg render.Config) string {
	return cfg.FormatValue(m.value(f))
}

func (m CPUModel) value(f CPUFieldID) float64 {
	switch f {
	case CPUUsagePct:
		return m.UsagePct
	case CPUUserPct:
		return m.UserPct
	case CPUSystemPct:
		return m.SystemPct
	case CPUIdlePct:
		return m.IdlePct
	case CPUIOWaitPct:
		return m.IOWaitPct
	}
	panic(fmt.Sprintf("model: no cpu field %v", f))
}

func (MemoryModel) DefaultConfig(f MemFieldID) render.Config { return lookup(memConfigs, "mem", f) }

func (m MemoryModel) Format(f MemFieldID, cfg render.Config) string {
	return cfg.FormatValue(float64(m.value(f)))
}

func (m MemoryModel) value(f MemFieldID) uint64 {
	switch f {
	case MemTotal:
		return m.Total
	case MemFree:
		return m.Free
	case MemAvailable:
		return m.Available
	case MemAnon:
		return m.Anon
	case MemFile:
		return m.File
	case MemCached:
		return m.Cached
	}
	panic(fmt.Sprintf("model: no mem field %v", f))
}

func (VMModel) DefaultConfig(f VMFieldID) render.Config { return lookup(vmConfigs, "vm", f) }

func (m VMModel) Format(f VMFieldID, cfg render.Config) string {
	return cfg.FormatValue(m.value(f))
}

func (m VMModel) value(f VMFieldID) float64 {
	switch f {
	case VMPgpginPerSec:
		return m.PgpginPerSec
	case VMPgpgoutPerSec:
		return m.PgpgoutPerSec
	case VMPswpinPerSec:
		return m.PswpinPerSec
	case VMPswpoutPerSec:
		return m.PswpoutPerSec
	}
	panic(fmt.Sprintf("model: no vm field %v", f))
}

// DefaultConfig dispatches to the sub-model owning the field's domain.
func (m SystemModel) DefaultConfig(f SystemFieldID) render.Config {
	switch f.Domain() {
	case DomainCPU:
		leaf, _ := f.CPU()
		return m.CPU.DefaultConfig(leaf)
	case DomainMem:
		leaf, _ := f.Mem()
		return m.Mem.DefaultConfig(leaf)
	case DomainVM:
		leaf, _ := f.VM()
		return m.VM.DefaultConfig(leaf)
	}
	panic(fmt.Sprintf("model: no system field %v", f))
}

func (m SystemModel) Format(f SystemFieldID, cfg render.Config) string {
	switch f.Domain() {
	case DomainCPU:
		leaf, _ := f.CPU()
		return m.CPU.Format(leaf, cfg)
	case DomainMem:
		leaf, _ := f.Mem()
		return m.Mem.Format(leaf, cfg)
	case DomainVM:
		leaf, _ := f.VM()
		return m.VM.Format(leaf, cfg)
	}
	panic(fmt.Sprintf("model: no system field %v", f))
}

func (SingleDiskModel) DefaultConfig(f DiskFieldID) render.Config {
	return lookup(diskConfigs, "disk", f)
}

func (d SingleDiskModel) Format(f DiskFieldID, cfg render.Config) string {
	switch f {
	case DiskReadBytesPerSec:
		return cfg.FormatValue(d.ReadBytesPerSec)
	case DiskWriteBytesPerSec:
		return cfg.FormatValue(d.WriteBytesPerSec)
	case DiskTotalBytesPerSec:
		return cfg.FormatValue(d.TotalBytesPerSec())
	case DiskMajor:
		return cfg.FormatValue(float64(d.Major))
	case DiskMinor:
		return cfg.FormatValue(float64(d.Minor))
	}
	panic(fmt.Sprintf("model: no disk field %v", f))
}

func (SingleNetModel) DefaultConfig(f NetFieldID) render.Config { return lookup(netConfigs, "net", f) }

func (n SingleNetModel) Format(f NetFieldID, cfg render.Config) string {
	switch f {
	case NetRxBytesPerSec:
		return cfg.FormatValue(n.RxBytesPerSec)
	case NetTxBytesPerSec:
		return cfg.FormatValue(n.TxBytesPerSec)
	case NetThroughputPerSec:
		return cfg.FormatValue(n.ThroughputPerSec())
	case NetRxPacketsPerSec:
		return cfg.FormatValue(n.RxPacketsPerSec)
	case NetTxPacketsPerSec:
		return cfg.FormatValue(n.TxPacketsPerSec)
	}
	panic(fmt.Sprintf("model: no net field %v", f))
}

var (
	_ Queriable[SystemFieldID] = SystemModel{}
	_ Queriable[CPUFieldID]    = CPUModel{}
	_ Queriable[MemFieldID]    = MemoryModel{}
	_ Queriable[VMFieldID]     = VMModel{}
	_ Queriable[DiskFieldID]   = SingleDiskModel{}
	_ Queriable[NetFieldID]    = SingleNetModel{}
)
