package model

// CPUModel holds aggregate CPU time shares in percent (0-100).
type CPUModel struct {
	UsagePct  float64
	UserPct   float64
	SystemPct float64
	IdlePct   float64
	IOWaitPct float64
}

// MemoryModel captures RAM usage in bytes.
type MemoryModel struct {
	Total     uint64
	Free      uint64
	Available uint64
	Anon      uint64 // active + inactive anonymous pages
	File      uint64 // active + inactive file-backed pages
	Cached    uint64
}

// VMModel holds paging and swapping rates in bytes per second.
type VMModel struct {
	PgpginPerSec  float64
	PgpgoutPerSec float64
	PswpinPerSec  float64
	PswpoutPerSec float64
}

// SingleDiskModel is one block device. Minor == 0 marks a whole disk rather
// than a partition.
type SingleDiskModel struct {
	Name             string
	Major            uint32
	Minor            uint32
	ReadBytesPerSec  float64
	WriteBytesPerSec float64
}

func (d SingleDiskModel) TotalBytesPerSec() float64 { return d.ReadBytesPerSec + d.WriteBytesPerSec }

// SingleNetModel is one network interface.
type SingleNetModel struct {
	Name            string
	RxBytesPerSec   float64
	TxBytesPerSec   float64
	RxPacketsPerSec float64
	TxPacketsPerSec float64
}

func (n SingleNetModel) ThroughputPerSec() float64 { return n.RxBytesPerSec + n.TxBytesPerSec }

// SystemModel aggregates system-wide counters plus the per-disk models.
type SystemModel struct {
	CPU   CPUModel
	Mem   MemoryModel
	VM    VMModel
	Disks map[string]SingleDiskModel
}

// NetworkModel holds the per-interface models keyed by interface name.
type NetworkModel struct {
	Interfaces map[string]SingleNetModel
}
