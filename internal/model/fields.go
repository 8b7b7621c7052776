package model

import "fmt"

// CPUFieldID names one aggregate CPU quantity.
type CPUFieldID int

const (
	CPUUsagePct CPUFieldID = iota
	CPUUserPct
	CPUSystemPct
	CPUIdlePct
	CPUIOWaitPct
)

var cpuFieldNames = [...]string{"usage_pct", "user_pct", "system_pct", "idle_pct", "iowait_pct"}

func (f CPUFieldID) String() string { return enumName(cpuFieldNames[:], int(f)) }

// MemFieldID names one memory quantity, all in bytes.
type MemFieldID int

const (
	MemTotal MemFieldID = iota
	MemFree
	MemAvailable
	MemAnon
	MemFile
	MemCached
)

var memFieldNames = [...]string{"total", "free", "available", "anon", "file", "cached"}

func (f MemFieldID) String() string { return enumName(memFieldNames[:], int(f)) }

// VMFieldID names one paging or swapping rate.
type VMFieldID int

const (
	VMPgpginPerSec VMFieldID = iota
	VMPgpgoutPerSec
	VMPswpinPerSec
	VMPswpoutPerSec
)

var vmFieldNames = [...]string{"pgpgin_per_sec", "pgpgout_per_sec", "pswpin_per_sec", "pswpout_per_sec"}

func (f VMFieldID) String() string { return enumName(vmFieldNames[:], int(f)) }

// DiskFieldID names one quantity of a single block device.
type DiskFieldID int

const (
	DiskReadBytesPerSec DiskFieldID = iota
	DiskWriteBytesPerSec
	DiskTotalBytesPerSec
	DiskMajor
	DiskMinor
)

var diskFieldNames = [...]string{"read_bytes_per_sec", "write_bytes_per_sec", "total_bytes_per_sec", "major", "minor"}

func (f DiskFieldID) String() string { return enumName(diskFieldNames[:], int(f)) }

// NetFieldID names one quantity of a single network interface.
type NetFieldID int

const (
	NetRxBytesPerSec NetFieldID = iota
	NetTxBytesPerSec
	NetThroughputPerSec
	NetRxPacketsPerSec
	NetTxPacketsPerSec
)

var netFieldNames = [...]string{"rx_bytes_per_sec", "tx_bytes_per_sec", "throughput_per_sec", "rx_packets_per_sec", "tx_packets_per_sec"}

func (f NetFieldID) String() string { return enumName(netFieldNames[:], int(f)) }

// SystemDomain tags which sub-model a SystemFieldID addresses.
type SystemDomain int

const (
	DomainCPU SystemDomain = iota
	DomainMem
	DomainVM
)

var domainNames = [...]string{"cpu", "mem", "vm"}

func (d SystemDomain) String() string { return enumName(domainNames[:], int(d)) }

// SystemFieldID addresses any leaf field reachable from SystemModel. Only the
// leaf matching Domain is meaningful; the others stay zero so that == compares
// structurally.
type SystemFieldID struct {
	domain SystemDomain
	cpu    CPUFieldID
	mem    MemFieldID
	vm     VMFieldID
}

func CPU(f CPUFieldID) SystemFieldID { return SystemFieldID{domain: DomainCPU, cpu: f} }

func Mem(f MemFieldID) SystemFieldID { return SystemFieldID{domain: DomainMem, mem: f} }

func VM(f VMFieldID) SystemFieldID { return SystemFieldID{domain: DomainVM, vm: f} }

func (id SystemFieldID) Domain() SystemDomain { return id.domain }

func (id SystemFieldID) CPU() (CPUFieldID, bool) { return id.cpu, id.domain == DomainCPU }

func (id SystemFieldID) Mem() (MemFieldID, bool) { return id.mem, id.domain == DomainMem }

func (id SystemFieldID) VM() (VMFieldID, bool) { return id.vm, id.domain == DomainVM }

func (id SystemFieldID) leaf() int {
	switch id.domain {
	case DomainCPU:
		return int(id.cpu)
	case DomainMem:
		return int(id.mem)
	default:
		return int(id.vm)
	}
}

// Less orders by domain, then by leaf field.
func (id SystemFieldID) Less(o SystemFieldID) bool {
	if id.domain != o.domain {
		return id.domain < o.domain
	}
	return id.leaf() < o.leaf()
}

func (id SystemFieldID) String() string {
	switch id.domain {
	case DomainCPU:
		return "cpu." + id.cpu.String()
	case DomainMem:
		return "mem." + id.mem.String()
	case DomainVM:
		return "vm." + id.vm.String()
	}
	return fmt.Sprintf("SystemFieldID(%d)", int(id.domain))
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("unknown(%d)", i)
	}
	return names[i]
}
