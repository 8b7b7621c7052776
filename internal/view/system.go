package view

import (
	"fmt"

	"github.com/Dicklesworthstone/sysview/internal/model"
	"github.com/Dicklesworthstone/sysview/internal/render"
)

// SystemViewName identifies the system summary list in the view tree.
const SystemViewName = "system_view"

// SystemViewItem renders one field of the SystemModel.
type SystemViewItem = ViewItem[model.SystemFieldID]

// Items shown per row, left to right. Read-only after init.
var (
	sysCPUItems = []SystemViewItem{
		FromDefault[model.SystemModel](model.CPU(model.CPUUsagePct)),
		FromDefault[model.SystemModel](model.CPU(model.CPUUserPct)),
		FromDefault[model.SystemModel](model.CPU(model.CPUSystemPct)),
	}
	sysMemItems = []SystemViewItem{
		FromDefault[model.SystemModel](model.Mem(model.MemTotal)),
		FromDefault[model.SystemModel](model.Mem(model.MemFree)),
		FromDefault[model.SystemModel](model.Mem(model.MemAnon)),
		FromDefault[model.SystemModel](model.Mem(model.MemFile)),
	}
	sysVMItems = []SystemViewItem{
		FromDefault[model.SystemModel](model.VM(model.VMPgpginPerSec)),
		FromDefault[model.SystemModel](model.VM(model.VMPgpgoutPerSec)),
		FromDefault[model.SystemModel](model.VM(model.VMPswpinPerSec)),
		FromDefault[model.SystemModel](model.VM(model.VMPswpoutPerSec)),
	}
	diskTotalItem  = FromDefault[model.SingleDiskModel](model.DiskTotalBytesPerSec)
	ifaceTotalItem = FromDefault[model.SingleNetModel](model.NetThroughputPerSec)
)

func RenderCPURow(m model.SystemModel) render.Row { return RenderRow("CPU", m, sysCPUItems) }

func RenderMemRow(m model.SystemModel) render.Row { return RenderRow("Mem", m, sysMemItems) }

func RenderVMRow(m model.SystemModel) render.Row { return RenderRow("VM", m, sysVMItems) }

// RenderIORow shows total throughput of whole disks only; partitions
// (non-zero minor number) are left out.
func RenderIORow(disks map[string]model.SingleDiskModel) render.Row {
	return RenderModelsRow("I/O", WholeDisks(disks), diskTotalItem)
}

func RenderIfaceRow(ifaces map[string]model.SingleNetModel) render.Row {
	return RenderModelsRow("Iface", model.Sorted(ifaces), ifaceTotalItem)
}

// WholeDisks returns the disks with minor number 0, sorted by name.
func WholeDisks(disks map[string]model.SingleDiskModel) []model.Entry[model.SingleDiskModel] {
	all := model.Sorted(disks)
	out := all[:0]
	for _, e := range all {
		if e.Model.Minor == 0 {
			out = append(out, e)
		}
	}
	return out
}

// SystemRows builds the five summary rows from one snapshot.
func SystemRows(snap *model.Snapshot) []render.Row {
	return []render.Row{
		RenderCPURow(snap.System),
		RenderMemRow(snap.System),
		RenderVMRow(snap.System),
		RenderIORow(snap.System.Disks),
		RenderIfaceRow(snap.Network.Interfaces),
	}
}

// SystemView is the handle returned by Construct. Holding one proves the list
// was built and registered.
type SystemView struct {
	list *List
}

// Construct builds the system rows from the store's snapshot and registers
// the list in tree under SystemViewName.
func Construct(tree *Tree, store *model.Store) *SystemView {
	v := &SystemView{list: NewList(SystemViewName)}
	v.Refresh(store)
	tree.Add(v.list)
	return v
}

// Refresh rebuilds the rows from the store's current snapshot.
func (v *SystemView) Refresh(store *model.Store) {
	fill(v.list, store)
}

func (v *SystemView) List() *List { return v.list }

// Refresh finds the system list in tree and rebuilds it. Refreshing a tree
// that Construct never registered into is a bug and panics.
func Refresh(tree *Tree, store *model.Store) {
	l, ok := tree.Find(SystemViewName)
	if !ok {
		panic(fmt.Sprintf("view: no %s view found", SystemViewName))
	}
	fill(l, store)
}

func fill(l *List, store *model.Store) {
	var rows []render.Row
	store.Read(func(snap *model.Snapshot) {
		rows = SystemRows(snap)
	})
	l.SetRows(rows)
}
