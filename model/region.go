package model

import "fmt"

// DefaultAlign is the sector boundary new partition and free-region starts
// are rounded up to (1 MiB at 512-byte sectors).
const DefaultAlign uint64 = 2048

// MaxPartitions bounds partition numbers per device; a correctly enumerated
// device cannot exceed it.
const MaxPartitions = 256

// Span is the raw extent of a region, used when regions are merged or
// converted during editing.
type Span struct {
	Start   uint64
	End     uint64
	Sectors uint64
	Bytes   uint64
}

// Region is one entry of a device's ordered region list: either a partition
// or a run of free space. The variant set is closed; callers dispatch with a
// type switch over *MemPartition and *FreeSpace.
type Region interface {
	Start() uint64
	End() uint64
	Sectors() uint64
	Bytes() uint64
	AsSpan() Span

	region()
}

// MemPartition is one partition of the in-memory table. Partitions
// discovered on disk carry their PARTUUID; staged ones do not.
type MemPartition struct {
	Number     uint16
	First      uint64
	Last       uint64
	SectorCnt  uint64
	SizeBytes  uint64
	Bootable   bool
	Filesystem Filesystem
	Label      string
	Mountpoint string
	UUID       string
}

func (p *MemPartition) Start() uint64   { return p.First }
func (p *MemPartition) End() uint64     { return p.Last }
func (p *MemPartition) Sectors() uint64 { return p.SectorCnt }
func (p *MemPartition) Bytes() uint64   { return p.SizeBytes }

func (p *MemPartition) AsSpan() Span {
	return Span{Start: p.First, End: p.Last, Sectors: p.SectorCnt, Bytes: p.SizeBytes}
}

// IsReal reports whether the partition exists on disk rather than only in
// this session's staged table.
func (p *MemPartition) IsReal() bool { return p.UUID != "" }

func (p *MemPartition) region() {}

// FreeSpace is an unallocated, alignment-trimmed gap between partitions (or
// between a partition and a disk boundary).
type FreeSpace struct {
	First     uint64
	Last      uint64
	SectorCnt uint64
	SizeBytes uint64
}

func (f *FreeSpace) Start() uint64   { return f.First }
func (f *FreeSpace) End() uint64     { return f.Last }
func (f *FreeSpace) Sectors() uint64 { return f.SectorCnt }
func (f *FreeSpace) Bytes() uint64   { return f.SizeBytes }

func (f *FreeSpace) AsSpan() Span {
	return Span{Start: f.First, End: f.Last, Sectors: f.SectorCnt, Bytes: f.SizeBytes}
}

// ExpandRight grows the region rightward to absorb a sibling span. The span
// must lie entirely beyond the region's end; anything else means the region
// list is already corrupt. Alignment padding between the two is reabsorbed,
// so the sector count is recomputed from the merged bounds.
func (f *FreeSpace) ExpandRight(s Span, sectorSize uint64) {
	if s.Start <= f.Last {
		panic(fmt.Sprintf("span [%d,%d] is not a right sibling of [%d,%d]", s.Start, s.End, f.First, f.Last))
	}
	f.Last = s.End
	f.SectorCnt = f.Last - f.First + 1
	f.SizeBytes = f.SectorCnt * sectorSize
}

// ExpandLeft grows the region leftward to absorb a sibling span.
func (f *FreeSpace) ExpandLeft(s Span, sectorSize uint64) {
	if s.End >= f.First {
		panic(fmt.Sprintf("span [%d,%d] is not a left sibling of [%d,%d]", s.Start, s.End, f.First, f.Last))
	}
	f.First = s.Start
	f.SectorCnt = f.Last - f.First + 1
	f.SizeBytes = f.SectorCnt * sectorSize
}

func (f *FreeSpace) region() {}
