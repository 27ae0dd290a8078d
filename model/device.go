package model

// Disk describes a block device with a recognized partition table.
//
// StartingLBA and EndingLBA are exclusive sentinel boundaries: the usable
// sector range is [StartingLBA+1, EndingLBA-1]. For GPT they come from the
// header (FirstUsableLBA-1 and LastUsableLBA+1); for DOS tables LBA 0 holds
// the MBR itself, so the sentinels are 0 and the total sector count. Keeping
// both table types exclusive makes the gap arithmetic in free-space
// computation uniform.
type Disk struct {
	Model       string
	Path        string
	ID          string
	SizeBytes   uint64
	SectorSize  uint64
	StartingLBA uint64
	EndingLBA   uint64
	IsGPT       bool
}

// RawDisk describes a device whose partition table is unrecognized or
// absent. It is shown read-only and never enters a partition table model.
type RawDisk struct {
	Model      string
	Path       string
	SizeBytes  uint64
	SectorSize uint64
}

// CompatDevice is one editable device: its disk metadata, the ordered region
// list, the partition number pool, and the journal of staged edits.
//
// Regions is kept sorted by start LBA, regions never overlap, and no two
// adjacent entries are both free space (free runs are always coalesced).
type CompatDevice struct {
	Disk    Disk
	Regions []Region
	Pool    NumberPool
	Journal Journal
}

// Device is the classification result for one enumerated block device.
// Exactly one field is set.
type Device struct {
	Compat *CompatDevice
	Raw    *RawDisk
}

// Compatible reports whether the device has an editable partition table.
func (d Device) Compatible() bool { return d.Compat != nil }

// Path returns the device node path for either variant.
func (d Device) Path() string {
	if d.Compat != nil {
		return d.Compat.Disk.Path
	}
	return d.Raw.Path
}
