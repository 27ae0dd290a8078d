package engine

import (
	"sort"

	"github.com/Zolyn/Artixide/model"
)

// alignPad returns how many sectors must be skipped so that first+pad lands
// on the next model.DefaultAlign boundary (zero when already aligned).
func alignPad(first uint64) uint64 {
	return ((first-1)/model.DefaultAlign+1)*model.DefaultAlign - first
}

// FillFreeSpace recomputes every free-space region of a device from its
// sentinel boundaries and current partitions. It is the sole authority for
// free-space shape and must run after any structural change to the
// partition set. Running it twice on unchanged input yields the same
// regions.
//
// Boundary LBAs are collected in pairs (sentinel start, each partition's
// start and end, sentinel end); the gap between each consecutive pair is
// trimmed so it starts on an alignment boundary and dropped if no sectors
// survive.
func FillFreeSpace(dev *model.CompatDevice) {
	disk := &dev.Disk

	positions := make([]uint64, 0, 2+2*len(dev.Regions))
	positions = append(positions, disk.StartingLBA)
	for _, r := range dev.Regions {
		if p, ok := r.(*model.MemPartition); ok {
			positions = append(positions, p.First, p.Last)
		}
	}
	positions = append(positions, disk.EndingLBA)
	sort.Slice(positions, func(i, j int) bool { return positions[i] < positions[j] })

	// positions always has even length: pairs of (gap start, gap end).
	var spaces []model.Region
	for i := 0; i+1 < len(positions); i += 2 {
		gapStart, gapEnd := positions[i], positions[i+1]

		sectors := gapEnd - gapStart - 1
		if sectors == 0 {
			continue
		}

		firstUsable := gapStart + 1
		padding := alignPad(firstUsable)
		if padding >= sectors {
			continue
		}
		sectors -= padding

		spaces = append(spaces, &model.FreeSpace{
			First:     firstUsable + padding,
			Last:      gapEnd - 1,
			SectorCnt: sectors,
			SizeBytes: sectors * disk.SectorSize,
		})
	}

	kept := dev.Regions[:0]
	for _, r := range dev.Regions {
		if _, ok := r.(*model.MemPartition); ok {
			kept = append(kept, r)
		}
	}
	dev.Regions = append(kept, spaces...)

	sort.Slice(dev.Regions, func(i, j int) bool {
		return dev.Regions[i].Start() < dev.Regions[j].Start()
	})
}
