package engine

import (
	"fmt"

	"github.com/Zolyn/Artixide/model"
)

// CreatePartition stages a new partition inside the free region at index
// in the device's region list. sizeText follows the ParseSizeSpec grammar;
// SpecAll consumes the whole region. On any error the model is unchanged.
//
// The new partition starts at the free region's (already aligned) start.
// When it does not consume the whole region the remainder becomes a new
// free region, re-trimmed for alignment; a remainder with no sectors left
// after trimming is dropped rather than kept as a sub-alignment sliver.
func CreatePartition(dev *model.CompatDevice, index int, sizeText string) error {
	free, ok := dev.Regions[index].(*model.FreeSpace)
	if !ok {
		panic(fmt.Sprintf("region %d is not free space", index))
	}

	sectors := free.SectorCnt
	if sizeText != SpecAll {
		var err error
		sectors, err = ParseSizeSpec(sizeText, dev.Disk.SectorSize)
		if err != nil {
			return err
		}
		if sectors > free.SectorCnt {
			return ErrOversize
		}
	}

	number, ok := dev.Pool.FindAvailable()
	if !ok {
		return ErrPoolExhausted
	}

	part := &model.MemPartition{
		Number:    number,
		First:     free.First,
		Last:      free.First + sectors - 1,
		SectorCnt: sectors,
		SizeBytes: sectors * dev.Disk.SectorSize,
	}

	remainder := trimRemainder(part.Last, free.Last, dev.Disk.SectorSize)

	dev.Regions[index] = part
	if remainder != nil {
		dev.Regions = append(dev.Regions, nil)
		copy(dev.Regions[index+2:], dev.Regions[index+1:])
		dev.Regions[index+1] = remainder
	}

	dev.Journal.Stage(number, model.Modification{
		Kind:  model.ModCreate,
		Start: part.First,
		End:   part.Last,
	})
	return nil
}

// trimRemainder builds the free region left over between a new partition's
// last sector and the original region's end, aligned the same way
// FillFreeSpace aligns gaps. Returns nil when nothing survives.
func trimRemainder(partEnd, freeEnd, sectorSize uint64) *model.FreeSpace {
	if partEnd >= freeEnd {
		return nil
	}

	sectors := freeEnd - partEnd
	firstUsable := partEnd + 1
	padding := alignPad(firstUsable)
	if padding >= sectors {
		return nil
	}
	sectors -= padding

	return &model.FreeSpace{
		First:     firstUsable + padding,
		Last:      freeEnd,
		SectorCnt: sectors,
		SizeBytes: sectors * sectorSize,
	}
}

// DeletePartition removes the partition at index from the device's region
// list, merging the vacated span with free neighbors so that no two free
// regions stay adjacent, and releases its number.
func DeletePartition(dev *model.CompatDevice, index int) {
	part, ok := dev.Regions[index].(*model.MemPartition)
	if !ok {
		panic(fmt.Sprintf("region %d is not a partition", index))
	}

	prevFree, hasPrev := freeAt(dev, index-1)
	nextFree, hasNext := freeAt(dev, index+1)

	switch {
	case hasPrev && hasNext:
		// Left neighbor absorbs the partition and the right neighbor.
		prevFree.ExpandRight(part.AsSpan(), dev.Disk.SectorSize)
		prevFree.ExpandRight(nextFree.AsSpan(), dev.Disk.SectorSize)
		dev.Regions = append(dev.Regions[:index], dev.Regions[index+2:]...)
	case hasPrev:
		prevFree.ExpandRight(part.AsSpan(), dev.Disk.SectorSize)
		dev.Regions = append(dev.Regions[:index], dev.Regions[index+1:]...)
	case hasNext:
		nextFree.ExpandLeft(part.AsSpan(), dev.Disk.SectorSize)
		dev.Regions = append(dev.Regions[:index], dev.Regions[index+1:]...)
	default:
		span := part.AsSpan()
		dev.Regions[index] = &model.FreeSpace{
			First:     span.Start,
			Last:      span.End,
			SectorCnt: span.Sectors,
			SizeBytes: span.Bytes,
		}
	}

	dev.Pool.SetUnused(part.Number)

	if part.IsReal() {
		dev.Journal.Stage(part.Number, model.Modification{Kind: model.ModDelete})
	} else {
		dev.Journal.Remove(part.Number)
	}
}

func freeAt(dev *model.CompatDevice, index int) (*model.FreeSpace, bool) {
	if index < 0 || index >= len(dev.Regions) {
		return nil, false
	}
	free, ok := dev.Regions[index].(*model.FreeSpace)
	return free, ok
}
