package collector

import (
	"fmt"
	"strings"

	"github.com/Zolyn/Artixide/engine"
	"github.com/Zolyn/Artixide/model"

	"github.com/google/uuid"
)

// legacyBootFlag is the MBR flags value marking a partition bootable.
const legacyBootFlag = "0x80"

// Classify builds a Device from one lsblk disk record. Devices without a
// gpt or dos table tag come back incompatible (read-only). A GPT device
// whose header cannot be read is a classification failure for that device.
func Classify(dev BlockDevice, gpt HeaderReader) (model.Device, error) {
	modelName := strings.TrimSpace(dev.Model)

	if dev.PTType != "gpt" && dev.PTType != "dos" {
		return model.Device{Raw: &model.RawDisk{
			Model:      modelName,
			Path:       dev.Path,
			SizeBytes:  dev.Size,
			SectorSize: dev.LogSec,
		}}, nil
	}

	isGPT := dev.PTType == "gpt"

	var startingLBA, endingLBA uint64
	if isGPT {
		header, err := gpt.ReadHeader(dev.Path, dev.LogSec)
		if err != nil {
			return model.Device{}, fmt.Errorf("classify %s: %w", dev.Path, err)
		}
		startingLBA = header.FirstUsableLBA - 1
		endingLBA = header.LastUsableLBA + 1
	} else {
		// DOS: LBA 0 holds the MBR, usable range is 1..total-1, so the
		// exclusive sentinels are 0 and the total sector count.
		startingLBA = 0
		endingLBA = dev.Size / dev.LogSec
	}

	compat := &model.CompatDevice{
		Disk: model.Disk{
			Model:       modelName,
			Path:        dev.Path,
			ID:          dev.PTUUID,
			SizeBytes:   dev.Size,
			SectorSize:  dev.LogSec,
			StartingLBA: startingLBA,
			EndingLBA:   endingLBA,
			IsGPT:       isGPT,
		},
	}

	for _, child := range dev.Children {
		// Mounted partitions cannot be safely edited in this session.
		if child.Type != "part" || child.Mountpoint != "" {
			continue
		}
		part := partitionFromChild(child, dev.LogSec, isGPT)
		compat.Pool.SetUsed(part.Number)
		compat.Regions = append(compat.Regions, part)
	}

	if len(compat.Regions) > model.MaxPartitions {
		panic(fmt.Sprintf("%s: %d partitions exceeds maximum %d",
			dev.Path, len(compat.Regions), model.MaxPartitions))
	}

	engine.FillFreeSpace(compat)

	return model.Device{Compat: compat}, nil
}

func partitionFromChild(child ChildDevice, sectorSize uint64, isGPT bool) *model.MemPartition {
	bootable := false
	if isGPT {
		if typeGUID, err := uuid.Parse(child.PartType); err == nil {
			bootable = typeGUID == ESPTypeGUID
		}
	} else {
		bootable = child.PartFlags == legacyBootFlag
	}

	sectors := child.Size / sectorSize

	return &model.MemPartition{
		Number:     child.PartN,
		First:      child.Start,
		Last:       child.Start + sectors - 1,
		SectorCnt:  sectors,
		SizeBytes:  child.Size,
		Bootable:   bootable,
		Filesystem: model.ParseFilesystem(child.FSType),
		Label:      child.Label,
		UUID:       child.PartUUID,
	}
}

// ListDevices enumerates block devices and classifies each disk. Devices
// whose GPT header cannot be read are skipped with their errors collected;
// a failed enumeration is fatal for the whole pass.
func ListDevices(gpt HeaderReader) ([]model.Device, []error, error) {
	records, err := ListBlockDevices()
	if err != nil {
		return nil, nil, err
	}

	var devices []model.Device
	var skipped []error
	for _, rec := range records {
		if rec.Type != "disk" {
			continue
		}
		dev, err := Classify(rec, gpt)
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		devices = append(devices, dev)
	}
	return devices, skipped, nil
}
