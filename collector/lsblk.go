package collector

import (
	"encoding/json"
	"fmt"
	"os/exec"
)

// lsblk columns the classifier consumes. -b keeps sizes in bytes, -J emits
// JSON, -T merges holder/slave trees so children nest under their disk.
var lsblkArgs = []string{
	"-J", "-T", "-b", "-o",
	"path,label,type,size,log-sec,start,pttype,ptuuid,partn,partuuid,parttype,partflags,fstype,mountpoint,model",
}

// ChildDevice is one nested lsblk record, usually a partition.
// Multiple nesting levels are not supported.
type ChildDevice struct {
	Start      uint64 `json:"start"`
	Size       uint64 `json:"size"`
	Type       string `json:"type"`
	PartN      uint16 `json:"partn"`
	PartUUID   string `json:"partuuid"`
	PartType   string `json:"parttype"`
	PartFlags  string `json:"partflags"`
	Label      string `json:"label"`
	FSType     string `json:"fstype"`
	Mountpoint string `json:"mountpoint"`
}

// BlockDevice is one top-level lsblk record.
type BlockDevice struct {
	Path     string        `json:"path"`
	Type     string        `json:"type"`
	Size     uint64        `json:"size"`
	LogSec   uint64        `json:"log-sec"`
	Model    string        `json:"model"`
	PTType   string        `json:"pttype"`
	PTUUID   string        `json:"ptuuid"`
	Children []ChildDevice `json:"children"`
}

type lsblkOutput struct {
	Blockdevices []BlockDevice `json:"blockdevices"`
}

// ListBlockDevices runs lsblk and returns its parsed records.
func ListBlockDevices() ([]BlockDevice, error) {
	out, err := exec.Command("lsblk", lsblkArgs...).Output()
	if err != nil {
		return nil, fmt.Errorf("run lsblk: %w", err)
	}

	var result lsblkOutput
	if err := json.Unmarshal(out, &result); err != nil {
		return nil, fmt.Errorf("parse lsblk output: %w", err)
	}
	return result.Blockdevices, nil
}
