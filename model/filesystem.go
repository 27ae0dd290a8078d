package model

// Filesystem is the filesystem kind lsblk reported for a partition.
type Filesystem int

const (
	FSUnknown Filesystem = iota
	FSExt2
	FSExt3
	FSExt4
	FSBtrfs
	FSXfs
	FSSwap
	FSFat16
	FSFat32
	FSExFat
	FSNtfs
)

var fsNames = map[Filesystem]string{
	FSUnknown: "unknown",
	FSExt2:    "ext2",
	FSExt3:    "ext3",
	FSExt4:    "ext4",
	FSBtrfs:   "btrfs",
	FSXfs:     "xfs",
	FSSwap:    "swap",
	FSFat16:   "fat16",
	FSFat32:   "fat32",
	FSExFat:   "exfat",
	FSNtfs:    "ntfs",
}

func (f Filesystem) String() string {
	if name, ok := fsNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFilesystem maps an fstype string to a Filesystem, defaulting to
// FSUnknown on empty or unrecognized input.
func ParseFilesystem(s string) Filesystem {
	switch s {
	case "ext2":
		return FSExt2
	case "ext3":
		return FSExt3
	case "ext4":
		return FSExt4
	case "btrfs":
		return FSBtrfs
	case "xfs":
		return FSXfs
	case "swap":
		return FSSwap
	case "fat16":
		return FSFat16
	case "fat32", "vfat":
		return FSFat32
	case "exfat":
		return FSExFat
	case "ntfs":
		return FSNtfs
	default:
		return FSUnknown
	}
}
