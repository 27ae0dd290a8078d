package collector

import (
	"errors"
	"testing"

	"github.com/Zolyn/Artixide/model"

	"github.com/google/uuid"
)

type stubHeaderReader struct {
	header *GPTHeader
	err    error
}

func (s stubHeaderReader) ReadHeader(path string, sectorSize uint64) (*GPTHeader, error) {
	return s.header, s.err
}

func gptDisk(children ...ChildDevice) BlockDevice {
	return BlockDevice{
		Path:     "/dev/vda",
		Type:     "disk",
		Size:     512 * 1048576,
		LogSec:   512,
		Model:    "QEMU HARDDISK ",
		PTType:   "gpt",
		PTUUID:   "0a5f2b9c-0000-4000-8000-000000000001",
		Children: children,
	}
}

func TestClassifyGPTSentinels(t *testing.T) {
	dev := gptDisk()
	header := &GPTHeader{FirstUsableLBA: 34, LastUsableLBA: 1048542}

	got, err := Classify(dev, stubHeaderReader{header: header})
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if !got.Compatible() {
		t.Fatal("gpt disk classified as incompatible")
	}

	disk := got.Compat.Disk
	if disk.StartingLBA != 33 || disk.EndingLBA != 1048543 {
		t.Fatalf("sentinels = %d/%d, want 33/1048543", disk.StartingLBA, disk.EndingLBA)
	}
	if !disk.IsGPT {
		t.Fatal("IsGPT = false")
	}
	if disk.Model != "QEMU HARDDISK" {
		t.Fatalf("model = %q, want trimmed", disk.Model)
	}

	// An empty table still gets its usable range covered by free space.
	if len(got.Compat.Regions) != 1 {
		t.Fatalf("got %d regions, want 1 free region", len(got.Compat.Regions))
	}
	if _, ok := got.Compat.Regions[0].(*model.FreeSpace); !ok {
		t.Fatalf("region is %T, want free space", got.Compat.Regions[0])
	}
}

func TestClassifyDOSSentinels(t *testing.T) {
	dev := gptDisk()
	dev.PTType = "dos"

	got, err := Classify(dev, stubHeaderReader{})
	if err != nil {
		t.Fatalf("classify: %v", err)
	}

	disk := got.Compat.Disk
	if disk.StartingLBA != 0 {
		t.Fatalf("starting sentinel = %d, want 0", disk.StartingLBA)
	}
	if disk.EndingLBA != dev.Size/dev.LogSec {
		t.Fatalf("ending sentinel = %d, want %d", disk.EndingLBA, dev.Size/dev.LogSec)
	}
	if disk.IsGPT {
		t.Fatal("IsGPT = true for dos table")
	}
}

func TestClassifyUnknownTableIsRaw(t *testing.T) {
	for _, pttype := range []string{"", "atari", "sun"} {
		dev := gptDisk()
		dev.PTType = pttype

		got, err := Classify(dev, stubHeaderReader{})
		if err != nil {
			t.Fatalf("classify pttype %q: %v", pttype, err)
		}
		if got.Compatible() {
			t.Fatalf("pttype %q classified as compatible", pttype)
		}
		if got.Raw == nil || got.Raw.Path != dev.Path {
			t.Fatalf("pttype %q: raw record = %+v", pttype, got.Raw)
		}
	}
}

func TestClassifyHeaderReadError(t *testing.T) {
	readErr := errors.New("short read")
	_, err := Classify(gptDisk(), stubHeaderReader{err: readErr})
	if !errors.Is(err, readErr) {
		t.Fatalf("classify = %v, want wrapped read error", err)
	}
}

func TestClassifyChildren(t *testing.T) {
	esp := ChildDevice{
		Start:    2048,
		Size:     512 * 1048576,
		Type:     "part",
		PartN:    1,
		PartUUID: "11111111-1111-4111-8111-111111111111",
		PartType: ESPTypeGUID.String(),
		FSType:   "vfat",
		Label:    "EFI",
	}
	root := ChildDevice{
		Start:    1050624,
		Size:     1024 * 1048576,
		Type:     "part",
		PartN:    2,
		PartUUID: "22222222-2222-4222-8222-222222222222",
		PartType: "0fc63daf-8483-4772-8e79-3d69d8477de4",
		FSType:   "ext4",
	}
	mounted := ChildDevice{
		Start:      4147200,
		Size:       64 * 1048576,
		Type:       "part",
		PartN:      3,
		Mountpoint: "/run/artix/bootmnt",
	}
	loop := ChildDevice{Type: "loop", Start: 0, Size: 1048576}

	dev := gptDisk(esp, root, mounted, loop)
	dev.Size = 8 * 1024 * 1048576
	header := &GPTHeader{FirstUsableLBA: 34, LastUsableLBA: 16777182}

	got, err := Classify(dev, stubHeaderReader{header: header})
	if err != nil {
		t.Fatalf("classify: %v", err)
	}

	var parts []*model.MemPartition
	for _, r := range got.Compat.Regions {
		if p, ok := r.(*model.MemPartition); ok {
			parts = append(parts, p)
		}
	}
	if len(parts) != 2 {
		t.Fatalf("got %d partitions, want 2 (mounted and non-part children skipped)", len(parts))
	}

	p1, p2 := parts[0], parts[1]
	if p1.Number != 1 || !p1.Bootable {
		t.Fatalf("partition 1 = number %d bootable %v, want ESP", p1.Number, p1.Bootable)
	}
	if p1.Filesystem != model.FSFat32 {
		t.Fatalf("partition 1 filesystem = %v, want fat32", p1.Filesystem)
	}
	if p1.First != 2048 || p1.SectorCnt != esp.Size/512 || p1.Last != 2048+esp.Size/512-1 {
		t.Fatalf("partition 1 span = [%d,%d] %d sectors", p1.First, p1.Last, p1.SectorCnt)
	}
	if !p1.IsReal() {
		t.Fatal("enumerated partition reports itself as staged")
	}

	if p2.Number != 2 || p2.Bootable {
		t.Fatalf("partition 2 = number %d bootable %v, want plain data", p2.Number, p2.Bootable)
	}

	for _, n := range []uint16{1, 2} {
		if !got.Compat.Pool.IsUsed(n) {
			t.Fatalf("number %d not seeded in pool", n)
		}
	}
	if got.Compat.Pool.IsUsed(3) {
		t.Fatal("mounted partition's number seeded in pool")
	}
}

func TestClassifyLegacyBootFlag(t *testing.T) {
	child := ChildDevice{
		Start:     2048,
		Size:      256 * 1048576,
		Type:      "part",
		PartN:     1,
		PartFlags: "0x80",
		FSType:    "ext4",
	}
	dev := gptDisk(child)
	dev.PTType = "dos"

	got, err := Classify(dev, stubHeaderReader{})
	if err != nil {
		t.Fatalf("classify: %v", err)
	}

	part, ok := got.Compat.Regions[0].(*model.MemPartition)
	if !ok {
		t.Fatalf("region 0 is %T, want partition", got.Compat.Regions[0])
	}
	if !part.Bootable {
		t.Fatal("0x80 flag did not mark the partition bootable")
	}
}

func TestClassifyGPTNonESPTypeNotBootable(t *testing.T) {
	child := ChildDevice{
		Start:    2048,
		Size:     512 * 1048576,
		Type:     "part",
		PartN:    1,
		PartType: uuid.NewString(),
	}

	got, err := Classify(gptDisk(child), stubHeaderReader{
		header: &GPTHeader{FirstUsableLBA: 34, LastUsableLBA: 2097118},
	})
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	part := got.Compat.Regions[0].(*model.MemPartition)
	if part.Bootable {
		t.Fatal("non-ESP type GUID marked bootable")
	}
}
