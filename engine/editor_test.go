package engine

import (
	"errors"
	"testing"

	"github.com/Zolyn/Artixide/model"
)

func regionSpans(dev *model.CompatDevice) []model.Span {
	spans := make([]model.Span, len(dev.Regions))
	for i, r := range dev.Regions {
		spans[i] = r.AsSpan()
	}
	return spans
}

func TestCreateConsumeWholeRegion(t *testing.T) {
	// Free region of exactly 100 sectors between two partitions.
	dev := testDevice(t, 2047, 1048576, [2]uint64{2048, 4095}, [2]uint64{4196, 8191})

	frees := freeRegions(dev)
	if len(frees) < 1 || frees[0].SectorCnt != 100 {
		t.Fatalf("test setup: expected a 100-sector free region, got %+v", frees)
	}

	count := len(dev.Regions)
	if err := CreatePartition(dev, 1, SpecAll); err != nil {
		t.Fatalf("create: %v", err)
	}

	if len(dev.Regions) != count {
		t.Fatalf("region count changed from %d to %d, want unchanged (no remainder)", count, len(dev.Regions))
	}
	part, ok := dev.Regions[1].(*model.MemPartition)
	if !ok {
		t.Fatalf("region 1 is %T, want partition", dev.Regions[1])
	}
	if part.First != 4096 || part.Last != 4195 || part.SectorCnt != 100 {
		t.Fatalf("partition = [%d,%d] %d sectors, want [4096,4195] 100", part.First, part.Last, part.SectorCnt)
	}
	if part.IsReal() {
		t.Fatal("staged partition reports itself as on-disk")
	}

	mod, ok := dev.Journal.Get(part.Number)
	if !ok || mod.Kind != model.ModCreate || mod.Start != 4096 || mod.End != 4195 {
		t.Fatalf("journal entry = (%+v, %v), want staged create [4096,4195]", mod, ok)
	}

	checkInvariants(t, dev)
}

func TestCreateWithRemainder(t *testing.T) {
	dev := testDevice(t, 2047, 1048576)

	if err := CreatePartition(dev, 0, "2048s"); err != nil {
		t.Fatalf("create: %v", err)
	}

	if len(dev.Regions) != 2 {
		t.Fatalf("got %d regions, want partition + remainder", len(dev.Regions))
	}
	part := dev.Regions[0].(*model.MemPartition)
	if part.First != 2048 || part.Last != 4095 {
		t.Fatalf("partition = [%d,%d], want [2048,4095]", part.First, part.Last)
	}
	rest, ok := dev.Regions[1].(*model.FreeSpace)
	if !ok {
		t.Fatalf("region 1 is %T, want free space", dev.Regions[1])
	}
	if rest.First != 4096 || rest.Last != 1048575 {
		t.Fatalf("remainder = [%d,%d], want [4096,1048575]", rest.First, rest.Last)
	}

	checkInvariants(t, dev)
}

func TestCreateRemainderRetrimmed(t *testing.T) {
	// An unaligned partition end leaves a remainder that must be padded up
	// to the next alignment boundary.
	dev := testDevice(t, 2047, 1048576)

	if err := CreatePartition(dev, 0, "100s"); err != nil {
		t.Fatalf("create: %v", err)
	}

	rest := dev.Regions[1].(*model.FreeSpace)
	if rest.First != 4096 {
		t.Fatalf("remainder starts at %d, want aligned 4096", rest.First)
	}
	if rest.SectorCnt != 1048575-4096+1 {
		t.Fatalf("remainder sectors = %d, want %d", rest.SectorCnt, 1048575-4096+1)
	}
}

func TestCreateRemainderDropped(t *testing.T) {
	// Free region [2048,4095]; a 2000-sector partition leaves 48 sectors,
	// fewer than the padding to the next boundary, so no remainder region.
	dev := testDevice(t, 2047, 4096)

	if err := CreatePartition(dev, 0, "2000s"); err != nil {
		t.Fatalf("create: %v", err)
	}

	if len(dev.Regions) != 1 {
		t.Fatalf("got %d regions, want 1 (sub-alignment remainder dropped)", len(dev.Regions))
	}
}

func TestCreateErrorsLeaveModelUnchanged(t *testing.T) {
	cases := []struct {
		name string
		text string
		want error
	}{
		{"zero", "0", ErrInvalidSize},
		{"oversize", "3000000s", ErrOversize},
		{"garbage", "banana", nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dev := testDevice(t, 2047, 1048576, [2]uint64{4096, 8191})
			before := regionSpans(dev)

			err := CreatePartition(dev, 2, c.text)
			if err == nil {
				t.Fatalf("create %q succeeded, want error", c.text)
			}
			if c.want != nil && !errors.Is(err, c.want) {
				t.Fatalf("create %q = %v, want %v", c.text, err, c.want)
			}

			after := regionSpans(dev)
			for i := range before {
				if before[i] != after[i] {
					t.Fatalf("region %d changed from %+v to %+v after failed create", i, before[i], after[i])
				}
			}
			if dev.Journal.Len() != 0 {
				t.Fatal("failed create staged a journal entry")
			}
		})
	}
}

func TestCreatePoolExhausted(t *testing.T) {
	dev := testDevice(t, 2047, 1048576)
	for n := uint16(1); n <= model.MaxPartitions; n++ {
		dev.Pool.SetUsed(n)
	}
	before := regionSpans(dev)

	err := CreatePartition(dev, 0, SpecAll)
	if !errors.Is(err, ErrPoolExhausted) {
		t.Fatalf("create = %v, want ErrPoolExhausted", err)
	}
	after := regionSpans(dev)
	if before[0] != after[0] {
		t.Fatal("failed create mutated the region list")
	}
}

func TestDeleteBothNeighborsFree(t *testing.T) {
	// free, partition, free: delete merges all three into one region.
	dev := testDevice(t, 2047, 1048576, [2]uint64{4096, 8191})
	if len(dev.Regions) != 3 {
		t.Fatalf("test setup: got %d regions, want 3", len(dev.Regions))
	}
	left := dev.Regions[0].(*model.FreeSpace)
	right := dev.Regions[2].(*model.FreeSpace)
	wantFirst, wantLast := left.First, right.Last

	DeletePartition(dev, 1)

	if len(dev.Regions) != 1 {
		t.Fatalf("got %d regions after delete, want 1", len(dev.Regions))
	}
	merged, ok := dev.Regions[0].(*model.FreeSpace)
	if !ok {
		t.Fatalf("region is %T, want free space", dev.Regions[0])
	}
	if merged.First != wantFirst || merged.Last != wantLast {
		t.Fatalf("merged = [%d,%d], want [%d,%d]", merged.First, merged.Last, wantFirst, wantLast)
	}
	if merged.SectorCnt != wantLast-wantFirst+1 {
		t.Fatalf("merged sectors = %d, want %d", merged.SectorCnt, wantLast-wantFirst+1)
	}
	if dev.Pool.IsUsed(1) {
		t.Fatal("deleted partition's number still marked used")
	}
}

func TestDeleteLeftNeighborFree(t *testing.T) {
	// free | partition at the very end of the disk.
	dev := testDevice(t, 2047, 1048576, [2]uint64{524288, 1048575})

	DeletePartition(dev, 1)

	if len(dev.Regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(dev.Regions))
	}
	merged := dev.Regions[0].(*model.FreeSpace)
	if merged.First != 2048 || merged.Last != 1048575 {
		t.Fatalf("merged = [%d,%d], want [2048,1048575]", merged.First, merged.Last)
	}
	checkInvariants(t, dev)
}

func TestDeleteRightNeighborFree(t *testing.T) {
	// partition at the very start of the usable range | free.
	dev := testDevice(t, 2047, 1048576, [2]uint64{2048, 4095})

	DeletePartition(dev, 0)

	if len(dev.Regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(dev.Regions))
	}
	merged := dev.Regions[0].(*model.FreeSpace)
	if merged.First != 2048 || merged.Last != 1048575 {
		t.Fatalf("merged = [%d,%d], want [2048,1048575]", merged.First, merged.Last)
	}
	checkInvariants(t, dev)
}

func TestDeleteNoFreeNeighbors(t *testing.T) {
	// Two partitions cover the usable range exactly; deleting one turns
	// its span into a standalone free region with identical bounds.
	dev := testDevice(t, 2047, 1048576, [2]uint64{2048, 524287}, [2]uint64{524288, 1048575})

	DeletePartition(dev, 0)

	if len(dev.Regions) != 2 {
		t.Fatalf("got %d regions, want 2", len(dev.Regions))
	}
	free, ok := dev.Regions[0].(*model.FreeSpace)
	if !ok {
		t.Fatalf("region 0 is %T, want free space", dev.Regions[0])
	}
	if free.First != 2048 || free.Last != 524287 {
		t.Fatalf("free = [%d,%d], want [2048,524287]", free.First, free.Last)
	}
	checkInvariants(t, dev)
}

func TestCreateDeleteInverse(t *testing.T) {
	// Creating a partition that consumes a whole free region and deleting
	// it restores the region byte for byte.
	dev := testDevice(t, 2047, 1048576, [2]uint64{2048, 4095}, [2]uint64{8192, 16383})
	before := regionSpans(dev)

	if err := CreatePartition(dev, 1, SpecAll); err != nil {
		t.Fatalf("create: %v", err)
	}
	part := dev.Regions[1].(*model.MemPartition)
	DeletePartition(dev, 1)

	after := regionSpans(dev)
	if len(before) != len(after) {
		t.Fatalf("region count changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("region %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
	if dev.Pool.IsUsed(part.Number) {
		t.Fatalf("number %d still used after create+delete", part.Number)
	}
	if dev.Journal.Len() != 0 {
		t.Fatal("create+delete of a staged partition left a journal entry")
	}
	checkInvariants(t, dev)
}

func TestDeleteRealPartitionStagesTombstone(t *testing.T) {
	dev := testDevice(t, 2047, 1048576, [2]uint64{4096, 8191})

	DeletePartition(dev, 1)

	mod, ok := dev.Journal.Get(1)
	if !ok || mod.Kind != model.ModDelete {
		t.Fatalf("journal entry = (%+v, %v), want delete tombstone", mod, ok)
	}
}

func TestDeleteNumberReuse(t *testing.T) {
	// After deleting partition 1, the next create takes the lowest free
	// number, which is 1 again.
	dev := testDevice(t, 2047, 1048576, [2]uint64{4096, 8191})

	DeletePartition(dev, 1)
	if err := CreatePartition(dev, 0, SpecAll); err != nil {
		t.Fatalf("create: %v", err)
	}

	part := dev.Regions[0].(*model.MemPartition)
	if part.Number != 1 {
		t.Fatalf("new partition number = %d, want 1", part.Number)
	}
	checkInvariants(t, dev)
}
