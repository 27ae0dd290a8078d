package collector

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// ESPTypeGUID identifies an EFI System Partition on GPT.
var ESPTypeGUID = uuid.MustParse("c12a7328-f81f-11d2-ba4b-00a0c93ec93b")

var gptSignature = [8]byte{'E', 'F', 'I', ' ', 'P', 'A', 'R', 'T'}

// GPTHeader carries the header fields the classifier needs.
type GPTHeader struct {
	FirstUsableLBA uint64
	LastUsableLBA  uint64
	DiskGUID       uuid.UUID
}

// HeaderReader reads a device's GPT header. Classification takes it as an
// interface so tests can substitute canned headers for real device reads.
type HeaderReader interface {
	ReadHeader(path string, sectorSize uint64) (*GPTHeader, error)
}

// DeviceHeaderReader reads GPT headers from the raw block device at LBA 1.
type DeviceHeaderReader struct{}

// On-disk GPT header layout (UEFI spec 2.x), little-endian.
type rawGPTHeader struct {
	Signature           [8]byte
	Revision            [4]byte
	HeaderSize          uint32
	CRC32               uint32
	_                   [4]byte
	CurrentLBA          uint64
	BackupLBA           uint64
	FirstUsableLBA      uint64
	LastUsableLBA       uint64
	DiskGUID            [16]byte
	PartitionEntryLBA   uint64
	NumPartEntries      uint32
	PartEntrySize       uint32
	PartEntryArrayCRC32 uint32
}

const rawGPTHeaderSize = 92

func (DeviceHeaderReader) ReadHeader(path string, sectorSize uint64) (*GPTHeader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, rawGPTHeaderSize)
	if _, err := f.ReadAt(buf, int64(sectorSize)); err != nil {
		return nil, fmt.Errorf("read GPT header of %s: %w", path, err)
	}
	return decodeGPTHeader(buf, path)
}

func decodeGPTHeader(buf []byte, path string) (*GPTHeader, error) {
	var raw rawGPTHeader
	if err := binary.Read(bytes.NewReader(buf), binary.LittleEndian, &raw); err != nil {
		return nil, fmt.Errorf("decode GPT header of %s: %w", path, err)
	}
	if raw.Signature != gptSignature {
		return nil, fmt.Errorf("%s: bad GPT signature %q", path, raw.Signature)
	}
	if raw.FirstUsableLBA == 0 || raw.LastUsableLBA < raw.FirstUsableLBA {
		return nil, fmt.Errorf("%s: inconsistent usable LBA range %d..%d",
			path, raw.FirstUsableLBA, raw.LastUsableLBA)
	}

	return &GPTHeader{
		FirstUsableLBA: raw.FirstUsableLBA,
		LastUsableLBA:  raw.LastUsableLBA,
		DiskGUID:       mixedEndianGUID(raw.DiskGUID),
	}, nil
}

// mixedEndianGUID converts an on-disk GUID (first three fields
// little-endian) into RFC 4122 byte order.
func mixedEndianGUID(b [16]byte) uuid.UUID {
	var g uuid.UUID
	g[0], g[1], g[2], g[3] = b[3], b[2], b[1], b[0]
	g[4], g[5] = b[5], b[4]
	g[6], g[7] = b[7], b[6]
	copy(g[8:], b[8:])
	return g
}
