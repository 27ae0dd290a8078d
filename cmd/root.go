package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zolyn/Artixide/collector"
	"github.com/Zolyn/Artixide/model"
	"github.com/Zolyn/Artixide/ui"
)

// Version is set at build time via ldflags.
var Version = "0.2.0"

func printUsage() {
	fmt.Fprintf(os.Stderr, `artixide v%s - interactive Artix Linux installer

Usage:
  artixide [OPTIONS]

Modes:
  (default)         Interactive wizard (bubbletea, fullscreen)
  -list             Print classified block devices as JSON, then exit
  -version          Print version and exit

Options:
  -mirrorlist PATH  Mirrorlist to offer on the mirror page
                    (default: /etc/pacman.d/mirrorlist)

Examples:
  sudo artixide                      Run the installer wizard
  sudo artixide -list | jq .         Inspect device classification
`, Version)
}

// Run parses flags and starts the requested mode.
func Run() error {
	fs := flag.NewFlagSet("artixide", flag.ExitOnError)
	fs.Usage = printUsage

	var (
		showVersion = fs.Bool("version", false, "print version")
		listMode    = fs.Bool("list", false, "print devices as JSON")
		mirrorlist  = fs.String("mirrorlist", collector.DefaultMirrorlist, "mirrorlist path")
	)
	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if *showVersion {
		fmt.Printf("artixide v%s\n", Version)
		return nil
	}

	if *listMode {
		return listDevices()
	}

	prog := tea.NewProgram(
		ui.NewModel(ui.Options{Mirrorlist: *mirrorlist}),
		tea.WithAltScreen(),
	)
	_, err := prog.Run()
	return err
}

// Flat report rows for -list; the in-memory model types carry unexported
// bookkeeping that should not leak into the JSON.
type regionReport struct {
	Kind       string `json:"kind"`
	Number     uint16 `json:"number,omitempty"`
	Start      uint64 `json:"start"`
	End        uint64 `json:"end"`
	Sectors    uint64 `json:"sectors"`
	SizeBytes  uint64 `json:"size_bytes"`
	Bootable   bool   `json:"bootable,omitempty"`
	Filesystem string `json:"filesystem,omitempty"`
	Label      string `json:"label,omitempty"`
}

type deviceReport struct {
	Path        string         `json:"path"`
	Model       string         `json:"model"`
	SizeBytes   uint64         `json:"size_bytes"`
	SectorSize  uint64         `json:"sector_size"`
	Table       string         `json:"table"`
	ID          string         `json:"id,omitempty"`
	StartingLBA uint64         `json:"starting_lba,omitempty"`
	EndingLBA   uint64         `json:"ending_lba,omitempty"`
	Regions     []regionReport `json:"regions,omitempty"`
	Error       string         `json:"error,omitempty"`
}

func listDevices() error {
	devices, skipped, err := collector.ListDevices(collector.DeviceHeaderReader{})
	if err != nil {
		return err
	}

	reports := make([]deviceReport, 0, len(devices)+len(skipped))
	for _, dev := range devices {
		reports = append(reports, reportFor(dev))
	}
	for _, err := range skipped {
		reports = append(reports, deviceReport{Error: err.Error()})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

func reportFor(dev model.Device) deviceReport {
	if !dev.Compatible() {
		raw := dev.Raw
		return deviceReport{
			Path:       raw.Path,
			Model:      raw.Model,
			SizeBytes:  raw.SizeBytes,
			SectorSize: raw.SectorSize,
			Table:      "unrecognized",
		}
	}

	compat := dev.Compat
	table := "dos"
	if compat.Disk.IsGPT {
		table = "gpt"
	}
	report := deviceReport{
		Path:        compat.Disk.Path,
		Model:       compat.Disk.Model,
		SizeBytes:   compat.Disk.SizeBytes,
		SectorSize:  compat.Disk.SectorSize,
		Table:       table,
		ID:          compat.Disk.ID,
		StartingLBA: compat.Disk.StartingLBA,
		EndingLBA:   compat.Disk.EndingLBA,
	}
	for _, region := range compat.Regions {
		switch r := region.(type) {
		case *model.MemPartition:
			report.Regions = append(report.Regions, regionReport{
				Kind:       "partition",
				Number:     r.Number,
				Start:      r.First,
				End:        r.Last,
				Sectors:    r.SectorCnt,
				SizeBytes:  r.SizeBytes,
				Bootable:   r.Bootable,
				Filesystem: r.Filesystem.String(),
				Label:      r.Label,
			})
		case *model.FreeSpace:
			report.Regions = append(report.Regions, regionReport{
				Kind:      "free",
				Start:     r.First,
				End:       r.Last,
				Sectors:   r.SectorCnt,
				SizeBytes: r.SizeBytes,
			})
		}
	}
	return report
}
