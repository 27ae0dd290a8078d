package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/Zolyn/Artixide/engine"
	"github.com/Zolyn/Artixide/model"
)

type partFocus int

const (
	focusTable partFocus = iota
	focusEditor
)

// Editor menu actions.
const (
	actionCreate  = "Create partition"
	actionDelete  = "Delete partition"
	actionRefresh = "Refresh devices"
)

// partitionState is the partition page: the classified devices, the region
// table cursor, and the editor pane.
type partitionState struct {
	devices []model.Device
	skipped []error
	devIdx  int
	cursor  int
	focus   partFocus

	editorIdx int
	sizing    bool
	sizeInput textInput
	errMsg    string
}

func (p *partitionState) setDevices(devices []model.Device, skipped []error) {
	p.devices = devices
	p.skipped = skipped
	p.devIdx = 0
	p.cursor = 0
	p.focus = focusTable
	p.editorIdx = 0
	p.sizing = false
	p.errMsg = ""
}

func (p *partitionState) current() *model.Device {
	if p.devIdx >= len(p.devices) {
		return nil
	}
	return &p.devices[p.devIdx]
}

// editorItems returns the actions available for the selected region.
func (p *partitionState) editorItems() []string {
	dev := p.current()
	if dev == nil || !dev.Compatible() {
		return []string{actionRefresh}
	}
	regions := dev.Compat.Regions
	if p.cursor >= len(regions) {
		return []string{actionRefresh}
	}
	switch regions[p.cursor].(type) {
	case *model.FreeSpace:
		return []string{actionCreate, actionRefresh}
	default:
		return []string{actionDelete, actionRefresh}
	}
}

func (m Model) handlePartition(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := &m.part

	if p.sizing {
		if msg.String() == "esc" {
			p.sizing = false
			p.errMsg = ""
			return m, nil
		}
		if p.sizeInput.handleKey(msg) {
			dev := p.current()
			err := engine.CreatePartition(dev.Compat, p.cursor, strings.TrimSpace(p.sizeInput.value))
			if err != nil {
				p.errMsg = err.Error()
				return m, nil
			}
			p.sizing = false
			p.errMsg = ""
			p.focus = focusTable
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "esc":
		m.page = PageMenu
		return m, nil
	case "tab":
		if p.focus == focusTable {
			p.focus = focusEditor
			p.editorIdx = 0
		} else {
			p.focus = focusTable
		}
		return m, nil
	case "h", "left":
		if p.devIdx > 0 {
			p.devIdx--
			p.cursor = 0
			p.errMsg = ""
		}
		return m, nil
	case "l", "right":
		if p.devIdx < len(p.devices)-1 {
			p.devIdx++
			p.cursor = 0
			p.errMsg = ""
		}
		return m, nil
	case "r":
		m.part.devices = nil
		return m, loadDevices(m.opts.GPT)
	}

	dev := p.current()
	if dev == nil {
		return m, nil
	}

	if p.focus == focusTable {
		regionCount := 0
		if dev.Compatible() {
			regionCount = len(dev.Compat.Regions)
		}
		switch msg.String() {
		case "j", "down":
			if p.cursor < regionCount-1 {
				p.cursor++
			}
		case "k", "up":
			if p.cursor > 0 {
				p.cursor--
			}
		}
		return m, nil
	}

	items := p.editorItems()
	switch msg.String() {
	case "j", "down":
		if p.editorIdx < len(items)-1 {
			p.editorIdx++
		}
	case "k", "up":
		if p.editorIdx > 0 {
			p.editorIdx--
		}
	case "enter":
		switch items[p.editorIdx] {
		case actionCreate:
			p.sizing = true
			p.sizeInput = textInput{value: engine.SpecAll}
			p.errMsg = ""
		case actionDelete:
			engine.DeletePartition(dev.Compat, p.cursor)
			if p.cursor >= len(dev.Compat.Regions) {
				p.cursor = len(dev.Compat.Regions) - 1
			}
			p.focus = focusTable
			p.errMsg = ""
		case actionRefresh:
			m.part.devices = nil
			return m, loadDevices(m.opts.GPT)
		}
	}
	return m, nil
}

func (m Model) renderPartition() string {
	p := &m.part
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("PARTITIONS"))
	if len(p.devices) > 1 {
		sb.WriteString("  " + dimStyle.Render(fmt.Sprintf("device %d/%d (h/l to switch)", p.devIdx+1, len(p.devices))))
	}
	sb.WriteString("\n\n")

	if m.loadErr != "" {
		sb.WriteString(errStyle.Render("  " + m.loadErr))
		return sb.String()
	}
	if p.devices == nil {
		sb.WriteString(dimStyle.Render("  Enumerating block devices..."))
		return sb.String()
	}
	if len(p.devices) == 0 {
		sb.WriteString(warnStyle.Render("  No disks found"))
		return sb.String()
	}

	dev := p.current()
	if !dev.Compatible() {
		raw := dev.Raw
		sb.WriteString(fmt.Sprintf("  %s  %s  %s\n\n",
			valueStyle.Render(raw.Path),
			dimStyle.Render(raw.Model),
			valueStyle.Render(humanize.IBytes(raw.SizeBytes))))
		sb.WriteString(warnStyle.Render("  Unrecognized partition table (read-only)"))
		sb.WriteString("\n\n")
		sb.WriteString(helpStyle.Render("h/l switch device · r refresh · esc back"))
		return sb.String()
	}

	compat := dev.Compat
	sb.WriteString(m.renderDiskInfo(&compat.Disk))
	sb.WriteString(m.renderRegionTable(compat))
	sb.WriteString("\n")
	sb.WriteString(m.renderEditor())

	for _, err := range p.skipped {
		sb.WriteString("\n" + warnStyle.Render("  skipped: "+err.Error()))
	}
	if p.errMsg != "" {
		sb.WriteString("\n" + errStyle.Render("  "+p.errMsg))
	}
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("j/k move · tab table/editor · h/l device · r refresh · esc back"))
	return sb.String()
}

func (m Model) renderDiskInfo(disk *model.Disk) string {
	table := "DOS"
	if disk.IsGPT {
		table = "GPT"
	}
	return fmt.Sprintf("  %s  %s  %s  %s  %s\n\n",
		valueStyle.Render(disk.Path),
		dimStyle.Render(disk.Model),
		valueStyle.Render(humanize.IBytes(disk.SizeBytes)),
		dimStyle.Render(table),
		dimStyle.Render(disk.ID))
}

func (m Model) renderRegionTable(compat *model.CompatDevice) string {
	var sb strings.Builder

	boot := "ESP"
	if !compat.Disk.IsGPT {
		boot = "Boot"
	}
	hdr := fmt.Sprintf("  %-14s %-5s %12s %12s %12s %-8s %-12s %10s",
		"Name", boot, "Start", "End", "Sectors", "FS", "Label", "Size")
	sb.WriteString(headerStyle.Render(hdr))
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("  " + strings.Repeat("─", min(m.width-4, len(hdr)))))
	sb.WriteString("\n")

	for i, region := range compat.Regions {
		var line string
		switch r := region.(type) {
		case *model.MemPartition:
			flag := ""
			if r.Bootable {
				flag = "*"
			}
			line = fmt.Sprintf("  %-14s %-5s %12d %12d %12d %-8s %-12s %10s",
				fmt.Sprintf("%s%d", compat.Disk.Path, r.Number), flag,
				r.First, r.Last, r.SectorCnt,
				r.Filesystem, r.Label, humanize.IBytes(r.SizeBytes))
		case *model.FreeSpace:
			line = fmt.Sprintf("  %-14s %-5s %12d %12d %12d %-8s %-12s %10s",
				"Free space", "", r.First, r.Last, r.SectorCnt, "", "",
				humanize.IBytes(r.SizeBytes))
			line = freeStyle.Render(line)
		}
		if i == m.part.cursor && m.part.focus == focusTable {
			line = selectedStyle.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) renderEditor() string {
	p := &m.part
	var sb strings.Builder

	if p.sizing {
		sb.WriteString("  " + dimStyle.Render("Size (e.g. 512M, 2GiB, 4096s, * for all): "))
		sb.WriteString(p.sizeInput.render())
		sb.WriteString("\n")
		return sb.String()
	}

	for i, item := range p.editorItems() {
		if i == p.editorIdx && p.focus == focusEditor {
			sb.WriteString(selectedStyle.Render("  > "+item) + "\n")
		} else {
			sb.WriteString(dimStyle.Render("    "+item) + "\n")
		}
	}
	return sb.String()
}
