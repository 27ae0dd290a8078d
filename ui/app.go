package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zolyn/Artixide/collector"
	"github.com/Zolyn/Artixide/config"
	"github.com/Zolyn/Artixide/model"
)

// Page identifies the current screen.
type Page int

const (
	PageMenu Page = iota
	PageKeyboard
	PageLocale
	PageMirror
	PageHostname
	PageTimezone
	PagePartition
	PageSummary
	pageCount
)

var menuItems = []string{
	"Keyboard layout",
	"Locale",
	"Mirror",
	"Hostname",
	"Timezone",
	"Partitions",
	"Summary",
	"Quit",
}

// Data-loading messages. Each loader runs as a tea.Cmd so the UI never
// blocks on the filesystem or on lsblk.
type layoutsMsg struct {
	items []string
	err   error
}

type localesMsg struct {
	langs     []string
	encodings []string
	err       error
}

type mirrorsMsg struct {
	groups []collector.MirrorGroup
	err    error
}

type zonesMsg struct {
	items []string
	err   error
}

type devicesMsg struct {
	devices []model.Device
	skipped []error
	err     error
}

type saveDoneMsg struct {
	path string
	err  error
}

// Options configures the wizard before it starts.
type Options struct {
	Mirrorlist string
	GPT        collector.HeaderReader
}

// Model is the bubbletea model for the whole wizard.
type Model struct {
	opts   Options
	cfg    config.Config
	width  int
	height int
	page   Page

	menu menuList

	// Loaded page data; nil until the page is first opened.
	layouts    []string
	langs      []string
	encodings  []string
	mirrors    []collector.MirrorGroup
	zones      []string
	loadErr    string
	statusMsg  string
	statusTime time.Time

	keyboardMenu menuList
	localeMenu   menuList
	encodingMenu menuList
	pickEncoding bool
	mirrorMenu   menuList
	mirrorIdx    []mirrorRef
	zoneMenu     menuList
	hostInput    textInput

	part partitionState
}

// mirrorRef locates a rendered mirror row in the grouped list.
type mirrorRef struct {
	group  int
	server int // -1 for the group header row
}

// NewModel creates the wizard model.
func NewModel(opts Options) Model {
	if opts.GPT == nil {
		opts.GPT = collector.DeviceHeaderReader{}
	}
	if opts.Mirrorlist == "" {
		opts.Mirrorlist = collector.DefaultMirrorlist
	}
	return Model{
		opts: opts,
		cfg:  config.Load(),
		menu: newMenuList(menuItems),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func loadLayouts() tea.Msg {
	items, err := collector.KeyboardLayouts(collector.KeymapDir)
	return layoutsMsg{items: items, err: err}
}

func loadLocales() tea.Msg {
	langs, encodings, err := collector.Locales(collector.LocaleGenPath)
	return localesMsg{langs: langs, encodings: encodings, err: err}
}

func loadMirrors(path string) tea.Cmd {
	return func() tea.Msg {
		groups, err := collector.Mirrors(path)
		return mirrorsMsg{groups: groups, err: err}
	}
}

func loadZones() tea.Msg {
	items, err := collector.Timezones(collector.ZoneinfoDir)
	return zonesMsg{items: items, err: err}
}

func loadDevices(gpt collector.HeaderReader) tea.Cmd {
	return func() tea.Msg {
		devices, skipped, err := collector.ListDevices(gpt)
		return devicesMsg{devices: devices, skipped: skipped, err: err}
	}
}

func saveConfig(cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		err := config.Save(cfg)
		return saveDoneMsg{path: config.Path(), err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case layoutsMsg:
		if msg.err != nil {
			m.loadErr = fmt.Sprintf("load keyboard layouts: %v", msg.err)
			return m, nil
		}
		m.layouts = msg.items
		m.keyboardMenu.setItems(m.layouts)
		return m, nil

	case localesMsg:
		if msg.err != nil {
			m.loadErr = fmt.Sprintf("load locales: %v", msg.err)
			return m, nil
		}
		m.langs = msg.langs
		m.encodings = msg.encodings
		m.localeMenu.setItems(m.langs)
		m.encodingMenu.setItems(m.encodings)
		return m, nil

	case mirrorsMsg:
		if msg.err != nil {
			m.loadErr = fmt.Sprintf("load mirrorlist: %v", msg.err)
			return m, nil
		}
		m.mirrors = msg.groups
		m.buildMirrorRows()
		return m, nil

	case zonesMsg:
		if msg.err != nil {
			m.loadErr = fmt.Sprintf("load timezones: %v", msg.err)
			return m, nil
		}
		m.zones = msg.items
		m.zoneMenu.setItems(m.zones)
		return m, nil

	case devicesMsg:
		if msg.err != nil {
			m.loadErr = fmt.Sprintf("enumerate devices: %v", msg.err)
			return m, nil
		}
		m.part.setDevices(msg.devices, msg.skipped)
		return m, nil

	case saveDoneMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("Save failed: %v", msg.err))
		} else {
			m.setStatus("Saved " + msg.path)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) setStatus(s string) {
	m.statusMsg = s
	m.statusTime = time.Now()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.page {
	case PageMenu:
		return m.handleMenu(msg)
	case PageKeyboard:
		return m.handleKeyboard(msg)
	case PageLocale:
		return m.handleLocale(msg)
	case PageMirror:
		return m.handleMirror(msg)
	case PageHostname:
		return m.handleHostname(msg)
	case PageTimezone:
		return m.handleTimezone(msg)
	case PagePartition:
		return m.handlePartition(msg)
	case PageSummary:
		return m.handleSummary(msg)
	}
	return m, nil
}

// open switches to a page, kicking off its loader on first visit.
func (m Model) open(page Page) (tea.Model, tea.Cmd) {
	m.page = page
	m.loadErr = ""

	switch page {
	case PageKeyboard:
		if m.layouts == nil {
			return m, loadLayouts
		}
	case PageLocale:
		m.pickEncoding = false
		if m.langs == nil {
			return m, loadLocales
		}
	case PageMirror:
		if m.mirrors == nil {
			return m, loadMirrors(m.opts.Mirrorlist)
		}
	case PageTimezone:
		if m.zones == nil {
			return m, loadZones
		}
	case PagePartition:
		if m.part.devices == nil {
			return m, loadDevices(m.opts.GPT)
		}
	}
	return m, nil
}

func (m Model) handleMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "q" {
		return m, tea.Quit
	}
	choice, _ := m.menu.handleKey(msg)
	if choice < 0 {
		return m, nil
	}
	switch menuItems[choice] {
	case "Keyboard layout":
		return m.open(PageKeyboard)
	case "Locale":
		return m.open(PageLocale)
	case "Mirror":
		return m.open(PageMirror)
	case "Hostname":
		m.hostInput = textInput{value: m.cfg.Hostname}
		return m.open(PageHostname)
	case "Timezone":
		return m.open(PageTimezone)
	case "Partitions":
		return m.open(PagePartition)
	case "Summary":
		return m.open(PageSummary)
	case "Quit":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.page {
	case PageMenu:
		content = m.renderMenu()
	case PageKeyboard:
		content = m.renderKeyboard()
	case PageLocale:
		content = m.renderLocale()
	case PageMirror:
		content = m.renderMirror()
	case PageHostname:
		content = m.renderHostname()
	case PageTimezone:
		content = m.renderTimezone()
	case PagePartition:
		content = m.renderPartition()
	case PageSummary:
		content = m.renderSummary()
	}

	footer := ""
	if m.statusMsg != "" && time.Since(m.statusTime) < 5*time.Second {
		footer = "\n" + doneStyle.Render(m.statusMsg)
	}
	return content + footer
}
