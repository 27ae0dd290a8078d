package collector

import (
	"regexp"
	"strings"

	"github.com/Zolyn/Artixide/util"
)

// DefaultMirrorlist is the pacman mirrorlist shipped on the live medium.
const DefaultMirrorlist = "/etc/pacman.d/mirrorlist"

// firstMirrorGroup marks where mirror entries begin in the mirrorlist;
// everything before it is boilerplate.
const firstMirrorGroup = "# Default mirrors"

var mirrorURLRe = regexp.MustCompile(`https?://(([a-z0-9-]+\.)+[a-z]+)/.*`)

// MirrorGroup is one commented section of the mirrorlist (usually a
// country) and its server URLs.
type MirrorGroup struct {
	Name    string
	Servers []string
}

// Mirrors parses a pacman mirrorlist into its groups.
func Mirrors(path string) ([]MirrorGroup, error) {
	lines, err := util.ReadFileLines(path)
	if err != nil {
		return nil, err
	}
	return parseMirrorLines(lines), nil
}

func parseMirrorLines(lines []string) []MirrorGroup {
	start := 0
	for i, line := range lines {
		if strings.HasPrefix(line, firstMirrorGroup) {
			start = i + 1
			break
		}
	}

	group := firstMirrorGroup
	var servers []string
	var result []MirrorGroup

	for _, line := range lines[start:] {
		switch {
		case strings.HasPrefix(line, "Server"):
			servers = append(servers, line)
		case strings.HasPrefix(line, "# "):
			result = append(result, MirrorGroup{Name: group, Servers: servers})
			group = line
			servers = nil
		}
	}
	result = append(result, MirrorGroup{Name: group, Servers: servers})

	return result
}

// MirrorHost extracts the host from a "Server = https://..." line for
// display, falling back to the whole URL when it does not look like one.
func MirrorHost(server string) string {
	url := strings.TrimPrefix(server, "Server = ")
	if m := mirrorURLRe.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	return url
}
