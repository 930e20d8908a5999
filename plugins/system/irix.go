package system

import (
	"regexp"
	"strings"
)

var irixCountRE = regexp.MustCompile(`(?i)^(\d+)\s.*processors?$`)

func irixInfo() *Info {
	info := genericInfo()
	fillIRIX(info, runLines("hinv", "-t", "cpu"), runLines("hinv", "-c", "processor"))
	return info
}

// fillIRIX reads the hinv type summary ("CPU: MIPS R10000 ...") and the
// processor count summary ("2 195 MHZ IP28 Processors"): leading integer
// is the count, second-to-last token the type.
func fillIRIX(info *Info, typeOut, countOut []string) {
	if len(typeOut) > 0 {
		if cpu := strings.TrimSpace(strings.TrimPrefix(typeOut[0], "CPU:")); cpu != "" {
			info.cpu = cpu
		}
	}
	for _, line := range countOut {
		m := irixCountRE.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		info.ncpu = m[1]
		if fields := strings.Fields(line); len(fields) >= 2 {
			info.cpuType = fields[len(fields)-2]
		}
		return
	}
}
