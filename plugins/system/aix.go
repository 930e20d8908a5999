package system

import (
	"strconv"
	"strings"
)

func aixInfo() *Info {
	info := genericInfo()
	fillAIX(info, runLines("lsdev", "-C", "-c", "processor"), func(dev string) []string {
		return runLines("lsattr", "-EOl", dev)
	})
	return info
}

// fillAIX counts the Available processor devices and takes the "enable"
// attribute of the first one for both the description and the type.
func fillAIX(info *Info, devices []string, attrs func(dev string) []string) {
	n := countMatching("Available", devices)
	if n == 0 {
		return
	}
	info.ncpu = strconv.Itoa(n)
	first, _ := firstMatching("Available", devices)
	fields := strings.Fields(first)
	if len(fields) == 0 {
		return
	}
	if enable := kvLookup("enable", attrs(fields[0])); enable != "" {
		info.cpu = enable
		info.cpuType = enable
	}
}
