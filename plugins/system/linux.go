package system

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var procLineRE = regexp.MustCompile(`(?i)^\s*processor\s*[:=]`)

func linuxInfo() *Info {
	info := genericInfo()
	f, err := os.Open("/proc/cpuinfo")
	if err != nil {
		// No cpuinfo: keep what uname gave us.
		return info
	}
	defer f.Close()
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	fillLinux(info, lines)
	return info
}

// fillLinux parses the per-processor blocks of /proc/cpuinfo. The sparc
// kernels use a different vocabulary ("ncpus active", "cpu") than the
// common one ("processor", "model name", "vendor_id", "cpu MHz").
func fillLinux(info *Info, lines []string) {
	if strings.Contains(info.cpuType, "sparc") {
		if v := kvLookup("ncpus active", lines); v != "" {
			info.ncpu = v
		}
		if v := kvLookup("cpu", lines); v != "" {
			info.cpu = v
		}
		return
	}
	n := 0
	for _, line := range lines {
		if procLineRE.MatchString(line) {
			n++
		}
	}
	if n > 0 {
		info.ncpu = strconv.Itoa(n)
	}
	if model := kvLookup("model name", lines); model != "" {
		vendor := kvLookup("vendor_id", lines)
		mhz, _ := strconv.ParseFloat(kvLookup("cpu mhz", lines), 64)
		info.cpu = fmt.Sprintf("%s (%s %.0fMHz)", model, vendor, mhz)
	}
}
