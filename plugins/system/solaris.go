package system

import (
	"regexp"
	"strconv"
)

var psrinfoRE = regexp.MustCompile(`(?i)the (\w+) processor.*at (\d+) MHz`)

func solarisInfo() *Info {
	info := genericInfo()
	fillSolaris(info, runLines("psrinfo", "-v"), runLines("psrinfo"))
	return info
}

// fillSolaris takes the processor name and clock from the verbose
// psrinfo form ("The sparcv9 processor operates at 1200 MHz") and the
// CPU count from the on-line lines of the plain form.
func fillSolaris(info *Info, verbose, plain []string) {
	for _, line := range verbose {
		if m := psrinfoRE.FindStringSubmatch(line); m != nil {
			info.cpu = m[1] + " (" + m[2] + "MHz)"
			break
		}
	}
	if n := countMatching("on-line", plain); n > 0 {
		info.ncpu = strconv.Itoa(n)
	}
}
