package system

import "strconv"

func hpuxInfo() *Info {
	info := genericInfo()
	if n := countMatching("processor", runLines("ioscan", "-fnkC", "processor")); n > 0 {
		info.ncpu = strconv.Itoa(n)
	}
	return info
}
