package system

func bsdInfo() *Info {
	info := genericInfo()
	fillBSD(info, func(key string) []string {
		return runLines("sysctl", key)
	})
	return info
}

// fillBSD queries hw.model, hw.machine and hw.ncpu. sysctl echoes the
// key back ("hw.model: ..." or "hw.model = ..." depending on the BSD),
// so the key-value extractor strips it.
func fillBSD(info *Info, sysctl func(key string) []string) {
	query := func(name string) string {
		key := "hw." + name
		return kvLookup(key, sysctl(key))
	}
	if v := query("model"); v != "" {
		info.cpu = v
	}
	if v := query("machine"); v != "" {
		info.cpuType = v
	}
	if v := query("ncpu"); v != "" {
		info.ncpu = v
	}
}
