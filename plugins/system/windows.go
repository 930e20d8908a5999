package system

// windowsInfo reads the processor facts straight from the environment.
// Unset variables leave their fields empty; there is deliberately no
// uname-derived fallback for them. Only the hostname comes from the
// system, the environment has nothing equivalent.
func windowsInfo(getenv func(string) string) *Info {
	_, node, _ := uname()
	return &Info{
		ncpu:    getenv("NUMBER_OF_PROCESSORS"),
		cpu:     getenv("PROCESSOR_IDENTIFIER"),
		cpuType: getenv("PROCESSOR_ARCHITECTURE"),
		host:    node,
	}
}
