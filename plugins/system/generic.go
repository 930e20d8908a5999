package system

// genericInfo is the portable baseline: everything uname can tell us and
// nothing more. The machine tag doubles as the description since no
// better portable signal exists, and the CPU count stays unknown.
func genericInfo() *Info {
	machine, node, ok := uname()
	if !ok {
		return &Info{}
	}
	return &Info{
		cpu:     machine,
		cpuType: machine,
		host:    node,
	}
}
