package domain

// Environment describes the host a package is about to be installed into.
// It is probed once per run and immutable afterwards.
type Environment struct {
	// Platform is the host operating system token (e.g., "linux", "darwin", "win32").
	Platform string

	// Arch is the host CPU architecture token (e.g., "x64", "arm64").
	Arch string

	// Engines maps an installed engine name to its version string.
	// Engines that could not be found on the host are absent.
	Engines map[string]string
}

// EngineVersion returns the installed version of the named engine.
func (e Environment) EngineVersion(name string) (string, bool) {
	v, ok := e.Engines[name]
	return v, ok
}
