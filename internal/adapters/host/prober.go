// Package host probes the machine packages are about to be installed onto:
// its platform, CPU architecture, and installed engine versions.
package host

import (
	"context"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/hoist/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Prober implements ports.EnvironmentProber against the real host.
type Prober struct{}

// New creates a new host Prober.
func New() ports.EnvironmentProber {
	return &Prober{}
}

// engineProbe describes how to discover one installed engine.
type engineProbe struct {
	name  string
	bin   string
	args  []string
	parse func(output string) (string, bool)
}

var engineProbes = []engineProbe{
	{name: "node", bin: "node", args: []string{"--version"}, parse: parseNodeVersion},
	{name: "deno", bin: "deno", args: []string{"--version"}, parse: parseDenoVersion},
	{name: "go", bin: "go", args: []string{"version"}, parse: parseGoVersion},
}

// Probe returns the host environment. Engine binaries are probed
// concurrently; ones that are absent or report an unparsable version are
// omitted from the result rather than treated as failures.
func (p *Prober) Probe(ctx context.Context) (domain.Environment, error) {
	env := domain.Environment{
		Platform: Platform(runtime.GOOS),
		Arch:     Arch(runtime.GOARCH),
		Engines:  make(map[string]string),
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)

	for _, probe := range engineProbes {
		g.Go(func() error {
			bin, err := exec.LookPath(probe.bin)
			if err != nil {
				return nil
			}
			out, err := exec.CommandContext(ctx, bin, probe.args...).Output()
			if err != nil {
				return nil
			}
			version, ok := probe.parse(string(out))
			if !ok {
				return nil
			}
			mu.Lock()
			env.Engines[probe.name] = version
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Environment{}, err
	}
	return env, nil
}

// Platform normalizes a GOOS value to the platform vocabulary used by
// package manifests.
func Platform(goos string) string {
	if goos == "windows" {
		return "win32"
	}
	return goos
}

// Arch normalizes a GOARCH value to the architecture vocabulary used by
// package manifests.
func Arch(goarch string) string {
	switch goarch {
	case "amd64":
		return "x64"
	case "386":
		return "ia32"
	default:
		return goarch
	}
}

// parseNodeVersion parses "v18.0.0\n" into "18.0.0".
func parseNodeVersion(output string) (string, bool) {
	v := strings.TrimPrefix(strings.TrimSpace(output), "v")
	if v == "" {
		return "", false
	}
	return v, true
}

// parseDenoVersion parses the first line of "deno 1.40.0 (release, ...)".
func parseDenoVersion(output string) (string, bool) {
	line, _, _ := strings.Cut(strings.TrimSpace(output), "\n")
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[0] != "deno" {
		return "", false
	}
	return fields[1], true
}

// parseGoVersion parses "go version go1.22.1 linux/amd64" into "1.22.1".
func parseGoVersion(output string) (string, bool) {
	fields := strings.Fields(strings.TrimSpace(output))
	if len(fields) < 3 || !strings.HasPrefix(fields[2], "go") {
		return "", false
	}
	v := strings.TrimPrefix(fields[2], "go")
	if v == "" {
		return "", false
	}
	return v, true
}
