package target

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestResolve_AliasToHostName(t *testing.T) {
	path := writeConfig(t, `
Host mini
    HostName 192.168.1.50
    User riley

Host workstation
    HostName work.example.com
`)
	r := NewResolverFile(path)

	resolved, ok := r.Resolve("mini")
	assert.True(t, ok)
	assert.Equal(t, "192.168.1.50", resolved)

	resolved, ok = r.Resolve("workstation")
	assert.True(t, ok)
	assert.Equal(t, "work.example.com", resolved)
}

func TestResolve_UnknownNamePassesThrough(t *testing.T) {
	path := writeConfig(t, `
Host mini
    HostName 192.168.1.50
`)
	r := NewResolverFile(path)

	resolved, ok := r.Resolve("example.com")

	assert.False(t, ok)
	assert.Equal(t, "example.com", resolved)
}

func TestResolve_IPLiteralsSkipTheConfig(t *testing.T) {
	// Even an alias that happens to look like an IP must not be
	// rewritten; literals always pass through.
	path := writeConfig(t, `
Host 10.0.0.1
    HostName somewhere.else
`)
	r := NewResolverFile(path)

	tests := []string{"8.8.8.8", "10.0.0.1", "2001:4860:4860::8888"}
	for _, ip := range tests {
		t.Run(ip, func(t *testing.T) {
			resolved, ok := r.Resolve(ip)
			assert.False(t, ok)
			assert.Equal(t, ip, resolved)
		})
	}
}

func TestResolve_WildcardBlocksDoNotMatch(t *testing.T) {
	path := writeConfig(t, `
Host *
    HostName everything.example.com

Host web-?
    HostName web.example.com
`)
	r := NewResolverFile(path)

	resolved, ok := r.Resolve("mini")

	assert.False(t, ok, "wildcard patterns must not capture targets")
	assert.Equal(t, "mini", resolved)
}

func TestResolve_AliasWithoutHostName(t *testing.T) {
	// An alias carrying only other settings resolves to nothing.
	path := writeConfig(t, `
Host mini
    User riley
    Port 2222
`)
	r := NewResolverFile(path)

	resolved, ok := r.Resolve("mini")

	assert.False(t, ok)
	assert.Equal(t, "mini", resolved)
}

func TestResolve_MissingConfigPassesThrough(t *testing.T) {
	r := NewResolverFile(filepath.Join(t.TempDir(), "does-not-exist"))

	resolved, ok := r.Resolve("mini")

	assert.False(t, ok)
	assert.Equal(t, "mini", resolved)
}

func TestResolve_MatchBlockTruncates(t *testing.T) {
	// Aliases before the first Match directive still resolve; the rest
	// of the file is invisible to the parser.
	path := writeConfig(t, `
Host mini
    HostName 192.168.1.50

Match host *.internal
    ProxyJump bastion

Host hidden
    HostName 10.9.9.9
`)
	r := NewResolverFile(path)

	resolved, ok := r.Resolve("mini")
	assert.True(t, ok)
	assert.Equal(t, "192.168.1.50", resolved)

	resolved, ok = r.Resolve("hidden")
	assert.False(t, ok, "aliases after a Match block are not parsed")
	assert.Equal(t, "hidden", resolved)
}

func TestResolve_EmptyName(t *testing.T) {
	r := NewResolverFile(writeConfig(t, "Host mini\n    HostName 1.2.3.4\n"))

	resolved, ok := r.Resolve("")

	assert.False(t, ok)
	assert.Equal(t, "", resolved)
}
