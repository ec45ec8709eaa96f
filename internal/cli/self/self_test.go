package self

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{"v1.2.3", "1.2.3"} {
		v, err := parseVersion(raw)
		require.NoError(t, err, "version %q", raw)
		assert.Equal(t, "1.2.3", v.String())
	}

	_, err := parseVersion("not-a-version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-a-version")
}

func TestParseSource(t *testing.T) {
	t.Parallel()
	slug, err := parseSource(DefaultRepository)
	require.NoError(t, err)
	assert.Equal(t, "nightconcept/babelkit", slug)

	for _, bad := range []string{"", "owner", "owner/", "/repo", "a/b/c"} {
		_, err := parseSource(bad)
		assert.Error(t, err, "source %q should be rejected", bad)
	}
}

func TestNewSelfCommand(t *testing.T) {
	t.Parallel()
	cmd := NewSelfCommand()
	assert.Equal(t, "self", cmd.Name)
	require.Len(t, cmd.Subcommands, 1)
	assert.Equal(t, "update", cmd.Subcommands[0].Name)
}
