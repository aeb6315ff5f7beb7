package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "holdemroom.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadServerConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadServerConfig(filepath.Join(t.TempDir(), "absent.hcl"))
	require.NoError(t, err)
	require.Equal(t, DefaultServerConfig(), cfg)
}

func TestLoadServerConfig(t *testing.T) {
	path := writeConfig(t, `
server {
  address = "0.0.0.0"
  port    = 9000
}

table {
  small_blind    = 25
  big_blind      = 50
  starting_chips = 5000
}
`)
	cfg, err := LoadServerConfig(path)
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0", cfg.Server.Address)
	require.Equal(t, 9000, cfg.Server.Port)
	require.Equal(t, 25, cfg.Table.SmallBlind)
	require.Equal(t, 50, cfg.Table.BigBlind)
	require.Equal(t, 5000, cfg.Table.StartingChips)

	// Values absent from the file keep their defaults.
	require.Equal(t, "info", cfg.Server.LogLevel)
	require.Equal(t, 6, cfg.Table.MaxSeats)
	require.Equal(t, 30, cfg.Table.TurnTimeoutSecs)
}

func TestLoadServerConfigRejectsInvertedBlinds(t *testing.T) {
	path := writeConfig(t, `
server {}

table {
  small_blind = 50
  big_blind   = 25
}
`)
	_, err := LoadServerConfig(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "big blind")
}

func TestLoadServerConfigRejectsBadHCL(t *testing.T) {
	path := writeConfig(t, `server { address = `)
	_, err := LoadServerConfig(path)
	require.Error(t, err)
}
