// Copyright (C) 2023 Gobalsky Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package config_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/tickbook/tickbook/config"
	"github.com/tickbook/tickbook/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	t.Run("Values from file override the defaults", testReadOverrides)
	t.Run("Unspecified fields keep their defaults", testReadDefaults)
	t.Run("Missing file is an error", testReadMissingFile)
}

func testReadOverrides(t *testing.T) {
	root := t.TempDir()
	content := `
[Hook]
  Level = "Debug"
  HoldingAccount = "custom-holding"

[Metrics]
  Enabled = "true"
  Port = 9100
  Timeout = "3s"
`
	require.NoError(t, os.WriteFile(filepath.Join(root, "config.toml"), []byte(content), 0o644))

	cfg, err := config.Read(root)
	require.NoError(t, err)
	assert.Equal(t, logging.DebugLevel, cfg.Hook.Level.Get())
	assert.Equal(t, "custom-holding", cfg.Hook.HoldingAccount)
	assert.True(t, bool(cfg.Metrics.Enabled))
	assert.Equal(t, 9100, cfg.Metrics.Port)
	assert.Equal(t, 3*time.Second, cfg.Metrics.Timeout.Get())
}

func testReadDefaults(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "config.toml"), []byte(""), 0o644))

	cfg, err := config.Read(root)
	require.NoError(t, err)

	defaults := config.NewDefaultConfig()
	assert.Equal(t, defaults.Hook.HoldingAccount, cfg.Hook.HoldingAccount)
	assert.Equal(t, defaults.Metrics.Port, cfg.Metrics.Port)
	assert.Equal(t, defaults.Hook.Ledger.Level.Get(), cfg.Hook.Ledger.Level.Get())
}

func testReadMissingFile(t *testing.T) {
	_, err := config.Read(t.TempDir())
	assert.Error(t, err)
}

func TestWatcher(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := config.NewWatcher(ctx, logging.NewTestLogger(), root)
	require.NoError(t, err)
	assert.Equal(t, config.NewDefaultConfig().Hook.HoldingAccount, w.Get().Hook.HoldingAccount)

	var (
		mu  sync.Mutex
		got []config.Config
	)
	w.OnConfigUpdate(func(cfg config.Config) {
		mu.Lock()
		got = append(got, cfg)
		mu.Unlock()
	})

	update := "[Hook]\n  Level = \"Debug\"\n  HoldingAccount = \"rotated-holding\"\n"
	require.NoError(t, os.WriteFile(path, []byte(update), 0o644))

	require.Eventually(t, func() bool {
		return w.Get().Hook.HoldingAccount == "rotated-holding"
	}, 2*time.Second, 10*time.Millisecond)

	// listeners only hear about the change when the host ticks between
	// operations, the reload alone must not have fanned anything out
	mu.Lock()
	require.Empty(t, got)
	mu.Unlock()

	// tick until the pending change is picked up
	require.Eventually(t, func() bool {
		w.OnTimeUpdate(ctx, time.Now())
		mu.Lock()
		defer mu.Unlock()
		return len(got) > 0
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	require.Len(t, got, 1)
	assert.Equal(t, "rotated-holding", got[0].Hook.HoldingAccount)
	assert.Equal(t, logging.DebugLevel, got[0].Hook.Level.Get())
	mu.Unlock()

	// nothing pending, a second tick must not replay the update
	w.OnTimeUpdate(ctx, time.Now())
	mu.Lock()
	assert.Len(t, got, 1)
	mu.Unlock()
}
