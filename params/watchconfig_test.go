package params

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func writeTestConfig(t *testing.T, configFile, identifier string) {
	content := `
Identifier = "` + identifier + `"

[Governance]
GovernorAddress = "` + testGovernorAddr + `"
`
	assert.NoError(t, os.WriteFile(configFile, []byte(content), 0600))
}

func TestWatchConfigFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.toml")
	writeTestConfig(t, configFile, "testnet")
	assert.NoError(t, reloadConfig(configFile))

	stopCh := make(chan struct{})
	defer close(stopCh)
	assert.NoError(t, WatchConfigFile(configFile, stopCh))

	// a valid rewrite swaps in a fresh validated snapshot
	writeTestConfig(t, configFile, "mainnet")
	assert.Eventually(t, func() bool {
		return GetConfig().Identifier == "mainnet"
	}, 3*time.Second, 50*time.Millisecond)

	// a rewrite failing its checks keeps the previous snapshot
	assert.NoError(t, os.WriteFile(configFile, []byte(`Identifier = ""`), 0600))
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, "mainnet", GetConfig().Identifier)
}

func TestWatchConfigFileMissing(t *testing.T) {
	stopCh := make(chan struct{})
	defer close(stopCh)
	assert.Error(t, WatchConfigFile(filepath.Join(t.TempDir(), "missing.toml"), stopCh))
}
