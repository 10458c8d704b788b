//go:build unit
// +build unit

package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

type testCLI struct {
	dir        string
	configPath string
}

// newTestCLI writes a configuration that keeps key files and history inside t.TempDir()
func newTestCLI(t *testing.T, historyEnabled bool) *testCLI {
	t.Helper()

	dir := t.TempDir()
	configYAML := fmt.Sprintf(`logger:
  log_level: error
  log_type: console
database:
  enabled: %t
  type: sqlite
  dsn: %s
keys:
  aes:
    path: %s
  rsa:
    private_key_path: %s
    public_key_path: %s
`,
		historyEnabled,
		filepath.Join(dir, "history.db"),
		filepath.Join(dir, "aes_key.bin"),
		filepath.Join(dir, "private_key.pem"),
		filepath.Join(dir, "public_key.pem"),
	)

	configPath := filepath.Join(dir, "crypto-lab.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configYAML), 0600))

	return &testCLI{dir: dir, configPath: configPath}
}

func (c *testCLI) path(name string) string {
	return filepath.Join(c.dir, name)
}

func (c *testCLI) writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := c.path(name)
	require.NoError(t, os.WriteFile(path, content, 0600))
	return path
}

// execute runs a fresh command tree with input as stdin and returns everything written to stdout
func (c *testCLI) execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	rootCmd := &cobra.Command{
		Use:           "crypto-lab-cli",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringP(ConfigFlag, "", "", "Path to the YAML or TOML configuration file")

	require.NoError(t, InitAESCommands(rootCmd))
	require.NoError(t, InitRSACommands(rootCmd))
	require.NoError(t, InitSHA256Commands(rootCmd))
	require.NoError(t, InitSubstitutionCommands(rootCmd))
	require.NoError(t, InitHistoryCommands(rootCmd))
	require.NoError(t, InitConfigCommands(rootCmd))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(append(args, "--"+ConfigFlag, c.configPath))

	err := rootCmd.Execute()
	return out.String(), err
}
