package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/srb321/drivewise-reports/internal/config"
	"github.com/srb321/drivewise-reports/internal/testsupport"
)

const cleanDocument = `Motive ELD Daily Log
Driver: John Smith
Date: 3/5/2024
Texas Division

08:00 AM | Driving | 2:30 | 45230 | Dallas, TX
10:30 AM | Off Duty | 0:15 | 45380 | Dallas, TX
`

// overHoursDocument logs 690 driving minutes against the 660 minute USA
// limit, so analysis yields exactly one critical violation.
const overHoursDocument = `Motive ELD Daily Log
Driver: John Smith
Date: 3/5/2024

08:00 | Driving | 6:00 | 45230 | Dallas, TX
14:00 | Driving | 5:30 | 45600 | Little Rock, AR
`

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	docDir     string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()
	cfg := testsupport.NewConfig(t, opts...)
	return &cliTestEnv{
		cfg:        cfg,
		configPath: testsupport.WriteConfig(t, cfg),
		docDir:     t.TempDir(),
	}
}

func (env *cliTestEnv) writeDocument(t *testing.T, name, text string) string {
	t.Helper()
	return testsupport.WriteDocument(t, env.docDir, name, text)
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
