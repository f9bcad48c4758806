package launch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/ros-launchdbg/src/launchdbg/entity"
)

func execute(t *testing.T, args ...string) (entity.Invocation, error) {
	var got entity.Invocation
	cmd := NewCommand(func(inv entity.Invocation) error {
		got = inv
		return nil
	})
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.Execute()
	return got, err
}

func writePolicy(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCommandArguments(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantInv  entity.Invocation
		wantFail bool
	}{
		{
			name:    "launch file",
			args:    []string{"/ws/launch/talker.launch.py"},
			wantInv: entity.Invocation{Target: "/ws/launch/talker.launch.py", Args: []string{}},
		},
		{
			name:    "package and file with launch arguments",
			args:    []string{"demo_nodes_cpp", "talker.launch.py", "rate:=5", "use_sim_time:=true"},
			wantInv: entity.Invocation{Target: "demo_nodes_cpp", TargetFile: "talker.launch.py", Args: []string{"rate:=5", "use_sim_time:=true"}},
		},
		{
			name:    "launch file with launch arguments",
			args:    []string{"/ws/launch/talker.launch.py", "rate:=5"},
			wantInv: entity.Invocation{Target: "/ws/launch/talker.launch.py", Args: []string{"rate:=5"}},
		},
		{
			name:    "arguments after dash",
			args:    []string{"demo", "talker.launch.py", "--", "--verbose", "rate:=5"},
			wantInv: entity.Invocation{Target: "demo", TargetFile: "talker.launch.py", Args: []string{"--verbose", "rate:=5"}},
		},
		{
			name:     "missing target",
			args:     []string{},
			wantFail: true,
		},
		{
			name:     "only launch arguments",
			args:     []string{"--", "rate:=5"},
			wantFail: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, tt.args...)
			if tt.wantFail {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantInv, got)
		})
	}
}

func TestCommandFlags(t *testing.T) {
	got, err := execute(t, "/ws/a.launch.py",
		"--stop-on-entry",
		"--launch-only", "setup",
		"--launch-only", "prepare",
		"--attach", "talker",
		"--cwd", "/ws",
		"--env", "ROS_DOMAIN_ID=7",
		"--env", "RCUTILS_LOGGING_BUFFERED_STREAM=1",
		"--debugger", "lldb",
	)
	require.NoError(t, err)
	assert.True(t, got.StopOnEntry)
	assert.Equal(t, entity.LaunchPolicyConfig{
		LaunchOnly:     []string{"setup", "prepare"},
		AttachDebugger: []string{"talker"},
		Cwd:            "/ws",
		Debugger:       "lldb",
		Env:            map[string]string{"ROS_DOMAIN_ID": "7", "RCUTILS_LOGGING_BUFFERED_STREAM": "1"},
	}, got.Policy)
	assert.False(t, got.Policy.AttachesAll())
}

func TestCommandPolicyFile(t *testing.T) {
	path := writePolicy(t, `
launch: [setup]
attachDebugger: [talker, listener]
env:
  ROS_DOMAIN_ID: "3"
cwd: /ws
symbolSearchPath: /symbols
sourceFileMap:
  /build: /ws/src
`)

	got, err := execute(t, "/ws/a.launch.py", "--policy", path, "--attach", "talker", "--env", "ROS_DOMAIN_ID=9", "--launch-only", "prepare")
	require.NoError(t, err)
	assert.Equal(t, []string{"setup", "prepare"}, got.Policy.LaunchOnly)
	assert.Equal(t, []string{"talker"}, got.Policy.AttachDebugger)
	assert.Equal(t, map[string]string{"ROS_DOMAIN_ID": "9"}, got.Policy.Env)
	assert.Equal(t, "/ws", got.Policy.Cwd)
	assert.Equal(t, "/symbols", got.Policy.SymbolSearchPath)
	assert.Equal(t, map[string]string{"/build": "/ws/src"}, got.Policy.SourceFileMap)

	_, err = execute(t, "/ws/a.launch.py", "--policy", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading launch policy")
}

func TestLoadPolicy(t *testing.T) {
	t.Run("absent attach list debugs all", func(t *testing.T) {
		policy, err := LoadPolicy(writePolicy(t, "launch: [setup]\n"))
		require.NoError(t, err)
		assert.Nil(t, policy.AttachDebugger)
		assert.True(t, policy.AttachesAll())
	})

	t.Run("empty attach list debugs none", func(t *testing.T) {
		policy, err := LoadPolicy(writePolicy(t, "attachDebugger: []\n"))
		require.NoError(t, err)
		assert.NotNil(t, policy.AttachDebugger)
		assert.False(t, policy.AttachesTo("talker"))
	})

	t.Run("empty file", func(t *testing.T) {
		policy, err := LoadPolicy(writePolicy(t, "# nothing yet\n"))
		require.NoError(t, err)
		assert.True(t, policy.AttachesAll())
		assert.Empty(t, policy.LaunchOnly)
	})

	t.Run("env values are kept verbatim", func(t *testing.T) {
		policy, err := LoadPolicy(writePolicy(t, "env:\n  ROS_DOMAIN_ID: \"7\"\n  LD_PRELOAD: $PRELOAD\n"))
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"ROS_DOMAIN_ID": "7", "LD_PRELOAD": "$PRELOAD"}, policy.Env)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := LoadPolicy(writePolicy(t, "attach: [talker]\n"))
		assert.ErrorContains(t, err, "parsing launch policy")
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := LoadPolicy(writePolicy(t, "attachDebugger: {talker: true}\n"))
		assert.ErrorContains(t, err, "parsing launch policy")
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := LoadPolicy(writePolicy(t, "attachDebugger: {talker\n"))
		assert.ErrorContains(t, err, "parsing launch policy")
	})
}
