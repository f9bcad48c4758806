package debughost

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/ros-launchdbg/src/launchdbg/entity"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestStartDebugging(t *testing.T) {
	var out bytes.Buffer
	g := New(Params{Logger: zap.NewNop().Sugar(), Output: &out})

	err := g.StartDebugging(context.Background(), &entity.GdbConfig{
		Name:            "ROS: talker",
		Type:            entity.DebuggerGdb,
		Request:         entity.RequestLaunch,
		Program:         "/ws/install/lib/demo/talker",
		Args:            []string{},
		Environment:     []entity.EnvironmentEntry{{Name: "ROS_DOMAIN_ID", Value: "7"}},
		Cwd:             ".",
		ExternalConsole: true,
	})
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "startDebugging", got["event"])
	cfg := got["configuration"].(map[string]interface{})
	assert.Equal(t, "cppdbg", cfg["type"])
	assert.Equal(t, "launch", cfg["request"])
	assert.Equal(t, ".", cfg["cwd"])
	assert.Equal(t, true, cfg["externalConsole"])
	assert.Equal(t, []interface{}{map[string]interface{}{"name": "ROS_DOMAIN_ID", "value": "7"}}, cfg["environment"])
	assert.NotContains(t, cfg, "additionalSOLibSearchPath")
}

func TestStartDebuggingConcurrentLines(t *testing.T) {
	var out bytes.Buffer
	g := New(Params{Logger: zap.NewNop().Sugar(), Output: &out})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, g.StartDebugging(context.Background(), &entity.PythonConfig{
				Name: fmt.Sprintf("ROS: node%d", i),
				Type: entity.DebuggerPython,
			}))
		}(i)
	}
	wg.Wait()

	scanner := bufio.NewScanner(&out)
	lines := 0
	for scanner.Scan() {
		var msg map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &msg))
		lines++
	}
	assert.Equal(t, 20, lines)
}

func TestStartDebuggingErrors(t *testing.T) {
	t.Run("write failure", func(t *testing.T) {
		g := New(Params{Logger: zap.NewNop().Sugar(), Output: failingWriter{}})
		err := g.StartDebugging(context.Background(), &entity.VsdbgConfig{Name: "ROS: talker"})
		assert.ErrorContains(t, err, "broken pipe")
	})

	t.Run("cancelled context still writes", func(t *testing.T) {
		var out bytes.Buffer
		g := New(Params{Logger: zap.NewNop().Sugar(), Output: &out})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.NoError(t, g.StartDebugging(ctx, &entity.PythonConfig{Name: "ROS: talker"}))
		assert.Contains(t, out.String(), `"name":"ROS: talker"`)
	})
}

func TestModuleDefaultsToStdout(t *testing.T) {
	var g Gateway
	fxtest.New(t,
		fx.Supply(zap.NewNop().Sugar()),
		Module,
		fx.Populate(&g),
	).RequireStart().RequireStop()
	assert.NotNil(t, g)
}
