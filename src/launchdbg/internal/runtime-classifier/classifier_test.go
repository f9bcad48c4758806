package runtimeclassifier

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/ros-launchdbg/src/launchdbg/entity"
	launcherrors "github.com/uber/ros-launchdbg/src/launchdbg/internal/errors"
	launchfs "github.com/uber/ros-launchdbg/src/launchdbg/internal/fs"
	"github.com/uber/ros-launchdbg/src/launchdbg/internal/fs/fsmock"
	"go.uber.org/mock/gomock"
)

func newClassifier(fs launchfs.LaunchFS, goos string) Classifier {
	return New(Params{FS: fs, Platform: entity.NewPlatformProfile(goos)})
}

func TestClassifyLinux(t *testing.T) {
	tests := []struct {
		name        string
		executable  string
		setup       func(m *fsmock.MockLaunchFS)
		wantRuntime entity.Runtime
		wantErr     bool
	}{
		{
			name:       "python extension",
			executable: "/ws/install/lib/pkg/talker.py",
			setup: func(m *fsmock.MockLaunchFS) {
				m.EXPECT().Readable("/ws/install/lib/pkg/talker.py").Return(nil)
			},
			wantRuntime: entity.RuntimePython,
		},
		{
			name:       "python shebang",
			executable: "/ws/install/lib/pkg/talker",
			setup: func(m *fsmock.MockLaunchFS) {
				m.EXPECT().Readable("/ws/install/lib/pkg/talker").Return(nil)
				m.EXPECT().Executable("/ws/install/lib/pkg/talker").Return(nil)
				m.EXPECT().FirstLine("/ws/install/lib/pkg/talker").Return("#!/usr/bin/env python3", nil)
			},
			wantRuntime: entity.RuntimePython,
		},
		{
			name:       "upper case python shebang",
			executable: "/ws/install/lib/pkg/talker",
			setup: func(m *fsmock.MockLaunchFS) {
				m.EXPECT().Readable(gomock.Any()).Return(nil)
				m.EXPECT().Executable(gomock.Any()).Return(nil)
				m.EXPECT().FirstLine(gomock.Any()).Return("#!/opt/Python3.10/bin/PYTHON", nil)
			},
			wantRuntime: entity.RuntimePython,
		},
		{
			name:       "shell shebang",
			executable: "/ws/install/lib/pkg/talker",
			setup: func(m *fsmock.MockLaunchFS) {
				m.EXPECT().Readable(gomock.Any()).Return(nil)
				m.EXPECT().Executable(gomock.Any()).Return(nil)
				m.EXPECT().FirstLine(gomock.Any()).Return("#!/bin/sh", nil)
			},
			wantRuntime: entity.RuntimeNative,
		},
		{
			name:       "python mentioned without shebang",
			executable: "/ws/install/lib/pkg/talker",
			setup: func(m *fsmock.MockLaunchFS) {
				m.EXPECT().Readable(gomock.Any()).Return(nil)
				m.EXPECT().Executable(gomock.Any()).Return(nil)
				m.EXPECT().FirstLine(gomock.Any()).Return("\x7fELF python", nil)
			},
			wantRuntime: entity.RuntimeNative,
		},
		{
			name:       "unreadable",
			executable: "/ws/install/lib/pkg/talker",
			setup: func(m *fsmock.MockLaunchFS) {
				m.EXPECT().Readable(gomock.Any()).Return(fs.ErrNotExist)
			},
			wantErr: true,
		},
		{
			name:       "not executable",
			executable: "/ws/install/lib/pkg/talker",
			setup: func(m *fsmock.MockLaunchFS) {
				m.EXPECT().Readable(gomock.Any()).Return(nil)
				m.EXPECT().Executable(gomock.Any()).Return(fs.ErrPermission)
			},
			wantErr: true,
		},
		{
			name:       "first line read failure",
			executable: "/ws/install/lib/pkg/talker",
			setup: func(m *fsmock.MockLaunchFS) {
				m.EXPECT().Readable(gomock.Any()).Return(nil)
				m.EXPECT().Executable(gomock.Any()).Return(nil)
				m.EXPECT().FirstLine(gomock.Any()).Return("", errors.New("i/o error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockFS := fsmock.NewMockLaunchFS(ctrl)
			tt.setup(mockFS)

			request := &entity.LaunchRequest{Executable: tt.executable}
			got, err := newClassifier(mockFS, "linux").Classify(request)
			if tt.wantErr {
				require.Error(t, err)
				exe, ok := launcherrors.UnreadableExecutable(err)
				assert.True(t, ok)
				assert.Equal(t, tt.executable, exe)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRuntime, got)
			assert.Equal(t, tt.executable, request.Executable)
		})
	}
}

func TestClassifyWindows(t *testing.T) {
	tests := []struct {
		name           string
		executable     string
		setup          func(m *fsmock.MockLaunchFS)
		wantRuntime    entity.Runtime
		wantExecutable string
	}{
		{
			name:       "python script",
			executable: `C:\ws\install\lib\pkg\talker.py`,
			setup: func(m *fsmock.MockLaunchFS) {
				m.EXPECT().Readable(`C:\ws\install\lib\pkg\talker.py`).Return(nil)
			},
			wantRuntime:    entity.RuntimePython,
			wantExecutable: `C:\ws\install\lib\pkg\talker.py`,
		},
		{
			name:       "native with python source",
			executable: `C:\ws\build\pkg\talker.exe`,
			setup: func(m *fsmock.MockLaunchFS) {
				m.EXPECT().Readable(`C:\ws\build\pkg\talker.exe`).Return(nil)
				m.EXPECT().Readable(`C:\ws\src\pkg\talker.py`).Return(nil)
			},
			wantRuntime:    entity.RuntimePython,
			wantExecutable: `C:\ws\src\pkg\talker.py`,
		},
		{
			name:       "native upper case extension with python source",
			executable: `C:\WS\BUILD\pkg\talker.EXE`,
			setup: func(m *fsmock.MockLaunchFS) {
				m.EXPECT().Readable(`C:\WS\BUILD\pkg\talker.EXE`).Return(nil)
				m.EXPECT().Readable(`C:\WS\src\pkg\talker.py`).Return(nil)
			},
			wantRuntime:    entity.RuntimePython,
			wantExecutable: `C:\WS\src\pkg\talker.py`,
		},
		{
			name:       "native without python source",
			executable: `C:\ws\build\pkg\talker.exe`,
			setup: func(m *fsmock.MockLaunchFS) {
				m.EXPECT().Readable(`C:\ws\build\pkg\talker.exe`).Return(nil)
				m.EXPECT().Readable(`C:\ws\src\pkg\talker.py`).Return(fs.ErrNotExist)
			},
			wantRuntime:    entity.RuntimeNative,
			wantExecutable: `C:\ws\build\pkg\talker.exe`,
		},
		{
			name:       "native outside build layout",
			executable: `C:\opt\ros\bin\talker.exe`,
			setup: func(m *fsmock.MockLaunchFS) {
				m.EXPECT().Readable(`C:\opt\ros\bin\talker.exe`).Return(nil)
			},
			wantRuntime:    entity.RuntimeNative,
			wantExecutable: `C:\opt\ros\bin\talker.exe`,
		},
		{
			name:       "unknown extension",
			executable: `C:\opt\ros\bin\talker`,
			setup: func(m *fsmock.MockLaunchFS) {
				m.EXPECT().Readable(`C:\opt\ros\bin\talker`).Return(nil)
			},
			wantRuntime:    entity.RuntimeNative,
			wantExecutable: `C:\opt\ros\bin\talker`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockFS := fsmock.NewMockLaunchFS(ctrl)
			tt.setup(mockFS)

			request := &entity.LaunchRequest{Executable: tt.executable}
			got, err := newClassifier(mockFS, "windows").Classify(request)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRuntime, got)
			assert.Equal(t, tt.wantExecutable, request.Executable)
		})
	}
}

func TestClassifyRealFiles(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shebang detection is not used on windows")
	}
	dir := t.TempDir()
	python := filepath.Join(dir, "talker")
	require.NoError(t, os.WriteFile(python, []byte("#!/usr/bin/env python3\nimport rclpy\n"), 0755))
	shell := filepath.Join(dir, "listener")
	require.NoError(t, os.WriteFile(shell, []byte("#!/bin/sh\nexec true\n"), 0755))

	c := newClassifier(launchfs.New(), "linux")

	got, err := c.Classify(&entity.LaunchRequest{Executable: python})
	require.NoError(t, err)
	assert.Equal(t, entity.RuntimePython, got)

	got, err = c.Classify(&entity.LaunchRequest{Executable: shell})
	require.NoError(t, err)
	assert.Equal(t, entity.RuntimeNative, got)

	_, err = c.Classify(&entity.LaunchRequest{Executable: filepath.Join(dir, "missing")})
	assert.Error(t, err)
}

func TestIsPythonShebang(t *testing.T) {
	assert.True(t, IsPythonShebang("#!/usr/bin/env python3"))
	assert.True(t, IsPythonShebang("#!/usr/bin/python"))
	assert.False(t, IsPythonShebang("#!/bin/sh"))
	assert.False(t, IsPythonShebang("# python comment"))
	assert.False(t, IsPythonShebang(""))
}

func TestReplaceFold(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want string
	}{
		{name: "exact", s: `C:\ws\build\pkg\talker.exe`, want: `C:\ws\src\pkg\talker.exe`},
		{name: "upper case", s: `C:\ws\BUILD\pkg\talker.exe`, want: `C:\ws\src\pkg\talker.exe`},
		{name: "first occurrence only", s: `C:\build\build\talker.exe`, want: `C:\src\build\talker.exe`},
		{name: "rune shrinks when lowered", s: `C:\İstanbul\build\talker.exe`, want: `C:\İstanbul\src\talker.exe`},
		{name: "rune grows when lowered", s: `C:\Ⱥ\build\talker.exe`, want: `C:\Ⱥ\src\talker.exe`},
		{name: "absent", s: `C:\ws\out\talker.exe`, want: `C:\ws\out\talker.exe`},
		{name: "shorter than pattern", s: `\b`, want: `\b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, replaceFold(tt.s, `\build\`, `\src\`))
		})
	}
}
