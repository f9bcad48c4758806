package logfilewriter

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/uber/ros-launchdbg/src/launchdbg/internal/fs"
	"github.com/uber/ros-launchdbg/src/launchdbg/internal/sessioninfofile"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const _fmtOutputKey = "output:%s"

// Params define the dependencies for SetupOutputWriter.
type Params struct {
	FS          fs.LaunchFS
	Lifecycle   fx.Lifecycle
	SessionInfo sessioninfofile.SessionInfoFile
}

// SetupOutputWriter creates a writer for human readable process output, backed by a temporary file.
// Nodes started without a debugger write their stdout and stderr here instead of the daemon's own log.
// The file path is stored in the session info file so the IDE can tail it.
func SetupOutputWriter(p Params, name string) (io.Writer, error) {
	logsDirPath := filepath.Join(os.TempDir(), name)
	if err := p.FS.MkdirAll(logsDirPath); err != nil {
		return nil, err
	}

	logFile, err := p.FS.TempFile(logsDirPath, "")
	if err != nil {
		return nil, err
	}

	if err := p.SessionInfo.UpdateField(fmt.Sprintf(_fmtOutputKey, name), logFile.Name()); err != nil {
		logFile.Close()
		return nil, err
	}

	// Write via a logger for formatting, timestamp, and buffering.
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(logFile),
		zap.InfoLevel,
	)
	outputLogger := zap.New(core).Sugar()

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			outputLogger.Sync()
			logFile.Close()
			return p.FS.Remove(logFile.Name())
		},
	})

	return &loggerWriter{logger: outputLogger}, nil
}

type loggerWriter struct {
	logger *zap.SugaredLogger
}

// Write implements the io.Writer interface by sending data to the given logger.
func (o *loggerWriter) Write(p []byte) (n int, err error) {
	// Process output arrives in arbitrary chunks, log each non-empty line on its own.
	lines := strings.Split(string(p), "\n")
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if len(line) > 0 {
			o.logger.Info(line)
		}
	}

	return len(p), nil
}
