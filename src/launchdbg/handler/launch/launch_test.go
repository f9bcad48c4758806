package launch

import (
	"context"
	"io/fs"
	"testing"
	"time"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	launcher "github.com/uber/ros-launchdbg/src/launchdbg/controller/launcher"
	"github.com/uber/ros-launchdbg/src/launchdbg/controller/launcher/launchermock"
	"github.com/uber/ros-launchdbg/src/launchdbg/entity"
	launcherrors "github.com/uber/ros-launchdbg/src/launchdbg/internal/errors"
	"github.com/uber/ros-launchdbg/src/launchdbg/repository/process"
	"github.com/uber/ros-launchdbg/src/launchdbg/repository/process/processmock"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var _invocation = entity.Invocation{Target: "/ws/launch/talker.launch.py"}

func TestRegisterSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	controller := launchermock.NewMockController(ctrl)
	registry := processmock.NewMockRegistry(ctrl)

	resolved := make(chan struct{})
	controller.EXPECT().Resolve(gomock.Any(), _invocation).DoAndReturn(func(context.Context, entity.Invocation) (*entity.Report, error) {
		close(resolved)
		return &entity.Report{ID: uuid.Must(uuid.NewV4())}, nil
	})
	registry.EXPECT().StopAll()

	app := fxtest.New(t,
		fx.Supply(zap.NewNop().Sugar(), _invocation),
		fx.Provide(
			func() launcher.Controller { return controller },
			func() process.Registry { return registry },
		),
		Module,
	)
	app.RequireStart()
	select {
	case <-resolved:
	case <-time.After(5 * time.Second):
		t.Fatal("resolution did not run")
	}
	app.RequireStop()
}

func TestRegisterFatalFailureShutsDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	controller := launchermock.NewMockController(ctrl)
	registry := processmock.NewMockRegistry(ctrl)

	controller.EXPECT().Resolve(gomock.Any(), _invocation).
		Return(nil, &launcherrors.TargetUnreadableError{Target: _invocation.Target, Err: fs.ErrNotExist})
	registry.EXPECT().StopAll()

	app := fxtest.New(t,
		fx.Supply(zap.NewNop().Sugar(), _invocation),
		fx.Provide(
			func() launcher.Controller { return controller },
			func() process.Registry { return registry },
		),
		Module,
	)
	app.RequireStart()

	select {
	case sig := <-app.Wait():
		assert.Equal(t, 1, sig.ExitCode)
	case <-time.After(5 * time.Second):
		t.Fatal("application was not shut down")
	}
	app.RequireStop()
}

func TestRegisterStopCancelsResolution(t *testing.T) {
	ctrl := gomock.NewController(t)
	controller := launchermock.NewMockController(ctrl)
	registry := processmock.NewMockRegistry(ctrl)

	started := make(chan struct{})
	controller.EXPECT().Resolve(gomock.Any(), _invocation).DoAndReturn(func(ctx context.Context, _ entity.Invocation) (*entity.Report, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	})
	registry.EXPECT().StopAll()

	app := fxtest.New(t,
		fx.Supply(zap.NewNop().Sugar(), _invocation),
		fx.Provide(
			func() launcher.Controller { return controller },
			func() process.Registry { return registry },
		),
		Module,
	)
	app.RequireStart()
	<-started
	require.NoError(t, app.Stop(context.Background()))
	select {
	case sig := <-app.Wait():
		t.Fatalf("unexpected shutdown signal %v", sig)
	default:
	}
}

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
