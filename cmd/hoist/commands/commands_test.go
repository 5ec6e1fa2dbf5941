package commands_test

import (
	"context"
	"errors"
	"testing"

	"go.trai.ch/hoist/cmd/hoist/commands"
	"go.trai.ch/hoist/internal/app"
	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/hoist/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newCLI(ctrl *gomock.Controller) (*commands.CLI, *mocks.MockSnapshotLoader, *mocks.MockEnvironmentProber, *mocks.MockReporter, *mocks.MockProgressRecorder) {
	loader := mocks.NewMockSnapshotLoader(ctrl)
	prober := mocks.NewMockEnvironmentProber(ctrl)
	reporter := mocks.NewMockReporter(ctrl)
	progress := mocks.NewMockProgressRecorder(ctrl)

	a := app.New(loader, prober, reporter, progress)
	return commands.New(a), loader, prober, reporter, progress
}

func TestCheck_DefaultSnapshotPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, loader, prober, _, _ := newCLI(ctrl)

	resolver := mocks.NewMockManifestResolver(ctrl)
	resolver.EXPECT().Manifests().Return(nil)

	loader.EXPECT().Load("hoist.yaml").Return(resolver, nil)
	prober.EXPECT().Probe(gomock.Any()).Return(domain.Environment{Platform: "linux", Arch: "x64"}, nil)

	cli.SetArgs([]string{"check"})
	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("expected no error, got: %v", err)
	}
}

func TestCheck_SnapshotFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, loader, _, _, _ := newCLI(ctrl)

	loadErr := errors.New("no such file")
	loader.EXPECT().Load("custom.yaml").Return(nil, loadErr)

	cli.SetArgs([]string{"check", "-c", "custom.yaml"})
	if err := cli.Execute(context.Background()); !errors.Is(err, loadErr) {
		t.Errorf("expected load error, got: %v", err)
	}
}

func TestVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, _, _, _, _ := newCLI(ctrl)

	cli.SetArgs([]string{"version"})
	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("expected no error, got: %v", err)
	}
}

func TestRoot_Help(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cli, _, _, _, _ := newCLI(ctrl)

	cli.SetArgs([]string{"--help"})
	if err := cli.Execute(context.Background()); err != nil {
		t.Errorf("expected no error for help, got: %v", err)
	}
}
