package sim

import (
	"context"
	"errors"
	"testing"

	"github.com/kaelum/glimmer/internal/particle"
)

type recordingPresenter struct {
	frames     int
	closed     int
	summary    Summary
	cancel     context.CancelFunc
	stopAt     int
	presentErr error
	closeErr   error
}

func (p *recordingPresenter) Present(f *particle.Frame) error {
	p.frames++
	if p.frames == p.stopAt {
		if p.presentErr != nil {
			return p.presentErr
		}
		if p.cancel != nil {
			p.cancel()
		}
	}
	return nil
}

func (p *recordingPresenter) Close(s Summary) error {
	p.closed++
	p.summary = s
	return p.closeErr
}

func TestRunnerInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero width", Config{Width: 0, Height: 24, FPS: 25}},
		{"negative height", Config{Width: 80, Height: -1, FPS: 25}},
		{"zero fps", Config{Width: 80, Height: 24, FPS: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &recordingPresenter{}
			if _, err := New(p).Run(context.Background(), tt.cfg); err == nil {
				t.Error("expected config error, got nil")
			}
			if p.frames != 0 || p.closed != 0 {
				t.Errorf("presenter touched on invalid config: %d frames, %d closes", p.frames, p.closed)
			}
		})
	}
}

func TestRunnerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := &recordingPresenter{cancel: cancel, stopAt: 3}

	s, err := New(p).Run(ctx, Config{Width: 80, Height: 24, FPS: 1000, Seed: 42})
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if s.Ticks != 3 {
		t.Errorf("expected 3 ticks, got %d", s.Ticks)
	}
	if p.frames != 3 {
		t.Errorf("expected 3 frames presented, got %d", p.frames)
	}
	if p.closed != 1 {
		t.Errorf("expected one close, got %d", p.closed)
	}
	if p.summary != s {
		t.Errorf("close summary %+v does not match returned %+v", p.summary, s)
	}
	if s.Particles < 36 {
		t.Errorf("expected at least 36 live particles after 3 ticks, got %d", s.Particles)
	}
}

func TestRunnerPresentErrorAborts(t *testing.T) {
	errPresent := errors.New("present failed")
	p := &recordingPresenter{presentErr: errPresent, stopAt: 2}

	s, err := New(p).Run(context.Background(), Config{Width: 80, Height: 24, FPS: 1000, Seed: 42})
	if !errors.Is(err, errPresent) {
		t.Fatalf("expected present error, got %v", err)
	}
	if p.frames != 2 {
		t.Errorf("expected 2 present calls, got %d", p.frames)
	}
	if p.closed != 1 {
		t.Errorf("expected teardown despite error, got %d closes", p.closed)
	}
	if s.Ticks != 2 {
		t.Errorf("expected 2 ticks in summary, got %d", s.Ticks)
	}
}

func TestRunnerCloseErrorPropagates(t *testing.T) {
	errClose := errors.New("close failed")
	ctx, cancel := context.WithCancel(context.Background())
	p := &recordingPresenter{cancel: cancel, stopAt: 1, closeErr: errClose}

	if _, err := New(p).Run(ctx, Config{Width: 80, Height: 24, FPS: 1000, Seed: 42}); !errors.Is(err, errClose) {
		t.Fatalf("expected close error, got %v", err)
	}
	if p.closed != 1 {
		t.Errorf("expected one close, got %d", p.closed)
	}
}

func TestRunnerImmediateCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &recordingPresenter{}
	s, err := New(p).Run(ctx, Config{Width: 80, Height: 24, FPS: 25, Seed: 1})
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if p.frames != 0 {
		t.Errorf("expected no frames before first tick, got %d", p.frames)
	}
	if p.closed != 1 {
		t.Errorf("expected one close, got %d", p.closed)
	}
	if s != (Summary{}) {
		t.Errorf("expected empty summary, got %+v", s)
	}
}
