package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/kaelum/glimmer/internal/particle"
)

// Config holds the parameters of one animation session.
type Config struct {
	Width  int
	Height int
	FPS    int
	Seed   int64
}

// Summary describes a finished session.
type Summary struct {
	Ticks     int
	Particles int
}

// Presenter receives every rendered frame and the final summary. Present
// is called once per tick; Close exactly once, after the last frame.
type Presenter interface {
	Present(f *particle.Frame) error
	Close(s Summary) error
}

// Runner paces a particle system against a wall-clock frame budget and
// feeds frames to a presenter until the context is canceled.
type Runner struct {
	presenter Presenter
}

func New(presenter Presenter) *Runner {
	return &Runner{presenter: presenter}
}

// Run drives the session until ctx is canceled, then closes the presenter
// and reports the summary. Cancellation is the normal way to stop and is
// not surfaced as an error; presenter failures are, and abort the session.
func (r *Runner) Run(ctx context.Context, cfg Config) (Summary, error) {
	if err := validateConfig(cfg); err != nil {
		return Summary{}, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sys := particle.NewSystem(cfg.Width, cfg.Height, particle.NewSource(seed))

	budget := time.Second / time.Duration(cfg.FPS)

	for {
		select {
		case <-ctx.Done():
			return r.finish(sys)
		default:
		}

		start := time.Now()

		sys.Step()
		if err := r.presenter.Present(sys.Render()); err != nil {
			s := summarize(sys)
			// Teardown still runs; the present error is the one reported.
			_ = r.presenter.Close(s)
			return s, err
		}

		// No drift compensation: every tick gets the same budget measured
		// from its own start, and an overlong tick is never made up for.
		if remaining := budget - time.Since(start); remaining > 0 {
			select {
			case <-ctx.Done():
				return r.finish(sys)
			case <-time.After(remaining):
			}
		}
	}
}

func (r *Runner) finish(sys *particle.System) (Summary, error) {
	s := summarize(sys)
	if err := r.presenter.Close(s); err != nil {
		return s, err
	}
	return s, nil
}

func summarize(sys *particle.System) Summary {
	return Summary{Ticks: sys.Ticks(), Particles: sys.Count()}
}

func validateConfig(cfg Config) error {
	if cfg.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", cfg.Width)
	}
	if cfg.Height <= 0 {
		return fmt.Errorf("height must be positive, got %d", cfg.Height)
	}
	if cfg.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", cfg.FPS)
	}
	return nil
}
