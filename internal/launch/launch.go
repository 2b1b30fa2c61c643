package launch

import (
	"context"
	"log/slog"
	"os"

	"mini-tri/internal/app"
	"mini-tri/internal/config"
	"mini-tri/internal/graphics"
	"mini-tri/internal/platform"
	"mini-tri/internal/profiling"

	"github.com/xlab/closer"
)

// Main runs p until its window closes or the process is signalled.
// A failure exits with a non-zero status; it never returns in that case.
func Main(p app.Profile) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	closer.Bind(func() {
		cancel()
		<-done
	})

	err := Run(ctx, logger, config.Default(), p)
	close(done)
	if err != nil {
		closer.Fatalln(err)
	}
	closer.Close()
}

// Run opens the window, builds the render context and drives the event loop
func Run(ctx context.Context, logger *slog.Logger, s config.Settings, p app.Profile) error {
	s = p.Apply(s)
	logger = logger.With("profile", p.Name)

	win, err := platform.Open(s)
	if err != nil {
		return err
	}
	// ctx is checked between polls, so no goroutine touches glfw
	defer win.Close()

	dev, err := graphics.NewDevice(win, s)
	if err != nil {
		return err
	}
	defer dev.Release()

	info := dev.Info()
	logger.Info("context ready",
		"renderer", info.Renderer,
		"gl", info.Version,
		"glsl", info.GLSL,
	)

	prof := profiling.NewFrame()
	h, rc, err := app.Build(dev, p, prof)
	if err != nil {
		return err
	}
	defer rc.Release()

	return app.Run(ctx, win, h, app.Options{
		Logger:        logger,
		Pacer:         app.NewPacer(s.FPSLimit),
		Profile:       prof,
		SlowFrame:     s.SlowFrame,
		StatsInterval: s.StatsInterval,
	})
}
