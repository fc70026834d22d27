// Package app drives the globe animation: it owns the screen, the scene and
// the arc animator, and runs one tick per frame on a fixed-rate ticker.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/neon-globe/arc"
	"github.com/lixenwraith/neon-globe/audio"
	"github.com/lixenwraith/neon-globe/config"
	"github.com/lixenwraith/neon-globe/core"
	"github.com/lixenwraith/neon-globe/logger"
	"github.com/lixenwraith/neon-globe/render"
	"github.com/lixenwraith/neon-globe/scene"
)

// errQuit stops the errgroup on a user quit; Run reports it as a clean exit
var errQuit = errors.New("quit")

// App is single-owner: only the frame loop goroutine touches scene and animator state
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	arcLog *logger.Logger
	screen tcell.Screen
	chime  audio.Chime

	buf    *render.Buffer
	raster *render.Rasterizer
	graph  *scene.Graph
	globe  *scene.Globe
	arcs   *arc.Animator

	seed      int64
	hudColor  scene.RGB
	paused    bool
	hud       bool
	frames    uint64
	fps       float64
	lastFrame time.Time
}

// New builds the scene and spawns the initial arcs; screen must already be initialized
func New(cfg *config.Config, log *logger.Logger, screen tcell.Screen, chime audio.Chime) (*App, error) {
	if chime == nil {
		chime = audio.Nop{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	style, err := cfg.GlobeStyle()
	if err != nil {
		return nil, err
	}
	arcOpts, err := cfg.ArcOptions()
	if err != nil {
		return nil, err
	}
	// Already validated by ArcOptions
	hudColor, _ := scene.ParseHex(cfg.Arcs.Color)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	w, h := screen.Size()
	a := &App{
		cfg:      cfg,
		log:      log,
		arcLog:   log.Named("arc"),
		screen:   screen,
		chime:    chime,
		buf:      render.NewBuffer(w, h),
		raster:   render.NewRasterizer(render.NewCamera(cfg.Camera.Distance, cfg.Camera.FOV)),
		graph:    scene.New(),
		globe:    scene.NewGlobe(style),
		seed:     seed,
		hudColor: hudColor,
		hud:      cfg.HUD,
	}
	a.globe.AddTo(a.graph)

	arcOpts = append(arcOpts, arc.WithRespawnHook(a.onRespawn))
	a.arcs, err = arc.New(a.graph, arc.NewSeededRand(seed), arcOpts...)
	if err != nil {
		return nil, fmt.Errorf("arc animator: %w", err)
	}
	a.arcs.Populate()

	log.Infow("scene ready",
		"seed", seed,
		"arcs", cfg.Arcs.Count,
		"fps", cfg.FPS,
		"width", w,
		"height", h,
	)
	return a, nil
}

// Run blocks until ctx is cancelled or the user quits
func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 64)

	g.Go(func() (err error) {
		defer core.Recover(&err)
		return a.pollInput(ctx, events)
	})
	g.Go(func() (err error) {
		defer core.Recover(&err)
		// Wake the input goroutine so it can observe cancellation
		defer a.screen.PostEvent(tcell.NewEventInterrupt(nil))
		return a.loop(ctx, events)
	})

	err := g.Wait()
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

func (a *App) pollInput(ctx context.Context, events chan<- tcell.Event) error {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return nil
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
	}
}

func (a *App) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(a.cfg.FramePeriod())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !a.HandleEvent(ev) {
				return errQuit
			}
		case now := <-ticker.C:
			a.Frame(now)
		}
	}
}

// Frame advances the animation one step and presents it
func (a *App) Frame(now time.Time) {
	if !a.paused {
		a.globe.Spin(a.cfg.Globe.SpinRate)
		a.arcs.Tick()
	}

	a.measure(now)
	a.buf.Clear()
	a.raster.Draw(a.buf, a.graph.Nodes())
	if a.hud {
		a.drawHUD()
	}
	a.buf.Flush(a.screen)
	a.frames++

	if a.frames%uint64(a.cfg.FPS*10) == 0 {
		st := a.arcs.Stats()
		a.log.Debugw("frame stats",
			"frames", a.frames,
			"fps", a.fps,
			"generated", st.Generated,
			"respawned", st.Respawned,
		)
	}
}

// measure keeps an exponential moving average of the frame rate
func (a *App) measure(now time.Time) {
	if !a.lastFrame.IsZero() {
		if dt := now.Sub(a.lastFrame).Seconds(); dt > 0 {
			inst := 1 / dt
			if a.fps == 0 {
				a.fps = inst
			} else {
				a.fps += (inst - a.fps) * 0.1
			}
		}
	}
	a.lastFrame = now
}

// HandleEvent applies one input event, false means quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() != tcell.KeyRune:
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			a.paused = !a.paused
			a.log.Debugw("pause toggled", "paused", a.paused)
		case 'r':
			a.arcs.Reset()
			a.arcLog.Infow("arcs regenerated", "live", len(a.arcs.Connections()))
		case 'h':
			a.hud = !a.hud
		}

	case *tcell.EventResize:
		w, h := a.screen.Size()
		a.buf.Resize(w, h)
		a.screen.Sync()
		a.log.Debugw("resized", "width", w, "height", h)
	}
	return true
}

func (a *App) onRespawn(old, fresh *arc.Connection) {
	a.arcLog.Debugw("arc respawned", "retired", old.ID, "spawned", fresh.ID)
	a.chime.Play()
}

// Stats exposes the animator counters
func (a *App) Stats() arc.Stats {
	return a.arcs.Stats()
}

func (a *App) Paused() bool {
	return a.paused
}
