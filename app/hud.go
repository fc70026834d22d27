package app

import (
	"fmt"
	"unicode/utf8"

	"github.com/lixenwraith/neon-globe/render"
	"github.com/lixenwraith/neon-globe/scene"
)

const hudControls = "space:pause  r:regenerate  h:hud  q:quit"

var rgbPaused = scene.RGB{R: 255, G: 200, B: 50}

func (a *App) drawHUD() {
	w, h := a.buf.Size()
	if h < 2 {
		return
	}
	statusY := h - 2
	controlY := h - 1

	// Solid backdrop so globe shading and glyphs never show under the text
	for y := statusY; y <= controlY; y++ {
		for x := 0; x < w; x++ {
			a.buf.Set(x, y, ' ', render.RGBBackground, render.RGBBackground, render.BlendReplace, 1)
		}
	}

	st := a.arcs.Stats()
	status := fmt.Sprintf("arcs %d  respawns %d  fps %.0f  seed %d", st.Live, st.Respawned, a.fps, a.seed)
	a.buf.WriteString(1, statusY, status, a.hudColor)

	if a.paused {
		label := "[PAUSED]"
		a.buf.WriteString(w-utf8.RuneCountInString(label)-1, statusY, label, rgbPaused)
	}

	a.buf.WriteString(1, controlY, hudControls, render.RGBHUD)
}
