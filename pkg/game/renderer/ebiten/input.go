package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "campuslockdown/pkg/engine/input"
)

// heldKeys are sampled while held so walking continues as long as a
// direction key is down. The mover rejects steps while one is in
// flight, so per-frame sampling does not overdrive movement.
var heldKeys = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyW, "w"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyD, "d"},
}

// pressedKeys fire once per physical press.
var pressedKeys = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyF, "f"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEscape, "escape"},
}

// pollIntents samples the keyboard and runs the raw codes through the
// debounce and binding layers. At most one movement intent is emitted
// per frame.
func (r *Renderer) pollIntents() []engineinput.Intent {
	var raws []engineinput.RawInput

	for _, k := range heldKeys {
		if ebiten.IsKeyPressed(k.key) {
			raws = append(raws, engineinput.RawInput{
				Device:    engineinput.DeviceKeyboard,
				Code:      k.code,
				Timestamp: time.Now(),
			})
			break
		}
	}
	for _, k := range pressedKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			raws = append(raws, engineinput.RawInput{
				Device:    engineinput.DeviceKeyboard,
				Code:      k.code,
				Timestamp: time.Now(),
			})
		}
	}

	var intents []engineinput.Intent
	for _, raw := range raws {
		intent := engineinput.MapToIntent(engineinput.NewDebouncedInput(raw))
		if intent.Action != engineinput.ActionNone {
			intents = append(intents, intent)
		}
	}
	return intents
}
