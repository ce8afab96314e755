package input

import (
	"testing"
	"time"
)

func TestMapToIntent(t *testing.T) {
	tests := []struct {
		code string
		want Action
	}{
		{"arrow_up", ActionMoveNorth},
		{"w", ActionMoveNorth},
		{"arrow_down", ActionMoveSouth},
		{"s", ActionMoveSouth},
		{"arrow_left", ActionMoveWest},
		{"a", ActionMoveWest},
		{"arrow_right", ActionMoveEast},
		{"d", ActionMoveEast},
		{"f", ActionToggleFlashlight},
		{"q", ActionQuit},
		{"escape", ActionQuit},
		{"z", ActionNone},
		{"", ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			raw := RawInput{Device: DeviceTerminal, Code: tt.code, Timestamp: time.Now()}
			got := MapToIntent(NewDebouncedInput(raw))
			if got.Action != tt.want {
				t.Errorf("MapToIntent(%q) = %v, want %v", tt.code, ActionName(got.Action), ActionName(tt.want))
			}
		})
	}
}

func TestGetBindingsByAction(t *testing.T) {
	byAction := GetBindingsByAction()

	north := byAction[ActionMoveNorth]
	if len(north) != 2 || north[0] != "arrow_up" || north[1] != "w" {
		t.Errorf("north bindings = %v, want [arrow_up w]", north)
	}
	if len(byAction[ActionQuit]) != 2 {
		t.Errorf("quit bindings = %v, want two codes", byAction[ActionQuit])
	}
}
