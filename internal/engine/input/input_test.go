package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestActionForInteractive(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  Action
	}{
		{"quit", Event{Type: EventQuit}, ActionQuit},
		{"resize", Event{Type: EventWindowResize}, ActionResize},
		{"key 1", Event{Type: EventKeyDown, Key: sdl.SCANCODE_1}, ActionQualityLow},
		{"key 2", Event{Type: EventKeyDown, Key: sdl.SCANCODE_2}, ActionQualityMedium},
		{"key 3", Event{Type: EventKeyDown, Key: sdl.SCANCODE_3}, ActionQualityHigh},
		{"key G", Event{Type: EventKeyDown, Key: sdl.SCANCODE_G}, ActionToggleGrid},
		{"escape", Event{Type: EventKeyDown, Key: sdl.SCANCODE_ESCAPE}, ActionQuit},
		{"key Q", Event{Type: EventKeyDown, Key: sdl.SCANCODE_Q}, ActionQuit},
		{"other key", Event{Type: EventKeyDown, Key: sdl.SCANCODE_SPACE}, ActionNone},
		{"click", Event{Type: EventMouseDown}, ActionNone},
		{"mouse move", Event{Type: EventMouseMove, MouseX: 500, MouseY: 500}, ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := New(true)
			if got := i.actionFor(tt.event); got != tt.want {
				t.Errorf("actionFor(%+v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestActionForScreensaver(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  Action
	}{
		{"any key", Event{Type: EventKeyDown, Key: sdl.SCANCODE_1}, ActionQuit},
		{"click", Event{Type: EventMouseDown}, ActionQuit},
		{"resize", Event{Type: EventWindowResize}, ActionResize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := New(false)
			if got := i.actionFor(tt.event); got != tt.want {
				t.Errorf("actionFor(%+v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

func TestMouseSlack(t *testing.T) {
	i := New(false)

	move := func(x, y int) Action {
		return i.actionFor(Event{Type: EventMouseMove, MouseX: x, MouseY: y})
	}

	if got := move(100, 100); got != ActionNone {
		t.Fatalf("first motion event = %v, want none", got)
	}
	if got := move(100+mouseSlack, 100-mouseSlack); got != ActionNone {
		t.Errorf("drift within slack = %v, want none", got)
	}
	if got := move(100+mouseSlack+1, 100); got != ActionQuit {
		t.Errorf("drift beyond slack = %v, want quit", got)
	}
}
