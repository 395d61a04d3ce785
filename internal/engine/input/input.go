// Package input turns SDL2 events into screensaver actions.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType is the kind of a processed event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventMouseMove
	EventMouseDown
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	MouseX int
	MouseY int
}

// Action is what the application should do in response to an event.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionResize
	ActionQualityLow
	ActionQualityMedium
	ActionQualityHigh
	ActionToggleGrid
)

// mouseSlack is how far the mouse may drift, in pixels, before a
// fullscreen screensaver exits.
const mouseSlack = 8

// Input handles all input processing.
type Input struct {
	// Interactive enables hotkeys and ignores mouse motion; otherwise any
	// key, click or mouse movement quits.
	Interactive bool

	events []Event

	mouseSeen bool
	mouseX    int
	mouseY    int
}

// New creates a new input handler.
func New(interactive bool) *Input {
	return &Input{
		Interactive: interactive,
		events:      make([]Event, 0, 16),
	}
}

// Update polls SDL events and returns the resulting actions.
func (i *Input) Update() []Action {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})

		case *sdl.WindowEvent:
			// The new size is read back from the drawable.
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{Type: EventWindowResize})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				i.events = append(i.events, Event{
					Type: EventKeyDown,
					Key:  e.Keysym.Scancode,
				})
			}

		case *sdl.MouseMotionEvent:
			i.events = append(i.events, Event{
				Type:   EventMouseMove,
				MouseX: int(e.X),
				MouseY: int(e.Y),
			})

		case *sdl.MouseButtonEvent:
			if e.Type == sdl.MOUSEBUTTONDOWN {
				i.events = append(i.events, Event{Type: EventMouseDown})
			}
		}
	}

	actions := make([]Action, 0, len(i.events))
	for _, e := range i.events {
		if a := i.actionFor(e); a != ActionNone {
			actions = append(actions, a)
		}
	}
	return actions
}

func (i *Input) actionFor(e Event) Action {
	switch e.Type {
	case EventQuit:
		return ActionQuit
	case EventWindowResize:
		return ActionResize
	case EventKeyDown:
		if !i.Interactive {
			return ActionQuit
		}
		switch e.Key {
		case sdl.SCANCODE_1:
			return ActionQualityLow
		case sdl.SCANCODE_2:
			return ActionQualityMedium
		case sdl.SCANCODE_3:
			return ActionQualityHigh
		case sdl.SCANCODE_G:
			return ActionToggleGrid
		case sdl.SCANCODE_ESCAPE, sdl.SCANCODE_Q:
			return ActionQuit
		}
	case EventMouseDown:
		if !i.Interactive {
			return ActionQuit
		}
	case EventMouseMove:
		if i.Interactive {
			return ActionNone
		}
		// The first motion event only records where the cursor rests.
		if !i.mouseSeen {
			i.mouseSeen = true
			i.mouseX, i.mouseY = e.MouseX, e.MouseY
			return ActionNone
		}
		if abs(e.MouseX-i.mouseX) > mouseSlack || abs(e.MouseY-i.mouseY) > mouseSlack {
			return ActionQuit
		}
	}
	return ActionNone
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
