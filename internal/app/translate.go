package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gesturekit/internal/gesture"
)

// wheelStep is the scroll distance of one wheel notch.
const wheelStep = 3 * unitsPerCell

// flingMinSpeed is the minimum release speed, in gesture units per
// second, for a drag to launch a fling.
const flingMinSpeed = 250.0

// flingMaxGap is the longest pause between the last drag sample and the
// release that still counts as a flick.
const flingMaxGap = 0.1

// dragTracker turns raw terminal mouse events into gesture events.
// Wheel notches become short precise scroll sequences; primary-button
// drags become touch-style scrolls with a velocity estimate, launching
// a fling when released at speed.
type dragTracker struct {
	dragging bool
	began    bool
	lastPos  gesture.Vec
	lastTime float64
	velocity gesture.Vec
}

func modifiersFor(mods tcell.ModMask) gesture.Modifier {
	var m gesture.Modifier
	if mods&tcell.ModShift != 0 {
		m |= gesture.ModShift
	}
	if mods&tcell.ModCtrl != 0 {
		m |= gesture.ModCtrl
	}
	if mods&tcell.ModAlt != 0 {
		m |= gesture.ModAlt
	}
	if mods&tcell.ModMeta != 0 {
		m |= gesture.ModMeta
	}
	return m
}

// Translate converts one terminal mouse event into gesture events in
// dispatch order.
func (t *dragTracker) Translate(ev *tcell.EventMouse, now float64) []gesture.Event {
	x, y := ev.Position()
	pos := gesture.Vec{X: float64(x) * unitsPerCell, Y: float64(y) * unitsPerCell}
	base := gesture.Base{
		Pos:       pos,
		GlobalPos: pos,
		Time:      now,
		Device:    gesture.DeviceTouchscreen,
		Modifiers: modifiersFor(ev.Modifiers()),
	}
	buttons := ev.Buttons()

	if wheel := wheelDelta(buttons); !wheel.IsZero() {
		wheelBase := base
		wheelBase.Device = gesture.DeviceTouchpad
		return []gesture.Event{
			gesture.ScrollBegin{Base: wheelBase, DeltaHint: wheel, DeltaHintUnits: gesture.UnitsPrecisePixels},
			gesture.ScrollUpdate{Base: wheelBase, Delta: wheel, DeltaUnits: gesture.UnitsPrecisePixels},
			gesture.ScrollEnd{Base: wheelBase},
		}
	}

	primary := buttons&tcell.Button1 != 0
	switch {
	case primary && !t.dragging:
		t.dragging = true
		t.began = false
		t.lastPos = pos
		t.lastTime = now
		t.velocity = gesture.Vec{}
		return []gesture.Event{gesture.Mouse{Base: base, Action: gesture.MouseActionDown, Button: gesture.MouseButtonLeft}}

	case primary && t.dragging:
		delta := pos.Add(t.lastPos.Negate())
		if delta.IsZero() {
			return nil
		}
		if dt := now - t.lastTime; dt > 0 {
			inst := delta.Scale(1 / dt)
			t.velocity = t.velocity.Scale(0.4).Add(inst.Scale(0.6))
		}
		var out []gesture.Event
		if !t.began {
			t.began = true
			out = append(out, gesture.ScrollBegin{Base: base, DeltaHint: delta, DeltaHintUnits: gesture.UnitsPrecisePixels})
		}
		out = append(out, gesture.ScrollUpdate{Base: base, Delta: delta, Velocity: t.velocity, DeltaUnits: gesture.UnitsPrecisePixels})
		t.lastPos = pos
		t.lastTime = now
		return out

	case !primary && t.dragging:
		t.dragging = false
		out := []gesture.Event{gesture.Mouse{Base: base, Action: gesture.MouseActionUp, Button: gesture.MouseButtonLeft}}
		if !t.began {
			return out
		}
		t.began = false
		if t.velocity.LengthSquared() >= flingMinSpeed*flingMinSpeed && now-t.lastTime < flingMaxGap {
			return append(out, gesture.FlingStart{Base: base, Velocity: t.velocity})
		}
		return append(out, gesture.ScrollEnd{Base: base})

	default:
		return []gesture.Event{gesture.Mouse{Base: base, Action: gesture.MouseActionMove}}
	}
}

func wheelDelta(buttons tcell.ButtonMask) gesture.Vec {
	var d gesture.Vec
	if buttons&tcell.WheelUp != 0 {
		d.Y += wheelStep
	}
	if buttons&tcell.WheelDown != 0 {
		d.Y -= wheelStep
	}
	if buttons&tcell.WheelLeft != 0 {
		d.X += wheelStep
	}
	if buttons&tcell.WheelRight != 0 {
		d.X -= wheelStep
	}
	return d
}
