// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"testing"

	"gioui.org/grid/f32"
	"gioui.org/grid/io/pointer"
)

type hitEvent struct {
	e   pointer.Event
	hit bool
}

func TestMouseClicks(t *testing.T) {
	press := pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonPrimary}
	release := pointer.Event{Kind: pointer.Release}
	move := pointer.Event{Kind: pointer.Move}
	cancel := pointer.Event{Kind: pointer.Cancel}
	secondary := pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonSecondary}
	for _, tc := range []struct {
		label  string
		events []hitEvent
		types  []ClickType
		state  ClickState
	}{
		{
			label:  "single click",
			events: []hitEvent{{press, true}, {release, true}},
			types:  []ClickType{TypePress, TypeClick},
			state:  StateFocused,
		},
		{
			label:  "two clicks",
			events: []hitEvent{{press, true}, {release, true}, {press, true}, {release, true}},
			types:  []ClickType{TypePress, TypeClick, TypePress, TypeClick},
			state:  StateFocused,
		},
		{
			label:  "release outside",
			events: []hitEvent{{press, true}, {move, false}, {release, false}},
			types:  []ClickType{TypePress, TypeCancel},
			state:  StateNormal,
		},
		{
			label:  "press outside",
			events: []hitEvent{{press, false}, {release, true}},
			state:  StateFocused,
		},
		{
			label:  "cancel",
			events: []hitEvent{{press, true}, {cancel, true}, {release, true}},
			types:  []ClickType{TypePress, TypeCancel},
			state:  StateFocused,
		},
		{
			label:  "secondary button",
			events: []hitEvent{{secondary, true}},
			state:  StateNormal,
		},
		{
			label:  "hover",
			events: []hitEvent{{move, true}},
			state:  StateFocused,
		},
	} {
		t.Run(tc.label, func(t *testing.T) {
			var click Click
			var types []ClickType
			for _, he := range tc.events {
				if ce, ok := click.Update(he.e, he.hit); ok {
					types = append(types, ce.Type)
				}
			}
			if got, want := len(types), len(tc.types); got != want {
				t.Fatalf("got %d click events %v, expected %d", got, types, want)
			}
			for i := range types {
				if got, want := types[i], tc.types[i]; got != want {
					t.Errorf("event %d: got %v, expected %v", i, got, want)
				}
			}
			if got := click.State(); got != tc.state {
				t.Errorf("got state %v, expected %v", got, tc.state)
			}
		})
	}
}

func TestClickPosition(t *testing.T) {
	var click Click
	click.Update(pointer.Event{Kind: pointer.Press, Position: f32.Pt(3, 4)}, true)
	if !click.Pressed() {
		t.Fatal("not pressed after press")
	}
	ce, ok := click.Update(pointer.Event{Kind: pointer.Release, Position: f32.Pt(5, 6)}, true)
	if !ok || ce.Type != TypeClick {
		t.Fatalf("got %v, %v, expected a click", ce, ok)
	}
	if ce.Position != f32.Pt(5, 6) {
		t.Errorf("got position %v, expected (5,6)", ce.Position)
	}
}
