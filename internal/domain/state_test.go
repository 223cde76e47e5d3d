package domain

import "testing"

func TestLocationStateSlotIndependence(t *testing.T) {
	delhi := ResolvedLocation{
		Coordinates:    Coordinates{Lat: 28.6139, Lon: 77.2090},
		DisplayAddress: "New Delhi, Delhi, India",
	}
	gate := ResolvedLocation{
		Coordinates:    Coordinates{Lat: 28.6129, Lon: 77.2295},
		DisplayAddress: "India Gate, Kartavya Path, New Delhi, India",
	}
	mumbai := ResolvedLocation{
		Coordinates:    Coordinates{Lat: 19.0760, Lon: 72.8777},
		DisplayAddress: "Mumbai, Maharashtra, India",
	}

	state := NewLocationState()
	if got := state.Phase(); got != PhaseEmpty {
		t.Fatalf("Phase() = %q, want %q", got, PhaseEmpty)
	}

	state.Set(SlotOrigin, delhi)
	if got := state.Phase(); got != PhaseOriginSet {
		t.Fatalf("Phase() = %q, want %q", got, PhaseOriginSet)
	}

	state.Set(SlotDestination, gate)
	state.Set(SlotOrigin, mumbai)

	dest, ok := state.Get(SlotDestination)
	if !ok {
		t.Fatal("destination unexpectedly empty")
	}
	if dest != gate {
		t.Errorf("destination = %+v, want %+v", dest, gate)
	}

	origin, ok := state.Get(SlotOrigin)
	if !ok || origin != mumbai {
		t.Errorf("origin = %+v (ok=%v), want %+v", origin, ok, mumbai)
	}

	if got := state.Phase(); got != PhaseComplete {
		t.Errorf("Phase() = %q, want %q", got, PhaseComplete)
	}
}

func TestLocationStateClear(t *testing.T) {
	state := NewLocationState()
	state.Set(SlotDestination, ResolvedLocation{DisplayAddress: "India Gate"})

	if got := state.Phase(); got != PhaseDestinationSet {
		t.Fatalf("Phase() = %q, want %q", got, PhaseDestinationSet)
	}

	state.Clear()

	if _, ok := state.Get(SlotOrigin); ok {
		t.Error("origin should be empty after Clear")
	}
	if _, ok := state.Get(SlotDestination); ok {
		t.Error("destination should be empty after Clear")
	}
	if _, _, err := state.Endpoints(); err != ErrIncompleteRoute {
		t.Errorf("Endpoints() err = %v, want %v", err, ErrIncompleteRoute)
	}
}

func TestLocationStateGetReturnsCopy(t *testing.T) {
	state := NewLocationState()
	state.Set(SlotOrigin, ResolvedLocation{DisplayAddress: "A"})

	loc, _ := state.Get(SlotOrigin)
	loc.DisplayAddress = "B"

	again, _ := state.Get(SlotOrigin)
	if again.DisplayAddress != "A" {
		t.Errorf("stored slot mutated through copy: %q", again.DisplayAddress)
	}
}

func TestLocationStateUnknownSlotPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown slot")
		}
	}()

	NewLocationState().Set(Slot("waypoint"), ResolvedLocation{})
}

func TestParseSlot(t *testing.T) {
	cases := []struct {
		in      string
		want    Slot
		wantErr bool
	}{
		{"origin", SlotOrigin, false},
		{" Destination ", SlotDestination, false},
		{"current", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		got, err := ParseSlot(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseSlot(%q) err = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseSlot(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseCoordinates(t *testing.T) {
	c, err := ParseCoordinates("28.6139", "77.2090")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Lat != 28.6139 || c.Lon != 77.2090 {
		t.Errorf("ParseCoordinates = %+v", c)
	}
	if got := c.Pair(); got != "28.6139,77.209" {
		t.Errorf("Pair() = %q", got)
	}
	if got := c.Fixed(); got != "28.613900, 77.209000" {
		t.Errorf("Fixed() = %q", got)
	}

	whole := Coordinates{Lat: 28, Lon: -77}
	if got := whole.Pair(); got != "28.0,-77.0" {
		t.Errorf("Pair() for integral degrees = %q, want %q", got, "28.0,-77.0")
	}
	if got := (Coordinates{Lat: 0, Lon: 0.5}).Pair(); got != "0.0,0.5" {
		t.Errorf("Pair() = %q, want %q", got, "0.0,0.5")
	}

	for _, in := range [][2]string{{"abc", "1"}, {"1", ""}, {"91", "0"}, {"0", "-180.5"}, {"NaN", "0"}} {
		if _, err := ParseCoordinates(in[0], in[1]); err == nil {
			t.Errorf("ParseCoordinates(%q, %q) expected error", in[0], in[1])
		}
	}
}
