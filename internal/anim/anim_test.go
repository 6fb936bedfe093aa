package anim

import "testing"

func newTestLibrary(t *testing.T) *Library {
	t.Helper()
	lib := NewLibrary()
	clips := []Clip{
		{Key: "left", Frames: FrameRange(0, 3), FrameRate: 10, Repeat: RepeatForever},
		{Key: "turn", Frames: []int{4}, FrameRate: 20},
		{Key: "blink", Frames: []int{7, 8}, FrameRate: 4, Repeat: 1},
	}
	for _, c := range clips {
		if err := lib.Add(c); err != nil {
			t.Fatalf("Add(%q) failed: %v", c.Key, err)
		}
	}
	return lib
}

func TestFrameRange(t *testing.T) {
	got := FrameRange(5, 8)
	want := []int{5, 6, 7, 8}
	if len(got) != len(want) {
		t.Fatalf("FrameRange(5, 8) = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("FrameRange(5, 8) = %v", got)
		}
	}
	if FrameRange(3, 1) != nil {
		t.Error("reversed range should be empty")
	}
}

func TestLibraryValidation(t *testing.T) {
	lib := NewLibrary()
	tests := []struct {
		name string
		clip Clip
	}{
		{"empty key", Clip{Frames: []int{0}, FrameRate: 10}},
		{"no frames", Clip{Key: "a", FrameRate: 10}},
		{"zero rate", Clip{Key: "a", Frames: []int{0}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := lib.Add(tc.clip); err == nil {
				t.Error("expected an error")
			}
		})
	}

	ok := Clip{Key: "a", Frames: []int{0}, FrameRate: 1}
	if err := lib.Add(ok); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := lib.Add(ok); err == nil {
		t.Error("duplicate key should be rejected")
	}
}

func TestLoopingClip(t *testing.T) {
	a := NewAnimator(newTestLibrary(t))
	a.Play("left", true)

	frames := []int{a.Frame()}
	for i := 0; i < 5; i++ {
		a.Update(0.1)
		frames = append(frames, a.Frame())
	}

	want := []int{0, 1, 2, 3, 0, 1}
	for i := range want {
		if frames[i] != want[i] {
			t.Fatalf("frames = %v, expected %v", frames, want)
		}
	}
	if !a.Playing() {
		t.Error("looping clip should keep playing")
	}
}

func TestIgnoreIfPlaying(t *testing.T) {
	a := NewAnimator(newTestLibrary(t))
	a.Play("left", true)
	a.Update(0.1)
	a.Update(0.1)

	a.Play("left", true)
	if a.Frame() != 2 {
		t.Errorf("ignoreIfPlaying should keep the clip running, frame = %d", a.Frame())
	}

	a.Play("left", false)
	if a.Frame() != 0 {
		t.Errorf("Play without ignoreIfPlaying should restart, frame = %d", a.Frame())
	}
}

func TestSingleFrameClipStops(t *testing.T) {
	a := NewAnimator(newTestLibrary(t))
	a.Play("turn", false)
	a.Update(1)

	if a.Playing() {
		t.Error("non-repeating clip should stop at its last frame")
	}
	if a.Frame() != 4 || a.Key() != "turn" {
		t.Errorf("stopped clip should hold its frame, got %q/%d", a.Key(), a.Frame())
	}

	// a stopped clip restarts even with ignoreIfPlaying
	a.Play("turn", true)
	if !a.Playing() {
		t.Error("Play should restart a finished clip")
	}
}

func TestFiniteRepeat(t *testing.T) {
	a := NewAnimator(newTestLibrary(t))
	a.Play("blink", false)

	// 2 frames x 2 plays at 4 fps = 1 second of animation
	seen := []int{a.Frame()}
	for i := 0; i < 3; i++ {
		a.Update(0.25)
		seen = append(seen, a.Frame())
	}
	want := []int{7, 8, 7, 8}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("frames = %v, expected %v", seen, want)
		}
	}
	a.Update(0.25)
	if a.Playing() {
		t.Error("clip should stop after its repeats")
	}
}

func TestUnknownKeyIgnored(t *testing.T) {
	a := NewAnimator(newTestLibrary(t))
	a.Play("turn", false)
	a.Play("missing", false)

	if a.Key() != "turn" {
		t.Errorf("unknown clip should not replace the current one, got %q", a.Key())
	}
}
