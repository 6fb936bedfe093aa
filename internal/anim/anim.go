// Package anim provides named sprite animation clips and a per-sprite
// animator that steps through clip frames on simulated time.
package anim

import "fmt"

// RepeatForever makes a clip loop until another clip is played.
const RepeatForever = -1

// Clip is a named sequence of spritesheet frames.
type Clip struct {
	Key       string
	Frames    []int
	FrameRate int // frames per second
	Repeat    int // extra plays after the first; RepeatForever loops
}

// FrameRange returns the frame indices start..end inclusive.
func FrameRange(start, end int) []int {
	if end < start {
		return nil
	}
	frames := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		frames = append(frames, i)
	}
	return frames
}

// Library holds the clips defined for a scene.
type Library struct {
	clips map[string]Clip
}

// NewLibrary creates an empty clip library.
func NewLibrary() *Library {
	return &Library{clips: make(map[string]Clip)}
}

// Add registers a clip. Clips need a key, at least one frame and a positive frame rate.
func (l *Library) Add(c Clip) error {
	switch {
	case c.Key == "":
		return fmt.Errorf("anim: clip key is empty")
	case len(c.Frames) == 0:
		return fmt.Errorf("anim: clip %q has no frames", c.Key)
	case c.FrameRate <= 0:
		return fmt.Errorf("anim: clip %q has frame rate %d", c.Key, c.FrameRate)
	}
	if _, exists := l.clips[c.Key]; exists {
		return fmt.Errorf("anim: clip %q already defined", c.Key)
	}
	l.clips[c.Key] = c
	return nil
}

// Get looks up a clip by key.
func (l *Library) Get(key string) (Clip, bool) {
	c, ok := l.clips[key]
	return c, ok
}

// Animator plays clips from a library for one sprite.
type Animator struct {
	lib      *Library
	clip     Clip
	playing  bool
	index    int     // position in clip.Frames
	elapsed  float64 // seconds since the current frame started
	loopsRun int
}

// NewAnimator creates an animator bound to a library.
func NewAnimator(lib *Library) *Animator {
	return &Animator{lib: lib}
}

// Play starts the clip with the given key from its first frame.
// With ignoreIfPlaying set, asking for the clip that is already running
// keeps it going instead of restarting it.
// Unknown keys are ignored and leave the current clip untouched.
func (a *Animator) Play(key string, ignoreIfPlaying bool) {
	if ignoreIfPlaying && a.playing && a.clip.Key == key {
		return
	}
	c, ok := a.lib.Get(key)
	if !ok {
		return
	}
	a.clip = c
	a.playing = true
	a.index = 0
	a.elapsed = 0
	a.loopsRun = 0
}

// Update advances the current clip by dt seconds.
func (a *Animator) Update(dt float64) {
	if !a.playing || dt <= 0 {
		return
	}
	frameTime := 1.0 / float64(a.clip.FrameRate)
	a.elapsed += dt

	for a.elapsed >= frameTime && a.playing {
		a.elapsed -= frameTime
		if a.index < len(a.clip.Frames)-1 {
			a.index++
			continue
		}
		// end of the sequence
		if a.clip.Repeat == RepeatForever || a.loopsRun < a.clip.Repeat {
			a.loopsRun++
			a.index = 0
			continue
		}
		a.playing = false
	}
}

// Key returns the key of the current clip, or "" before anything was played.
func (a *Animator) Key() string {
	return a.clip.Key
}

// Frame returns the spritesheet frame currently shown.
func (a *Animator) Frame() int {
	if len(a.clip.Frames) == 0 {
		return 0
	}
	return a.clip.Frames[a.index]
}

// Playing reports whether the current clip is still running.
func (a *Animator) Playing() bool {
	return a.playing
}
