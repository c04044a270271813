package audio

import (
	"errors"

	"github.com/gopherjs/gopherjs/js"

	"github.com/mkivela/bandstand/player"
)

// Clip is a playable handle over one HTMLAudioElement. The element is
// created eagerly so the browser can begin fetching/decoding the source
// before the first play.
type Clip struct {
	el  *js.Object
	src string
}

// NewClip creates an audio element for the given source (a data URL from the
// bank or a plain file URL).
func NewClip(src string) *Clip {
	return &Clip{
		el:  js.Global.Get("Audio").New(src),
		src: src,
	}
}

// Play starts playback from the element's current position. Modern browsers
// return a promise from play(); a rejection (autoplay policy, source not
// ready) is caught here, logged, and passed to the callback. Nothing is ever
// surfaced to the user: a failed start just stays silent.
func (c *Clip) Play(onStartFailure func(error)) {
	promise := c.el.Call("play")
	if promise == nil || promise == js.Undefined {
		return
	}
	promise.Call("catch", func(reason *js.Object) {
		err := errors.New("playback start rejected")
		if reason != nil && reason != js.Undefined {
			err = errors.New(reason.Get("message").String())
		}
		player.DebugWarn("bandstand: play() rejected for", c.src, err.Error())
		if onStartFailure != nil {
			onStartFailure(err)
		}
	})
}

// Pause halts playback, keeping the current position.
func (c *Clip) Pause() {
	c.el.Call("pause")
}

// Seek moves the playback position, in seconds.
func (c *Clip) Seek(seconds float64) {
	c.el.Set("currentTime", seconds)
}

// SetVolume sets the element volume, clamped to 0..1.
func (c *Clip) SetVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	c.el.Set("volume", volume)
}

// OnEnded installs the natural-end callback, replacing any previous one.
func (c *Clip) OnEnded(fn func()) {
	c.el.Set("onended", fn)
}
