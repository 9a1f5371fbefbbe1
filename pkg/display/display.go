// Package display provides an SDL2 window for presenting frames
// and collecting joypad input.
package display

import (
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/dotmatrix-emu/dotmatrix/internal/joypad"
	"github.com/dotmatrix-emu/dotmatrix/internal/ppu"
)

// PixelScale is the multiplier applied to the native resolution
// when sizing the window.
var PixelScale = 4

// Inputs holds the buttons pressed and released since the last
// call to PollKeys.
type Inputs struct {
	Pressed  []joypad.Button
	Released []joypad.Button
}

// keyMap maps SDL scancodes to joypad buttons.
var keyMap = map[sdl.Scancode]joypad.Button{
	sdl.SCANCODE_Z:         joypad.ButtonA,
	sdl.SCANCODE_X:         joypad.ButtonB,
	sdl.SCANCODE_BACKSPACE: joypad.ButtonSelect,
	sdl.SCANCODE_RETURN:    joypad.ButtonStart,
	sdl.SCANCODE_RIGHT:     joypad.ButtonRight,
	sdl.SCANCODE_LEFT:      joypad.ButtonLeft,
	sdl.SCANCODE_UP:        joypad.ButtonUp,
	sdl.SCANCODE_DOWN:      joypad.ButtonDown,
}

// Display is an SDL2 window presenting frames at the native
// resolution scaled by PixelScale.
type Display struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	buf [ppu.ScreenWidth * ppu.ScreenHeight * 3]byte

	closed bool
}

// NewDisplay creates the window and the streaming texture frames
// are copied through.
func NewDisplay(title string) (*Display, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, err
	}

	window, err := sdl.CreateWindow(
		"dotmatrix | "+title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(ppu.ScreenWidth*PixelScale), int32(ppu.ScreenHeight*PixelScale),
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE,
	)
	if err != nil {
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, err
	}
	if err := renderer.SetLogicalSize(ppu.ScreenWidth, ppu.ScreenHeight); err != nil {
		return nil, err
	}

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGB24, sdl.TEXTUREACCESS_STREAMING,
		ppu.ScreenWidth, ppu.ScreenHeight,
	)
	if err != nil {
		return nil, err
	}

	return &Display{
		window:   window,
		renderer: renderer,
		texture:  texture,
	}, nil
}

// Render presents the given frame.
func (d *Display) Render(frame [ppu.ScreenHeight][ppu.ScreenWidth][3]uint8) {
	i := 0
	for y := 0; y < ppu.ScreenHeight; y++ {
		for x := 0; x < ppu.ScreenWidth; x++ {
			d.buf[i] = frame[y][x][0]
			d.buf[i+1] = frame[y][x][1]
			d.buf[i+2] = frame[y][x][2]
			i += 3
		}
	}

	if err := d.texture.Update(nil, unsafe.Pointer(&d.buf[0]), ppu.ScreenWidth*3); err != nil {
		return
	}
	d.renderer.Clear()
	d.renderer.Copy(d.texture, nil, nil)
	d.renderer.Present()
}

// PollKeys drains the SDL event queue and returns the joypad
// buttons pressed and released since the last call. Escape and the
// window close button mark the display as closed.
func (d *Display) PollKeys() Inputs {
	var inputs Inputs
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			d.closed = true
		case *sdl.KeyboardEvent:
			if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
				d.closed = true
				continue
			}
			button, ok := keyMap[e.Keysym.Scancode]
			if !ok {
				continue
			}
			switch {
			case e.Type == sdl.KEYDOWN && e.Repeat == 0:
				inputs.Pressed = append(inputs.Pressed, button)
			case e.Type == sdl.KEYUP:
				inputs.Released = append(inputs.Released, button)
			}
		}
	}
	return inputs
}

// IsClosed reports whether the window has been closed.
func (d *Display) IsClosed() bool {
	return d.closed
}

// SetTitle sets the title of the window.
func (d *Display) SetTitle(title string) {
	d.window.SetTitle("dotmatrix | " + title)
}

// Close destroys the window and shuts SDL down.
func (d *Display) Close() {
	d.texture.Destroy()
	d.renderer.Destroy()
	d.window.Destroy()
	sdl.Quit()
}
