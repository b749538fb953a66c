// Package rlhost shows an editing session in a raylib window.
package rlhost

import (
	"image"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/canved/canvas"
	"github.com/ha1tch/canved/editor"
	"github.com/ha1tch/canved/letterbox"
)

const (
	title     = "canved"
	targetFPS = 60
)

// keyMap translates raylib key codes into editor keys.
var keyMap = map[int32]editor.Key{
	rl.KeyEscape: editor.KeyEscape,
	rl.KeyB:      editor.KeyB,
	rl.KeyC:      editor.KeyC,
	rl.KeyY:      editor.KeyY,
	rl.KeyZ:      editor.KeyZ,
	rl.KeyOne:    editor.Key1,
	rl.KeyTwo:    editor.Key2,
	rl.KeyThree:  editor.Key3,
	rl.KeyFour:   editor.Key4,
	rl.KeyFive:   editor.Key5,
	rl.KeySix:    editor.Key6,
	rl.KeySeven:  editor.Key7,
	rl.KeyEight:  editor.Key8,
	rl.KeyNine:   editor.Key9,
}

// Host is a resizable raylib window implementing editor.Host. Only one
// Host may be open at a time.
type Host struct {
	texture rl.Texture2D
	loaded  bool
	pixels  []color.RGBA
}

// Open creates the window sized to width×height.
func Open(width, height int) *Host {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(max(width, 1)), int32(max(height, 1)), title)
	rl.SetExitKey(0)
	rl.SetMouseCursor(rl.MouseCursorCrosshair)
	rl.SetTargetFPS(targetFPS)

	return &Host{}
}

// Poll reads the input gathered since the previous Present.
func (h *Host) Poll() (editor.Frame, error) {
	if rl.WindowShouldClose() || rl.IsKeyDown(rl.KeyQ) {
		return editor.Frame{Quit: true}, nil
	}

	f := editor.Frame{
		WindowWidth:  rl.GetScreenWidth(),
		WindowHeight: rl.GetScreenHeight(),
		Down:         rl.IsMouseButtonDown(rl.MouseLeftButton),
		Ctrl:         rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl),
		Shift:        rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift),
	}

	if rl.IsCursorOnScreen() {
		pos := rl.GetMousePosition()
		f.Cursor = image.Pt(int(pos.X), int(pos.Y))
		f.HasCursor = true
	}

	switch wheel := rl.GetMouseWheelMove(); {
	case wheel > 0:
		f.Scroll = 1
	case wheel < 0:
		f.Scroll = -1
	}

	for code := rl.GetKeyPressed(); code != 0; code = rl.GetKeyPressed() {
		if k, ok := keyMap[code]; ok {
			f.Pressed = append(f.Pressed, k)
		}
	}
	// the key queue holds first presses only
	for code, k := range keyMap {
		if rl.IsKeyPressedRepeat(code) {
			f.Pressed = append(f.Pressed, k)
		}
	}

	return f, nil
}

// Present draws composite letterboxed on a black background.
func (h *Host) Present(composite *canvas.Buffer) error {
	bw, bh := composite.Width(), composite.Height()
	if bw == 0 || bh == 0 {
		return nil
	}

	h.upload(composite)

	screenW, screenH := rl.GetScreenWidth(), rl.GetScreenHeight()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	if screenW > 0 && screenH > 0 {
		r := letterbox.Fit(screenW, screenH, bw, bh)
		srcRect := rl.Rectangle{X: 0, Y: 0, Width: float32(bw), Height: float32(bh)}
		dstRect := rl.Rectangle{
			X:      float32(r.X),
			Y:      float32(r.Y),
			Width:  float32(r.W),
			Height: float32(r.H),
		}
		rl.DrawTexturePro(h.texture, srcRect, dstRect, rl.Vector2{}, 0, rl.White)
	}

	rl.EndDrawing()
	return nil
}

// upload copies composite into the streaming texture, reallocating it when
// the buffer size changed.
func (h *Host) upload(composite *canvas.Buffer) {
	bw, bh := composite.Width(), composite.Height()

	if !h.loaded || int(h.texture.Width) != bw || int(h.texture.Height) != bh {
		if h.loaded {
			rl.UnloadTexture(h.texture)
		}
		img := rl.GenImageColor(bw, bh, rl.Black)
		h.texture = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		h.loaded = true
		h.pixels = make([]color.RGBA, bw*bh)
	}

	for i, c := range composite.Data() {
		rgb := c.RGB()
		h.pixels[i] = color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xFF}
	}
	rl.UpdateTexture(h.texture, h.pixels)
}

// Close releases the texture and closes the window.
func (h *Host) Close() {
	if h.loaded {
		rl.UnloadTexture(h.texture)
		h.loaded = false
	}
	rl.CloseWindow()
}

var _ editor.Host = (*Host)(nil)
