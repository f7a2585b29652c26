package bramble

import "github.com/tanema/gween/ease"

// Window is a focusable, movable panel: a title bar that drags the whole
// window, a close button, and a body column for content. Clicking anywhere
// inside brings the window above its siblings.
type Window struct {
	// Frame is the outer box; add it to the tree to show the window.
	Frame *Box
	// TitleBar drags the whole window.
	TitleBar *Box
	// CloseButton removes the window when clicked.
	CloseButton *Box
	// Body is a column layout group for the window's content.
	Body *Box

	Title string

	// OnClose fires after the window is removed from the tree. Optional.
	OnClose func()

	scene *Scene
}

// NewWindow builds a window styled by the scene's theme. The caller attaches
// w.Frame to the tree and fills w.Body.
func NewWindow(s *Scene, title string, rect Rect) *Window {
	theme := s.Theme()
	w := &Window{Title: title, scene: s}

	w.Frame = NewBox("window:"+title, rect)
	w.Frame.Focusable = true
	w.Frame.Background = theme.WindowBackground
	w.Frame.OnFocus = func() {
		w.Frame.BringToFront()
	}

	barH := theme.TitleBarHeight
	w.TitleBar = NewBox("titlebar:"+title, Rect{0, 0, rect.Width, barH})
	w.TitleBar.Background = theme.TitleBarColor
	w.TitleBar.DragPolicy = DragPolicy{Draggable: true, Subject: w.Frame}

	w.CloseButton = NewBox("close:"+title, Rect{Width: barH, Height: barH})
	w.CloseButton.Background = theme.CloseButtonColor
	_ = w.CloseButton.SetAnchor(&Anchor{
		Self:   TopRight,
		Target: TopRight,
		Of:     w.TitleBar,
	})
	w.CloseButton.OnClick = func(PointerEvent) {
		w.Close()
	}

	w.Body = NewBox("body:"+title, Rect{})
	w.Body.SetLayout(&Layout{
		Kind:    LayoutColumn,
		Spacing: theme.WindowSpacing,
		Padding: UniformInsets(theme.WindowPadding),
	})
	_ = w.Body.SetAnchor(&Anchor{
		Self:   TopLeft,
		Target: BottomLeft,
		Of:     w.TitleBar,
	})

	// Construction of fresh boxes cannot form cycles or share parents, so
	// these adds cannot fail.
	_ = w.Frame.AddChild(w.TitleBar)
	_ = w.Frame.AddChild(w.CloseButton)
	_ = w.Frame.AddChild(w.Body)
	return w
}

// Close detaches the window from the tree and disposes it, then fires
// OnClose. Focus held anywhere inside is released by the scene on its next
// step. Safe to call twice.
func (w *Window) Close() {
	if w.Frame.IsDisposed() {
		return
	}
	w.Frame.RemoveFromParent()
	w.Frame.Dispose()
	if w.OnClose != nil {
		w.OnClose()
	}
}

// Dialog is a modal window over a screen-dimming scrim. While open, input is
// confined to the dialog; closing it restores the focus that was active when
// it opened.
type Dialog struct {
	*Window

	// Scrim is the full-screen box behind the window.
	Scrim *Box

	prevFocus *Box
}

// NewDialog opens a modal dialog centered on the screen. The dialog is
// attached and modal immediately; close it with Close.
func NewDialog(s *Scene, title string, size Vec2) *Dialog {
	theme := s.Theme()
	screen := s.ScreenRect()

	d := &Dialog{prevFocus: s.Focused()}

	d.Scrim = NewBox("scrim:"+title, screen)
	d.Scrim.Background = theme.DialogScrim

	rect := Rect{
		X:      (screen.Width - size.X) / 2,
		Y:      (screen.Height - size.Y) / 2,
		Width:  size.X,
		Height: size.Y,
	}
	d.Window = NewWindow(s, title, rect)

	_ = d.Scrim.AddChild(d.Window.Frame)
	_ = s.Root().AddChild(d.Scrim)
	s.PushModal(d.Scrim)

	// Fade the whole dialog in; the scrim's alpha multiplies down to the
	// window.
	d.Scrim.Alpha = 0
	s.Animate(TweenAlpha(d.Scrim, 1, 0.15, ease.OutQuad))

	inner := d.Window.OnClose
	d.Window.OnClose = func() {
		d.dismiss(s)
		if inner != nil {
			inner()
		}
	}
	return d
}

func (d *Dialog) dismiss(s *Scene) {
	s.PopModal(d.Scrim)
	if !d.Scrim.IsDisposed() {
		d.Scrim.RemoveFromParent()
		d.Scrim.Dispose()
	}
	prev := d.prevFocus
	d.prevFocus = nil
	if prev != nil && !prev.IsDisposed() && isAttached(prev, s.Root()) {
		_ = s.RequestFocus(prev)
	}
}
