//go:build js && wasm

package sensor

import (
	"context"
	"errors"
	"syscall/js"
)

type domOrientation struct{}

// PlatformSource returns the browser DeviceOrientationEvent API.
func PlatformSource() OrientationSource { return domOrientation{} }

func (domOrientation) TouchCapable() bool {
	win := js.Global()
	if !win.Get("ontouchstart").IsUndefined() {
		return true
	}
	n := win.Get("navigator").Get("maxTouchPoints")
	return n.Type() == js.TypeNumber && n.Int() > 0
}

func (domOrientation) NeedsPermission() bool {
	ev := js.Global().Get("DeviceOrientationEvent")
	if ev.IsUndefined() {
		return false
	}
	return ev.Get("requestPermission").Type() == js.TypeFunction
}

// RequestPermission arms a one-shot touchend/click listener and asks for
// permission from inside it. Safari only honors requestPermission during a
// user gesture, and the game loop runs from requestAnimationFrame, so the
// call cannot be made from here directly. It returns once the next gesture
// has been answered or ctx is done.
func (d domOrientation) RequestPermission(ctx context.Context) error {
	win := js.Global()
	ev := win.Get("DeviceOrientationEvent")
	if ev.IsUndefined() {
		return ErrUnsupported
	}
	if !d.NeedsPermission() {
		return nil
	}

	result := make(chan error, 1)
	onResolve := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 && args[0].String() == "granted" {
			result <- nil
		} else {
			result <- ErrPermissionDenied
		}
		return nil
	})
	onReject := js.FuncOf(func(_ js.Value, args []js.Value) any {
		msg := "permission request rejected"
		if len(args) > 0 {
			msg = args[0].Call("toString").String()
		}
		result <- errors.New(msg)
		return nil
	})

	fired := false
	var gesture js.Func
	disarm := func() {
		win.Call("removeEventListener", "touchend", gesture)
		win.Call("removeEventListener", "click", gesture)
	}
	gesture = js.FuncOf(func(js.Value, []js.Value) any {
		disarm()
		fired = true
		ev.Call("requestPermission").Call("then", onResolve, onReject)
		return nil
	})
	defer gesture.Release()
	win.Call("addEventListener", "touchend", gesture)
	win.Call("addEventListener", "click", gesture)

	select {
	case err := <-result:
		onResolve.Release()
		onReject.Release()
		return err
	case <-ctx.Done():
		disarm()
		// Once the request is out its promise still holds these.
		if !fired {
			onResolve.Release()
			onReject.Release()
		}
		return ctx.Err()
	}
}

func (domOrientation) Listen(fn func(gamma, beta float64)) (func(), error) {
	win := js.Global()
	if win.Get("DeviceOrientationEvent").IsUndefined() {
		return nil, ErrUnsupported
	}
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		g, b := args[0].Get("gamma"), args[0].Get("beta")
		if g.Type() != js.TypeNumber || b.Type() != js.TypeNumber {
			return nil
		}
		fn(g.Float(), b.Float())
		return nil
	})
	win.Call("addEventListener", "deviceorientation", cb)
	return func() {
		win.Call("removeEventListener", "deviceorientation", cb)
		cb.Release()
	}, nil
}
