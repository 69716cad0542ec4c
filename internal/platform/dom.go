//go:build js && wasm

package platform

import (
	"errors"
	"syscall/js"
	"time"
)

func Info(msg string) error {
	js.Global().Call("alert", msg)
	return nil
}

func Error(msg string) error {
	js.Global().Call("alert", msg)
	return nil
}

// SaveFile hands data to the browser as a download.
func SaveFile(name string, data []byte, mime string) (string, error) {
	doc := js.Global().Get("document")
	arr := js.Global().Get("Uint8Array").New(len(data))
	js.CopyBytesToJS(arr, data)
	blob := js.Global().Get("Blob").New([]any{arr}, map[string]any{"type": mime})
	url := js.Global().Get("URL").Call("createObjectURL", blob)
	defer js.Global().Get("URL").Call("revokeObjectURL", url)

	a := doc.Call("createElement", "a")
	a.Set("href", url)
	a.Set("download", name)
	doc.Get("body").Call("appendChild", a)
	a.Call("click")
	a.Call("remove")
	return name, nil
}

// CopyText writes s to the clipboard and waits for the browser to confirm.
func CopyText(s string) error {
	clip := js.Global().Get("navigator").Get("clipboard")
	if clip.IsUndefined() {
		return ErrUnavailable
	}
	done := make(chan error, 1)
	ok := js.FuncOf(func(js.Value, []js.Value) any {
		done <- nil
		return nil
	})
	fail := js.FuncOf(func(_ js.Value, args []js.Value) any {
		msg := "clipboard write rejected"
		if len(args) > 0 {
			msg = args[0].Call("toString").String()
		}
		done <- errors.New(msg)
		return nil
	})
	defer ok.Release()
	defer fail.Release()

	clip.Call("writeText", s).Call("then", ok, fail)
	select {
	case err := <-done:
		return err
	case <-time.After(3 * time.Second):
		return errors.New("clipboard write timed out")
	}
}
