//go:build !js

package platform

import (
	"errors"
	"testing"
)

func stubTools(t *testing.T, run func(clipboardTool, string) error) {
	t.Helper()
	prev := runTool
	runTool = run
	t.Cleanup(func() { runTool = prev })
}

func TestCopyTextFallsThroughTools(t *testing.T) {
	var tried []string
	var got string
	stubTools(t, func(tool clipboardTool, s string) error {
		tried = append(tried, tool.name)
		if tool.name != "xsel" {
			return errors.New("exec: not found")
		}
		got = s
		return nil
	})

	if err := CopyText("hello@vnc.design"); err != nil {
		t.Fatalf("CopyText: %v", err)
	}
	if got != "hello@vnc.design" {
		t.Errorf("clipboard got %q", got)
	}
	want := []string{"wl-copy", "xclip", "xsel"}
	if len(tried) != len(want) {
		t.Fatalf("tried %v, want %v", tried, want)
	}
	for i := range want {
		if tried[i] != want[i] {
			t.Errorf("tried %v, want %v", tried, want)
		}
	}
}

func TestCopyTextWithoutTools(t *testing.T) {
	calls := 0
	stubTools(t, func(clipboardTool, string) error {
		calls++
		return errors.New("exec: not found")
	})

	err := CopyText("hello@vnc.design")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
	if calls != len(clipboardTools) {
		t.Errorf("tried %d tools, want %d", calls, len(clipboardTools))
	}
}
