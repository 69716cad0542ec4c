package config

import (
	"errors"
	"testing"
	"time"
)

func TestDecodeEmail(t *testing.T) {
	got, err := DefaultProfile.Contact.DecodeEmail()
	if err != nil {
		t.Fatalf("DecodeEmail: %v", err)
	}
	if got != "hello@vnc.design" {
		t.Errorf("DecodeEmail = %q", got)
	}
}

func TestDecodeEmailMalformed(t *testing.T) {
	tests := []string{"%%%not-base64", "bm90LWFuLWVtYWls"} // second is "not-an-email"
	for _, in := range tests {
		_, err := Contact{Email: in}.DecodeEmail()
		if !errors.Is(err, ErrMalformedEmail) {
			t.Errorf("DecodeEmail(%q) err = %v, want ErrMalformedEmail", in, err)
		}
	}
}

func TestInitial(t *testing.T) {
	if got := (Profile{Name: "Émile"}).Initial(); got != "É" {
		t.Errorf("Initial = %q", got)
	}
	if got := (Profile{}).Initial(); got != "?" {
		t.Errorf("empty Initial = %q", got)
	}
}

func TestSkillLines(t *testing.T) {
	p := Profile{Skills: []string{"React", "Next.js", "TypeScript", " ", "Design Systems"}}
	tests := []struct {
		width int
		want  []string
	}{
		{80, []string{"React / Next.js / TypeScript / Design Systems"}},
		{30, []string{"React / Next.js / TypeScript", "Design Systems"}},
		{5, []string{"React", "Next.js", "TypeScript", "Design Systems"}},
	}
	for _, tt := range tests {
		got := p.SkillLines(tt.width)
		if len(got) != len(tt.want) {
			t.Errorf("SkillLines(%d) = %q, want %q", tt.width, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("SkillLines(%d) = %q, want %q", tt.width, got, tt.want)
				break
			}
		}
	}
	if got := (Profile{}).SkillLines(40); len(got) != 0 {
		t.Errorf("no skills gave %q", got)
	}
}

func TestProjectTitles(t *testing.T) {
	if got, want := DefaultProfile.ProjectTitles(), "Neon Dreams / Flux Engine / Zenith AI"; got != want {
		t.Errorf("ProjectTitles = %q, want %q", got, want)
	}
}

func TestLoadDefaults(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Layout != LayoutCard || s.Width != 1024 || s.Height != 640 || !s.Audio {
		t.Errorf("unexpected defaults: %+v", s)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("VNC_SEED", "99")
	t.Setenv("VNC_LAYOUT", "lanyard")
	t.Setenv("VNC_AUDIO", "false")
	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Seed != 99 || s.Layout != LayoutLanyard || s.Audio {
		t.Errorf("env not applied: %+v", s)
	}
}

func TestLoadRejectsBadValue(t *testing.T) {
	t.Setenv("VNC_SEED", "minus-one")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for bad VNC_SEED")
	}
}

func TestFestivalDate(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	got, err := Settings{}.FestivalDate(now)
	if err != nil || !got.Equal(now) {
		t.Errorf("no override: %v %v", got, err)
	}

	got, err = Settings{Date: "2025-12-31"}.FestivalDate(now)
	if err != nil || got.Month() != time.December || got.Day() != 31 {
		t.Errorf("override: %v %v", got, err)
	}

	if _, err := (Settings{Date: "31/12"}).FestivalDate(now); err == nil {
		t.Error("expected parse error")
	}
}
