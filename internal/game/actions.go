package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iburimskiy/vnc/internal/config"
	"github.com/iburimskiy/vnc/internal/log"
	"github.com/iburimskiy/vnc/internal/platform"
	"github.com/iburimskiy/vnc/internal/sensor"
	"github.com/iburimskiy/vnc/internal/vcard"
)

const motionTimeout = 30 * time.Second

// run executes fn off the game loop. Dialogs and browser promises block,
// and blocking inside Update stalls the frame.
func (g *Game) run(name string, fn func() string) {
	if g.busy {
		return
	}
	g.busy = true
	go func() {
		l := log.With("action", name)
		l.Debug("action started")
		msg := fn()
		l.Debug("action finished", "status", msg)
		g.results <- msg
	}()
}

func (g *Game) drainResults() {
	for {
		select {
		case msg := <-g.results:
			g.busy = false
			g.setStatus(msg)
		default:
			return
		}
	}
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusTicks = config.StatusMessageTicks
	if msg == "" {
		g.statusTicks = 0
	}
}

func (g *Game) copyEmail() {
	email, err := g.profile.Contact.DecodeEmail()
	if err != nil {
		log.Error("contact email unreadable", "err", err)
		g.setStatus("Email unavailable")
		return
	}
	g.run("copy-email", func() string {
		err := platform.CopyText(email)
		if err == nil {
			return "Email copied: " + email
		}
		if !errors.Is(err, platform.ErrUnavailable) {
			log.Warn("clipboard write failed", "err", err)
		}
		// No clipboard: show the address instead.
		if err := platform.Info("Email: " + email); err != nil {
			log.Warn("info dialog failed", "err", err)
		}
		return "Email: " + email
	})
}

func (g *Game) addContact() {
	data, err := vcard.Encode(g.profile)
	if err != nil {
		log.Error("vcard encode failed", "err", err)
		g.setStatus(fmt.Sprintf("Contact export failed: %v", err))
		return
	}
	name := vcard.Filename(g.profile)
	g.run("add-contact", func() string {
		path, err := platform.SaveFile(name, data, vcard.MIMEType)
		switch {
		case err != nil:
			log.Warn("contact save failed", "err", err)
			_ = platform.Error(fmt.Sprintf("Could not save contact: %v", err))
			return "Contact not saved"
		case path == "":
			return ""
		default:
			log.Info("contact saved", "path", path)
			return "Contact saved: " + path
		}
	})
}

func (g *Game) enableMotion() {
	if !g.session.NeedsPrompt() || g.busy {
		return
	}
	g.setStatus("Tap the screen to allow motion")
	g.run("enable-motion", func() string {
		ctx, cancel := context.WithTimeout(context.Background(), motionTimeout)
		defer cancel()
		err := g.session.EnableMotion(ctx)
		switch {
		case err == nil:
			return "Motion enabled"
		case errors.Is(err, sensor.ErrPermissionDenied):
			return "Motion permission denied, using pointer"
		default:
			return fmt.Sprintf("Motion unavailable: %v", err)
		}
	})
}
