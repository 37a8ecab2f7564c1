package notification

import (
	"testing"

	"github.com/SamirAliWebDev/Todo/internal/config"
)

func TestNotifier_Disabled(t *testing.T) {
	n := New(&config.NotificationConfig{Enabled: false})

	if n.IsEnabled() {
		t.Error("IsEnabled() = true for a disabled notifier")
	}

	// Disabled notifiers never touch the desktop.
	if err := n.NotifyAllDone(3); err != nil {
		t.Errorf("NotifyAllDone() error = %v when disabled", err)
	}
}

func TestNotifier_NilConfig(t *testing.T) {
	n := New(nil)

	if n.IsEnabled() {
		t.Error("IsEnabled() = true for a nil config")
	}
	if err := n.Notify("title", "message"); err != nil {
		t.Errorf("Notify() error = %v with nil config", err)
	}
	n.SetEnabled(true) // must not panic
}

func TestNotifier_SetEnabled(t *testing.T) {
	cfg := &config.NotificationConfig{Enabled: true}
	n := New(cfg)

	n.SetEnabled(false)

	if n.IsEnabled() {
		t.Error("IsEnabled() = true after SetEnabled(false)")
	}
	if cfg.Enabled {
		t.Error("SetEnabled() should write through to the shared config")
	}
}
