package log

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"gopkg.in/Sirupsen/logrus.v0"
)

// captureLogs redirects log output to a buffer, in plain key=value format.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(io.Discard) })
	return &buf
}

func TestModuleByName(t *testing.T) {
	mod := NewModule("testmod")

	got, ok := ModuleByName("testmod")
	if !ok || got != mod {
		t.Fatalf("ModuleByName(testmod) = %v, %t", got, ok)
	}
	if got.String() != "testmod" {
		t.Errorf("String() = %q, want testmod", got.String())
	}
	if _, ok := ModuleByName("<error>"); ok {
		t.Error("<error> should not be a valid module name")
	}
	if _, ok := ModuleByName("nope"); ok {
		t.Error("unknown module found")
	}

	names := ModuleNames()
	for _, want := range []string{"emu", "cpu", "mem", "hwio", "rom", "testmod"} {
		found := false
		for _, name := range names {
			found = found || name == want
		}
		if !found {
			t.Errorf("ModuleNames() = %v, missing %s", names, want)
		}
	}
}

func TestEntryZ(t *testing.T) {
	buf := captureLogs(t)

	mod := NewModule("entryz")

	// Debug is off unless the module is enabled.
	if e := mod.DebugZ("hidden"); e != nil {
		t.Fatal("DebugZ should return nil for disabled module")
	}
	mod.DebugZ("hidden").Hex8("v", 1).String("s", "x").End()
	if buf.Len() != 0 {
		t.Fatalf("disabled entry was logged: %s", buf.String())
	}

	mod.WarnZ("hello").
		Hex8("h8", 0x0a).
		Hex16("h16", 0xbeef).
		Int("i", -3).
		Bool("b", true).
		Error("err", errors.New("boom")).
		Int64("i64", 1<<40).
		Duration("d", 1500*time.Millisecond).
		End()

	out := buf.String()
	for _, want := range []string{"msg=hello", "_mod=entryz", "h8=0a", "h16=beef", "i=-3", "b=true", "err=boom", "i64=1099511627776", "d=1.5s"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q should contain %q", out, want)
		}
	}

	buf.Reset()
	EnableDebugModules(mod.Mask())
	defer DisableDebugModules(mod.Mask())
	mod.DebugZ("visible").End()
	if !strings.Contains(buf.String(), "msg=visible") {
		t.Errorf("debug entry not logged: %q", buf.String())
	}
}

func TestEntryFields(t *testing.T) {
	buf := captureLogs(t)

	ModEmu.WithField("key", "val").WithFields(Fields{"n": 42}).Warn("fields")
	out := buf.String()
	for _, want := range []string{"msg=fields", "_mod=emu", "key=val", "n=42"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q should contain %q", out, want)
		}
	}
}
