package version

import (
	"strings"
	"testing"
)

func TestGetVersionInfo_Defaults(t *testing.T) {
	info := GetVersionInfo()
	if info.Version == "" {
		t.Error("version must never be empty")
	}
	if info.GoVersion == "" {
		t.Error("expected go version from build info")
	}
	if info.BuildTime == "" {
		t.Error("expected a build time fallback")
	}
	if info.BuildDate.IsZero() {
		t.Error("expected a non-zero build date")
	}
}

func TestGetShortVersion_Format(t *testing.T) {
	short := GetShortVersion()
	if short == "" {
		t.Fatal("short version must not be empty")
	}
	if !strings.HasPrefix(short, Version) {
		t.Errorf("short version %q should start with %q", short, Version)
	}
}
