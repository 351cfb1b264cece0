package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	got := Template()
	if !strings.HasPrefix(got, "{{.Name}} "+Version+"\ncommit: "+Commit+"\n") {
		t.Errorf("Template() = %q", got)
	}
	if !strings.Contains(got, "built: "+Date) {
		t.Errorf("Template() = %q, missing build date", got)
	}
}

func TestString(t *testing.T) {
	lines := strings.Split(String(), "\n")
	if len(lines) != 4 {
		t.Fatalf("String() has %d lines, want 4", len(lines))
	}
	if lines[0] != "version: "+Version {
		t.Errorf("first line = %q", lines[0])
	}
}
