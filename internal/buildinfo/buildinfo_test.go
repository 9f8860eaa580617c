package buildinfo

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintBuildData_Defaults(t *testing.T) {
	var buf bytes.Buffer
	PrintBuildData(&buf)

	out := buf.String()
	if !strings.Contains(out, "Build version: N/A") {
		t.Fatalf("expected default build version in output:\n%s", out)
	}
	if !strings.Contains(out, "Build date: N/A") {
		t.Fatalf("expected default build date in output:\n%s", out)
	}
}
