package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestComputeCmd_PrintsCurveAndTotal(t *testing.T) {
	root := newRootCmd()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"compute", "--dose", "100", "--rate", "0.5", "--start", "0", "--end", "10", "--intervals", "5"})

	if err := root.Execute(); err != nil {
		t.Fatalf("compute error: %v", err)
	}

	got := out.String()
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected header + 5 rows + total, got %d lines: %q", len(lines), got)
	}
	if !strings.HasPrefix(lines[1], "0 ") || !strings.Contains(lines[1], "100") {
		t.Fatalf("unexpected first row %q", lines[1])
	}
	if !strings.HasPrefix(lines[3], "5 ") {
		t.Fatalf("unexpected middle row %q", lines[3])
	}
	if lines[6] != "Total Effect = 198.65" {
		t.Fatalf("unexpected total line %q", lines[6])
	}
}

func TestComputeCmd_RejectsBadRange(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"compute", "--dose", "1", "--end", "5", "--intervals", "1"})

	if err := root.Execute(); err == nil {
		t.Fatalf("expected error for one interval")
	}
}
