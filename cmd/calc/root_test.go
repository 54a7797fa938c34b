package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestEvalPrintsDisplay(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{args: []string{"eval", "5+3+2="}, want: "10\n"},
		{args: []string{"eval", "0.1", "+", "0.2", "="}, want: "0.3\n"},
		{args: []string{"eval", "12x"}, want: "12 ×\n12\n"},
		{args: []string{"eval", "9/0="}, want: "! Cannot divide by zero!\n0\n"},
	}

	for _, tc := range tests {
		t.Run(strings.Join(tc.args[1:], " "), func(t *testing.T) {
			out, _, err := execute(t, "", tc.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != tc.want {
				t.Fatalf("expected output %q, got %q", tc.want, out)
			}
		})
	}
}

func TestEvalJSON(t *testing.T) {
	out, _, err := execute(t, "", "eval", "--json", "7*6=")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var d display
	if err := json.Unmarshal([]byte(out), &d); err != nil {
		t.Fatalf("decoding output %q: %v", out, err)
	}
	if d.Current != "42" || d.Previous != "" || d.Alert != "" {
		t.Fatalf("unexpected display %+v", d)
	}
}

func TestEvalRejectsUnknownKeys(t *testing.T) {
	if _, _, err := execute(t, "", "eval", "1+q"); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestReplKeepsStateBetweenLines(t *testing.T) {
	stdin := "5+\n3\n+2=\nbad!\nc\nquit\n7\n"

	out, errOut, err := execute(t, stdin, "repl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "5 +\n5\n5 +\n3\n10\n0\n"
	if out != want {
		t.Fatalf("expected output %q, got %q", want, out)
	}
	if !strings.Contains(errOut, "unknown input") {
		t.Fatalf("expected unknown input error on stderr, got %q", errOut)
	}
}
