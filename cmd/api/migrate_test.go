package main

import (
	"io"
	"testing"
)

func TestMigrateCmd_RejectsBadArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no command", nil},
		{"unknown command", []string{"sideways"}},
		{"too many", []string{"up", "down"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := migrateCmd()
			cmd.SetArgs(tt.args)
			cmd.SetOut(io.Discard)
			cmd.SetErr(io.Discard)

			if err := cmd.Execute(); err == nil {
				t.Error("Execute() should reject the arguments")
			}
		})
	}
}

func TestServeCmd_PortFlag(t *testing.T) {
	cmd := serveCmd()
	if err := cmd.ParseFlags([]string{"--port", "8080"}); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}
	if got, _ := cmd.Flags().GetString("port"); got != "8080" {
		t.Errorf("port = %s, want 8080", got)
	}
}
