package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDeleteAbortsWithoutConfirmation(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	out, err := runCommand(t, "n\n", "delete", "5", "--api-url", srv.URL)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "Aborted.") {
		t.Fatalf("expected abort message, got %q", out)
	}
	if requests != 0 {
		t.Fatalf("declined delete must not reach the store, saw %d requests", requests)
	}
}

func TestDeleteWithYesSkipsPrompt(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"message":"Expense deleted successfully","data":[]}`))
	}))
	defer srv.Close()

	out, err := runCommand(t, "", "delete", "5", "--yes", "--api-url", srv.URL)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if strings.Contains(out, "[y/N]") {
		t.Fatalf("prompt should be skipped, got %q", out)
	}
	if len(paths) == 0 || paths[0] != "DELETE /api/expenses/5" {
		t.Fatalf("unexpected requests: %v", paths)
	}
}

func TestDeleteRejectsBadID(t *testing.T) {
	if _, err := runCommand(t, "", "delete", "abc", "--yes"); err == nil {
		t.Fatal("expected error for non-numeric id")
	}
}
