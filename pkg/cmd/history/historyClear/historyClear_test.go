package historyClear

import (
	"bytes"
	"testing"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/shelf/internal/state"
)

func TestRunAsksBeforeClearing(t *testing.T) {
	s, err := state.Open(t.TempDir(), "", logr.Discard())
	if err != nil {
		t.Fatalf("state.Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	if err := s.Bar.Search("dune"); err != nil {
		t.Fatalf("Search returned error: %v", err)
	}

	oldConfirm, oldInteractive := confirm, isInteractive
	t.Cleanup(func() { confirm, isInteractive = oldConfirm, oldInteractive })
	isInteractive = func() bool { return true }

	answer := false
	confirm = func() (bool, error) { return answer, nil }

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	if err := run(cmd, s, false); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if out.String() != "Search histories kept.\n" || len(s.Bar.History()) != 1 {
		t.Fatalf("expected history to be kept, got %q", out.String())
	}

	answer = true
	out.Reset()
	if err := run(cmd, s, false); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if out.String() != "Search histories cleared.\n" || len(s.Bar.History()) != 0 {
		t.Fatalf("expected history to be cleared, got %q", out.String())
	}
}
