package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestCompletionCommand(t *testing.T) {
	for _, shell := range completionShells {
		t.Run(shell, func(t *testing.T) {
			var out bytes.Buffer
			root := New(io.Discard, LogInfo).RootCommand()
			root.SetArgs([]string{"completion", shell})
			root.SetOut(&out)
			root.SetErr(io.Discard)
			if err := root.ExecuteContext(context.Background()); err != nil {
				t.Fatalf("completion %s: %v", shell, err)
			}
			if !strings.Contains(out.String(), appName) {
				t.Errorf("%s script does not mention %s", shell, appName)
			}
		})
	}

	if err := run(t, "completion", "tcsh"); err == nil {
		t.Error("unknown shell accepted")
	}
}

func TestCompleteScripts(t *testing.T) {
	exts, dir := completeScripts(nil, nil, "")
	if dir != cobra.ShellCompDirectiveFilterFileExt {
		t.Errorf("directive = %v, want file extension filter", dir)
	}
	if strings.Join(exts, ",") != "toml,yaml,yml,json" {
		t.Errorf("extensions = %v", exts)
	}

	if _, dir := completeScripts(nil, []string{"a.toml"}, ""); dir != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("second argument directive = %v", dir)
	}

	root := New(io.Discard, LogInfo).RootCommand()
	for _, name := range []string{"render", "topology", "edit", "serve"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.ValidArgsFunction == nil {
			t.Errorf("%s does not complete script arguments", name)
		}
	}
}
