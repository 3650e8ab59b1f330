package gitcli

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

var CommandContext = exec.CommandContext

func (g *Git) call(ctx context.Context, dir string, args []string) ([]byte, error) {
	cmd := CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	eb := &bytes.Buffer{}
	ob := &bytes.Buffer{}
	cmd.Stderr = eb
	cmd.Stdout = ob

	g.cfg.Debugf("+ git %s", ArgsString(args))
	err := cmd.Run()
	if err != nil {
		return nil, fmt.Errorf("exec: git %q failed: %s (%w)", args, strings.TrimSpace(eb.String()), err)
	}
	return ob.Bytes(), err
}

// ArgsString returns a string suitable for copy/paste into the terminal.
func ArgsString(args []string) string {
	b := &bytes.Buffer{}

	for i, arg := range args {
		if strings.ContainsAny(arg, " |%") {
			b.WriteString(`"`)
			b.WriteString(arg)
			b.WriteString(`"`)
		} else {
			b.WriteString(arg)
		}

		if i < len(args)-1 {
			b.WriteString(" ")
		}
	}

	return b.String()
}
