package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// ActionKind classifies a pending destructive action.
type ActionKind string

const (
	ActionDelete      ActionKind = "delete"
	ActionDeleteBatch ActionKind = "delete-batch"
	ActionRestore     ActionKind = "restore"
	ActionWipe        ActionKind = "wipe"
)

// PendingAction describes a destructive operation awaiting approval:
// what kind it is, what it will touch, and the warning shown to the
// user. The core logic issues one of these and a Confirmer resolves it
// to proceed or cancel, keeping UI control flow out of the operations
// themselves.
type PendingAction struct {
	Kind     ActionKind
	Summary  string   // one-line description of what will happen
	Warning  string   // extra warning line, optional
	Affected []string // ids or paths the action will touch
}

// Confirmer resolves pending destructive actions.
type Confirmer interface {
	Confirm(action PendingAction) (bool, error)
}

// terminalConfirmer prompts on the command's streams.
type terminalConfirmer struct {
	cmd *cobra.Command
}

func (c terminalConfirmer) Confirm(action PendingAction) (bool, error) {
	out := c.cmd.OutOrStdout()
	fmt.Fprintln(out, action.Summary)
	for _, item := range action.Affected {
		fmt.Fprintf(out, "  %s\n", item)
	}
	if action.Warning != "" {
		fmt.Fprintln(out, action.Warning)
	}
	fmt.Fprint(out, "Continue? [y/N]: ")

	reader := bufio.NewReader(c.cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		// EOF without input counts as a refusal.
		fmt.Fprintln(out)
		return false, nil
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// autoConfirmer approves everything; used under --yes.
type autoConfirmer struct{}

func (autoConfirmer) Confirm(PendingAction) (bool, error) { return true, nil }

// Confirmer returns the configured confirmer: auto-approve under --yes,
// otherwise a terminal prompt on the command's streams.
func (o *RootOptions) Confirmer(cmd *cobra.Command) Confirmer {
	if o.confirmer != nil {
		return o.confirmer
	}
	if o.Yes {
		return autoConfirmer{}
	}
	return terminalConfirmer{cmd: cmd}
}

// errAborted is returned when the user declines a confirmation.
var errAborted = NewExitError(ExitFailure, "aborted")
