package gameplay

import (
	"fmt"
	"strings"

	engineinput "reactorbay/pkg/engine/input"
	"reactorbay/pkg/game/state"
)

// ShowBindings lists the command words for every action. With an action name
// it lists just that action, and with an action name and a word it rebinds
// the action to that single word.
func ShowBindings(b *state.Bay, args []string) {
	if len(args) == 0 {
		lines := make([]string, 0, int(engineinput.ActionQuit))
		for a := engineinput.ActionUse; a <= engineinput.ActionQuit; a++ {
			lines = append(lines, bindingLabel(a))
		}
		logMessage(b, "%s", strings.Join(lines, "; "))
		return
	}

	action, ok := engineinput.ParseAction(args[0])
	if !ok {
		logMessage(b, "There is no %q command.", args[0])
		return
	}
	if len(args) == 1 {
		logMessage(b, "%s", bindingLabel(action))
		return
	}

	if !engineinput.IsRebindable(action) {
		logMessage(b, "%s can't be rebound.", engineinput.ActionName(action))
		return
	}
	code := args[1]
	engineinput.SetSingleBinding(action, code)
	if engineinput.Parse(engineinput.DeviceScript, code).Action != action {
		logMessage(b, "ACTION{%s} is reserved.", code)
		return
	}
	logMessage(b, "Set binding for %s to ACTION{%s}", engineinput.ActionName(action), code)
}

func bindingLabel(a engineinput.Action) string {
	codes := engineinput.GetBindingsByAction()[a]
	codeText := strings.Join(codes, ", ")
	if codeText == "" {
		codeText = "(unbound)"
	}
	if !engineinput.IsRebindable(a) {
		return fmt.Sprintf("%s: %s (fixed)", engineinput.ActionName(a), codeText)
	}
	return fmt.Sprintf("%s: %s", engineinput.ActionName(a), codeText)
}
