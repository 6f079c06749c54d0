package command

import "github.com/keshon/fileops/internal/util"

var (
	byKey  = map[string]Command{}
	byName = map[string]Command{}
)

// RegisterCommand adds a command under its menu key and its name
func RegisterCommand(cmd Command) {
	byKey[cmd.Short()] = cmd
	byName[cmd.Name()] = cmd
}

// GetCommand returns a command by menu key or name
func GetCommand(name string) (Command, bool) {
	if cmd, ok := byKey[name]; ok {
		return cmd, true
	}
	cmd, ok := byName[name]
	return cmd, ok
}

// AllCommands returns registered commands ordered by menu key.
func AllCommands() []Command {
	keys := util.SortedKeys(byKey)
	cmds := make([]Command, 0, len(keys))
	for _, k := range keys {
		cmds = append(cmds, byKey[k])
	}
	return cmds
}

// unregister removes a command; used by tests.
func unregister(cmd Command) {
	delete(byKey, cmd.Short())
	delete(byName, cmd.Name())
}
