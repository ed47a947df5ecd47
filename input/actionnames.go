package input

import "sort"

// Action is what a bound key asks the previewer to do
type Action uint8

const (
	ActionNone Action = iota
	ActionNext
	ActionPrevious
	ActionRefresh
	ActionQuit
)

func (a Action) String() string {
	for name, act := range actionRegistry {
		if act == a && name != "none" {
			return name
		}
	}
	return "none"
}

// actionRegistry maps canonical action names used in config
var actionRegistry = map[string]Action{
	"none":     ActionNone,
	"next":     ActionNext,
	"previous": ActionPrevious,
	"refresh":  ActionRefresh,
	"quit":     ActionQuit,
}

// ActionByName resolves a config action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

// ActionNames returns all registered action names sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for n := range actionRegistry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
