package hostlib

import (
	"github.com/peter-r-g/CodeItOut/script"
)

// Action is one queued traverser instruction
type Action int

const (
	MoveForward Action = iota
	TurnLeft
	TurnRight
	UseObject
	UseItem
	PickupItem
	DropItem
	Wait
)

var actionNames = [...]string{
	MoveForward: "MoveForward",
	TurnLeft:    "TurnLeft",
	TurnRight:   "TurnRight",
	UseObject:   "UseObject",
	UseItem:     "UseItem",
	PickupItem:  "PickupItem",
	DropItem:    "DropItem",
	Wait:        "Wait",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// Step is a queued action. Item is the inventory slot for UseItem and DropItem.
type Step struct {
	Action Action
	Item   int
}

// Traverser records the actions a gameplay script queues. The actions
// are played back by the game after the script finishes.
type Traverser struct {
	steps []Step
}

func NewTraverser() *Traverser {
	return &Traverser{}
}

func (t *Traverser) AddAction(action Action, item int) {
	t.steps = append(t.steps, Step{Action: action, Item: item})
}

// Steps returns the queued actions in order
func (t *Traverser) Steps() []Step {
	return append([]Step(nil), t.steps...)
}

func (t *Traverser) Reset() {
	t.steps = nil
}

func (t *Traverser) simple(action Action) script.MethodSpec {
	return script.MethodSpec{
		Names:  []string{action.String()},
		Params: params(),
		Invoke: func(*script.Script, []any) (any, error) {
			t.AddAction(action, 0)
			return nil, nil
		},
	}
}

func (t *Traverser) indexed(action Action) script.MethodSpec {
	return script.MethodSpec{
		Names:  []string{action.String()},
		Params: params(number("itemIndex")),
		Invoke: func(_ *script.Script, args []any) (any, error) {
			index, err := whole("itemIndex", args[0])
			if err != nil {
				return nil, err
			}
			t.AddAction(action, index)
			return nil, nil
		},
	}
}

func (t *Traverser) Register(s *script.Script) error {
	err := register(s, []script.MethodSpec{
		t.simple(TurnLeft),
		t.simple(TurnRight),
		t.simple(MoveForward),
		t.simple(UseObject),
		t.indexed(UseItem),
		t.simple(PickupItem),
		t.indexed(DropItem),
		t.simple(Wait),
	})
	if err != nil {
		return err
	}

	return s.RegisterVariable(script.VariableSpec{
		Names:   []string{"ActionCount"},
		Type:    script.HostNumber,
		CanRead: true,
		Get:     func() any { return float64(len(t.steps)) },
	})
}
