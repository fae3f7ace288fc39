package vim

// Operator represents a Vim operator command.
// Operators act on the range produced by the motion that follows them.
type Operator struct {
	// Name is the operator identifier (e.g., "delete", "change", "yank").
	Name string

	// Key is the key that triggers this operator.
	Key rune

	// Action is the action name to dispatch (e.g., "operator.delete").
	Action string

	// ChangesText indicates if this operator modifies the buffer.
	ChangesText bool
}

// Standard operators.
var (
	// OpDelete deletes text.
	OpDelete = Operator{
		Name:        "delete",
		Key:         'd',
		Action:      "operator.delete",
		ChangesText: true,
	}

	// OpChange deletes text. There is no insert mode to enter afterwards.
	OpChange = Operator{
		Name:        "change",
		Key:         'c',
		Action:      "operator.change",
		ChangesText: true,
	}

	// OpYank copies text to a register.
	OpYank = Operator{
		Name:   "yank",
		Key:    'y',
		Action: "operator.yank",
	}
)

// operators maps operator keys to their definitions.
var operators = map[rune]*Operator{
	'd': &OpDelete,
	'c': &OpChange,
	'y': &OpYank,
}

// GetOperator returns the operator for the given key.
// Returns nil if the key is not an operator.
func GetOperator(key rune) *Operator {
	return operators[key]
}

// OperatorByName returns the operator with the given name.
func OperatorByName(name string) *Operator {
	for _, op := range operators {
		if op.Name == name {
			return op
		}
	}
	return nil
}
