package vim

import "github.com/dshills/sneak/internal/sneak"

// Motion represents a cursor motion command.
type Motion struct {
	// Name is the motion identifier (e.g., "left", "lineEnd").
	Name string

	// Keys is the key notation that triggers this motion.
	Keys string

	// Action is the action name to dispatch (e.g., "cursor.left").
	Action string

	// Jump marks motions that record a jump list entry.
	Jump bool
}

// Standard motions.
var (
	MotionLeft      = Motion{Name: "left", Keys: "h", Action: "cursor.left"}
	MotionRight     = Motion{Name: "right", Keys: "l", Action: "cursor.right"}
	MotionUp        = Motion{Name: "up", Keys: "k", Action: "cursor.up"}
	MotionDown      = Motion{Name: "down", Keys: "j", Action: "cursor.down"}
	MotionLineStart = Motion{Name: "lineStart", Keys: "0", Action: "cursor.lineStart"}
	MotionLineEnd   = Motion{Name: "lineEnd", Keys: "$", Action: "cursor.lineEnd"}

	MotionJumpBack    = Motion{Name: "jumpBack", Keys: "<C-o>", Action: "cursor.jumpBack"}
	MotionJumpForward = Motion{Name: "jumpForward", Keys: "<Tab>", Action: "cursor.jumpForward"}
)

// motions maps plain keys to motions.
var motions = map[rune]*Motion{
	'h': &MotionLeft,
	'l': &MotionRight,
	'k': &MotionUp,
	'j': &MotionDown,
	'0': &MotionLineStart,
	'$': &MotionLineEnd,
}

// specialMotions maps key notation of non-character keys to motions.
var specialMotions = map[string]*Motion{
	"<C-o>":   &MotionJumpBack,
	"<Tab>":   &MotionJumpForward,
	"<C-i>":   &MotionJumpForward,
	"<Left>":  &MotionLeft,
	"<Right>": &MotionRight,
	"<Up>":    &MotionUp,
	"<Down>":  &MotionDown,
	"<Home>":  &MotionLineStart,
	"<End>":   &MotionLineEnd,
}

// GetMotion returns the motion for the given key, or nil.
func GetMotion(key rune) *Motion {
	return motions[key]
}

// GetSpecialMotion returns the motion for a key in Vim notation, or nil.
func GetSpecialMotion(notation string) *Motion {
	return specialMotions[notation]
}

// Sneak action names.
const (
	ActionSneakRepeat        = "sneak.repeat"
	ActionSneakRepeatReverse = "sneak.repeatReverse"
)

// SneakAction returns the action name for a sneak variant, e.g.
// "sneak.tillForward".
func SneakAction(v sneak.Variant) string {
	return "sneak." + v.String()
}

// repeatAction returns the action for ; and , keys.
func repeatAction(r rune) (string, bool) {
	switch r {
	case ';':
		return ActionSneakRepeat, true
	case ',':
		return ActionSneakRepeatReverse, true
	}
	return "", false
}

// Edit action names.
const (
	ActionUndo = "edit.undo"
	ActionRedo = "edit.redo"
)

// edits maps key notation to history commands.
var edits = map[string]string{
	"u":     ActionUndo,
	"<C-r>": ActionRedo,
}

// GetEditAction returns the edit action for a key in Vim notation.
func GetEditAction(notation string) (string, bool) {
	action, ok := edits[notation]
	return action, ok
}
