package grule

// Command is one of the four closed command variants a Block may contain:
// Define, Start, Use, or Comment.
type Command interface {
	isCommand()
	Pos() Position
}

// DefineCommand declares a rule.
type DefineCommand struct {
	Position Position
	Rule     Rule
}

func (DefineCommand) isCommand()   {}
func (c DefineCommand) Pos() Position { return c.Position }

// StartCommand designates the start rule, "<FileAlias>.<Block>.<Rule>"
// (FileAlias is "" when referring to the current file).
type StartCommand struct {
	Position   Position
	FileAlias  string
	Block      string
	Rule       string
}

func (StartCommand) isCommand()   {}
func (c StartCommand) Pos() Position { return c.Position }

// UseCommand imports a block under a local alias.
type UseCommand struct {
	Position   Position
	FileAlias  string
	Block      string
	BlockAlias string
}

func (UseCommand) isCommand()   {}
func (c UseCommand) Pos() Position { return c.Position }

// CommentCommand carries only explanatory text; it has no effect on the
// catalog.
type CommentCommand struct {
	Position Position
	Text     string
}

func (CommentCommand) isCommand()   {}
func (c CommentCommand) Pos() Position { return c.Position }

// Block is a named container of Commands. MainBlockName is the reserved
// block name that Start commands must appear in.
const MainBlockName = "Main"

type Block struct {
	Name     string
	Commands []Command

	// Rules indexes this block's Define commands by local rule name, for
	// O(1) duplicate-name checking and lookup.
	Rules map[string]Rule
}

// NewBlock returns an empty Block with the given name.
func NewBlock(name string) *Block {
	return &Block{
		Name:  name,
		Rules: make(map[string]Rule),
	}
}

// AddDefine appends a DefineCommand and indexes its rule. Returns false if a
// rule by that local name already exists in the block (the caller must
// treat this as a hard DuplicatedRuleName error and not add the rule).
func (b *Block) AddDefine(cmd DefineCommand) bool {
	if _, exists := b.Rules[cmd.Rule.LocalName]; exists {
		return false
	}
	b.Commands = append(b.Commands, cmd)
	b.Rules[cmd.Rule.LocalName] = cmd.Rule
	return true
}

// AddCommand appends any non-Define command.
func (b *Block) AddCommand(cmd Command) {
	b.Commands = append(b.Commands, cmd)
}
