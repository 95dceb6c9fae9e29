package bootstrap

import "github.com/oakmoth/gramble/internal/grule"

// mainBlock returns the bootstrap's own Main block: a single Start command
// targeting Syntax.FCPEG, mirroring get_main_block in the original source.
func mainBlock() *grule.Block {
	b := grule.NewBlock(grule.MainBlockName)
	b.AddCommand(grule.StartCommand{Block: "Syntax", Rule: "FCPEG"})
	return b
}
