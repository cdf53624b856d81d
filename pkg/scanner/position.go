package scanner

import (
	"fmt"
)

// Position describes the location of a character or token start in the
// scanned document. Offset is the byte offset of the first byte of the
// character, Line and Column are 1-based as a text editor would report
// them. Before the first character of a stream has been produced the
// position is {0, 1, 0}; Column 0 does not occur afterwards.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
