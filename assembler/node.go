package assembler

// NodeType defines the type of a statement.
type NodeType int

const (
	// NodeInstruction type.
	NodeInstruction NodeType = iota
	// NodeLabel type.
	NodeLabel
	// NodeDirective type.
	NodeDirective
)

// Node is one statement cut from the token stream.
type Node struct {
	Type     NodeType
	Line     int
	Label    string  // NodeLabel: name without the trailing colon
	Mnemonic string  // NodeInstruction: "add", "b.eq", ...
	Operands []Token // NodeInstruction operand tokens, NodeDirective value
	Name     string  // NodeDirective: ".8byte"
}

// Size returns the number of bytes the node occupies in the output.
func (n *Node) Size() int64 {
	switch n.Type {
	case NodeInstruction:
		return 4
	case NodeDirective:
		return directiveSize(n.Name)
	}
	return 0
}
