package operators

// Operator is the combine mode of a binary expression node.
type Operator string

const (
	OperatorAnd Operator = "AND"
	OperatorOr  Operator = "OR"
)

// IsValid reports whether op is one of the known combine modes.
func (op Operator) IsValid() bool {
	switch op {
	case OperatorAnd, OperatorOr:
		return true
	default:
		return false
	}
}
