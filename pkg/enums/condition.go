package enums

import "fmt"

// Condition describes the physical state of a stocked product.
type Condition string

const (
	ConditionNew     Condition = "NEW"
	ConditionUsed    Condition = "USED"
	ConditionOpenBox Condition = "OPEN_BOX"
)

var validConditions = []Condition{
	ConditionNew,
	ConditionUsed,
	ConditionOpenBox,
}

// String implements fmt.Stringer.
func (c Condition) String() string {
	return string(c)
}

// IsValid reports whether the value is a known Condition.
func (c Condition) IsValid() bool {
	for _, candidate := range validConditions {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCondition converts a symbolic name into a Condition. The lookup
// is exact; callers that want case-insensitive matching upper-case the
// input first.
func ParseCondition(value string) (Condition, error) {
	for _, candidate := range validConditions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid condition %q", value)
}

// Conditions returns the full enumeration in declaration order.
func Conditions() []Condition {
	return append([]Condition(nil), validConditions...)
}
