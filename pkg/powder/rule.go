package powder

import "fmt"

// Rule is a movement strategy a material attempts during a tick.
type Rule uint8

const (
	// FallStraight moves one cell down.
	FallStraight Rule = iota
	// SlideDiagonally moves down-left or down-right at random when both are open.
	SlideDiagonally
	// SlideLeft moves down-left.
	SlideLeft
	// SlideRight moves down-right.
	SlideRight
	// FlowHorizontal moves left or right at random when both are open.
	FlowHorizontal
	// FlowLeft moves one cell left.
	FlowLeft
	// FlowRight moves one cell right.
	FlowRight
)

var ruleNames = [...]string{
	FallStraight:    "fall-straight",
	SlideDiagonally: "slide-diagonally",
	SlideLeft:       "slide-left",
	SlideRight:      "slide-right",
	FlowHorizontal:  "flow-horizontal",
	FlowLeft:        "flow-left",
	FlowRight:       "flow-right",
}

func (r Rule) String() string {
	if int(r) < len(ruleNames) {
		return ruleNames[r]
	}
	return fmt.Sprintf("rule(%d)", uint8(r))
}

// ParseRule resolves a rule by its hyphenated name.
func ParseRule(name string) (Rule, error) {
	for i, n := range ruleNames {
		if n == name {
			return Rule(i), nil
		}
	}
	return 0, fmt.Errorf("powder: unknown rule %q", name)
}

// UnmarshalText lets rules be decoded from catalog files.
func (r *Rule) UnmarshalText(text []byte) error {
	parsed, err := ParseRule(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalText renders the hyphenated name.
func (r Rule) MarshalText() ([]byte, error) { return []byte(r.String()), nil }
