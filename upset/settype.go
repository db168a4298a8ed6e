package upset

//go:generate go run ../tools/gen-enum -type=SetType -generate-flag -text

// SetType tags a set-like entity as a plain set or as one of the combination
// kinds. The zero value is invalid.
type SetType uint8

const (
	SetTypeSet                  SetType = iota + 1 // name=set
	SetTypeIntersection                            // name=intersection
	SetTypeDistinctIntersection                    // name=distinctIntersection
	SetTypeUnion                                   // name=union
	SetTypeComposite                               // name=composite
)

// IsCombination reports whether t is one of the combination kinds.
func (t SetType) IsCombination() bool {
	switch t {
	case SetTypeIntersection, SetTypeDistinctIntersection, SetTypeUnion, SetTypeComposite:
		return true
	default:
		return false
	}
}

// combinationSeparator is the infix used when naming generated combinations.
func (t SetType) combinationSeparator() string {
	if t == SetTypeUnion {
		return " ∪ "
	}

	return " ∩ "
}
