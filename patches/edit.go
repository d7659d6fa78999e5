package patches

// Edit is an exact-text substitution. Old must occur exactly once in the
// text it is applied to; matching is character-for-character, no
// normalization and no patterns. A proposed edit therefore has to carry
// enough surrounding context to be unique.
type Edit struct {
	Old string `json:"old"`
	New string `json:"new"`
}
