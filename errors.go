package units

// Reports an operation between two physically incompatible kinds, like
// adding a duration to a distance. Compatibility failures are structural
// bugs in the calling code, never data: operators panic with a value of
// this type immediately at the call site, while [Convert] returns it as
// an ordinary error for callers picking units dynamically.
type DimensionError struct {
	Op    string
	Left  Dimension
	Right Dimension
}

func (self *DimensionError) Error() string {
	left, right := self.Left.String(), self.Right.String()
	if left == "" { left = "scalar" }
	if right == "" { right = "scalar" }
	return "units: " + self.Op + ": incompatible dimensions [" + left + "] and [" + right + "]"
}

// Reports an operation that mixed value scales, like adding a decibel
// quantity to a linear one. There is no single consistent result for
// such a sum, so operators panic with a value of this type instead of
// guessing.
type ScaleError struct {
	Op string
}

func (self *ScaleError) Error() string {
	return "units: " + self.Op + ": operands use different value scales"
}
