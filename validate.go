package lineseek

// validate rejects impossible start/direction/bound combinations. startLine
// and maxLine are the already resolved line numbers; maxLine is ignored
// when maxPos is nil.
func validate(pos Position, dir Direction, maxPos *Position, startLine, maxLine int) error {
	switch {
	case dir == Backward && pos.IsStart():
		return &InvalidDirectionError{Position: pos, Direction: dir}
	case dir == Forward && pos.IsEnd():
		return &InvalidDirectionError{Position: pos, Direction: dir}
	case maxPos == nil:
		return nil
	case dir == Forward && maxLine < startLine:
		return &MaxPositionError{Comparison: "less", Direction: dir}
	case dir == Backward && maxLine > startLine:
		return &MaxPositionError{Comparison: "greater", Direction: dir}
	}
	return nil
}
