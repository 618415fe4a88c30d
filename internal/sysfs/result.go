package sysfs

import "errors"

// WriteResult records one attempted control write. Err nil with
// Unsupported false means the kernel accepted the value; Unsupported
// means the control file does not exist on this target. A batch of
// writes carries one result per target so partial failure is visible
// and earlier successes are never rolled back.
type WriteResult struct {
	Target      string
	Attribute   string
	Value       string
	Unsupported bool
	Err         error
}

// OK reports whether the write landed.
func (r WriteResult) OK() bool {
	return r.Err == nil && !r.Unsupported
}

// NewResult classifies a write error into a result. ErrUnsupported is
// folded into the Unsupported flag since it is a per-device warning,
// not a failure.
func NewResult(target, attr, value string, err error) WriteResult {
	res := WriteResult{Target: target, Attribute: attr, Value: value, Err: err}
	var unsup *ErrUnsupported
	if errors.As(err, &unsup) {
		res.Unsupported = true
		res.Err = nil
	}
	return res
}
