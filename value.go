package opstat

// liveValue adapts a function to the Value interface.
type liveValue func() int64

func (f liveValue) Load() int64 { return f() }

// zeroValue is a Value that is always zero, used by no-op statistics.
type zeroValue struct{}

func (zeroValue) Load() int64 { return 0 }
