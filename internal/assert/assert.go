package assert

// NotNil panics on a nil interface, used on constructor dependencies.
func NotNil(value any) {
	if value == nil {
		panic("expected value to be not nil")
	}
}
