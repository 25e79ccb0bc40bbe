package cmds

// Var defines name to set a value and "name." to reset it.
func Var[T any](name string) *T {
	var value T

	Define(name, Func(func(v T) {
		value = v
	}).Desc("set "+name))

	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Desc("reset "+name))

	return &value
}

// Switch defines name to turn a flag on and "!name" to turn it off.
func Switch(name string) *bool {
	var value bool

	Define(name, Func(func() {
		value = true
	}).Desc("turn on "+name))

	Define("!"+name, Func(func() {
		value = false
	}).Desc("turn off "+name))

	return &value
}

func Collect[T any](name string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Desc("append to "+name))
	return &value
}
