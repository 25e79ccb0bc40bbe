package configs

import (
	"fmt"

	"cuelang.org/go/cue"
	"github.com/reusee/phiargs/args"
)

// Args collects the struct or list at path from every file holding it.
// Bindings of later files override those of earlier ones.
func Args(loader Loader, path string) (ret args.Env, err error) {
	found := false
	for value, err := range loader.IterCueValues(path) {
		if err != nil {
			return ret, err
		}
		env, err := ToEnv(*value)
		if err != nil {
			return ret, fmt.Errorf("%s: %w", path, err)
		}
		var entries []args.Entry
		for name, v := range env.All() {
			entries = append(entries, args.Entry{
				Name:  name,
				Value: v,
			})
		}
		ret = args.LayeredOver(ret, entries...)
		found = true
	}
	if !found {
		return ret, fmt.Errorf("%s: %w", path, ErrValueNotFound)
	}
	return ret, nil
}

// ToEnv converts a struct to named bindings and a list to positional bindings.
func ToEnv(value cue.Value) (args.Env, error) {
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return args.Env{}, err
	}
	switch value.Kind() {
	case cue.StructKind:
		entries, err := structEntries(value)
		if err != nil {
			return args.Env{}, err
		}
		return args.FromEntries(entries...), nil
	case cue.ListKind:
		items, err := listItems(value)
		if err != nil {
			return args.Env{}, err
		}
		return args.FromPositional(items...), nil
	}
	return args.Env{}, fmt.Errorf("expecting struct or list, got %v", value.Kind())
}

func structEntries(value cue.Value) ([]args.Entry, error) {
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, err
	}
	if k := value.Kind(); k != cue.StructKind {
		return nil, fmt.Errorf("expecting struct, got %v", k)
	}
	iter, err := value.Fields()
	if err != nil {
		return nil, err
	}
	var entries []args.Entry
	for iter.Next() {
		v, err := toGo(iter.Value())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", iter.Selector(), err)
		}
		entries = append(entries, args.Entry{
			Name:  iter.Selector().Unquoted(),
			Value: args.Direct(v),
		})
	}
	return entries, nil
}

func listItems(value cue.Value) ([]any, error) {
	iter, err := value.List()
	if err != nil {
		return nil, err
	}
	var items []any
	for i := 0; iter.Next(); i++ {
		v, err := toGo(iter.Value())
		if err != nil {
			return nil, fmt.Errorf("%d: %w", i, err)
		}
		items = append(items, v)
	}
	return items, nil
}

func toGo(value cue.Value) (any, error) {
	switch value.Kind() {

	case cue.NullKind:
		return nil, nil

	case cue.BoolKind:
		return value.Bool()

	case cue.IntKind:
		return value.Int64()

	case cue.FloatKind:
		return value.Float64()

	case cue.StringKind:
		return value.String()

	case cue.BytesKind:
		return value.Bytes()

	case cue.StructKind, cue.ListKind:
		return ToEnv(value)

	}
	return nil, fmt.Errorf("unsupported value kind: %v", value.Kind())
}
