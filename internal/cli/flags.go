package cli

import (
	"fmt"

	"github.com/spf13/pflag"
)

// parsedFlag adapts a parse function to pflag.Value, so the value types in
// pkg/units stay immutable and free of flag plumbing.
type parsedFlag[T any] struct {
	typ   string
	parse func(string) (T, error)
	store func(T)
	show  func() string
}

func (f *parsedFlag[T]) Set(s string) error {
	v, err := f.parse(s)
	if err != nil {
		return err
	}
	f.store(v)
	return nil
}

func (f *parsedFlag[T]) String() string { return f.show() }

func (f *parsedFlag[T]) Type() string { return f.typ }

// valueFlag binds a flag to *p, which keeps its current value as default.
func valueFlag[T fmt.Stringer](p *T, typ string, parse func(string) (T, error)) pflag.Value {
	return &parsedFlag[T]{
		typ:   typ,
		parse: parse,
		store: func(v T) { *p = v },
		show:  func() string { return (*p).String() },
	}
}

// optionalFlag binds a flag to *p, which stays nil unless the flag is given.
func optionalFlag[T fmt.Stringer](p **T, typ string, parse func(string) (T, error)) pflag.Value {
	return &parsedFlag[T]{
		typ:   typ,
		parse: parse,
		store: func(v T) { *p = &v },
		show: func() string {
			if *p == nil {
				return ""
			}
			return (**p).String()
		},
	}
}
