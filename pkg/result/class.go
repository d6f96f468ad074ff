package result

import (
	"errors"
	"fmt"
	"reflect"
)

// Class is one declared catchable failure class. The restricted capture
// adapters take a non-empty set of them and capture a failure only when
// some declared class catches it.
type Class interface {
	Catches(err error) bool
	String() string
}

// As declares the class of failures matching E by errors.As semantics: a
// failure is caught when any error in its wrap chain is assignable to E.
// As[error] therefore catches every failure.
func As[E error]() Class {
	return asClass[E]{}
}

type asClass[E error] struct{}

func (asClass[E]) Catches(err error) bool {
	if err == nil {
		return false
	}
	var target E
	return errors.As(err, &target)
}

func (asClass[E]) String() string {
	return reflect.TypeOf((*E)(nil)).Elem().String()
}

// Is declares the class of failures matching a sentinel by errors.Is.
func Is(target error) Class {
	return isClass{target: target}
}

type isClass struct {
	target error
}

func (c isClass) Catches(err error) bool {
	return err != nil && errors.Is(err, c.target)
}

func (c isClass) String() string {
	return fmt.Sprintf("is(%v)", c.target)
}

func anyCatches(classes []Class, err error) bool {
	for _, c := range classes {
		if c.Catches(err) {
			return true
		}
	}
	return false
}
