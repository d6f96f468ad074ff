package result

import (
	"fmt"
	"hash/fnv"
	"reflect"
)

// Equal reports semantic equality. Two Oks are equal when their payloads
// are deeply equal. Two Errs are equal when the failures have the same
// dynamic type and the same message text; identity of the error object is
// irrelevant. id, createdAt and the frozen trace do not participate.
func (r Result[T]) Equal(other Result[T]) bool {
	if r.v != other.v {
		return false
	}
	switch r.v {
	case variantOk:
		return reflect.DeepEqual(r.value, other.value)
	case variantErr:
		return sameFailure(r.err, other.err)
	default:
		return true
	}
}

func sameFailure(a, b error) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return a.Error() == b.Error()
}

// Hash returns a value consistent with Equal: equal Results hash equal.
// Errs hash over the failure's dynamic type and message; Oks hash over the
// payload's printed rendering, so payloads that print by address hash by
// identity.
func (r Result[T]) Hash() uint64 {
	h := fnv.New64a()
	switch r.v {
	case variantOk:
		h.Write([]byte{1})
		fmt.Fprintf(h, "%v", r.value)
	case variantErr:
		h.Write([]byte{2})
		if r.err != nil {
			fmt.Fprintf(h, "%v\x00%s", reflect.TypeOf(r.err), r.err.Error())
		}
	}
	return h.Sum64()
}
