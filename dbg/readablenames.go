package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts pointers into random readable names, so that debug logs can
// say "BraveOtter" instead of "0xc000123450". The hull solver names each
// connect frame after its point slice, which makes it possible to follow one
// subproblem through the Kirkpatrick–Seidel recursion, even when the halves run
// on different goroutines. It flagrantly leaks memory but generates the names
// lazily, so it's not a problem unless debug logging is on.

var (
	mu   sync.Mutex
	memo map[interface{}]string
)

func init() {
	memo = make(map[interface{}]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// Name returns the readable name for obj, which must be a pointer (or nil).
// Safe for concurrent use, since the hull solver may name frames from several
// goroutines.
func Name(obj interface{}) string {
	if obj == nil || reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}
