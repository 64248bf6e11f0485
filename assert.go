package dynavec

import (
	"fmt"
)

// FailHandler reports a contract violation. The default handler panics;
// a replacement that returns normally leaves the offending operation to
// run into whatever runtime fault the violated precondition implies.
type FailHandler func(msg string)

var failHandler FailHandler = defaultFailHandler

func defaultFailHandler(msg string) {
	panic(msg)
}

// SetFailHandler replaces the handler invoked on contract violations
// (and, in dynavecdebug builds, on allocation failures). Passing nil
// restores the default panic handler. Configure once at startup; the
// handler is not synchronized.
func SetFailHandler(fn FailHandler) {
	if fn == nil {
		fn = defaultFailHandler
	}
	failHandler = fn
}

func check(cond bool, format string, args ...any) {
	if !cond {
		failHandler("dynavec: " + fmt.Sprintf(format, args...))
	}
}

// debugFail reports an allocation failure through the fail handler in
// dynavecdebug builds. Release builds rely on the returned error alone.
func debugFail(format string, args ...any) {
	if debugFailFast {
		failHandler("dynavec: " + fmt.Sprintf(format, args...))
	}
}
