package assert

import (
	"os"

	fmt2 "github.com/qjpcpu/linkedlist/fmt"
)

var printMsg = fmt2.Fprinter(os.Stderr).PrependTag("assert")

// ShouldBeNil would panic if err is not nil
func ShouldBeNil(err error, msgAndArgs ...interface{}) {
	if err == nil {
		return
	}
	printMsgArgs(msgAndArgs...)
	panic(err)
}

// ShouldBeTrue would panic if codition is false
func ShouldBeTrue(condition bool, msg ...interface{}) {
	if !condition {
		printMsgArgs(msg...)
		panic("should be true")
	}
}

// AllowPanic swallow panic, the recovered value is returned
func AllowPanic(fn func()) (recovered interface{}) {
	defer func() {
		recovered = recover()
	}()
	fn()
	return
}

func printMsgArgs(args ...interface{}) {
	switch len(args) {
	case 0:
	case 1:
		printMsg("%+v", args[0])
	default:
		if format, ok := args[0].(string); ok {
			printMsg(format, args[1:]...)
		} else {
			printMsg("%+v", args)
		}
	}
}
