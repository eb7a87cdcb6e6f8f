package executor

import (
	"bytes"
	"runtime"
	"strconv"
)

// goroutineID extracts the calling goroutine's runtime-assigned id. The
// standard library exposes no supported way to do this; we parse it out of
// a runtime.Stack dump, a narrowly-scoped technique used only to identify
// a ThreadExecutor's own, single, long-lived worker goroutine — never to
// track arbitrary task-body goroutines. No third-party library in the
// example pack offers goroutine-affinity introspection, so this falls
// back to the standard library by necessity.
func goroutineID() uint64 {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	buf = buf[:n]

	const prefix = "goroutine "
	buf = bytes.TrimPrefix(buf, []byte(prefix))

	end := bytes.IndexByte(buf, ' ')
	if end < 0 {
		return 0
	}

	id, err := strconv.ParseUint(string(buf[:end]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
