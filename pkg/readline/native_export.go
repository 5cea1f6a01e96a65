//go:build cgo && !purego

package readline

import "C"

//export goAttemptedCompletion
func goAttemptedCompletion(text *C.char, start, end C.int) **C.char {
	return completionMatches(text, int(start), int(end))
}

//export goCompletionEntry
func goCompletionEntry(text *C.char, state C.int) *C.char {
	return entry(text, int(state))
}
