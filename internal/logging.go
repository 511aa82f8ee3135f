package internal

import (
	"io"
	"log"
)

// InitLogging points the standard logger at w. The CLI passes stderr in
// oneshot mode so that stdout carries only the JSON answer.
func InitLogging(w io.Writer) {
	log.SetOutput(w)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
