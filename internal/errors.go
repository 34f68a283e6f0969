package internal

import "errors"

var (
	// ErrStackUnderflow is returned when a return is executed without a
	// matching call.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrProgramTooLarge is returned when a program does not fit between
	// 0x200 and the end of memory.
	ErrProgramTooLarge = errors.New("program size exceeds the maximum size")
	// ErrRegisterIndex is returned for register indices outside 0-F.
	ErrRegisterIndex = errors.New("register index out of range")
)
