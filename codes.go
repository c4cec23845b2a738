package jsondoc

import "strconv"

// Code is the outcome of a single document operation. Every Runner call
// produces exactly one Code and mirrors it into the RESULT store variable.
// The numeric values are stable; hosts that persist RESULT as text can rely
// on them.
type Code int

const (
	OK Code = iota
	Undecided
	ArgumentNeeded
	ParseError
	NotFound
	InvalidType
	AddFailed
	SetFailed
	DeleteFailed
)

func (c Code) String() string {
	switch c {
	case OK:
		return "ok"
	case Undecided:
		return "undecided"
	case ArgumentNeeded:
		return "argument needed"
	case ParseError:
		return "parse error"
	case NotFound:
		return "not found"
	case InvalidType:
		return "invalid type"
	case AddFailed:
		return "add failed"
	case SetFailed:
		return "set failed"
	case DeleteFailed:
		return "delete failed"
	}
	return "code(" + strconv.Itoa(int(c)) + ")"
}
