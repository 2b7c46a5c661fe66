package session

import "fmt"

type Readiness uint8

const (
	ReadinessUninitialized Readiness = iota
	ReadinessLoading
	ReadinessReady
	ReadinessError
)

func (r Readiness) String() string {
	switch r {
	case ReadinessUninitialized:
		return "uninitialized"
	case ReadinessLoading:
		return "loading"
	case ReadinessReady:
		return "ready"
	case ReadinessError:
		return "error"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(r))
	}
}

func (r Readiness) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
