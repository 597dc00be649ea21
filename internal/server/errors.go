package server

import "fmt"

type errUnknownAction string

func (e errUnknownAction) Error() string {
	return fmt.Sprintf("unknown action %q", string(e))
}
