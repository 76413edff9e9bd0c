package orion

import (
	"errors"
	"fmt"
)

// ErrNoGame is the programming error of calling RunGame without a Game.
var ErrNoGame = errors.New("game must not be nil")

// ExitApp can be returned from Game.Update to stop the loop without an error.
var ExitApp = errors.New("exit app")

// Handle panics if err is not nil. Use it for errors that indicate a bug
// rather than a runtime condition.
func Handle(err error, desc string, args ...any) {
	if err != nil {
		text := fmt.Sprintf(desc, args...)
		panic(text + ": " + err.Error())
	}
}
