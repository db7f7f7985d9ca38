package vocab

import "errors"

var (
	ErrBadSnapshot  = errors.New("vocab: malformed snapshot line")
)
