package http

import (
	"errors"

	"github.com/yuribeats/the-boards/constants"
	"github.com/yuribeats/the-boards/feed"
	"github.com/yuribeats/the-boards/pending"
)

// errorMessage is the client-facing text for err. Upstream status failures
// keep the wording the front-end already matches on.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, feed.ErrFetchSheet):
		return constants.ErrFetchSheet
	case errors.Is(err, pending.ErrReadPending):
		return constants.ErrReadPending
	default:
		return err.Error()
	}
}
