package astonish

import (
	"errors"
	"fmt"

	"github.com/celebi-bot/celebi/internal/clients/astonish/markup"
	dnderr "github.com/celebi-bot/celebi/internal/errors"
)

// ErrLoginFailed is in the chain of every error caused by the forum refusing
// our credentials or silently dropping the session. It is the only error the
// client retries on.
var ErrLoginFailed = errors.New("astonish login failed")

// HTTPError is a response outside the 2xx range (3xx for login).
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.StatusCode)
}

func loginFailed(reason string) error {
	return dnderr.WrapWithCode(ErrLoginFailed, dnderr.CodeUnauthenticated, reason)
}

func httpFailed(method, url string, status int) error {
	return dnderr.WrapWithCode(&HTTPError{Method: method, URL: url, StatusCode: status},
		dnderr.CodeUnavailable, "forum request failed").
		WithMeta("status", status)
}

// parseFailed keeps codes assigned by entity validation and marks everything
// else as a markup change on the forum's side.
func parseFailed(err error, page string) *dnderr.Error {
	if dnderr.GetCode(err) != dnderr.CodeUnknown {
		return dnderr.Wrapf(err, "failed to parse %s", page)
	}
	return dnderr.WrapWithCode(err, dnderr.CodeUnexpectedResponse, "failed to parse "+page)
}

func characterNotFound(memberID int, cause error) error {
	return dnderr.WrapWithCode(cause, dnderr.CodeNotFound, fmt.Sprintf("character %d not found", memberID)).
		WithMeta("member_id", memberID)
}

// IsCharacterNotFound reports whether err means the member does not exist.
func IsCharacterNotFound(err error) bool {
	return dnderr.IsNotFound(err) && dnderr.GetMeta(err)["member_id"] != nil
}

// isMissingMember decides whether a failed character fetch means the member
// does not exist. Both sub-fetches fail on a missing member and whichever
// fails first wins, so a profile without a trainer class counts as well as a
// missing edit form. Any other missing element is a markup change.
func isMissingMember(err error) bool {
	return errors.Is(err, markup.ErrFormNotFound) || errors.Is(err, markup.ErrGroupNotFound)
}
