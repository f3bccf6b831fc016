package encoding

import (
	"errors"
	"fmt"

	"github.com/henryrgithub/krpc-mars/pkg/schema"
	"github.com/henryrgithub/krpc-mars/pkg/wire"
)

// RemoteError is a failure the remote side reported for a call or for one
// procedure result. It is a first-class outcome, distinct from a local
// malformed-input error: the remote evaluated (or refused to evaluate) the
// call, and said so.
type RemoteError struct {
	Service     string
	Name        string
	Description string
	StackTrace  string
}

func (e *RemoteError) Error() string {
	if e.Service != "" || e.Name != "" {
		return fmt.Sprintf("remote failure %s.%s: %s", e.Service, e.Name, e.Description)
	}
	return fmt.Sprintf("remote failure: %s", e.Description)
}

func remoteError(e *schema.Error) *RemoteError {
	return &RemoteError{
		Service:     e.Service,
		Name:        e.Name,
		Description: e.Description,
		StackTrace:  e.StackTrace,
	}
}

// IsRemote reports whether err is a remote-side failure.
func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}

// IsMalformed reports whether err is a local decode failure.
func IsMalformed(err error) bool {
	var me *wire.Malformed
	return errors.As(err, &me)
}

// SingleResult classifies a whole call response and decodes its first
// procedure result with c. A top-level error supersedes every per-result
// outcome: it means the call as a whole could not be evaluated.
func SingleResult[T any](ctx *Context, resp *schema.Response, c Codec[T]) (T, error) {
	if resp.Error != nil {
		var zero T
		return zero, remoteError(resp.Error)
	}
	if len(resp.Results) == 0 {
		var zero T
		return zero, &wire.Malformed{Reason: "response carries no procedure results"}
	}
	return Result(ctx, resp.Results[0], c)
}

// Result classifies one procedure result: a per-procedure error comes back
// as a *RemoteError, otherwise the opaque payload is decoded with c and any
// decode failure surfaces as a *wire.Malformed.
func Result[T any](ctx *Context, pr *schema.ProcedureResult, c Codec[T]) (T, error) {
	if pr.Error != nil {
		var zero T
		return zero, remoteError(pr.Error)
	}
	return c.Decode(ctx, pr.Value)
}
