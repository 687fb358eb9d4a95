package mid

import (
	"context"
	"errors"
	"net/http"

	"github.com/ahrav/enumkit/internal/api/errs"
	appcatalog "github.com/ahrav/enumkit/internal/app/catalog"
	"github.com/ahrav/enumkit/pkg/common/logger"
	"github.com/ahrav/enumkit/pkg/enum"
	"github.com/ahrav/enumkit/pkg/web"
)

// Errors normalizes handler responses that are errors: domain error kinds are
// mapped onto API error codes, logged, and returned as the response encoder.
func Errors(log *logger.Logger) web.MidFunc {
	m := func(next web.HandlerFunc) web.HandlerFunc {
		h := func(ctx context.Context, r *http.Request) web.Encoder {
			resp := next(ctx, r)

			err, isErr := resp.(error)
			if !isErr {
				return resp
			}

			appErr := mapError(err)

			log.Error(ctx, "handler error", "code", appErr.Code.String(), "message", appErr.Message)

			return appErr
		}

		return h
	}

	return m
}

// mapError folds domain error kinds into API error codes. Unrecognized
// errors become Internal so internals never leak verbatim.
func mapError(err error) *errs.Error {
	if appErr := errs.GetError(err); appErr != nil {
		return appErr
	}

	var fields errs.FieldErrors
	if errors.As(err, &fields) {
		return errs.New(errs.InvalidArgument, fields)
	}

	switch {
	case errors.Is(err, appcatalog.ErrSetNotFound), errors.Is(err, enum.ErrNotFound):
		return errs.New(errs.NotFound, err)

	case errors.Is(err, enum.ErrInvalidArgument):
		return errs.New(errs.InvalidArgument, err)

	case errors.Is(err, enum.ErrDuplicateValue), errors.Is(err, enum.ErrDuplicateIndex),
		errors.Is(err, enum.ErrDefaultAlreadySet):
		return errs.New(errs.AlreadyExists, err)
	}

	return errs.Newf(errs.Internal, "internal error")
}
