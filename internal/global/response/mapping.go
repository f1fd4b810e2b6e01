package response

import (
	"errors"

	"wakeup-punch-system/internal/service"
	"wakeup-punch-system/internal/store"
)

// reasoned 业务校验错误，原因直接作为提示返回
type reasoned interface {
	error
	ValidationReason() string
}

// FromError 把记录访问层和业务层的错误映射为响应错误
func FromError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	var v reasoned
	if errors.As(err, &v) {
		return ErrInvalidRequest.WithTips(v.ValidationReason())
	}
	switch {
	case errors.Is(err, service.ErrMemberGone):
		return ErrTokenInvalid.WithOrigin(err)
	case errors.Is(err, store.ErrDuplicate):
		return ErrAlreadyExists.WithOrigin(err)
	case errors.Is(err, store.ErrNotConfigured):
		return ErrStoreUnavailable.WithOrigin(err)
	}
	var se *store.Error
	if errors.As(err, &se) {
		return ErrDatabase.WithOrigin(err)
	}
	return ErrServerInternal.WithOrigin(err)
}
