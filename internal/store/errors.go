package store

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNotConfigured 后端未配置时写操作直接失败
	ErrNotConfigured = errors.New("store: backend not configured")
	// ErrDuplicate 违反唯一约束（例如重复的成员码）
	ErrDuplicate = errors.New("store: duplicate key")
)

// Error 后端调用失败，Op 为记录访问层的操作名
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StackTrace 供 Sentry 提取堆栈
func (e *Error) StackTrace() errors.StackTrace {
	type stackTracer interface {
		StackTrace() errors.StackTrace
	}
	var st stackTracer
	if errors.As(e.Err, &st) {
		return st.StackTrace()
	}
	return nil
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: errors.WithStack(err)}
}

// duplicate 把后端的唯一约束错误包成 ErrDuplicate，同时保留原始信息
func duplicate(op string, cause error) error {
	return &Error{Op: op, Err: errors.WithStack(fmt.Errorf("%w: %v", ErrDuplicate, cause))}
}
