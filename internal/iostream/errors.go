package iostream

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/remaplab/remapdb/pkg/errcode"
)

func CountError(path string, err error) error {
	msg := "Cannot count lines of <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StreamCountError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot count lines of %s: %w",
			fn, path, err),
	}
}

func LineTooLongError(path string, line int) error {
	msg := "Line %d of <em>%s</em> exceeds the %d byte limit"
	vars := []any{line, path, MaxLineBytes}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StreamLineTooLongError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: line %d of %s exceeds %d bytes",
			fn, line, path, MaxLineBytes),
	}
}

func ReadError(path string, err error) error {
	msg := "Cannot read <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StreamReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read %s: %w", fn, path, err),
	}
}

func WriteError(path string, err error) error {
	msg := "Cannot write <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StreamWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot write %s: %w", fn, path, err),
	}
}

func RenameError(from, to string, err error) error {
	msg := "Cannot move output into place at <em>%s</em>"
	vars := []any{to}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StreamRenameError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot rename %s to %s: %w",
			fn, from, to, err),
	}
}
