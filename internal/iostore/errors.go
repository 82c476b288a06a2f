package iostore

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/remaplab/remapdb/pkg/errcode"
)

func NotConnectedError() error {
	msg := "Database is not connected"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: database is not connected", fn),
	}
}

func LoadError(err error) error {
	msg := "Cannot load the identifier mapping store"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StoreLoadError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: cannot load mapping store: %w",
			fn, err),
	}
}

func SnapshotWriteError(path string, err error) error {
	msg := "Cannot write mapping snapshot to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StoreSnapshotWriteError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write snapshot %s: %w",
			fn, path, err),
	}
}

func SnapshotReadError(path string, err error) error {
	msg := "Cannot read mapping snapshot <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.StoreSnapshotReadError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read snapshot %s: %w",
			fn, path, err),
	}
}
