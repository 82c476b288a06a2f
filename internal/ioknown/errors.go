package ioknown

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/remaplab/remapdb/pkg/errcode"
)

func KnownIDsError(path string, err error) error {
	msg := "Cannot load known identifiers from <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.GenerateKnownIDsError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot load known ids from %s: %w",
			fn, path, err),
	}
}
