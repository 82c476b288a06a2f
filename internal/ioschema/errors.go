package ioschema

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/remaplab/remapdb/pkg/errcode"
)

func RewriteError(path string, err error) error {
	msg := "Cannot rewrite schema dump <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SchemaRewriteError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot rewrite schema %s: %w",
			fn, path, err),
	}
}
