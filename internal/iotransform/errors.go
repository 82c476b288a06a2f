package iotransform

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/remaplab/remapdb/pkg/errcode"
)

func TransformRunError(path string, err error) error {
	msg := "Transformation run failed"
	var vars []any
	if path != "" {
		msg = "Transformation of <em>%s</em> failed"
		vars = []any{path}
	}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TransformRunError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: transformation failed: %w",
			fn, err),
	}
}

func AllFilesFailedError(count int) error {
	msg := "All <em>%d</em> files failed to transform"
	vars := []any{count}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TransformAllFilesFailedError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: all %d files failed", fn, count),
	}
}
