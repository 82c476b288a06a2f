package iogenerate

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

func TableCreateError(err error) error {
	msg := "Cannot create the mapping table"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.GenerateTableCreateError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: cannot create mapping table: %w",
			fn, err),
	}
}

func SchemaInspectionError(err error) error {
	msg := "Cannot inspect the schema for eligible columns"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.GenerateSchemaInspectionError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: cannot inspect schema: %w",
			fn, err),
	}
}

func DistinctScanError(column string, err error) error {
	msg := "Cannot scan distinct values of <em>%s</em>"
	vars := []any{column}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.GenerateDistinctScanError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot scan column %s: %w",
			fn, column, err),
	}
}

func InsertError(source string, err error) error {
	msg := "Cannot insert mappings from <em>%s</em>"
	vars := []any{source}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.GenerateInsertError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot insert mappings from %s: %w",
			fn, source, err),
	}
}
