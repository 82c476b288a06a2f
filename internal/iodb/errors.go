package iodb

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/remaplab/remapdb/pkg/errcode"
)

func ConnectionError(
	host string, port int, database, user string, err error,
) error {
	msg := "Cannot connect to <em>%s:%d/%s</em> as <em>%s</em>"
	vars := []any{host, port, database, user}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot connect to %s:%d/%s: %w",
			fn, host, port, database, err),
	}
}

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

func TableCheckError(table string, err error) error {
	msg := "Cannot check if table <em>%s</em> exists"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot check table %s: %w",
			fn, table, err),
	}
}

func QueryError(query string, err error) error {
	msg := "Database query failed"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBQueryError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: query %q failed: %w",
			fn, query, err),
	}
}
