package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	ListDumpDirError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTableCheckError
	DBQueryError

	// Generate errors
	GenerateSchemaInspectionError
	GenerateTableCreateError
	GenerateDistinctScanError
	GenerateInsertError
	GenerateKnownIDsError

	// Store errors
	StoreLoadError
	StoreSnapshotWriteError
	StoreSnapshotReadError

	// Stream errors
	StreamCountError
	StreamLineTooLongError
	StreamReadError
	StreamWriteError
	StreamRenameError

	// Transform errors
	TransformRunError
	TransformAllFilesFailedError

	// Schema rewrite errors
	SchemaRewriteError
)
