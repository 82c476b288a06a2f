// Package iostream implements line-oriented streaming over dump
// files. Peak memory is bounded by one line, never by file size.
//
// Output is written to a temporary file in the destination directory
// and renamed into place only after a successful flush and sync, so a
// crash mid-write never leaves a partially written file that could be
// mistaken for final output.
package iostream

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/cheggaaa/pb/v3"
)

const (
	// readBufBytes is the initial buffer of the line reader.
	readBufBytes = 1 << 20

	// MaxLineBytes bounds a single line. A dump line larger than this
	// aborts the file's run instead of silently splitting a statement.
	MaxLineBytes = 64 << 20
)

// LineFunc transforms one line. The line is passed without its
// newline bytes; those are preserved verbatim by the streamer.
type LineFunc func(line string) string

// CountLines returns the number of lines in path. A trailing line
// without a newline counts as one line. This pre-pass lets progress
// reporting show a monotonic percentage; the double read is cheap next
// to the per-line matching work.
func CountLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, CountError(path, err)
	}
	defer f.Close()

	buf := make([]byte, readBufBytes)
	var lines int
	var lastByte byte

	for {
		n, err := f.Read(buf)
		if n > 0 {
			lines += bytes.Count(buf[:n], []byte{'\n'})
			lastByte = buf[n-1]
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, CountError(path, err)
		}
	}

	if lastByte != 0 && lastByte != '\n' {
		lines++
	}
	return lines, nil
}

// Process streams inPath line by line through fn into outPath.
// It returns the number of lines processed; on success this always
// equals the input line count, and output preserves input line order.
//
// total is the pre-counted number of lines used for the progress bar;
// pass 0 to disable progress display. prefix labels the bar.
func Process(
	inPath, outPath string,
	total int,
	prefix string,
	fn LineFunc,
) (int, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return 0, ReadError(inPath, err)
	}
	defer in.Close()

	outDir := filepath.Dir(outPath)
	tmp, err := os.CreateTemp(outDir, filepath.Base(outPath)+".tmp-*")
	if err != nil {
		return 0, WriteError(outPath, err)
	}
	tmpPath := tmp.Name()

	// Any failure below must not leave a committed artifact behind.
	cleanup := func() {
		tmp.Close()
		os.Remove(tmpPath)
	}

	var bar *pb.ProgressBar
	if total > 0 {
		bar = newProgressBar(total, prefix)
		defer bar.Finish()
	}

	reader := bufio.NewReaderSize(in, readBufBytes)
	writer := bufio.NewWriterSize(tmp, readBufBytes)
	var lines int

	for {
		raw, err := readLine(reader)
		if len(raw) > 0 {
			line, suffix := splitNewline(raw)
			if _, werr := writer.WriteString(fn(line)); werr != nil {
				cleanup()
				return lines, WriteError(outPath, werr)
			}
			if _, werr := writer.WriteString(suffix); werr != nil {
				cleanup()
				return lines, WriteError(outPath, werr)
			}
			lines++
			if bar != nil {
				bar.Increment()
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			cleanup()
			if err == errLineTooLong {
				return lines, LineTooLongError(inPath, lines+1)
			}
			return lines, ReadError(inPath, err)
		}
	}

	if err = writer.Flush(); err != nil {
		cleanup()
		return lines, WriteError(outPath, err)
	}
	if err = tmp.Sync(); err != nil {
		cleanup()
		return lines, WriteError(outPath, err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return lines, WriteError(outPath, err)
	}

	if err = os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return lines, RenameError(tmpPath, outPath, err)
	}

	return lines, nil
}

var errLineTooLong = errors.New("line exceeds MaxLineBytes")

// readLine reads one line including its newline bytes, bounded by
// MaxLineBytes.
func readLine(r *bufio.Reader) (string, error) {
	var acc []byte
	for {
		chunk, err := r.ReadSlice('\n')
		if len(acc)+len(chunk) > MaxLineBytes {
			return "", errLineTooLong
		}
		if err == nil || err == io.EOF {
			if acc == nil {
				return string(chunk), err
			}
			return string(append(acc, chunk...)), err
		}
		if err == bufio.ErrBufferFull {
			acc = append(acc, chunk...)
			continue
		}
		return "", err
	}
}

// splitNewline separates line content from its trailing newline bytes
// ("\n", "\r\n" or none at end of file).
func splitNewline(raw string) (string, string) {
	if len(raw) > 0 && raw[len(raw)-1] == '\n' {
		if len(raw) > 1 && raw[len(raw)-2] == '\r' {
			return raw[:len(raw)-2], "\r\n"
		}
		return raw[:len(raw)-1], "\n"
	}
	return raw, ""
}

// newProgressBar creates a progress bar with consistent settings.
func newProgressBar(total int, prefix string) *pb.ProgressBar {
	bar := pb.Full.Start(total)
	bar.Set("prefix", prefix)
	bar.Set(pb.CleanOnFinish, true)
	return bar
}
