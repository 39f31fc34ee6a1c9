package utils

import (
	"bytes"
	"errors"
	"io"
	"os"
)

// SniffLength defines the maximum number of bytes read when detecting binary content.
const SniffLength = 8000

// IsBinary reports whether the provided byte slice contains a NUL byte.
func IsBinary(data []byte) bool {
	return bytes.IndexByte(data, 0) >= 0
}

// IsFileBinary reads up to SniffLength bytes from the file at path and reports
// whether they contain a NUL byte. Files that cannot be opened or read are
// reported as binary so callers skip them.
func IsFileBinary(path string) bool {
	fileHandle, openError := os.Open(path)
	if openError != nil {
		return true
	}
	defer fileHandle.Close()

	buffer := make([]byte, SniffLength)
	bytesRead, readError := io.ReadFull(fileHandle, buffer)
	if readError != nil && !errors.Is(readError, io.EOF) && !errors.Is(readError, io.ErrUnexpectedEOF) {
		return true
	}
	return IsBinary(buffer[:bytesRead])
}
