package header

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

// Parse reads "Name: value" lines separated by CRLF until the first empty
// line. Lines without a colon are skipped. Order and duplicates are kept.
func Parse(data []byte) List {
	var l List
	remaining := data
	for len(remaining) > 0 {
		lineEnd := bytes.Index(remaining, []byte("\r\n"))
		if lineEnd == -1 {
			lineEnd = len(remaining)
		}

		line := remaining[:lineEnd]

		if len(line) == 0 {
			break
		}

		if f, ok := parseLine(line); ok {
			l = append(l, f)
		}

		if lineEnd == len(remaining) {
			break
		}

		remaining = remaining[lineEnd+2:]
	}
	return l
}

// Read is like Parse but consumes br line by line, accepting bare LF line
// endings. Reaching EOF ends the block.
func Read(br *bufio.Reader) (List, error) {
	var l List
	for {
		lineBytes, err := br.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}

		lineBytes = bytes.TrimRight(lineBytes, "\r\n")
		if len(lineBytes) == 0 {
			return l, nil
		}

		if f, ok := parseLine(lineBytes); ok {
			l = append(l, f)
		}

		if err != nil {
			return l, nil
		}
	}
}

func parseLine(line []byte) (Field, bool) {
	colonIdx := bytes.IndexByte(line, ':')
	if colonIdx == -1 {
		return Field{}, false
	}
	return Field{
		Name:  string(bytes.TrimSpace(line[:colonIdx])),
		Value: string(bytes.TrimSpace(line[colonIdx+1:])),
	}, true
}

// Finalize serializes startLine and the fields into a header block ending
// with an empty line. A nil startLine writes only the fields.
func (l List) Finalize(startLine []byte) []byte {
	size := 2
	if startLine != nil {
		size += len(startLine) + 2
	}
	for _, f := range l {
		size += len(f.Name) + 2 + len(f.Value) + 2
	}

	buf := make([]byte, 0, size)
	if startLine != nil {
		buf = append(buf, startLine...)
		buf = append(buf, '\r', '\n')
	}

	for _, f := range l {
		buf = append(buf, f.Name...)
		buf = append(buf, ':', ' ')
		buf = append(buf, f.Value...)
		buf = append(buf, '\r', '\n')
	}

	buf = append(buf, '\r', '\n')
	return buf
}
