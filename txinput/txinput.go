// Package txinput reads transaction data from the text format:
//
//	N
//	left right timestamp
//	... N lines
//
// Fields are unsigned decimal integers separated by whitespace. Blank lines are ignored.
// Transaction on the i-th data line (counting from 0) receives ID i+2
package txinput

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lunfardo314/txdag/ledger"
)

var ErrCountMismatch = errors.New("number of transactions does not match the header")

// header is not trusted for allocation beyond this
const maxPreallocatedTxData = 1024

// ParseError is error of the input at the line (1-based). It is independent of the graph errors
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseUint32(s string) (uint32, error) {
	ret, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(ret), nil
}

// ParseTxData parses 'left right timestamp'
func ParseTxData(fields [3]string) (ret ledger.TxData, err error) {
	var left, right uint32
	if left, err = parseUint32(fields[0]); err != nil {
		return
	}
	if right, err = parseUint32(fields[1]); err != nil {
		return
	}
	if ret.Timestamp, err = parseUint32(fields[2]); err != nil {
		return
	}
	ret.Left, ret.Right = ledger.TransactionID(left), ledger.TransactionID(right)
	return
}

// Parse reads the header and exactly the number of transactions specified in it
func Parse(r io.Reader) ([]ledger.TxData, error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	var ret []ledger.TxData
	headerRead := false
	expected := 0

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if !headerRead {
			if len(fields) != 1 {
				return nil, &ParseError{Line: lineNo, Err: fmt.Errorf("expected number of transactions, got %d fields", len(fields))}
			}
			n, err := parseUint32(fields[0])
			if err != nil {
				return nil, &ParseError{Line: lineNo, Err: err}
			}
			expected = int(n)
			ret = make([]ledger.TxData, 0, min(expected, maxPreallocatedTxData))
			headerRead = true
			continue
		}
		if len(ret) >= expected {
			return nil, &ParseError{Line: lineNo, Err: fmt.Errorf("%w: expected %d", ErrCountMismatch, expected)}
		}
		if len(fields) != 3 {
			return nil, &ParseError{Line: lineNo, Err: fmt.Errorf("expected 3 fields, got %d", len(fields))}
		}
		d, err := ParseTxData([3]string{fields[0], fields[1], fields[2]})
		if err != nil {
			return nil, &ParseError{Line: lineNo, Err: err}
		}
		ret = append(ret, d)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !headerRead {
		return nil, &ParseError{Line: lineNo, Err: errors.New("empty input")}
	}
	if len(ret) != expected {
		return nil, &ParseError{Line: lineNo, Err: fmt.Errorf("%w: expected %d, got %d", ErrCountMismatch, expected, len(ret))}
	}
	return ret, nil
}

func ParseFile(fname string) ([]ledger.TxData, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return Parse(f)
}
