package trace

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

/*
Reader parses CSV traces with the columns

	key,size,type[,seq]

- Lines starting with '#' are comments
- A first line whose key column is not a number is taken as a header
- Without a seq column, the 0-based row index is used
*/
type Reader struct {
	r   *csv.Reader
	row int64
	// line counts every physical record, including a header, for error messages.
	line int
}

func NewReader(in io.Reader) *Reader {
	r := csv.NewReader(in)
	r.Comment = '#'
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.ReuseRecord = true
	return &Reader{r: r}
}

func (t *Reader) Next() (Request, error) {
	for {
		rec, err := t.r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Request{}, io.EOF
			}
			return Request{}, fmt.Errorf("read trace: %w", err)
		}
		t.line++

		if t.line == 1 && isHeader(rec) {
			continue
		}

		req, err := t.parse(rec)
		if err != nil {
			return Request{}, fmt.Errorf("trace line %d: %w", t.line, err)
		}
		t.row++
		return req, nil
	}
}

func (t *Reader) parse(rec []string) (Request, error) {
	if len(rec) < 3 || len(rec) > 4 {
		return Request{}, fmt.Errorf("want 3 or 4 columns, got %d", len(rec))
	}

	key, err := strconv.ParseInt(rec[0], 10, 64)
	if err != nil {
		return Request{}, fmt.Errorf("key: %w", err)
	}
	size, err := strconv.ParseFloat(rec[1], 64)
	if err != nil {
		return Request{}, fmt.Errorf("size: %w", err)
	}
	dataType, err := strconv.Atoi(rec[2])
	if err != nil {
		return Request{}, fmt.Errorf("type: %w", err)
	}

	seq := t.row
	if len(rec) == 4 {
		seq, err = strconv.ParseInt(rec[3], 10, 64)
		if err != nil {
			return Request{}, fmt.Errorf("seq: %w", err)
		}
	}

	return Request{Seq: seq, Key: key, Size: size, DataType: dataType}, nil
}

func isHeader(rec []string) bool {
	if len(rec) == 0 {
		return false
	}
	_, err := strconv.ParseInt(strings.TrimSpace(rec[0]), 10, 64)
	return err != nil
}
