package emit

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/krisalay/objstats/types"
)

var csvHeader = []string{"seq", "key", "hit", "size", "total_requests", "last_request", "data_type"}

// CSVSink writes rows as CSV. It is not safe for concurrent use; both emit
// policies call it from a single goroutine.
type CSVSink struct {
	w           *csv.Writer
	wroteHeader bool
	record      []string
}

// NewCSVSink writes to out. The header is written with the first row.
func NewCSVSink(out io.Writer) *CSVSink {
	return &CSVSink{
		w:      csv.NewWriter(out),
		record: make([]string, len(csvHeader)),
	}
}

func (s *CSVSink) Write(ctx context.Context, row types.Row) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.wroteHeader {
		if err := s.w.Write(csvHeader); err != nil {
			return err
		}
		s.wroteHeader = true
	}

	s.record[0] = strconv.FormatInt(row.Seq, 10)
	s.record[1] = strconv.FormatInt(row.Key, 10)
	s.record[2] = strconv.FormatBool(row.Hit)
	s.record[3] = strconv.FormatFloat(row.Snapshot.Size, 'g', -1, 64)
	s.record[4] = strconv.FormatInt(row.Snapshot.TotalRequests, 10)
	s.record[5] = strconv.FormatInt(row.Snapshot.LastRequest, 10)
	s.record[6] = strconv.Itoa(row.Snapshot.DataType)
	return s.w.Write(s.record)
}

func (s *CSVSink) Flush() error {
	s.w.Flush()
	return s.w.Error()
}
