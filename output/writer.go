package output

import (
	"fmt"
	"strings"

	"timelog/stats"
)

type Writer interface {
	Write(path string, report *stats.Report) error
}

func WriterForFormat(format string) (Writer, error) {
	switch NormalizeFormat(format) {
	case "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

func NormalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}
