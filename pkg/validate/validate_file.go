package validate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joaomacarrao/storefront/internal/ports"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// ValidateFile — валидирует файл со снимками корзин как JSON или JSONL
// и пишет валидный вывод в writer.
func ValidateFile(ctx context.Context, validator ports.SnapshotValidator, filePath string, format InputFormat, ow io.Writer) (string, error) {
	resSummary := ""

	// auto по расширению
	if format == FormatAuto {
		switch strings.ToLower(filepath.Ext(filePath)) {
		case ".jsonl":
			format = FormatJSONL
		case ".json":
			format = FormatJSON
		default:
			// по умолчанию считаем JSON
			format = FormatJSON
		}
	}

	file, err := os.Open(filePath)
	if err != nil {
		return resSummary, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	switch format {
	case FormatJSON:
		raw, err := io.ReadAll(file)
		if err != nil {
			return resSummary, fmt.Errorf("read file: %w", err)
		}
		snapshot, err := ValidateSnapshotFromJSON(ctx, validator, raw)
		if err != nil {
			return "0 valid / 1 invalid", err
		}
		canonical, _ := json.Marshal(snapshot)
		if _, err := ow.Write(canonical); err != nil {
			return resSummary, fmt.Errorf("write json: %w", err)
		}
		resSummary = "1 valid / 0 invalid"
		return resSummary, nil

	case FormatJSONL:
		res, err := ValidateJSONLStream(ctx, validator, file, ow)
		resSummary = fmt.Sprintf("%d valid / %d invalid", res.ValidLinesCount, res.InvalidLinesCount)
		if err != nil {
			return resSummary, err
		}
		return resSummary, nil

	default:
		return resSummary, fmt.Errorf("unknown format: %q", format)
	}
}
