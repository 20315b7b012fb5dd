package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/joaomacarrao/storefront/internal/domain"
	"github.com/joaomacarrao/storefront/internal/ports"
)

// ValidateSnapshotFromJSON — валидация снимка корзины из JSON.
func ValidateSnapshotFromJSON(ctx context.Context, validator ports.SnapshotValidator, raw []byte) (*domain.CartSnapshot, error) {
	var snapshot domain.CartSnapshot
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("invalid json: trailing data")
	}
	if err := validator.Validate(ctx, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
