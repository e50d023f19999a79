package storage

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"

	"assettracker/pkg/assettypes"
)

// assetParams mirrors the keys accepted by AddFromParams.
type assetParams struct {
	Type          string    `mapstructure:"Type"`
	PurchaseDate  time.Time `mapstructure:"PurchaseDate"`
	ExpiryDate    time.Time `mapstructure:"ExpiryDate"`
	Price         float64   `mapstructure:"Price"`
	ModelName     string    `mapstructure:"ModelName"`
	OfficeID      int       `mapstructure:"OfficeID"`
	OS            string    `mapstructure:"OS"`
	RAM           string    `mapstructure:"RAM"`
	Processor     string    `mapstructure:"Processor"`
	PhoneOperator string    `mapstructure:"PhoneOperator"`
	PhoneNumber   string    `mapstructure:"PhoneNumber"`
}

// stringToDateHook parses date strings with assettypes.ParseDate.
func stringToDateHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(time.Time{}) {
		return data, nil
	}
	if strings.TrimSpace(data.(string)) == "" {
		return time.Time{}, nil
	}
	return assettypes.ParseDate(data.(string))
}

// assetFromParams decodes a string parameter map into a new asset.
func assetFromParams(params map[string]string) (*assettypes.Asset, error) {
	var p assetParams
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       stringToDateHook,
		WeaklyTypedInput: true,
		Result:           &p,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create params decoder: %w", err)
	}
	if err := decoder.Decode(params); err != nil {
		return nil, fmt.Errorf("invalid asset parameters: %w", err)
	}

	kind, err := assettypes.ParseKind(p.Type)
	if err != nil {
		return nil, err
	}
	if p.PurchaseDate.IsZero() {
		return nil, fmt.Errorf("invalid asset parameters: PurchaseDate is required")
	}
	if p.ExpiryDate.IsZero() {
		p.ExpiryDate = p.PurchaseDate.AddDate(3, 0, 0)
	}
	if p.Price < 0 {
		return nil, fmt.Errorf("invalid asset parameters: price must not be negative")
	}
	if strings.TrimSpace(p.ModelName) == "" {
		return nil, fmt.Errorf("invalid asset parameters: ModelName is required")
	}

	switch kind {
	case assettypes.KindComputer:
		return assettypes.NewComputer(p.PurchaseDate, p.ExpiryDate, p.Price, p.ModelName, p.OfficeID,
			assettypes.Computer{OperatingSystem: p.OS, RAM: p.RAM, Processor: p.Processor}), nil
	case assettypes.KindCellphone:
		return assettypes.NewCellphone(p.PurchaseDate, p.ExpiryDate, p.Price, p.ModelName, p.OfficeID,
			assettypes.Cellphone{PhoneOperator: p.PhoneOperator, PhoneNumber: p.PhoneNumber}), nil
	}
	return nil, fmt.Errorf("%w: %q", assettypes.ErrUnknownKind, p.Type)
}
