package common

import (
	"bytes"
	"context"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// AnyToStruct converts map or struct to selected struct.
func AnyToStruct[T any](data any) (*T, error) {
	var res T

	bytesData, err := yaml.Marshal(data)
	if err != nil {
		return &res, errors.New(err.Error())
	}

	decoder := yaml.NewDecoder(bytes.NewReader(bytesData))
	decoder.KnownFields(true)

	err = decoder.Decode(&res)
	if err != nil {
		return &res, errors.New(err.Error())
	}

	return &res, nil
}

func CtxClosed(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
