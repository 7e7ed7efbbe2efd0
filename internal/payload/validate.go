package payload

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/pathfinder/internal/schemas"
	"github.com/jonathan/pathfinder/internal/types"
	rootschemas "github.com/jonathan/pathfinder/schemas"
)

// Validate checks a request against the analyze-request JSON Schema and the
// struct-level bounds. The returned error is a *schemas.ValidationError for
// both kinds of failure.
func Validate(req types.AnalyzeRequest) error {
	schema, err := rootschemas.Get(rootschemas.AnalyzeRequest)
	if err != nil {
		return err
	}

	var fieldErrs []schemas.FieldError
	if err := schemas.ValidateValue(schema, req); err != nil {
		var ve *schemas.ValidationError
		if !errors.As(err, &ve) {
			return err
		}
		fieldErrs = append(fieldErrs, ve.Errors...)
	}

	if err := req.Validate(); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			fieldErrs = append(fieldErrs, schemas.FieldError{
				Field:   fe.Namespace(),
				Message: fmt.Sprintf("failed %s=%s", fe.Tag(), fe.Param()),
			})
		}
	}

	if len(fieldErrs) > 0 {
		return &schemas.ValidationError{Errors: fieldErrs}
	}
	return nil
}

// Encode returns the canonical JSON encoding of a request.
func Encode(req types.AnalyzeRequest) ([]byte, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	return data, nil
}

// Digest returns the hex SHA-256 of the canonical JSON encoding. Equal
// requests always share a digest.
func Digest(req types.AnalyzeRequest) (string, error) {
	data, err := Encode(req)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
