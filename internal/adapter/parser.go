package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/MKhiriev/connector-sync/internal/logger"
)

// ParseWarning describes one array element dropped by [ParsePayload].
type ParseWarning struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// discriminators are the keys identifying a management API object.
var discriminators = []string{"@id", "@type"}

// ParsePayload normalizes the body of a successful outcome into DTOs.
//
//   - EmptySuccess or an absent body yields an empty slice.
//   - A single object must carry "@id" or "@type"; it yields one DTO, and any
//     failure is an [ErrMalformed] error.
//   - An array is parsed element by element. Elements that fail are logged,
//     reported as warnings and left out, the rest are returned.
//
// Any other body is an [ErrMalformed] error. Calling ParsePayload with a
// failed outcome returns that outcome's error.
func ParsePayload[D any](ctx context.Context, outcome Outcome) ([]D, []ParseWarning, error) {
	if !outcome.Category.IsSuccess() {
		return nil, nil, outcome.Err()
	}

	body := bytes.TrimSpace(outcome.Body)
	if outcome.Category == EmptySuccess || len(body) == 0 {
		return []D{}, nil, nil
	}

	if !gjson.ValidBytes(body) {
		return nil, nil, fmt.Errorf("%w: body is not valid JSON", ErrMalformed)
	}

	result := gjson.ParseBytes(body)
	switch {
	case result.IsObject():
		dto, err := parseElement[D](result)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		return []D{dto}, nil, nil

	case result.IsArray():
		return parseArray[D](ctx, result)
	}

	return nil, nil, fmt.Errorf("%w: expected object or array, got %s", ErrMalformed, result.Type)
}

func parseArray[D any](ctx context.Context, result gjson.Result) ([]D, []ParseWarning, error) {
	log := logger.FromContext(ctx)

	elements := result.Array()
	dtos := make([]D, 0, len(elements))
	var warnings []ParseWarning

	for i, element := range elements {
		dto, err := parseElement[D](element)
		if err != nil {
			log.Warn().
				Err(err).
				Str("func", "adapter.ParsePayload").
				Int("index", i).
				Msg("dropping unparseable element of list response")
			warnings = append(warnings, ParseWarning{Index: i, Reason: err.Error()})
			continue
		}
		dtos = append(dtos, dto)
	}

	return dtos, warnings, nil
}

func parseElement[D any](element gjson.Result) (D, error) {
	var dto D

	if !element.IsObject() {
		return dto, fmt.Errorf("element is %s, not an object", element.Type)
	}
	if !hasDiscriminator(element) {
		return dto, fmt.Errorf("object has neither %q nor %q", discriminators[0], discriminators[1])
	}
	if err := json.Unmarshal([]byte(element.Raw), &dto); err != nil {
		return dto, fmt.Errorf("decode object: %w", err)
	}

	return dto, nil
}

// hasDiscriminator walks the top-level keys; "@" prefixed paths would be
// read as gjson modifiers.
func hasDiscriminator(object gjson.Result) bool {
	found := false
	object.ForEach(func(key, _ gjson.Result) bool {
		for _, d := range discriminators {
			if key.Str == d {
				found = true
				return false
			}
		}
		return true
	})
	return found
}
