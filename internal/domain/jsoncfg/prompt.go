package jsoncfg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"journalguru/internal/domain"
)

// MaxPayloadBytes caps the body size accepted by DecodePromptRequest.
const MaxPayloadBytes = 64 << 10

// DecodePromptRequest reads a JSON object and maps its keys onto a
// PromptRequest through scheme. Keys outside the scheme are ignored; numbers
// are accepted for any role and kept in their literal form, other non-string
// values leave the role empty.
func DecodePromptRequest(r io.Reader, scheme domain.FieldScheme) (domain.PromptRequest, error) {
	var req domain.PromptRequest
	dec := json.NewDecoder(io.LimitReader(r, MaxPayloadBytes))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return req, fmt.Errorf("decode prompt request: %w", err)
	}
	for _, field := range domain.Fields {
		req.Set(field, stringValue(raw[scheme.Key(field)]))
	}
	return req, nil
}

// EncodePromptRequest renders req as a JSON object keyed through scheme.
func EncodePromptRequest(req domain.PromptRequest, scheme domain.FieldScheme) ([]byte, error) {
	out := make(map[string]string, len(domain.Fields))
	for _, field := range domain.Fields {
		out[scheme.Key(field)] = req.Get(field)
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(out); err != nil {
		return nil, fmt.Errorf("encode prompt request: %w", err)
	}
	return buf.Bytes(), nil
}

func stringValue(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case json.Number:
		return val.String()
	default:
		return ""
	}
}

func MustMarshal(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("json marshal: %w", err))
	}
	return b
}
