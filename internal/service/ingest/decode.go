package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Ключи, под которыми источник может вернуть массив вместо голого массива
var envelopeKeys = []string{"seminars", "bookings", "data"}

// DecodeRecords читает массив записей из JSON.
// Принимает как голый массив, так и объект с массивом под одним из envelopeKeys.
// Элементы, которые не являются объектами, возвращаются как nil и будут отклонены при нормализации.
func DecodeRecords(r io.Reader) ([]RawRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read records: %v", ErrMalformedRecord, err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []RawRecord{}, nil
	}

	var items []json.RawMessage
	if data[0] == '{' {
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(data, &envelope); err != nil {
			return nil, fmt.Errorf("%w: decode envelope: %v", ErrMalformedRecord, err)
		}
		for _, key := range envelopeKeys {
			if raw, ok := envelope[key]; ok {
				data = raw
				break
			}
		}
	}

	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: decode records: %v", ErrMalformedRecord, err)
	}

	records := make([]RawRecord, len(items))
	for i, item := range items {
		dec := json.NewDecoder(bytes.NewReader(item))
		dec.UseNumber()

		var rec map[string]any
		if err := dec.Decode(&rec); err != nil {
			continue
		}
		records[i] = rec
	}

	return records, nil
}
