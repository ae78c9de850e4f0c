package sqlite

import (
	"bytes"
	"database/sql"
	"encoding/json"

	"stixgraph/internal/domain"
)

// lookupNull reads a string field as sql.NullString; absent and non-string
// fields are NULL.
func lookupNull(obj domain.Object, field string) sql.NullString {
	s, ok := obj.LookupString(field)
	if !ok {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// marshalObject encodes an object for the data column
func marshalObject(obj domain.Object) ([]byte, error) {
	return json.Marshal(obj)
}

// unmarshalObject decodes the data column, keeping numbers as json.Number so
// their literal text survives the round trip.
func unmarshalObject(data []byte) (domain.Object, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var obj domain.Object
	if err := dec.Decode(&obj); err != nil {
		return nil, err
	}
	return obj, nil
}
