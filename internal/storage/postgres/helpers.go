package postgres

import "encoding/json"

// decodeDoc round-trips a stored document body into a typed record.
func decodeDoc(doc map[string]any, dst any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}
