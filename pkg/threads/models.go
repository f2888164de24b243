package threads

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FollowingResponse is the body of a successful "list following" call
type FollowingResponse struct {
	Data []Account `json:"data"`
}

// Account is one entry of the follow list. Only the identifier is used.
type Account struct {
	ID       string `json:"id"`
	Username string `json:"username,omitempty"`
}

// UnmarshalJSON accepts the id either as a string or as a bare JSON number.
// Numeric ids keep their exact digits.
func (a *Account) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       json.RawMessage `json:"id"`
		Username string          `json:"username"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id, err := decodeID(raw.ID)
	if err != nil {
		return err
	}
	a.ID = id
	a.Username = raw.Username
	return nil
}

func decodeID(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("account id must be a string or a number, got %s", raw)
	}
	return n.String(), nil
}

// IDs returns the identifiers of all accounts in the response
func (r *FollowingResponse) IDs() []string {
	ids := make([]string, 0, len(r.Data))
	for _, account := range r.Data {
		ids = append(ids, account.ID)
	}
	return ids
}
