// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JokeID is the opaque identifier of a joke as assigned by the upstream
// store that owns it. It is never parsed or reformatted by the gateway.
type JokeID string

// String returns the raw identifier.
func (id JokeID) String() string {
	return string(id)
}

// UnmarshalJSON accepts both JSON strings and JSON numbers, since the
// submission and delivery stores do not agree on the identifier type.
// Numbers are kept in their literal textual form.
func (id *JokeID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("error decoding joke id: %w", err)
		}
		*id = JokeID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("joke id must be a string or a number: %w", err)
	}
	*id = JokeID(n.String())
	return nil
}

// Joke is a single moderation item. The gateway never stores jokes; it only
// forwards the representation returned by the submission store.
type Joke struct {
	// ID identifies the joke in the store that currently holds it.
	ID JokeID `json:"id"`

	// Content is the joke text.
	Content string `json:"content"`

	// Type is the joke category (e.g. "pun", "dad").
	Type string `json:"type"`

	// IsActive mirrors the upstream activity flag.
	IsActive bool `json:"isActive"`

	// IsModerated is only sent by some upstream versions.
	IsModerated *bool `json:"isModerated,omitempty"`

	// CreatedAt and UpdatedAt are kept exactly as the store sent them.
	// Stores do not agree on a timestamp format.
	CreatedAt json.RawMessage `json:"createdAt,omitempty"`
	UpdatedAt json.RawMessage `json:"updatedAt,omitempty"`

	// Extra holds the upstream fields not listed above. They are encoded
	// back unchanged.
	Extra map[string]json.RawMessage `json:"-"`
}

var jokeFields = []string{"id", "_id", "content", "type", "isActive", "isModerated", "createdAt", "updatedAt"}

// UnmarshalJSON decodes a joke sent by an upstream store. Document stores
// name the identifier "_id", relational ones "id"; whichever is present is
// used, "id" winning when both are set.
func (j *Joke) UnmarshalJSON(b []byte) error {
	type plain Joke
	aux := struct {
		*plain
		MongoID JokeID `json:"_id"`
	}{plain: (*plain)(j)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	if j.ID == "" {
		j.ID = aux.MongoID
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return err
	}
	for _, name := range jokeFields {
		delete(fields, name)
	}
	if len(fields) > 0 {
		j.Extra = fields
	}

	return nil
}

// MarshalJSON encodes the joke with its identifier under "id", followed by
// any extra upstream fields. Known fields take precedence over extras of the
// same name.
func (j Joke) MarshalJSON() ([]byte, error) {
	type plain Joke
	known, err := json.Marshal(plain(j))
	if err != nil || len(j.Extra) == 0 {
		return known, err
	}

	merged := make(map[string]json.RawMessage, len(j.Extra)+len(jokeFields))
	if err = json.Unmarshal(known, &merged); err != nil {
		return nil, err
	}
	for name, value := range j.Extra {
		if _, ok := merged[name]; !ok {
			merged[name] = value
		}
	}

	return json.Marshal(merged)
}

// IsEmpty reports whether the joke carries no data at all, which is how some
// submission store versions answer when nothing is waiting for moderation.
func (j Joke) IsEmpty() bool {
	return j.ID == "" && j.Content == "" && j.Type == ""
}

// ApproveRequest is the body of an approve call. The same payload is
// forwarded to the delivery store to create the approved joke.
type ApproveRequest struct {
	Content string `json:"content" validate:"required"`
	Type    string `json:"type" validate:"required"`
}
