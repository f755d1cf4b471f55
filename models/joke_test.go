// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoke_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantID    JokeID
		wantCrAt  string
		wantExtra []string
	}{
		{
			name:     "numeric id, sql timestamp",
			body:     `{"id":7,"content":"c","type":"pun","createdAt":"2024-03-01 10:00:00"}`,
			wantID:   "7",
			wantCrAt: `"2024-03-01 10:00:00"`,
		},
		{
			name:     "document id, rfc3339 timestamp",
			body:     `{"_id":"65f1","content":"c","type":"pun","createdAt":"2024-03-01T10:00:00Z"}`,
			wantID:   "65f1",
			wantCrAt: `"2024-03-01T10:00:00Z"`,
		},
		{
			name:   "id wins over _id",
			body:   `{"id":"a","_id":"b","content":"c","type":"pun"}`,
			wantID: "a",
		},
		{
			name:      "unknown fields kept",
			body:      `{"id":"1","content":"c","type":"pun","author":"anon","__v":0}`,
			wantID:    "1",
			wantExtra: []string{"__v", "author"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var j Joke
			require.NoError(t, json.Unmarshal([]byte(tt.body), &j))

			assert.Equal(t, tt.wantID, j.ID)
			assert.Equal(t, tt.wantCrAt, string(j.CreatedAt))
			if tt.wantExtra == nil {
				assert.Nil(t, j.Extra)
				return
			}
			for _, name := range tt.wantExtra {
				assert.Contains(t, j.Extra, name)
			}
			assert.Len(t, j.Extra, len(tt.wantExtra))
		})
	}
}

func TestJoke_MarshalJSON(t *testing.T) {
	var j Joke
	require.NoError(t, json.Unmarshal(
		[]byte(`{"_id":"65f1","content":"c","type":"pun","isActive":false,"updatedAt":"2024-03-01 10:00:00","author":"anon"}`), &j))

	out, err := json.Marshal(j)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"65f1","content":"c","type":"pun","isActive":false,"updatedAt":"2024-03-01 10:00:00","author":"anon"}`, string(out))
}

func TestJoke_MarshalJSON_KnownFieldsWin(t *testing.T) {
	j := Joke{
		ID:      "1",
		Content: "c",
		Type:    "pun",
		Extra:   map[string]json.RawMessage{"content": json.RawMessage(`"other"`)},
	}

	out, err := json.Marshal(j)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","content":"c","type":"pun","isActive":false}`, string(out))
}

func TestJoke_IsEmpty(t *testing.T) {
	assert.True(t, Joke{}.IsEmpty())
	assert.False(t, Joke{ID: "1"}.IsEmpty())
}
