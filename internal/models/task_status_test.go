package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskStatus(t *testing.T) {
	tests := []struct {
		in   string
		want TaskStatus
	}{
		{"PENDENTE", StatusPending},
		{"em_andamento", StatusInProgress},
		{"Concluida", StatusCompleted},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTaskStatus(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTaskStatus_Unknown(t *testing.T) {
	for _, in := range []string{"", "  ", " PENDENTE", "CONCLUIDA ", "DONE", "PENDING", "CONCLUÍDA"} {
		_, err := ParseTaskStatus(in)
		assert.ErrorIs(t, err, ErrInvalidTaskStatus, in)
	}
}

func TestTaskStatus_DisplayName(t *testing.T) {
	assert.Equal(t, "Pendente", StatusPending.DisplayName())
	assert.Equal(t, "Em Andamento", StatusInProgress.DisplayName())
	assert.Equal(t, "Concluída", StatusCompleted.DisplayName())
	assert.Empty(t, TaskStatus("ARCHIVED").DisplayName())
}

func TestTaskStatus_UnmarshalJSON(t *testing.T) {
	var body struct {
		Status *TaskStatus `json:"status"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"status":"EM_ANDAMENTO"}`), &body))
	require.NotNil(t, body.Status)
	assert.Equal(t, StatusInProgress, *body.Status)

	body.Status = nil
	require.NoError(t, json.Unmarshal([]byte(`{"status":null}`), &body))
	assert.Nil(t, body.Status)

	err := json.Unmarshal([]byte(`{"status":"em_andamento"}`), &body)
	assert.ErrorIs(t, err, ErrInvalidTaskStatus)

	err = json.Unmarshal([]byte(`{"status":3}`), &body)
	assert.ErrorIs(t, err, ErrInvalidTaskStatus)
}

func TestTaskStatus_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(map[string]TaskStatus{"status": StatusCompleted})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"CONCLUIDA"}`, string(data))
}
