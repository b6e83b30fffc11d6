package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "PENDENTE"
	StatusInProgress TaskStatus = "EM_ANDAMENTO"
	StatusCompleted  TaskStatus = "CONCLUIDA"
)

var ErrInvalidTaskStatus = errors.New("invalid task status")

var taskStatusLabels = map[TaskStatus]string{
	StatusPending:    "Pendente",
	StatusInProgress: "Em Andamento",
	StatusCompleted:  "Concluída",
}

// TaskStatuses returns every known status in declaration order.
func TaskStatuses() []TaskStatus {
	return []TaskStatus{StatusPending, StatusInProgress, StatusCompleted}
}

// ParseTaskStatus accepts a status name in any letter case.
// Surrounding whitespace is not stripped.
func ParseTaskStatus(s string) (TaskStatus, error) {
	status := TaskStatus(strings.ToUpper(s))
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTaskStatus, s)
	}
	return status, nil
}

func (s TaskStatus) Valid() bool {
	_, ok := taskStatusLabels[s]
	return ok
}

func (s TaskStatus) DisplayName() string {
	return taskStatusLabels[s]
}

func (s TaskStatus) String() string {
	return string(s)
}

// UnmarshalJSON is strict about letter case, unlike ParseTaskStatus.
func (s *TaskStatus) UnmarshalJSON(data []byte) error {
	var raw string
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTaskStatus, data)
	}

	status := TaskStatus(raw)
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTaskStatus, raw)
	}
	*s = status
	return nil
}
