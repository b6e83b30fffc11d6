package v1

import (
	"encoding/json"
	"fmt"
	"time"
)

const localDateTimeLayout = "2006-01-02T15:04:05.999999999"

var localDateTimeInputLayouts = []string{
	localDateTimeLayout,
	"2006-01-02T15:04",
	time.RFC3339Nano,
}

// localDateTime is a date-time without a zone designator on the wire,
// e.g. 2024-05-01T10:00:00. Values are read and written as UTC.
type localDateTime time.Time

func newLocalDateTime(t time.Time) localDateTime {
	return localDateTime(t.UTC())
}

func parseLocalDateTime(s string) (time.Time, error) {
	for _, layout := range localDateTimeInputLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", errInvalidDateTime, s)
}

func (t localDateTime) Time() time.Time {
	return time.Time(t)
}

func (t localDateTime) String() string {
	return time.Time(t).UTC().Format(localDateTimeLayout)
}

func (t localDateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *localDateTime) UnmarshalJSON(data []byte) error {
	var raw string
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("%w: %s", errInvalidDateTime, data)
	}

	parsed, err := parseLocalDateTime(raw)
	if err != nil {
		return err
	}
	*t = localDateTime(parsed)
	return nil
}
