package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"voice-task-extractor/pkg/response"
)

func TestDateMarshalJSON(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{name: "UTC midnight", in: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), want: `"2024-05-01"`},
		{name: "Keeps own location", in: time.Date(2024, 5, 1, 0, 0, 0, 0, tokyo), want: `"2024-05-01"`},
		{name: "Ignores clock", in: time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC), want: `"2024-12-31"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(response.Date(tt.in))
			if err != nil {
				t.Fatalf("unexpected error marshaling Date: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("Marshal() = %s, want %s", b, tt.want)
			}
		})
	}
}
