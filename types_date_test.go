package tracker

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		want    Date
		wantErr bool
	}{
		{name: "iso form", in: "2024-01-15", want: NewDate(2024, time.January, 15)},
		{name: "single digit month and day", in: "2024-1-5", want: NewDate(2024, time.January, 5)},
		{name: "surrounding spaces", in: " 2024-01-15 ", want: NewDate(2024, time.January, 15)},
		{name: "not a date", in: "yesterday", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestStartOfWeek(t *testing.T) {
	// Weeks start on Sunday.
	testCases := []struct {
		in   string
		want string
	}{
		{"2024-01-15", "2024-01-14"}, // a Monday
		{"2024-01-14", "2024-01-14"}, // the Sunday itself
		{"2024-01-20", "2024-01-14"}, // the following Saturday
		{"2024-01-21", "2024-01-21"}, // next Sunday
	}
	for _, tc := range testCases {
		got := MustParseDate(tc.in).StartOfWeek()
		if got.String() != tc.want {
			t.Errorf("StartOfWeek(%s) = %s, want %s", tc.in, got, tc.want)
		}
		if got.Weekday() != time.Sunday {
			t.Errorf("StartOfWeek(%s) falls on a %s", tc.in, got.Weekday())
		}
	}
}

func TestSameMonth(t *testing.T) {
	testCases := []struct {
		a, b string
		want bool
	}{
		{"2024-01-15", "2024-01-01", true},
		{"2024-01-31", "2024-02-01", false},
		{"2024-01-15", "2025-01-15", false},
	}
	for _, tc := range testCases {
		if got := MustParseDate(tc.a).SameMonth(MustParseDate(tc.b)); got != tc.want {
			t.Errorf("SameMonth(%s, %s) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDateJSON(t *testing.T) {
	d := MustParseDate("2024-01-15")
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2024-01-15"` {
		t.Errorf("marshal = %s, want %q", data, "2024-01-15")
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}
