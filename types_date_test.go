package ledger

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
		{name: "regular date", in: "15/03/2024", want: NewDate(2024, time.March, 15)},
		{name: "leap day", in: "29/02/2024", want: NewDate(2024, time.February, 29)},
		{name: "impossible day", in: "31/02/2024", wantErr: true},
		{name: "impossible leap day", in: "29/02/2023", wantErr: true},
		{name: "impossible month", in: "01/13/2024", wantErr: true},
		{name: "iso form rejected", in: "2024-03-15", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "garbage", in: "not a date", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseDate(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDate_Formats(t *testing.T) {
	d := NewDate(2024, time.March, 5)
	if got := d.String(); got != "05/03/2024" {
		t.Errorf("String() = %q, want %q", got, "05/03/2024")
	}
	if got := d.Key(); got != "2024-03-05" {
		t.Errorf("Key() = %q, want %q", got, "2024-03-05")
	}
}

func TestDate_Order(t *testing.T) {
	a := MustParseDate("01/01/2024")
	b := MustParseDate("02/01/2024")
	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before() broken for %v and %v", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("After() broken for %v and %v", a, b)
	}
}

func TestDate_JSON(t *testing.T) {
	d := MustParseDate("29/02/2024")
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"29/02/2024"` {
		t.Errorf("Marshal = %s, want %q", data, `"29/02/2024"`)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}

	if err := json.Unmarshal([]byte(`"31/02/2024"`), &back); err == nil {
		t.Error("Unmarshal accepted an impossible date")
	}
}
