package dates

import "testing"

func TestToStorage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{name: "valid", value: "03/15/2025", want: "2025-03-15"},
		{name: "end of year", value: "12/31/2025", want: "2025-12-31"},
		{name: "leap day", value: "02/29/2024", want: "2024-02-29"},
		{name: "unpadded", value: "3/5/2025", wantErr: true},
		{name: "month out of range", value: "13/01/2025", wantErr: true},
		{name: "day out of range", value: "02/30/2025", wantErr: true},
		{name: "wrong separators", value: "2025-03-15", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ToStorage(tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ToStorage(%q) error = nil, want error", tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToStorage(%q) error = %v", tt.value, err)
			}
			if got != tt.want {
				t.Fatalf("ToStorage(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestToDisplayRoundTrip(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"01/01/2025", "03/15/2025", "12/31/1999", "02/29/2024"} {
		got, err := ToDisplay(value)
		if err != nil {
			t.Fatalf("ToDisplay(%q) error = %v", value, err)
		}
		if got != value {
			t.Fatalf("ToDisplay(%q) = %q, want identity", value, got)
		}
	}
}

func TestDueDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		days    int
		want    string
		wantErr bool
	}{
		{name: "simple", value: "03/15/2025", days: 30, want: "04/14/2025"},
		{name: "year rollover", value: "12/31/2025", days: 30, want: "01/30/2026"},
		{name: "leap year february", value: "02/15/2024", days: 30, want: "03/16/2024"},
		{name: "non leap february", value: "02/15/2025", days: 30, want: "03/17/2025"},
		{name: "zero days", value: "06/01/2025", days: 0, want: "06/01/2025"},
		{name: "invalid date", value: "31/12/2025", days: 30, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := DueDate(tt.value, tt.days)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("DueDate(%q, %d) error = nil, want error", tt.value, tt.days)
				}
				return
			}
			if err != nil {
				t.Fatalf("DueDate(%q, %d) error = %v", tt.value, tt.days, err)
			}
			if got != tt.want {
				t.Fatalf("DueDate(%q, %d) = %q, want %q", tt.value, tt.days, got, tt.want)
			}
		})
	}
}
