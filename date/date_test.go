package date

import (
	"slices"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := FromTime(time.Date(2025, 7, 31, 15, 4, 5, 0, time.Local))

	if d1 != d2 {
		t.Errorf("FromTime() = %v want %v", d2, d1)
	}
	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2018-01-01", want: New(2018, time.January, 1)},
		{in: "2018-2-1", want: New(2018, time.February, 1)},
		{in: "2018-02-01T00:00:00", want: New(2018, time.February, 1)},
		{in: "2018-02-01 13:45:00", want: New(2018, time.February, 1)},
		{in: " 2018-03-31 ", want: New(2018, time.March, 31)},
		{in: "Label", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestUnion(t *testing.T) {
	a := []Date{MustParse("2018-01-01"), MustParse("2018-03-01")}
	b := []Date{MustParse("2018-02-01"), MustParse("2018-03-01"), MustParse("2018-04-01")}

	want := []Date{MustParse("2018-01-01"), MustParse("2018-02-01"), MustParse("2018-03-01"), MustParse("2018-04-01")}
	if got := Union(a, b); !slices.Equal(got, want) {
		t.Errorf("Union(a, b) = %v, want %v", got, want)
	}
	if got := Union(b, a); !slices.Equal(got, want) {
		t.Errorf("Union(b, a) = %v, want %v", got, want)
	}
	if got := Union(); len(got) != 0 {
		t.Errorf("Union() = %v, want empty", got)
	}
}

func TestNewRange(t *testing.T) {
	r, ok := NewRange(MustParse("2018-03-01"), MustParse("2018-01-01"), MustParse("2018-02-01"))
	if !ok {
		t.Fatal("NewRange() not ok")
	}
	want := Range{From: MustParse("2018-01-01"), To: MustParse("2018-03-01")}
	if r != want {
		t.Errorf("NewRange() = %v, want %v", r, want)
	}
	if r.String() != "2018-01-01 to 2018-03-01" {
		t.Errorf("String() = %q, want %q", r.String(), "2018-01-01 to 2018-03-01")
	}
	if _, ok := NewRange(); ok {
		t.Errorf("NewRange() with no dates is ok")
	}
}
