package timeslot

import "testing"

func TestFiveBucketClassify(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{0, "Late Night (9pm-5am)"},
		{4, "Late Night (9pm-5am)"},
		{5, "Morning (5am-11am)"},
		{10, "Morning (5am-11am)"},
		{11, "Lunch (11am-2pm)"},
		{13, "Lunch (11am-2pm)"},
		{14, "Afternoon (2pm-5pm)"},
		{16, "Afternoon (2pm-5pm)"},
		{17, "Evening (5pm-9pm)"},
		{20, "Evening (5pm-9pm)"},
		{21, "Late Night (9pm-5am)"},
		{23, "Late Night (9pm-5am)"},
	}
	for _, c := range cases {
		if got := FiveBucket.Classify(c.hour); got != c.want {
			t.Errorf("Classify(%d) = %q, want %q", c.hour, got, c.want)
		}
	}
}

func TestThreeBucketClassify(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{0, "Unknown"},
		{5, "Unknown"},
		{6, "Morning"},
		{11, "Morning"},
		{12, "Afternoon"},
		{16, "Afternoon"},
		{17, "Evening"},
		{21, "Evening"},
		{22, "Unknown"},
		{23, "Unknown"},
	}
	for _, c := range cases {
		if got := ThreeBucket.Classify(c.hour); got != c.want {
			t.Errorf("Classify(%d) = %q, want %q", c.hour, got, c.want)
		}
	}
}

// Every hour of the day must map to exactly one label from the table.
func TestClassifyIsTotal(t *testing.T) {
	for _, table := range []Table{FiveBucket, ThreeBucket} {
		known := map[string]bool{}
		for _, label := range table.Labels() {
			known[label] = true
		}
		for hour := 0; hour < 24; hour++ {
			label := table.Classify(hour)
			if !known[label] {
				t.Errorf("%s: Classify(%d) = %q, not a table label", table.Name, hour, label)
			}
		}
	}
}

func TestTableByName(t *testing.T) {
	if got := TableByName("three"); got.Name != "three" {
		t.Errorf("TableByName(three) = %q", got.Name)
	}
	if got := TableByName("five"); got.Name != "five" {
		t.Errorf("TableByName(five) = %q", got.Name)
	}
	if got := TableByName("bogus"); got.Name != "five" {
		t.Errorf("TableByName(bogus) should default to five, got %q", got.Name)
	}
}
