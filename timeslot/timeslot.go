package timeslot

// Bucket maps the half-open hour range [Start, End) to a label.
type Bucket struct {
	Start int
	End   int
	Label string
}

// Table is an ordered bucket table with a fallback label for hours no
// bucket covers. Different deployment generations run different tables;
// the classification code path is the same for all of them.
type Table struct {
	Name     string
	Buckets  []Bucket
	Fallback string
}

// FiveBucket is the classic café day split, with everything from 9pm to
// 5am falling through to Late Night.
var FiveBucket = Table{
	Name: "five",
	Buckets: []Bucket{
		{Start: 5, End: 11, Label: "Morning (5am-11am)"},
		{Start: 11, End: 14, Label: "Lunch (11am-2pm)"},
		{Start: 14, End: 17, Label: "Afternoon (2pm-5pm)"},
		{Start: 17, End: 21, Label: "Evening (5pm-9pm)"},
	},
	Fallback: "Late Night (9pm-5am)",
}

// ThreeBucket is the coarser scheme used by earlier deployments.
var ThreeBucket = Table{
	Name: "three",
	Buckets: []Bucket{
		{Start: 6, End: 12, Label: "Morning"},
		{Start: 12, End: 17, Label: "Afternoon"},
		{Start: 17, End: 22, Label: "Evening"},
	},
	Fallback: "Unknown",
}

// Classify maps a wall-clock hour (0-23) to its time-slot label. Total over
// its domain: hours outside every bucket get the fallback label.
func (t Table) Classify(hour int) string {
	for _, b := range t.Buckets {
		if hour >= b.Start && hour < b.End {
			return b.Label
		}
	}
	return t.Fallback
}

// Labels returns every label the table can produce, buckets first, fallback
// last.
func (t Table) Labels() []string {
	labels := make([]string, 0, len(t.Buckets)+1)
	for _, b := range t.Buckets {
		labels = append(labels, b.Label)
	}
	return append(labels, t.Fallback)
}

// TableByName resolves a configured scheme name to its bucket table,
// defaulting to the five-bucket scheme for unrecognized names.
func TableByName(name string) Table {
	if name == ThreeBucket.Name {
		return ThreeBucket
	}
	return FiveBucket
}
