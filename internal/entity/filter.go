package entity

// RecordFilter narrows admission record queries and exports. Zero values
// mean "any".
type RecordFilter struct {
	Year     int
	Round    int
	College  string
	Course   string
	Quota    string
	Category string
	MinRank  int
	MaxRank  int
	Limit    int
	Offset   int
}
