package types

// TimeString время начала слота в том виде, в котором его передал клиент (например "14:00")
type TimeString string

func (t TimeString) IsZero() bool {
	return t == ""
}

func (t TimeString) String() string {
	return string(t)
}

// DateString дата слота в том виде, в котором её передал клиент (например "2025-01-10")
type DateString string

func (d DateString) IsZero() bool {
	return d == ""
}

func (d DateString) String() string {
	return string(d)
}
