package employee

import "time"

type Employee struct {
	ID        string
	Name      string
	Gender    Gender
	Position  string
	CreatedAt time.Time
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func ValidGenders() []string {
	return []string{string(GenderMale), string(GenderFemale), string(GenderOther)}
}
