package entity

// PersonRole is the profession tag stored on a person. It is informational
// only: which movies list a person as director/writer/star is decided by
// the association table, not by this tag.
type PersonRole string

const (
	PersonRoleDirector PersonRole = "D"
	PersonRoleWriter   PersonRole = "W"
	PersonRoleActor    PersonRole = "A"
)

type Person struct {
	Base
	FirstName string     `db:"first_name"`
	LastName  string     `db:"last_name"`
	Role      PersonRole `db:"role"`
}
