package entity

type Genre struct {
	Base
	Title string `db:"title"`
}
