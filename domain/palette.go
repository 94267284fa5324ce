package domain

type Palette struct {
	Id     string
	Name   string
	Colors []string
	Ctime  int64
	Utime  int64
}
