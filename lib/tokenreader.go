package lib

type tokenReader interface {
	next() (token, error)
}
