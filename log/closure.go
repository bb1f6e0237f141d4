package log

// LogClosure turns a function into a fmt.Stringer, so building an
// expensive log argument can be deferred until a handler actually
// formats it.
type LogClosure func() string

func (c LogClosure) String() string {
	return c()
}
