package repokit

// Binder binds a domain repo to a Queryer, either the pool or a transaction
type Binder[T any] interface {
	Bind(Queryer) T
}

// BindFunc lets a function act as a Binder
type BindFunc[T any] func(Queryer) T

// Bind calls the underlying function
func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }

// MustBind panics on a nil Queryer, then binds
func MustBind[T any](b Binder[T], q Queryer) T {
	if q == nil {
		panic("repokit: nil Queryer")
	}
	return b.Bind(q)
}
