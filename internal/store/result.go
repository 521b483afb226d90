package store

import "mytodo/internal/model"

// Result is the outcome of a gateway-backed mutation. A confirmed result
// carries the authoritative record; a failed one carries the error and a
// snapshot of the collection taken before the optimistic change, so the
// caller can roll back with Load if it chooses to. The session layer keeps
// the historical behavior of not rolling back, but the snapshot makes that a
// decision rather than an accident.
type Result struct {
	Todo     model.Todo
	Err      error
	Snapshot []model.Todo
}

func Confirmed(t model.Todo) Result {
	return Result{Todo: t}
}

func Failed(err error, snapshot []model.Todo) Result {
	return Result{Err: err, Snapshot: snapshot}
}

// Confirmed reports whether the mutation was acknowledged by the gateway.
func (r Result) Confirmed() bool {
	return r.Err == nil
}
