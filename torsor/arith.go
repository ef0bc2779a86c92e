package torsor

// Add returns t displaced forward by the offset v.
func (t Torsor[R, U]) Add(v R) Torsor[R, U] {
	return Torsor[R, U]{v: t.v + v}
}

// Sub returns t displaced backward by the offset v.
func (t Torsor[R, U]) Sub(v R) Torsor[R, U] {
	return Torsor[R, U]{v: t.v - v}
}

// Diff returns the offset that takes u to t, so that u.Add(t.Diff(u)) == t.
func (t Torsor[R, U]) Diff(u Torsor[R, U]) R {
	return t.v - u.v
}

// AddTo is Add with the offset on the left.
func AddTo[R Number, U Universe](v R, t Torsor[R, U]) Torsor[R, U] {
	return Torsor[R, U]{v: v + t.v}
}

// Inc moves t forward by v in place and returns t.
func (t *Torsor[R, U]) Inc(v R) *Torsor[R, U] {
	t.v += v
	return t
}

// Dec moves t backward by v in place and returns t.
func (t *Torsor[R, U]) Dec(v R) *Torsor[R, U] {
	t.v -= v
	return t
}
