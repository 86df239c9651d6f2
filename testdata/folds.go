package testdata

func folds() {
	sum := xs + _
	diff := xs - _
	rdiff := _ - xs
	quot := xs / _
	rquot := _ / xs
	bits := ys | _

	ascending := ys < _
	descending := _ < zs
	same := eqs == _
	distinct := (ys != _) != limit
	repeats := (ys != _) != 4
	ys >= _

	total = (_ * ys)

	limit + 1
	println(limit)
}
