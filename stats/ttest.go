package stats

// WelchResult is the outcome of Welch's unequal-variance t test.
type WelchResult[F Float] struct {
	// T is the t statistic.
	T F
	// DF is the Welch-Satterthwaite degrees of freedom.
	DF F
}

// TStat returns the one-sample t statistic mean / (std / sqrt(n)).
func TStat[T Float](a []T) (T, error) {
	if err := need("TStat", len(a), 2); err != nil {
		return 0, err
	}
	return tstat(a), nil
}

// MeanDiff returns Mean(x1) - Mean(x2).
func MeanDiff[T Float](x1, x2 []T) (T, error) {
	if err := need("MeanDiff", len(x1), 1); err != nil {
		return 0, err
	}
	if err := need("MeanDiff", len(x2), 1); err != nil {
		return 0, err
	}
	return mean(x1) - mean(x2), nil
}

// TStat2 returns the two-sample t statistic with pooled variance and
// n1 + n2 - 2 degrees of freedom.
func TStat2[T Float](x1, x2 []T) (T, error) {
	if err := need("TStat2", len(x1), 2); err != nil {
		return 0, err
	}
	if err := need("TStat2", len(x2), 2); err != nil {
		return 0, err
	}
	m1, m2 := mean(x1), mean(x2)
	return pooledT(m1-m2, varm(x1, m1), varm(x2, m2), len(x1), len(x2)), nil
}

// WelchT returns Welch's t statistic and its Satterthwaite degrees of
// freedom for two samples with possibly unequal variances.
func WelchT[T Float](x1, x2 []T) (WelchResult[T], error) {
	if err := need("WelchT", len(x1), 2); err != nil {
		return WelchResult[T]{}, err
	}
	if err := need("WelchT", len(x2), 2); err != nil {
		return WelchResult[T]{}, err
	}

	m1, m2 := mean(x1), mean(x2)
	v1, v2 := varm(x1, m1), varm(x2, m2)
	n1, n2 := T(len(x1)), T(len(x2))

	s := v1/n1 + v2/n2
	df := s * s / (v1*v1/(n1*n1*(n1-1)) + v2*v2/(n2*n2*(n2-1)))

	return WelchResult[T]{T: (m1 - m2) / sqrt(s), DF: df}, nil
}

// PairedT returns the paired t statistic: TStat of the elementwise
// differences x1[i] - x2[i].
func PairedT[T Float](x1, x2 []T) (T, error) {
	if err := sameLength("PairedT", len(x1), len(x2)); err != nil {
		return 0, err
	}
	if err := need("PairedT", len(x1), 2); err != nil {
		return 0, err
	}

	buf, err := acquire[T]("PairedT", len(x1))
	if err != nil {
		return 0, err
	}
	defer release(buf)

	d := buf.Samples()
	for i := range d {
		d[i] = x1[i] - x2[i]
	}
	return tstat(d), nil
}

// DiDT returns the difference-in-differences t statistic: the pooled
// two-sample t of the changes x2 - x1 against the changes y2 - y1.
func DiDT[T Float](x1, x2, y1, y2 []T) (T, error) {
	if err := sameLength("DiDT", len(x1), len(x2)); err != nil {
		return 0, err
	}
	if err := sameLength("DiDT", len(y1), len(y2)); err != nil {
		return 0, err
	}
	if err := need("DiDT", len(x1), 2); err != nil {
		return 0, err
	}
	if err := need("DiDT", len(y1), 2); err != nil {
		return 0, err
	}

	nx, ny := len(x1), len(y1)
	buf, err := acquire[T]("DiDT", nx, ny)
	if err != nil {
		return 0, err
	}
	defer release(buf)

	dx := buf.Samples()[:nx:nx]
	for i := range dx {
		dx[i] = x2[i] - x1[i]
	}
	dy := buf.Samples()[nx:]
	for i := range dy {
		dy[i] = y2[i] - y1[i]
	}

	mx, my := mean(dx), mean(dy)
	return pooledT(mx-my, varm(dx, mx), varm(dy, my), nx, ny), nil
}

func tstat[T Float](a []T) T {
	m := mean(a)
	s := sqrt(varm(a, m))
	return m / (s / sqrt(T(len(a))))
}

// pooledT is the pooled-variance t for mean difference md.
func pooledT[T Float](md, v1, v2 T, n1, n2 int) T {
	df := T(n1) + T(n2) - 2
	sp := sqrt((T(n1-1)*v1 + T(n2-1)*v2) / df)
	return md / (sp * sqrt(1/T(n1)+1/T(n2)))
}
