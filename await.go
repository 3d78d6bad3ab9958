package futures

// AwaitAll blocks until every future has an outcome and returns their
// values in order. If any future failed, AwaitAll returns the collected
// values alongside the first error encountered in argument order. The
// futures themselves stay readable afterwards; AwaitAll is as idempotent
// as Get.
func AwaitAll[T any](futures ...*Future[T]) ([]T, error) {
	results := make([]T, len(futures))
	var firstErr error
	for i, f := range futures {
		v, err := f.Get()
		results[i] = v
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return results, firstErr
}

// AwaitAny blocks until at least one future has an outcome and returns its
// index, value, and error. When several futures are already terminal, the
// one returned is unspecified. AwaitAny returns -1 and ErrNoFutures when
// called with no futures.
//
// One goroutine is started per pending future; each exits as soon as its
// future completes.
func AwaitAny[T any](futures ...*Future[T]) (int, T, error) {
	if len(futures) == 0 {
		var zero T
		return -1, zero, ErrNoFutures
	}

	type outcome struct {
		index int
		value T
		err   error
	}
	first := make(chan outcome, 1)

	for i, f := range futures {
		go func(index int, f *Future[T]) {
			v, err := f.Get()
			select {
			case first <- outcome{index, v, err}:
			default:
				// Another future won the race.
			}
		}(i, f)
	}

	res := <-first
	return res.index, res.value, res.err
}
