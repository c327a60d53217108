/*
Package sequence provides lazy, composable transformations over iter.Seq.

A pipeline is built from a source and any number of stages. Nothing is
computed until the result is ranged over, and ranging again recomputes from
the source, so pipelines are restartable:

	squares := sequence.Map(
		sequence.Filter(sequence.Range(1, 10), func(n int) bool { return n%2 == 0 }),
		func(n int) int { return n * n },
	)
	for n := range squares {
		fmt.Println(n)
	}

Breaking out of the loop stops every upstream stage.
*/
package sequence
