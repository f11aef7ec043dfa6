package matrix_test

import (
	"testing"

	"github.com/katalvlaran/aomkin/matrix"
)

// BenchmarkSolve6 measures a 6×6 solve, the LH network size.
func BenchmarkSolve6(b *testing.B) {
	rows := make([][]float64, 6)
	for i := range rows {
		rows[i] = make([]float64, 6)
		for j := range rows[i] {
			rows[i][j] = 1 / float64(i+j+1)
		}
		rows[i][i] += 6
	}
	a, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		b.Fatal(err)
	}
	rhs := []float64{1, 0, 0, 0, 0, 1}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = matrix.Solve(a, rhs); err != nil {
			b.Fatal(err)
		}
	}
}
