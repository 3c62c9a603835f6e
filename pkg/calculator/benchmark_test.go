package calculator

import "testing"

func BenchmarkCalculate(b *testing.B) {
	calc := New(nil)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := calc.Calculate("台北市", "4"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCalculateInvalid(b *testing.B) {
	calc := New(nil)
	for i := 0; i < b.N; i++ {
		if _, err := calc.Calculate("台北市", "abc"); err == nil {
			b.Fatal("expected error")
		}
	}
}
