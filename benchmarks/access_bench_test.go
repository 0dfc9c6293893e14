package benchmarks

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var sink int

func TestStrategiesAgree(t *testing.T) {
	p := Proof()
	want := Seed()
	require.Equal(t, want, *p.Get())
	require.Equal(t, want, *OnceValue())
	require.Equal(t, want, *OnceGuarded())
	require.Equal(t, want, *AtomicPointer())
	require.Equal(t, want, *PlainGlobal())
	require.Same(t, p.Get(), Proof().Get())
}

func BenchmarkRead(b *testing.B) {
	p := Proof()
	strategies := []struct {
		name string
		read func() *Settings
	}{
		{"inited", p.Get},
		{"once_value", OnceValue},
		{"once_guarded", OnceGuarded},
		{"atomic_pointer", AtomicPointer},
		{"plain_global", PlainGlobal},
	}
	for _, s := range strategies {
		b.Run(s.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sink += s.read().Workers
			}
		})
	}
}

// BenchmarkReadInlined keeps the calls direct so the compiler can inline each path.
func BenchmarkReadInlined(b *testing.B) {
	p := Proof()
	b.Run("inited", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sink += p.Get().Workers
		}
	})
	b.Run("once_value", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sink += OnceValue().Workers
		}
	})
	b.Run("atomic_pointer", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			sink += AtomicPointer().Workers
		}
	})
}

func BenchmarkReadParallel(b *testing.B) {
	p := Proof()
	b.Run("inited", func(b *testing.B) {
		b.RunParallel(func(pb *testing.PB) {
			n := 0
			for pb.Next() {
				n += p.Get().Workers
			}
			_ = n
		})
	})
	b.Run("once_value", func(b *testing.B) {
		b.RunParallel(func(pb *testing.PB) {
			n := 0
			for pb.Next() {
				n += OnceValue().Workers
			}
			_ = n
		})
	})
}
