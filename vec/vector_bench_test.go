package vec

import (
	"testing"

	"github.com/joshuapare/veckit/vec/alloc"
)

func BenchmarkPushBack(b *testing.B) {
	b.ResetTimer()
	for range b.N {
		v := New[int]()
		for i := 0; i < 1024; i++ {
			if err := v.PushBack(i); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkPushBack_PreReserved(b *testing.B) {
	b.ResetTimer()
	for range b.N {
		v := New[int]()
		if err := v.Reserve(1024); err != nil {
			b.Fatal(err)
		}
		for i := 0; i < 1024; i++ {
			if err := v.PushBack(i); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkPushBack_Arena(b *testing.B) {
	arena, err := alloc.NewArena[int](1 << 20)
	if err != nil {
		b.Fatal(err)
	}
	defer arena.Close()

	b.ResetTimer()
	for range b.N {
		arena.Reset()
		v := NewIn[int](arena)
		for i := 0; i < 1024; i++ {
			if err := v.PushBack(i); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkInsertFront(b *testing.B) {
	b.ResetTimer()
	for range b.N {
		v := New[int]()
		for i := 0; i < 256; i++ {
			if _, err := v.Insert(v.CBegin(), i); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkErase(b *testing.B) {
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		v := New[int]()
		for i := 0; i < 256; i++ {
			_ = v.PushBack(i)
		}
		b.StartTimer()
		for v.Len() > 0 {
			if _, err := v.Erase(v.CBegin()); err != nil {
				b.Fatal(err)
			}
		}
	}
}
