// Package benchmarks compares reads through an Inited proof with the usual Go ways of
// publishing a value once.
package benchmarks

import (
	"sync"
	"sync/atomic"

	"github.com/comalice/staticcell"
)

// Settings is the payload every strategy publishes.
type Settings struct {
	Workers  int
	Deadline int64
	Name     string
}

// Seed returns the value each strategy is initialized with.
func Seed() Settings {
	return Settings{Workers: 16, Deadline: 1500, Name: "bench"}
}

var settingsCell staticcell.Cell[Settings]

// SettingsStatic binds Settings to settingsCell.
type SettingsStatic struct{}

func (SettingsStatic) Holder() staticcell.Ptr[Settings] { return settingsCell.Ptr() }

var (
	initOnce    sync.Once
	proof       staticcell.Inited[SettingsStatic, Settings]
	onceValue   = sync.OnceValue(func() *Settings { s := Seed(); return &s })
	onceGuarded sync.Once
	onceTarget  *Settings
	atomicPtr   atomic.Pointer[Settings]
	plainGlobal *Settings
)

// Proof initializes every strategy on first call and returns the staticcell proof.
func Proof() staticcell.Inited[SettingsStatic, Settings] {
	initOnce.Do(func() {
		proof = staticcell.Init[SettingsStatic](Seed())
		s := Seed()
		atomicPtr.Store(&s)
		g := Seed()
		plainGlobal = &g
	})
	return proof
}

// OnceValue reads through sync.OnceValue.
func OnceValue() *Settings {
	return onceValue()
}

// OnceGuarded reads through a sync.Once guarding a package variable.
func OnceGuarded() *Settings {
	onceGuarded.Do(func() {
		s := Seed()
		onceTarget = &s
	})
	return onceTarget
}

// AtomicPointer reads through an atomic.Pointer.
func AtomicPointer() *Settings {
	return atomicPtr.Load()
}

// PlainGlobal reads an unguarded package variable.
func PlainGlobal() *Settings {
	return plainGlobal
}
