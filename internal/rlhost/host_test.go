package rlhost

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/canved/editor"
)

func TestKeyMap_Digits(t *testing.T) {
	digits := []int32{
		rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour, rl.KeyFive,
		rl.KeySix, rl.KeySeven, rl.KeyEight, rl.KeyNine,
	}
	for i, code := range digits {
		want := editor.Key1 + editor.Key(i)
		if got := keyMap[code]; got != want {
			t.Fatalf("digit %d maps to %v, want %v", i+1, got, want)
		}
	}
}

func TestKeyMap_Distinct(t *testing.T) {
	seen := make(map[editor.Key]int32)
	for code, k := range keyMap {
		if k == editor.KeyNone {
			t.Fatalf("key %d maps to KeyNone", code)
		}
		if prev, ok := seen[k]; ok {
			t.Fatalf("keys %d and %d both map to %v", prev, code, k)
		}
		seen[k] = code
	}
	if _, ok := keyMap[rl.KeyQ]; ok {
		t.Fatalf("Q is mapped to an editor key")
	}
}
