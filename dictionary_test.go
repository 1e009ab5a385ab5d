// Dictionary builder tests.
//
// The writer emits the index in entry order without re-sorting, so the
// sorted-insert and duplicate-suppression behaviour here is what makes
// the on-disk invariants (strictly sorted index, strictly increasing
// posting lists) hold.
package ftsearch

import (
	"errors"
	"reflect"
	"sort"
	"strings"
	"testing"
)

func TestDictionaryAddSorted(t *testing.T) {
	var d Dictionary
	for _, w := range []string{"zebra", "apple", "mango", "banana"} {
		if err := d.Add(w, 0); err != nil {
			t.Fatalf("Add(%q): %v", w, err)
		}
	}

	words := make([]string, 0, d.Len())
	for _, e := range d.entries {
		words = append(words, e.word)
	}
	if !sort.StringsAreSorted(words) {
		t.Errorf("entries not sorted: %v", words)
	}
	if d.Len() != 4 {
		t.Errorf("Len() = %d, want 4", d.Len())
	}
}

// Adding the same token twice for the same document must produce a
// single posting.
func TestDictionaryIdempotentAdd(t *testing.T) {
	var d Dictionary
	d.Add("hello", 7)
	d.Add("hello", 7)

	if got := d.entries[0].ids; !reflect.DeepEqual(got, []uint32{7}) {
		t.Errorf("posting list = %v, want [7]", got)
	}
}

func TestDictionaryPostingOrder(t *testing.T) {
	var d Dictionary
	for id := uint32(0); id < 5; id++ {
		d.Add("word", id)
	}

	want := []uint32{0, 1, 2, 3, 4}
	if got := d.entries[0].ids; !reflect.DeepEqual(got, want) {
		t.Errorf("posting list = %v, want %v", got, want)
	}
}

// A word of exactly MaxWordLen bytes has no room for the slot's NUL
// terminator and is rejected instead of silently truncated.
func TestDictionaryWordTooLong(t *testing.T) {
	var d Dictionary

	long := strings.Repeat("x", MaxWordLen)
	if err := d.Add(long, 0); !errors.Is(err, ErrWordTooLong) {
		t.Errorf("Add(%d bytes) = %v, want ErrWordTooLong", len(long), err)
	}

	ok := strings.Repeat("x", MaxWordLen-1)
	if err := d.Add(ok, 0); err != nil {
		t.Errorf("Add(%d bytes) = %v, want nil", len(ok), err)
	}
}

func TestDictionaryAddWordsSkipsLongTokens(t *testing.T) {
	var d Dictionary
	d.AddWords([]string{"short", strings.Repeat("y", 40), "also"}, 0)

	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (over-long token skipped)", d.Len())
	}
}

func TestDictionaryMultipleWordsMultipleDocs(t *testing.T) {
	var d Dictionary
	d.AddWords(Tokenize("the quick fox"), 0)
	d.AddWords(Tokenize("the lazy dog"), 1)

	find := func(w string) []uint32 {
		for _, e := range d.entries {
			if e.word == w {
				return e.ids
			}
		}
		return nil
	}

	if got := find("the"); !reflect.DeepEqual(got, []uint32{0, 1}) {
		t.Errorf(`postings for "the" = %v, want [0 1]`, got)
	}
	if got := find("fox"); !reflect.DeepEqual(got, []uint32{0}) {
		t.Errorf(`postings for "fox" = %v, want [0]`, got)
	}
}
