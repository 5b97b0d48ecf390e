package Trees

import (
	"errors"
	"slices"
	"testing"
)

func TestUnbalancedTree_SortedDegeneration(t *testing.T) {
	tree := NewUnbalancedTree[int]()
	n := 512
	for i := 0; i < n; i++ {
		if err := tree.Insert(i); err != nil {
			t.Fatal(err)
		}
	}
	// ascending insertion builds a right chain with no rebalancing
	if tree.Height() != n-1 {
		t.Errorf("height = %d, want %d", tree.Height(), n-1)
	}
	if tree.IsBalanced() {
		t.Error("a chain must not report balanced")
	}
	if tree.Corrupt() {
		t.Error("a chain is still a valid search tree")
	}
}

func TestUnbalancedTree_Duplicates(t *testing.T) {
	tree := NewUnbalancedTree[int]()
	for _, v := range []int{5, 5, 5} {
		if err := tree.Insert(v); err != nil {
			t.Fatalf("duplicates are allowed here: %v", err)
		}
	}
	if tree.Size() != 3 || tree.Corrupt() {
		t.Errorf("size = %d, want 3", tree.Size())
	}
	for i := 0; i < 3; i++ {
		if err := tree.Remove(5); err != nil {
			t.Fatalf("removing occurrence %d: %v", i, err)
		}
	}
	var empty *EmptyTreeError
	if err := tree.Remove(5); !errors.As(err, &empty) {
		t.Errorf("got %v, want EmptyTreeError", err)
	}
}

func TestUnbalancedTree_RandomModel(t *testing.T) {
	tree := NewUnbalancedTree[int]()
	content := make(map[int]int) //value -> live occurrences
	live := 0
	for i := 0; i < 4000; i++ {
		v := rg.Intn(200)
		if rg.Intn(2) == 0 {
			if err := tree.Insert(v); err != nil {
				t.Fatal(err)
			}
			content[v]++
			live++
		} else if err := tree.Remove(v); err == nil {
			if content[v] == 0 {
				t.Fatalf("removed %v which the model says is absent", v)
			}
			content[v]--
			live--
		} else if content[v] > 0 {
			t.Fatalf("failed to remove present %v: %v", v, err)
		}
		if i&511 == 0 && tree.Corrupt() {
			t.Fatal("tree corrupt during churn")
		}
	}
	if tree.Size() != uint(live) {
		t.Errorf("size = %d, model says %d", tree.Size(), live)
	}
	want := make([]int, 0, live)
	for v, c := range content {
		for j := 0; j < c; j++ {
			want = append(want, v)
		}
	}
	slices.Sort(want)
	if got := tree.SortedValues(); !slices.Equal(got, want) {
		t.Error("in-order traversal disagrees with the model multiset")
	}
}
