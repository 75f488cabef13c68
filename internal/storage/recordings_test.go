package storage

import (
	"bytes"
	"testing"
)

func TestStoreRecordings(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveRecords("s1", nil); err != nil {
		t.Fatalf("SaveRecords(nil) failed: %v", err)
	}

	batch := [][]byte{{1}, {2}, {3}}
	if err := store.SaveRecords("s1", batch); err != nil {
		t.Fatalf("SaveRecords() failed: %v", err)
	}
	if err := store.SaveRecords("s2", [][]byte{{4}, {5}}); err != nil {
		t.Fatalf("SaveRecords() failed: %v", err)
	}

	n, err := store.CountRecords()
	if err != nil {
		t.Fatalf("CountRecords() failed: %v", err)
	}
	if n != 5 {
		t.Errorf("CountRecords() = %d, want 5", n)
	}

	all, err := store.LoadRecords(0)
	if err != nil {
		t.Fatalf("LoadRecords() failed: %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("LoadRecords(0) returned %d frames, want 5", len(all))
	}
	for i, f := range all {
		if !bytes.Equal(f, []byte{byte(i + 1)}) {
			t.Errorf("frame %d = %v, want [%d]", i, f, i+1)
		}
	}

	// Limit keeps the most recent frames, oldest first
	recent, err := store.LoadRecords(2)
	if err != nil {
		t.Fatalf("LoadRecords() failed: %v", err)
	}
	if len(recent) != 2 || recent[0][0] != 4 || recent[1][0] != 5 {
		t.Errorf("LoadRecords(2) = %v, want [[4] [5]]", recent)
	}

	if err := store.ClearRecords(); err != nil {
		t.Fatalf("ClearRecords() failed: %v", err)
	}
	if n, _ := store.CountRecords(); n != 0 {
		t.Errorf("CountRecords() after clear = %d", n)
	}
}
