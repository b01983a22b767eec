package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"otttrusted/store"
)

func TestFileStoreRoundTrip(t *testing.T) {
	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	type record struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	if err := st.Save("demo", record{Name: "netflix", Count: 2}); err != nil {
		t.Fatal(err)
	}

	var got record
	found, err := st.Load("demo", &got)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Error("Expected saved value to be found")
	}
	if got.Name != "netflix" || got.Count != 2 {
		t.Error("Expected saved record back, got", got)
	}
}

func TestFileStoreMissingKey(t *testing.T) {
	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	var got map[string]string
	found, err := st.Load("nothing", &got)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("Expected missing key to report not found")
	}
}

func TestFileStoreCorruptValueTreatedAsAbsent(t *testing.T) {
	dir := t.TempDir()
	st, err := store.NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dir, store.KeyOrders+".json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	var got []string
	found, err := st.Load(store.KeyOrders, &got)
	if err != nil {
		t.Error("Expected corrupt value to not be a hard failure, got", err)
	}
	if found {
		t.Error("Expected corrupt value to report not found")
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	st, err := store.NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := st.Save("k", []int{1, 2, 3}); err != nil {
		t.Fatal(err)
	}

	st2, err := store.NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	var got []int
	found, _ := st2.Load("k", &got)
	if !found || len(got) != 3 {
		t.Error("Expected value to survive reopen, got", got)
	}
}

func TestSubscribeNotifiesOnSaveAndDelete(t *testing.T) {
	st := store.NewMemStore()

	calls := 0
	cancel := st.Subscribe("k", func() { calls++ })

	st.Save("k", 1)
	st.Save("other", 1)
	st.Delete("k")
	if calls != 2 {
		t.Error("Expected 2 notifications, got", calls)
	}

	cancel()
	st.Save("k", 2)
	if calls != 2 {
		t.Error("Expected no notification after cancel, got", calls)
	}
}

func TestMemStoreDelete(t *testing.T) {
	st := store.NewMemStore()
	st.Save("k", "v")
	st.Delete("k")

	var got string
	found, _ := st.Load("k", &got)
	if found {
		t.Error("Expected deleted key to report not found")
	}
}
