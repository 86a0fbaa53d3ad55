package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchFiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.yaml")
	if err := os.WriteFile(path, []byte("name: test\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tw, err := NewTableWatcher(50*time.Millisecond, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer tw.Close()

	changed := make(chan string, 1)
	if err := tw.Watch([]string{path}, func(p string) { changed <- p }); err != nil {
		t.Fatal(err)
	}
	tw.Start()

	if err := os.WriteFile(path, []byte("name: edited\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-changed:
		want, _ := filepath.Abs(path)
		if got != want {
			t.Errorf("callback path: expected %s, got %s", want, got)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("change callback never fired")
	}
}

func TestWatchDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.yaml")
	if err := os.WriteFile(path, []byte("a\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tw, err := NewTableWatcher(200*time.Millisecond, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer tw.Close()

	changed := make(chan string, 16)
	if err := tw.Watch([]string{path}, func(p string) { changed <- p }); err != nil {
		t.Fatal(err)
	}
	tw.Start()

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte("b\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	// The burst collapses into one callback.
	select {
	case <-changed:
	case <-time.After(3 * time.Second):
		t.Fatal("debounced callback never fired")
	}
	select {
	case <-changed:
		t.Error("burst of writes produced more than one callback")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestRemoveAllStopsCallbacks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.yaml")
	if err := os.WriteFile(path, []byte("a\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tw, err := NewTableWatcher(20*time.Millisecond, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer tw.Close()

	changed := make(chan string, 1)
	if err := tw.Watch([]string{path}, func(p string) { changed <- p }); err != nil {
		t.Fatal(err)
	}
	tw.Start()
	if err := tw.RemoveAll(); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("b\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changed:
		t.Error("callback fired after RemoveAll")
	case <-time.After(300 * time.Millisecond):
	}
}
