package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gagliardetto/solana-go"
)

func TestDenylistLoadAndReload(t *testing.T) {
	banned := solana.NewWallet().PublicKey()
	other := solana.NewWallet().PublicKey()

	path := filepath.Join(t.TempDir(), "denylist.yaml")
	if err := os.WriteFile(path, []byte("pools:\n  - "+banned.String()+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := NewDenylist(path)
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()
	if !d.Contains(banned) {
		t.Fatal("listed pool not found")
	}
	if d.Contains(other) {
		t.Fatal("unlisted pool reported as denylisted")
	}

	if err := os.WriteFile(path, []byte("pools:\n  - "+other.String()+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := d.Reload(); err != nil {
		t.Fatal(err)
	}
	if d.Contains(banned) || !d.Contains(other) {
		t.Fatal("reload did not replace the pool set")
	}
}

func TestDenylistSkipsInvalidEntries(t *testing.T) {
	good := solana.NewWallet().PublicKey()
	path := filepath.Join(t.TempDir(), "denylist.yaml")
	content := "pools:\n  - not-a-pubkey\n  - " + good.String() + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := NewDenylist(path)
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()
	if !d.Contains(good) {
		t.Fatal("valid entry lost when a neighbor was invalid")
	}
}

func TestDenylistEmptyPath(t *testing.T) {
	d, err := NewDenylist("")
	if err != nil {
		t.Fatal(err)
	}
	if d.Contains(solana.NewWallet().PublicKey()) {
		t.Fatal("empty denylist matched a pool")
	}
	// no watcher was started, Close must still be safe, twice over
	d.Close()
	d.Close()
}
