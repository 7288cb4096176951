package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// codec turns a document into file bytes and back, sealing it when a
// passphrase is set.
type codec struct {
	passphrase string
	kdf        kdfParams
}

func (c codec) sealed() bool { return c.passphrase != "" }

// readJSON best-effort reads path into out; a missing file is not an error.
func (c codec) readJSON(path string, out any) error {
	b, err := readFile(path)
	if err != nil {
		return err
	}
	if b == nil { // file didn’t exist
		return nil
	}
	if c.sealed() {
		if b, err = unseal(c.passphrase, b); err != nil {
			return err
		}
	}
	return json.Unmarshal(b, out)
}

// writeJSON writes v via a temp file then rename.
func (c codec) writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if c.sealed() {
		plain := b
		b, err = seal(c.passphrase, plain, c.kdf)
		wipe(plain)
		if err != nil {
			return err
		}
	}
	return writeFile(path, b, 0o600)
}

// readFile reads the file at path into b; a missing file is not an error.
func readFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// writeFile writes bytes via a temp file, then atomically replaces the target.
func writeFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, path)
}
