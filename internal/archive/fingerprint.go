package archive

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"sort"
)

// Fingerprint derives a stable identity for an archive from its entry names
// and contents. Renaming the archive file does not change the fingerprint;
// touching any entry does.
func Fingerprint(a Archive) (string, error) {
	entries, err := a.List()
	if err != nil {
		return "", fmt.Errorf("fingerprint %s: %w", a.Path(), err)
	}
	sorted := append([]string(nil), entries...)
	sort.Strings(sorted)

	hash := sha256.New()
	for _, name := range sorted {
		data, err := a.ReadFile(name)
		if err != nil {
			return "", fmt.Errorf("fingerprint %s: %w", a.Path(), err)
		}
		io.WriteString(hash, name)
		hash.Write([]byte{0})
		hash.Write(data)
		hash.Write([]byte{0})
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}
