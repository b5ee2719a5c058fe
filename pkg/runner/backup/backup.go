package backup

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/3mero/anilog/pkg/store"
)

// Export writes the profile backup document to a file, or stdout when File
// is empty.
type Export struct {
	File string

	Store *store.Store
}

func (n *Export) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not export, no store")
	}

	data, err := n.Store.Export()
	if err != nil {
		return err
	}
	if n.File == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(n.File, data, 0o644); err != nil {
		return fmt.Errorf("backup: writing %s: %w", n.File, err)
	}
	f := color.New(color.Faint)
	_, _ = f.Printf("exported profile to %s\n", n.File)
	return nil
}

// Import replaces the profile from a backup file. Malformed fields recover
// to defaults; the command reports when that happened instead of failing.
type Import struct {
	File string

	Store *store.Store
}

func (n *Import) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not import, no store")
	}

	data, err := os.ReadFile(n.File)
	if err != nil {
		return fmt.Errorf("backup: reading %s: %w", n.File, err)
	}
	recovered, err := n.Store.Import(data)
	if err != nil {
		return err
	}
	if recovered {
		y := color.New(color.FgHiYellow)
		_, _ = y.Println("imported with defaults for malformed fields")
		return nil
	}
	f := color.New(color.Faint)
	_, _ = f.Printf("imported profile from %s\n", n.File)
	return nil
}
