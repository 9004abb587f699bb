package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nzoschke/productivity/internal/app"
	"github.com/nzoschke/productivity/internal/config"
	"github.com/nzoschke/productivity/internal/localstore"
	"github.com/nzoschke/productivity/internal/markdown"
	"github.com/spf13/cobra"
)

func BackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Refresh the fallback store from the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(config.Load())
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			// Trackers that load are mirrored to the fallback store
			loadErr := a.Load(cmd.Context())
			for _, key := range localstore.Keys {
				fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(a.Cfg.FallbackPath, key+".json"))
			}
			if loadErr != nil {
				return fmt.Errorf("backup incomplete: %w", loadErr)
			}
			return nil
		},
	}
}

func NotesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Notes tools",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "import <dir>",
		Short: "Import every markdown file in dir as a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(config.Load())
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			n, err := importNotes(cmd.Context(), a, args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d notes\n", n)
			return err
		},
	})
	return cmd
}

func importNotes(ctx context.Context, a *app.App, dir string) (int, error) {
	// Load first so the fallback mirror keeps the existing notes
	err := a.NoteService.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load notes: %w", err)
	}

	parser := markdown.NewParser()
	imported := 0
	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}

		source, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		note := parser.ParseNote(path, source)
		_, err = a.NoteService.Import(ctx, note.Title, note.Content, note.CreatedAt)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		imported++
		return nil
	})

	a.NoteService.Collection().Wait()
	if banner := a.NoteService.Collection().Banner(); banner != "" {
		return imported, fmt.Errorf("%s", banner)
	}
	return imported, err
}
