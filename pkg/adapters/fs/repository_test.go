package fs_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/brezel/pkg/adapters/fs"
	"github.com/aretw0/brezel/pkg/core"
)

// setupRepo creates a repository rooted in a fresh home directory.
func setupRepo(t *testing.T, opts ...func(*fs.Config)) (*fs.Repository, fs.Layout) {
	t.Helper()

	layout := fs.NewLayout(t.TempDir())
	cfg := fs.Config{Layout: layout}
	for _, opt := range opts {
		opt(&cfg)
	}

	return fs.NewRepository(cfg), layout
}

func writeNote(t *testing.T, layout fs.Layout, filename, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(layout.Root, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(layout.Root, filename), []byte(content), 0644))
}

func readSidecarID(t *testing.T, layout fs.Layout, filename string) string {
	t.Helper()
	data, err := os.ReadFile(layout.SidecarPath(filename))
	require.NoError(t, err)

	var rec struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(data, &rec))
	return rec.ID
}

func titles(notes []core.NoteInfo) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.Title)
	}
	return out
}

func TestInitialize(t *testing.T) {
	repo, layout := setupRepo(t)

	require.NoError(t, repo.Initialize(context.Background()))

	assert.DirExists(t, layout.Root)
	assert.DirExists(t, layout.Metadata)
	assert.Equal(t, layout.Root, repo.Root())
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("Seeds Welcome Note in Empty Root", func(t *testing.T) {
		repo, layout := setupRepo(t, func(c *fs.Config) {
			c.WelcomeNote = []byte("# hi there")
		})

		notes, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, "Welcome", notes[0].Title)
		assert.NotEmpty(t, notes[0].ID)

		body, err := os.ReadFile(filepath.Join(layout.Root, fs.WelcomeFilename))
		require.NoError(t, err)
		assert.Equal(t, "# hi there", string(body))
	})

	t.Run("Seeds Bundled Template by Default", func(t *testing.T) {
		repo, _ := setupRepo(t)

		_, err := repo.List(ctx)
		require.NoError(t, err)

		body, err := repo.Read(ctx, "Welcome")
		require.NoError(t, err)
		assert.Contains(t, body, "Welcome to Brezel Notes")
	})

	t.Run("Seeds Again Whenever Root Is Empty", func(t *testing.T) {
		repo, layout := setupRepo(t)

		_, err := repo.List(ctx)
		require.NoError(t, err)
		require.NoError(t, os.Remove(filepath.Join(layout.Root, fs.WelcomeFilename)))

		notes, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Welcome"}, titles(notes))
	})

	t.Run("Does Not Seed When Notes Exist", func(t *testing.T) {
		repo, layout := setupRepo(t)
		writeNote(t, layout, "a.md", "A")

		notes, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, titles(notes))
		assert.NoFileExists(t, filepath.Join(layout.Root, fs.WelcomeFilename))
	})

	t.Run("Creates Sidecar for Every Note", func(t *testing.T) {
		repo, layout := setupRepo(t)
		names := []string{"a.md", "b.md", "c.md", "with space.md"}
		for _, name := range names {
			writeNote(t, layout, name, name)
		}

		notes, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, notes, len(names))

		byTitle := make(map[string]core.NoteInfo)
		for _, n := range notes {
			byTitle[n.Title] = n
		}
		for _, name := range names {
			note, ok := byTitle[fs.TitleFromFilename(name)]
			require.True(t, ok, "missing %s", name)
			assert.Equal(t, note.ID, readSidecarID(t, layout, name))
		}
	})

	t.Run("Identifiers Are Stable Across Listings", func(t *testing.T) {
		repo, layout := setupRepo(t)
		writeNote(t, layout, "a.md", "A")
		writeNote(t, layout, "b.md", "B")

		first, err := repo.List(ctx)
		require.NoError(t, err)
		second, err := repo.List(ctx)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.NotEqual(t, first[0].ID, first[1].ID)
	})

	t.Run("Keeps Existing Sidecar Identifier", func(t *testing.T) {
		repo, layout := setupRepo(t)
		writeNote(t, layout, "a.md", "A")
		require.NoError(t, os.MkdirAll(layout.Metadata, 0755))
		require.NoError(t, os.WriteFile(layout.SidecarPath("a.md"), []byte(`{"id":"fixed-id","extra":true}`), 0644))

		notes, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.Equal(t, "fixed-id", notes[0].ID)
	})

	t.Run("Replaces Corrupt Sidecar", func(t *testing.T) {
		repo, layout := setupRepo(t)
		writeNote(t, layout, "a.md", "A")
		require.NoError(t, os.MkdirAll(layout.Metadata, 0755))
		require.NoError(t, os.WriteFile(layout.SidecarPath("a.md"), []byte("{not json"), 0644))

		notes, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.NotEmpty(t, notes[0].ID)
		assert.Equal(t, notes[0].ID, readSidecarID(t, layout, "a.md"))
	})

	t.Run("Skips Non-Markdown Entries and Directories", func(t *testing.T) {
		repo, layout := setupRepo(t)
		writeNote(t, layout, "a.md", "A")
		writeNote(t, layout, "notes.txt", "nope")
		writeNote(t, layout, "README.markdown", "nope")
		require.NoError(t, os.Mkdir(filepath.Join(layout.Root, "dir.md"), 0755))

		notes, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, titles(notes))
		assert.NoFileExists(t, layout.SidecarPath("notes.txt"))
	})

	t.Run("Reports Modification Time", func(t *testing.T) {
		repo, layout := setupRepo(t)
		writeNote(t, layout, "a.md", "A")
		stat, err := os.Stat(filepath.Join(layout.Root, "a.md"))
		require.NoError(t, err)

		notes, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, notes, 1)
		assert.True(t, stat.ModTime().Equal(notes[0].LastEditedTime))
	})

	t.Run("Handles Many Notes Concurrently", func(t *testing.T) {
		repo, layout := setupRepo(t, func(c *fs.Config) { c.Concurrency = 4 })
		for i := range 50 {
			writeNote(t, layout, fmt.Sprintf("note-%02d.md", i), "x")
		}

		notes, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, notes, 50)

		seen := make(map[string]bool)
		for _, n := range notes {
			assert.False(t, seen[n.ID], "duplicate id %s", n.ID)
			seen[n.ID] = true
		}
	})
}

func TestListMatching(t *testing.T) {
	ctx := context.Background()
	repo, layout := setupRepo(t)
	writeNote(t, layout, "2024-01-journal.md", "")
	writeNote(t, layout, "2024-02-journal.md", "")
	writeNote(t, layout, "groceries.md", "")

	notes, err := repo.ListMatching(ctx, core.ListOptions{Match: "2024-*.md"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"2024-01-journal", "2024-02-journal"}, titles(notes))

	_, err = repo.ListMatching(ctx, core.ListOptions{Match: "[unclosed"})
	assert.Error(t, err)
}

func TestReadWrite(t *testing.T) {
	ctx := context.Background()

	t.Run("Round Trip", func(t *testing.T) {
		repo, _ := setupRepo(t)
		require.NoError(t, repo.Initialize(ctx))

		content := "# Title\n\n---\nnot: frontmatter\n---\nünïcode ✓\n"
		require.NoError(t, repo.Write(ctx, "note", content))

		got, err := repo.Read(ctx, "note")
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("Overwrites Existing Body", func(t *testing.T) {
		repo, layout := setupRepo(t)
		writeNote(t, layout, "note.md", "a much longer original body")

		require.NoError(t, repo.Write(ctx, "note", "short"))

		got, err := repo.Read(ctx, "note")
		require.NoError(t, err)
		assert.Equal(t, "short", got)
	})

	t.Run("Read Missing Note", func(t *testing.T) {
		repo, _ := setupRepo(t)
		require.NoError(t, repo.Initialize(ctx))

		_, err := repo.Read(ctx, "ghost")
		assert.ErrorIs(t, err, core.ErrNotFound)
	})

	t.Run("Rejects Titles Escaping Root", func(t *testing.T) {
		repo, _ := setupRepo(t)
		require.NoError(t, repo.Initialize(ctx))

		for _, title := range []string{"", "../evil", "sub/note", `sub\note`} {
			assert.ErrorIs(t, repo.Write(ctx, title, "x"), core.ErrInvalidTitle, "title %q", title)
		}
	})
}

func TestDotTitles(t *testing.T) {
	ctx := context.Background()
	repo, layout := setupRepo(t)
	writeNote(t, layout, "..md", "dot")
	writeNote(t, layout, " .md", "blank")

	notes, err := repo.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{".", " "}, titles(notes))

	for _, n := range notes {
		_, err := repo.Read(ctx, n.Title)
		require.NoError(t, err, "title %q", n.Title)
		require.NoError(t, repo.Write(ctx, n.Title, "rewritten"), "title %q", n.Title)
		require.NoError(t, repo.Delete(ctx, n.Title), "title %q", n.Title)
	}

	assert.NoFileExists(t, filepath.Join(layout.Root, "..md"))
	assert.NoFileExists(t, filepath.Join(layout.Root, " .md"))
	assert.NoFileExists(t, layout.SidecarPath("..md"))
	assert.DirExists(t, layout.Root)
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	repo, layout := setupRepo(t)

	info, err := repo.Create(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, "fresh", info.Title)
	assert.NotEmpty(t, info.ID)

	body, err := repo.Read(ctx, "fresh")
	require.NoError(t, err)
	assert.Empty(t, body)
	assert.Equal(t, info.ID, readSidecarID(t, layout, "fresh.md"))

	notes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, info.ID, notes[0].ID)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Removes Body and Sidecar", func(t *testing.T) {
		repo, layout := setupRepo(t)
		writeNote(t, layout, "keep.md", "")
		writeNote(t, layout, "gone.md", "")
		_, err := repo.List(ctx)
		require.NoError(t, err)
		require.FileExists(t, layout.SidecarPath("gone.md"))

		require.NoError(t, repo.Delete(ctx, "gone"))

		assert.NoFileExists(t, filepath.Join(layout.Root, "gone.md"))
		assert.NoFileExists(t, layout.SidecarPath("gone.md"))

		notes, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"keep"}, titles(notes))
	})

	t.Run("Deleting Twice Is Harmless", func(t *testing.T) {
		repo, layout := setupRepo(t)
		writeNote(t, layout, "keep.md", "")
		_, err := repo.List(ctx)
		require.NoError(t, err)

		before, err := os.ReadDir(layout.Root)
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, "never-existed"))
		require.NoError(t, repo.Delete(ctx, "never-existed"))

		after, err := os.ReadDir(layout.Root)
		require.NoError(t, err)
		assert.Equal(t, len(before), len(after))
	})

	t.Run("Removes Orphan Sidecar", func(t *testing.T) {
		repo, layout := setupRepo(t)
		require.NoError(t, repo.Initialize(ctx))
		require.NoError(t, os.WriteFile(layout.SidecarPath("orphan.md"), []byte(`{"id":"x"}`), 0644))

		require.NoError(t, repo.Delete(ctx, "orphan"))
		assert.NoFileExists(t, layout.SidecarPath("orphan.md"))
	})
}
