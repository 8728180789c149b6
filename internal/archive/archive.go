// Package archive packs theme directories into tar files and back.
package archive

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Ext is the extension of theme archives.
const Ext = ".tar"

var (
	// ErrNotFound is returned when the theme directory or the archive is missing.
	ErrNotFound = errors.New("archive: not found")

	// ErrUnsafePath is returned for entries that would land outside the
	// destination or that are links.
	ErrUnsafePath = errors.New("archive: unsafe entry")
)

// ArchiveName returns the file name used for the archive of theme.
func ArchiveName(theme string) string {
	return theme + Ext
}

// Pack writes themesDir/themeName into outDir/<themeName>.tar and returns
// the archive path. Entry names are rooted at "<themeName>/".
func Pack(themesDir, themeName, outDir string) (string, error) {
	src := filepath.Join(themesDir, themeName)
	info, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: theme %s", ErrNotFound, themeName)
		}
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrNotFound, src)
	}

	archivePath := filepath.Join(outDir, ArchiveName(themeName))
	out, err := os.OpenFile(archivePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return "", err
	}

	success := false
	defer func() {
		if !success {
			_ = out.Close()
			_ = os.Remove(archivePath)
		}
	}()

	tw := tar.NewWriter(out)
	walkErr := filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == archivePath {
			return nil
		}

		rel, err := filepath.Rel(themesDir, p)
		if err != nil {
			return err
		}
		return addEntry(tw, p, filepath.ToSlash(rel), d)
	})
	if walkErr != nil {
		return "", walkErr
	}

	if err := tw.Close(); err != nil {
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", err
	}

	success = true
	return archivePath, nil
}

func addEntry(tw *tar.Writer, src, name string, d fs.DirEntry) error {
	info, err := d.Info()
	if err != nil {
		return err
	}

	// only directories and regular files travel
	if !info.IsDir() && !info.Mode().IsRegular() {
		return nil
	}

	header, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return err
	}
	header.Name = name
	if info.IsDir() {
		header.Name += "/"
	}
	header.Uname, header.Gname = "", ""

	if err := tw.WriteHeader(header); err != nil {
		return err
	}
	if info.IsDir() {
		return nil
	}

	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	_, err = io.Copy(tw, f)
	return err
}

// Unpack extracts archivePath under destRoot. Every entry must sit under
// "<theme>/"; the whole archive is checked before anything is written, and
// an entry that is a link, leaves destRoot or belongs to another root fails
// the extraction with ErrUnsafePath.
func Unpack(archivePath, destRoot, theme string) error {
	if err := checkEntries(archivePath, destRoot, theme); err != nil {
		return err
	}

	f, err := openArchive(archivePath)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := os.MkdirAll(destRoot, 0755); err != nil {
		return err
	}

	tr := tar.NewReader(f)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read archive: %w", err)
		}

		target, err := entryTarget(destRoot, theme, header)
		if err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, dirMode(header)); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := writeFile(target, tr, header); err != nil {
				return err
			}
		default:
			// pax/gnu metadata and other special entries carry no content
		}
	}
}

func openArchive(archivePath string) (*os.File, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, archivePath)
		}
		return nil, err
	}
	return f, nil
}

func checkEntries(archivePath, destRoot, theme string) error {
	f, err := openArchive(archivePath)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	tr := tar.NewReader(f)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read archive: %w", err)
		}
		if _, err := entryTarget(destRoot, theme, header); err != nil {
			return err
		}
	}
}

func entryTarget(destRoot, theme string, header *tar.Header) (string, error) {
	switch header.Typeflag {
	case tar.TypeSymlink, tar.TypeLink:
		return "", fmt.Errorf("%w: link %s", ErrUnsafePath, header.Name)
	}

	name := header.Name
	if path.IsAbs(name) || filepath.IsAbs(name) || strings.Contains(name, `\`) {
		return "", fmt.Errorf("%w: %s", ErrUnsafePath, name)
	}

	cleaned := path.Clean(name)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("%w: %s", ErrUnsafePath, name)
	}
	if cleaned != theme && !strings.HasPrefix(cleaned, theme+"/") {
		return "", fmt.Errorf("%w: %s is outside %s/", ErrUnsafePath, name, theme)
	}

	return filepath.Join(destRoot, filepath.FromSlash(cleaned)), nil
}

func writeFile(target string, r io.Reader, header *tar.Header) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, fileMode(header))
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if !header.ModTime.IsZero() {
		_ = os.Chtimes(target, header.ModTime, header.ModTime)
	}
	return nil
}

func fileMode(header *tar.Header) os.FileMode {
	mode := os.FileMode(header.Mode).Perm()
	if mode == 0 {
		return 0644
	}
	return mode
}

func dirMode(header *tar.Header) os.FileMode {
	mode := os.FileMode(header.Mode).Perm()
	if mode == 0 {
		return 0755
	}
	return mode | 0700
}
