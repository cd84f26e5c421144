package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	clientlib "github.com/alnah/go-clientlib"
)

// FilesystemResolver sees a content path when the matching file or
// directory exists under root. /apps/site maps to {root}/apps/site.
// Implements clientlib.ResourceResolver.
type FilesystemResolver struct {
	root string
}

// NewFilesystemResolver creates a FilesystemResolver for the given root.
// Returns ErrInvalidBasePath if the path is not a valid, readable directory.
func NewFilesystemResolver(root string) (*FilesystemResolver, error) {
	if root == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	absPath, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	// Resolve symlinks in root so containment checks compare real paths
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, absPath)
	}

	if _, err := os.ReadDir(absPath); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}

	return &FilesystemResolver{root: absPath}, nil
}

// Resolve implements clientlib.ResourceResolver.
func (f *FilesystemResolver) Resolve(p string) (clientlib.Resource, bool) {
	clean, err := CleanContentPath(p)
	if err != nil {
		return nil, false
	}

	filePath := filepath.Join(f.root, filepath.FromSlash(clean))
	if err := f.verifyPathContainment(filePath); err != nil {
		return nil, false
	}

	if _, err := os.Stat(filePath); err != nil {
		return nil, false
	}
	return Resource{path: clean}, true
}

// verifyPathContainment ensures the resolved path is root or lies within it.
// Resolves symlinks to prevent escape via a link pointing outside root.
func (f *FilesystemResolver) verifyPathContainment(filePath string) error {
	absFilePath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}

	if realPath, err := filepath.EvalSymlinks(absFilePath); err == nil {
		absFilePath = realPath
	}

	if absFilePath == f.root {
		return nil
	}
	// Separator suffix prevents /root/content vs /root/contentevil
	if !strings.HasPrefix(absFilePath, f.root+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes content root", ErrPathTraversal)
	}
	return nil
}

// Compile-time interface check.
var _ clientlib.ResourceResolver = (*FilesystemResolver)(nil)
