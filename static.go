package main

import (
	"io/fs"
	"strings"
)

// containsSpecialFile reports whether name contains a path element starting with a period.
// The name is assumed to be delimited by forward slashes, as guaranteed by fs.FS.
func containsSpecialFile(name string) bool {
	parts := strings.Split(name, "/")
	for _, part := range parts {
		if strings.HasPrefix(part, ".") && part != "." {
			return true
		}
	}
	return false
}

// hiddenFileFS hides special files and folders. Folders cannot be opened,
// so the file server never lists them.
type hiddenFileFS struct {
	fs.FS
}

func (h hiddenFileFS) Open(name string) (fs.File, error) {
	if containsSpecialFile(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	f, err := h.FS.Open(name)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if fi.IsDir() {
		f.Close()
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return f, nil
}
