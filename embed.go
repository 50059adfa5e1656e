// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/bmpm

package bmpm

import (
	"embed"
	"io/fs"
	"sync"
)

//go:embed resources/*.txt
var embeddedResources embed.FS

// DefaultRegistry returns the process-wide registry over embedded rule tables.
var DefaultRegistry = sync.OnceValue(func() *Registry {
	return NewRegistry(EmbeddedResources(), RegistryOptions{})
})

// EmbeddedResources returns the embedded rule resources as a flat file system.
func EmbeddedResources() fs.FS {
	sub, err := fs.Sub(embeddedResources, "resources")
	if err != nil {
		// "resources" is a valid constant path; Sub cannot fail.
		panic(err)
	}

	return sub
}
